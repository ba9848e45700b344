package main

import (
	"log"

	"github.com/MrSnakeDoc/ideas/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ ideas failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ ideas stopped with error: %v", err)
	}
}
