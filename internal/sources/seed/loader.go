// Package seed reads the optional YAML catalog of categories and starter
// ideas and maps it onto journal inputs.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads a seed file from disk.
type Loader struct {
	filePath string
}

// NewLoader creates a new seed loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Path returns the file this loader reads.
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads and parses the seed file. Unknown keys are rejected so typos
// surface instead of being ignored.
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks seed YAML.
func Parse(data []byte) (*File, error) {
	var file File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *File) validate() error {
	for i, c := range f.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("seed categories[%d]: name is required", i)
		}
	}
	for i, idea := range f.Ideas {
		if strings.TrimSpace(idea.Title) == "" {
			return fmt.Errorf("seed ideas[%d]: title is required", i)
		}
	}
	return nil
}
