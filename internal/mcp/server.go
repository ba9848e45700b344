// Package mcp exposes the journal to MCP clients as a set of tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MrSnakeDoc/ideas/internal/domain"
	"github.com/MrSnakeDoc/ideas/internal/journal"
)

// NewServer creates an MCP server backed by svc.
func NewServer(svc *journal.Service, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Ideas",
		version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("list_ideas",
			mcp.WithDescription("List ideas newest first. Filters combine with AND; omit a filter to skip it."),
			mcp.WithString("search",
				mcp.Description("Case-insensitive substring matched against the title"),
			),
			mcp.WithString("category_id",
				mcp.Description("Only ideas in this category"),
			),
			mcp.WithBoolean("archived",
				mcp.Description("true for archived ideas only, false for active ideas only"),
			),
		),
		handleListIdeas(svc),
	)

	s.AddTool(
		mcp.NewTool("get_idea",
			mcp.WithDescription("Get one idea by ID, including its resolved category."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The idea ID (UUID)"),
			),
		),
		handleGetIdea(svc),
	)

	s.AddTool(
		mcp.NewTool("get_stats",
			mcp.WithDescription("Total, active and archived idea counts plus the number of categories."),
		),
		handleGetStats(svc),
	)

	s.AddTool(
		mcp.NewTool("list_categories",
			mcp.WithDescription("List all categories sorted by name."),
		),
		handleListCategories(svc),
	)

	s.AddTool(
		mcp.NewTool("create_idea",
			mcp.WithDescription("Record a new idea."),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Short title, must not be blank"),
			),
			mcp.WithString("content",
				mcp.Description("Free-form body, stored as given"),
			),
			mcp.WithString("category_id",
				mcp.Description("Optional category ID"),
			),
			mcp.WithArray("tags",
				mcp.Description("Optional tags; blanks and duplicates are dropped"),
				mcp.WithStringItems(),
			),
		),
		handleCreateIdea(svc),
	)

	s.AddTool(
		mcp.NewTool("archive_idea",
			mcp.WithDescription("Toggle the archived flag of an idea."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The idea ID (UUID)"),
			),
		),
		handleArchiveIdea(svc),
	)

	return s
}

// IdeaResult is an idea with its category resolved. Category is omitted
// when the idea has none or its category was deleted.
type IdeaResult struct {
	*domain.Idea
	Category *domain.Category `json:"category,omitempty"`
}

func handleListIdeas(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := domain.IdeaFilter{
			Search:     req.GetString("search", ""),
			CategoryID: req.GetString("category_id", ""),
		}
		if _, ok := req.GetArguments()["archived"]; ok {
			archived := req.GetBool("archived", false)
			filter.Archived = &archived
		}

		return jsonResult(svc.ListIdeas(ctx, filter))
	}
}

func handleGetIdea(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		idea, err := svc.GetIdea(ctx, id)
		if err != nil {
			return toolError("failed to get idea", err), nil
		}

		result := IdeaResult{Idea: idea}
		if cat, ok := svc.IdeaCategory(ctx, idea); ok {
			result.Category = cat
		}
		return jsonResult(result)
	}
}

func handleGetStats(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(svc.Stats(ctx))
	}
}

func handleListCategories(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(svc.ListCategories(ctx))
	}
}

func handleCreateIdea(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title, err := req.RequireString("title")
		if err != nil {
			return mcp.NewToolResultError("title is required"), nil
		}

		in := journal.IdeaInput{
			Title:   title,
			Content: req.GetString("content", ""),
			Tags:    req.GetStringSlice("tags", nil),
		}
		if catID := req.GetString("category_id", ""); catID != "" {
			in.CategoryID = &catID
		}

		idea, err := svc.CreateIdea(ctx, in)
		if err != nil {
			return toolError("failed to create idea", err), nil
		}
		return jsonResult(idea)
	}
}

func handleArchiveIdea(svc *journal.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		idea, err := svc.ArchiveIdea(ctx, id)
		if err != nil {
			return toolError("failed to archive idea", err), nil
		}
		return jsonResult(idea)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// toolError reports validation and lookup failures verbatim; anything else
// is prefixed with what was being attempted.
func toolError(action string, err error) *mcp.CallToolResult {
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", action, err))
}

// Handler serves the MCP server over the streamable HTTP transport.
func Handler(svc *journal.Service, version string) http.Handler {
	return server.NewStreamableHTTPServer(NewServer(svc, version))
}
