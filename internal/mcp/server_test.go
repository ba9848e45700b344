package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/ideas/internal/domain"
	"github.com/MrSnakeDoc/ideas/internal/index"
	"github.com/MrSnakeDoc/ideas/internal/journal"
	"github.com/MrSnakeDoc/ideas/internal/logger"
)

func newService() *journal.Service {
	return journal.NewService(index.NewMemoryIndex(), nil, logger.Nop())
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	default:
		t.Fatalf("unexpected content type %T", c)
		return ""
	}
}

func TestCreateAndGetIdea(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, journal.CategoryInput{Name: "Projects"})
	require.NoError(t, err)

	res := call(t, handleCreateIdea(svc), map[string]any{
		"title":       "  MCP bridge ",
		"category_id": cat.ID,
		"tags":        []any{"go", "go", " mcp "},
	})
	require.False(t, res.IsError, text(t, res))

	var created domain.Idea
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &created))
	assert.Equal(t, "MCP bridge", created.Title)
	assert.Equal(t, []string{"go", "mcp"}, created.Tags)

	res = call(t, handleGetIdea(svc), map[string]any{"id": created.ID})
	require.False(t, res.IsError)

	var got struct {
		ID       string           `json:"id"`
		Category *domain.Category `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Projects", got.Category.Name)
}

func TestCreateIdeaValidation(t *testing.T) {
	svc := newService()

	res := call(t, handleCreateIdea(svc), map[string]any{"title": "   "})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "title")

	res = call(t, handleCreateIdea(svc), map[string]any{})
	assert.True(t, res.IsError)
}

func TestGetIdeaNotFound(t *testing.T) {
	res := call(t, handleGetIdea(newService()), map[string]any{"id": "missing"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "not found")
}

func TestListIdeasArchivedFilter(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	a, err := svc.CreateIdea(ctx, journal.IdeaInput{Title: "keep"})
	require.NoError(t, err)
	b, err := svc.CreateIdea(ctx, journal.IdeaInput{Title: "shelve"})
	require.NoError(t, err)

	res := call(t, handleArchiveIdea(svc), map[string]any{"id": b.ID})
	require.False(t, res.IsError)

	decode := func(res *mcp.CallToolResult) []domain.Idea {
		var ideas []domain.Idea
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &ideas))
		return ideas
	}

	assert.Len(t, decode(call(t, handleListIdeas(svc), map[string]any{})), 2)

	active := decode(call(t, handleListIdeas(svc), map[string]any{"archived": false}))
	require.Len(t, active, 1)
	assert.Equal(t, a.ID, active[0].ID)

	archived := decode(call(t, handleListIdeas(svc), map[string]any{"archived": true}))
	require.Len(t, archived, 1)
	assert.Equal(t, b.ID, archived[0].ID)
}

func TestGetStatsAndCategories(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, journal.CategoryInput{Name: "b"})
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, journal.CategoryInput{Name: "A"})
	require.NoError(t, err)
	_, err = svc.CreateIdea(ctx, journal.IdeaInput{Title: "x"})
	require.NoError(t, err)

	var stats domain.Stats
	require.NoError(t, json.Unmarshal([]byte(text(t, call(t, handleGetStats(svc), nil))), &stats))
	assert.Equal(t, domain.Stats{TotalIdeas: 1, ActiveIdeas: 1, TotalCategories: 2}, stats)

	var cats []domain.Category
	require.NoError(t, json.Unmarshal([]byte(text(t, call(t, handleListCategories(svc), nil))), &cats))
	require.Len(t, cats, 2)
	assert.Equal(t, "A", cats[0].Name)
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer(newService(), "test"))
}
