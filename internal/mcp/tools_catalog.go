package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerCatalogTools() {
	// ── list_catalog ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_catalog",
		mcp.WithDescription("List every dish on the menu"),
	), s.handleListCatalog)

	// ── filter_catalog ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("filter_catalog",
		mcp.WithDescription("Filter the menu by category and a case-insensitive title search"),
		mcp.WithString("category",
			mcp.Description("Category to keep, or \"All\" (default) for every category"),
		),
		mcp.WithString("search",
			mcp.Description("Substring to look for in dish titles; empty matches everything"),
		),
	), s.handleFilterCatalog)

	// ── list_categories ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List the category chips shown above the menu, starting with \"All\""),
	), s.handleListCategories)
}

func (s *Server) handleListCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.catalog.List())
}

func (s *Server) handleFilterCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items := s.catalog.Filter(req.GetString("category", ""), req.GetString("search", ""))
	return jsonResult(items)
}

func (s *Server) handleListCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.catalog.Categories())
}
