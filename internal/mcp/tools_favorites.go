package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"bistro/internal/domain"
)

func (s *Server) registerFavoriteTools() {
	// ── toggle_favorite ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("toggle_favorite",
		mcp.WithDescription("Add a dish to favorites, or remove it if it is already there"),
		mcp.WithString("itemId",
			mcp.Description("Catalog ID of the dish"),
		),
		mcp.WithString("title",
			mcp.Description("Dish title, used when itemId is not given"),
		),
	), s.handleToggleFavorite)

	// ── list_favorites ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_favorites",
		mcp.WithDescription("List favorited dishes"),
	), s.handleListFavorites)
}

func (s *Server) handleToggleFavorite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	item, err := s.itemArg(req)
	if err != nil {
		return nil, err
	}
	fav := s.favorites.ToggleFavorite(ctx, domain.FavoriteItem{
		Title: item.Title,
		Price: item.Price,
		Image: item.Image,
	})
	return jsonResult(map[string]any{
		"title":    item.Title,
		"favorite": fav,
	})
}

func (s *Server) handleListFavorites(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.favorites.List())
}
