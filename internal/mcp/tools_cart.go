package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerCartTools() {
	// ── add_to_cart ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_to_cart",
		mcp.WithDescription("Add a dish to the cart. Adding a dish already in the cart increases its quantity."),
		mcp.WithString("itemId",
			mcp.Description("Catalog ID of the dish (from list_catalog)"),
		),
		mcp.WithString("title",
			mcp.Description("Dish title, used when itemId is not given"),
		),
		mcp.WithNumber("quantity",
			mcp.Description("How many to add (default 1)"),
		),
	), s.handleAddToCart)

	// ── remove_from_cart ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("remove_from_cart",
		mcp.WithDescription("Remove a dish from the cart entirely"),
		mcp.WithString("title",
			mcp.Description("Title of the cart line to remove"),
			mcp.Required(),
		),
	), s.handleRemoveFromCart)

	// ── update_quantity ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("update_quantity",
		mcp.WithDescription("Change the quantity of a cart line by delta. Quantity never drops below 1; use remove_from_cart to delete."),
		mcp.WithString("title",
			mcp.Description("Title of the cart line"),
			mcp.Required(),
		),
		mcp.WithNumber("delta",
			mcp.Description("Amount to add, negative to decrease"),
			mcp.Required(),
		),
	), s.handleUpdateQuantity)

	// ── get_cart ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_cart",
		mcp.WithDescription("Get the cart lines, item count and total"),
	), s.handleGetCart)
}

func (s *Server) handleAddToCart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	item, err := s.itemArg(req)
	if err != nil {
		return nil, err
	}
	return jsonResult(s.cart.AddToCart(ctx, item, req.GetInt("quantity", 1)))
}

func (s *Server) handleRemoveFromCart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	return jsonResult(s.cart.RemoveFromCart(ctx, title))
}

func (s *Server) handleUpdateQuantity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	delta := req.GetInt("delta", 0)
	return jsonResult(s.cart.UpdateQuantity(ctx, title, delta))
}

func (s *Server) handleGetCart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.cart.Snapshot())
}
