package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"bistro/internal/service"
)

func (s *Server) registerTrackingTools() {
	// ── checkout ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("checkout",
		mcp.WithDescription("Place an order for everything in the cart and start delivery tracking. Empties the cart."),
	), s.handleCheckout)

	// ── get_tracking ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_tracking",
		mcp.WithDescription("Get the delivery status, ETA and courier position for an order"),
		mcp.WithString("orderId",
			mcp.Description("ID returned by checkout"),
			mcp.Required(),
		),
	), s.handleGetTracking)
}

func (s *Server) handleCheckout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	order, err := s.tracking.Checkout(ctx)
	if errors.Is(err, service.ErrEmptyCart) {
		return userError(err), nil
	}
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	return jsonResult(order)
}

func (s *Server) handleGetTracking(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID := req.GetString("orderId", "")
	if orderID == "" {
		return nil, fmt.Errorf("orderId is required")
	}
	snap, ok := s.tracking.Snapshot(orderID)
	if !ok {
		return nil, fmt.Errorf("order %s not found", orderID)
	}
	return jsonResult(snap)
}
