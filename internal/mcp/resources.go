package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	uriCatalog        = "bistro://catalog"
	uriCart           = "bistro://cart"
	uriTrackingPrefix = "bistro://tracking/"
)

func (s *Server) registerResources() {
	// ── bistro://catalog ───────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		uriCatalog,
		"Menu",
		mcp.WithResourceDescription("Every dish on the menu with price and category"),
		mcp.WithMIMEType("application/json"),
	), s.handleCatalogResource)

	// ── bistro://cart ──────────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		uriCart,
		"Cart",
		mcp.WithResourceDescription("Current cart lines, item count and total"),
		mcp.WithMIMEType("application/json"),
	), s.handleCartResource)

	// ── bistro://tracking/{orderId} ────────────────────
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			uriTrackingPrefix+"{orderId}",
			"Delivery tracking",
		),
		s.handleTrackingResource,
	)
}

func (s *Server) handleCatalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(uriCatalog, s.catalog.List())
}

func (s *Server) handleCartResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(uriCart, s.cart.Snapshot())
}

func (s *Server) handleTrackingResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	orderID := extractOrderID(uri)
	if orderID == "" {
		return nil, fmt.Errorf("could not extract orderId from URI: %s", uri)
	}
	snap, ok := s.tracking.Snapshot(orderID)
	if !ok {
		return nil, fmt.Errorf("order %s not found", orderID)
	}
	return jsonContents(uri, snap)
}

// extractOrderID extracts the order ID from "bistro://tracking/{id}".
func extractOrderID(uri string) string {
	id, ok := strings.CutPrefix(uri, uriTrackingPrefix)
	if !ok || strings.Contains(id, "/") {
		return ""
	}
	return id
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
