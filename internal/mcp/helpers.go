package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"bistro/internal/domain"
)

// itemArg resolves the dish a tool call refers to, by catalog id or by title.
func (s *Server) itemArg(req mcp.CallToolRequest) (domain.ItemPayload, error) {
	if id := req.GetString("itemId", ""); id != "" {
		item, ok := s.catalog.Find(id)
		if !ok {
			return domain.ItemPayload{}, fmt.Errorf("catalog item %s not found", id)
		}
		return item.Payload(), nil
	}
	title := req.GetString("title", "")
	if title == "" {
		return domain.ItemPayload{}, fmt.Errorf("itemId or title is required")
	}
	for _, item := range s.catalog.List() {
		if item.Title == title {
			return item.Payload(), nil
		}
	}
	return domain.ItemPayload{}, fmt.Errorf("no dish titled %q on the menu", title)
}
