package mcpserver

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"bistro/internal/catalog"
	"bistro/internal/service"
)

// Server is the MCP server for the bistro app.
// It exposes the menu, cart, favorites and profile as tools and resources so
// agents can order on the user's behalf.
type Server struct {
	mcp *server.MCPServer
	log *zap.Logger

	// Services (injected from app layer)
	catalog   *catalog.Store
	cart      *service.CartService
	favorites *service.FavoritesService
	session   *service.SessionService
	tracking  *service.TrackingService
}

// Deps holds all dependencies passed from the App layer to the MCP server.
type Deps struct {
	Log       *zap.Logger
	Catalog   *catalog.Store
	Cart      *service.CartService
	Favorites *service.FavoritesService
	Session   *service.SessionService
	Tracking  *service.TrackingService
}

// New creates and configures a new MCP server with all tools and resources.
func New(deps Deps) *Server {
	s := &Server{
		log:       deps.Log.Named("mcp"),
		catalog:   deps.Catalog,
		cart:      deps.Cart,
		favorites: deps.Favorites,
		session:   deps.Session,
		tracking:  deps.Tracking,
	}

	s.mcp = server.NewMCPServer(
		"bistro-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerCatalogTools()
	s.registerCartTools()
	s.registerFavoriteTools()
	s.registerSessionTools()
	s.registerTrackingTools()
	s.registerResources()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout. It returns when stdin
// closes or the process receives SIGINT/SIGTERM.
func (s *Server) ServeStdio() error {
	s.log.Info("starting stdio server")
	return server.ServeStdio(s.mcp)
}

// ── Helpers ────────────────────────────────────────────────

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

// userError reports a problem the agent should relay to the user, such as a
// form validation message, without failing the call.
func userError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
