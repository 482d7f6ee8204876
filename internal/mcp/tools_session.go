package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"bistro/internal/service"
)

func (s *Server) registerSessionTools() {
	// ── get_session ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_session",
		mcp.WithDescription("Get the signed-in profile, if any"),
	), s.handleGetSession)

	// ── register ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("register",
		mcp.WithDescription("Create the local profile and sign in. Replaces any existing profile."),
		mcp.WithString("name", mcp.Required()),
		mcp.WithString("email", mcp.Required()),
		mcp.WithString("password", mcp.Required()),
		mcp.WithString("confirmPassword",
			mcp.Description("Must equal password"),
			mcp.Required(),
		),
	), s.handleRegister)

	// ── login ──────────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("login",
		mcp.WithDescription("Sign in to the local profile"),
		mcp.WithString("email", mcp.Required()),
		mcp.WithString("password", mcp.Required()),
	), s.handleLogin)

	// ── logout ─────────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("logout",
		mcp.WithDescription("Sign out and forget the local profile"),
	), s.handleLogout)
}

func (s *Server) handleGetSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.session.Restore(ctx))
}

func (s *Server) handleRegister(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.session.Register(ctx, service.RegisterInput{
		Name:            req.GetString("name", ""),
		Email:           req.GetString("email", ""),
		Password:        req.GetString("password", ""),
		ConfirmPassword: req.GetString("confirmPassword", ""),
	})
	if err != nil {
		return userError(err), nil
	}
	return jsonResult(state)
}

func (s *Server) handleLogin(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.session.Login(ctx, req.GetString("email", ""), req.GetString("password", ""))
	if err != nil {
		return userError(err), nil
	}
	return jsonResult(state)
}

func (s *Server) handleLogout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.session.Logout(ctx))
}
