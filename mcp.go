package main

import (
	"github.com/spf13/cobra"

	bistroApp "bistro/internal/app"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the menu, cart and profile over MCP on stdio",
	Long: `The 'mcp' command runs Bistro without a window and speaks the Model
Context Protocol on stdin/stdout. The signed-in profile is shared with a
running window through the local database; cart, favorites and orders
belong to this process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer log.Sync()
		return bistroApp.ServeMCP(cmd.Context(), cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
