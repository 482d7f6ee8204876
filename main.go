package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"go.uber.org/zap"

	bistroApp "bistro/internal/app"
	"bistro/internal/config"
	"bistro/internal/logging"
	"bistro/internal/service"
)

//go:embed all:frontend/dist
var assets embed.FS

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bistro",
	Short: "Bistro food ordering app",
	Long: `Bistro is a small food ordering app: browse the menu, fill a cart,
keep favorites, sign in to a local profile and follow a simulated delivery.

Run without arguments to open the window. Run "bistro mcp" to expose the
same menu, cart and profile to an MCP client over stdio.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if log, err = logging.New(cfg.Log); err != nil {
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI()
	},
}

func runGUI() error {
	app := bistroApp.New(cfg, log)

	// macOS needs an Edit menu for Cmd+C/V/X/A to reach the WebView
	appMenu := menu.NewMenu()
	appMenu.Append(menu.EditMenu())

	return wails.Run(&options.App{
		Title:     "Bistro",
		Width:     service.DefaultWindowWidth,
		Height:    service.DefaultWindowHeight,
		MinWidth:  service.MinWindowWidth,
		MinHeight: service.MinWindowHeight,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		Menu:             appMenu,
		Logger:           logging.NewWailsLogger(log),
		OnStartup:        app.Startup,
		OnBeforeClose:    app.BeforeClose,
		OnShutdown:       app.Shutdown,
		Bind: []interface{}{
			app,
		},
		Mac: &mac.Options{
			TitleBar: mac.TitleBarHiddenInset(),
			About: &mac.AboutInfo{
				Title:   "Bistro",
				Message: "French bistro classics, delivered",
			},
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
