// Todolist is a small desktop application with a landing view, log in and
// sign up forms, and a verification popup. Credentials stay in memory.
//
// Usage:
//
//	todolist [--config path] [--log-level level]
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/todolist/internal/config"
	"github.com/ytget/todolist/internal/logging"
	"github.com/ytget/todolist/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.todolist"
	AppName = "ToDoList"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "todolist",
	Short:         "ToDoList desktop app",
	Long:          `Opens the ToDoList window: a landing view, log in and sign up forms, and a verification popup.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runApp,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", AppName, version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config.yaml (default: OS config dir)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty is silent")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp, cfg)

	level := logLevel
	if level == "" {
		level = settings.GetLogLevel()
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	defer logging.Sync()
	logger := logging.GetLogger()

	logger.Info("Starting", zap.String("app", AppName), zap.String("version", version))

	// A theme failure is not fatal; the default look is kept
	if err := ui.ApplyTheme(myApp, settings.GetThemeName()); err != nil {
		logger.Warn("Theme not applied, using default", zap.Error(err))
	}

	myWindow := myApp.NewWindow(settings.GetWindowTitle())
	myWindow.Resize(settings.GetWindowSize())
	myWindow.CenterOnScreen()
	myWindow.SetMaster()

	if _, err := ui.NewRootUI(myWindow, myApp, settings, logger); err != nil {
		return fmt.Errorf("failed to build UI: %w", err)
	}

	myWindow.ShowAndRun()
	logger.Info("Window closed")
	return nil
}
