package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/pokeget/poke-viewer/internal/config"
	"github.com/pokeget/poke-viewer/internal/pokeapi"
	"github.com/pokeget/poke-viewer/internal/ui"
	"github.com/pokeget/poke-viewer/internal/viewstate"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.pokeget.poke-viewer"
	AppName = "Poke Viewer"

	WindowWidth  = 360
	WindowHeight = 440
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		return
	}

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	sugar.Infof("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := pokeapi.NewClient(cfg.APIBaseURL, time.Duration(cfg.HTTPTimeoutMS)*time.Millisecond, sugar)
	ctrl := viewstate.NewController(client, sugar)

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, ctrl, sugar)

	// Single startup fetch; the counter stays responsive while it runs.
	ctrl.Start(settings.GetSpecies())

	// Show and run
	myWindow.ShowAndRun()
}

// newLogger builds the process logger at the configured level
func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
