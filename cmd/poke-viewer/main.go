package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/pokeget/poke-viewer/internal/config"
	"github.com/pokeget/poke-viewer/internal/pokeapi"
	"github.com/pokeget/poke-viewer/internal/ui"
	"github.com/pokeget/poke-viewer/internal/viewstate"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.pokeget.poke-viewer")
	myWindow := myApp.NewWindow("Poke Viewer")
	myWindow.Resize(fyne.NewSize(360, 440))

	// Minimal wiring: default API endpoint, no config file, quiet logger
	sugar := zap.NewNop().Sugar()
	settings := config.NewSettings(myApp)
	client := pokeapi.NewClient(pokeapi.DefaultBaseURL, 0, sugar)
	ctrl := viewstate.NewController(client, sugar)

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, ctrl, sugar)
	ctrl.Start(settings.GetSpecies())

	myWindow.ShowAndRun()
}
