package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pokeget/poke-viewer/internal/config"
)

// SettingsDialog lets the user change the species fetched on the next
// launch. The running session keeps its single startup fetch.
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	speciesEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.speciesEntry = widget.NewEntry()
	sd.speciesEntry.SetPlaceHolder(config.DefaultSpecies)

	note := widget.NewLabel("Applied on next launch")
	note.TextStyle = fyne.TextStyle{Italic: true}

	form := container.NewVBox(
		widget.NewLabel("Startup species:"),
		sd.speciesEntry,
		note,
	)

	sd.dialog = dialog.NewCustomConfirm(
		MenuSettings,
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(320, 180))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.speciesEntry.SetText(sd.settings.GetSpecies())
}

// onSave persists the dialog values
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetSpecies(sd.speciesEntry.Text)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// ShowSettingsDialog creates and shows a settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	sd := NewSettingsDialog(settings, window)
	sd.onSaved = onSaved
	sd.Show()
}
