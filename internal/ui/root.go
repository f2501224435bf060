package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/pokeget/poke-viewer/internal/config"
	"github.com/pokeget/poke-viewer/internal/model"
	"github.com/pokeget/poke-viewer/internal/viewstate"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	ctrl     *viewstate.Controller
	sugar    *zap.SugaredLogger

	counterLabel *widget.Label
	counterBtn   *widget.Button

	loadingBar   *widget.ProgressBarInfinite
	loadingLabel *widget.Label
	errorLabel   *widget.Label

	nameLabel   *widget.Label
	heightLabel *widget.Label
	weightLabel *widget.Label
	infoBox     *fyne.Container

	spriteImage *canvas.Image

	subToken string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, ctrl *viewstate.Controller, sugar *zap.SugaredLogger) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: settings,
		ctrl:     ctrl,
		sugar:    sugar,
	}

	window.SetTitle(AppTitle)

	ui.setupUI()
	ui.createMenu()

	// Re-render on every state change. Snapshots arrive from background
	// goroutines, so rendering is marshaled onto the UI thread.
	ui.subToken = ctrl.Subscribe(func(snap viewstate.Snapshot) {
		fyne.Do(func() {
			ui.render(snap)
		})
	})

	// Closing the window abandons any in-flight fetch.
	window.SetOnClosed(func() {
		ctrl.Unsubscribe(ui.subToken)
		ctrl.Close()
	})

	ui.render(ctrl.Snapshot())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Counter row: label plus increment button, independent of the fetch
	ui.counterLabel = widget.NewLabel(fmt.Sprintf(CounterLabelFormat, 0))
	ui.counterBtn = widget.NewButton(CounterButtonText, ui.onCounterClick)
	counterRow := container.NewHBox(ui.counterLabel, ui.counterBtn)

	// Loading indicator shown while the fetch is pending
	ui.loadingBar = widget.NewProgressBarInfinite()
	ui.loadingBar.Hide()
	ui.loadingLabel = widget.NewLabel(LoadingText)
	ui.loadingLabel.Alignment = fyne.TextAlignCenter
	ui.loadingLabel.Hide()

	// Error text shown on any failure; no retry button
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Hide()

	// Record section
	ui.nameLabel = widget.NewLabel("")
	ui.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.nameLabel.Alignment = fyne.TextAlignCenter
	ui.heightLabel = widget.NewLabel("")
	ui.weightLabel = widget.NewLabel("")

	ui.spriteImage = canvas.NewImageFromImage(nil)
	ui.spriteImage.FillMode = canvas.ImageFillContain
	ui.spriteImage.SetMinSize(fyne.NewSize(SpriteSize, SpriteSize))
	ui.spriteImage.Hide()

	ui.infoBox = container.NewVBox(
		ui.nameLabel,
		container.NewCenter(ui.spriteImage),
		ui.heightLabel,
		ui.weightLabel,
	)
	ui.infoBox.Hide()

	content := container.NewVBox(
		counterRow,
		widget.NewSeparator(),
		ui.loadingBar,
		ui.loadingLabel,
		ui.errorLabel,
		ui.infoBox,
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(MenuSettings, ui.onShowSettings)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(MenuFile, settingsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onCounterClick handles the increment button
func (ui *RootUI) onCounterClick() {
	value := ui.ctrl.Increment()
	ui.sugar.Debugw("counter incremented", "value", value)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		widget.ShowPopUp(widget.NewLabel("Settings saved"), ui.window.Canvas())
	})
}

// render draws the given snapshot. Must run on the UI thread.
func (ui *RootUI) render(snap viewstate.Snapshot) {
	ui.counterLabel.SetText(fmt.Sprintf(CounterLabelFormat, snap.Counter))

	switch snap.Fetch.Status {
	case model.FetchStatusLoading:
		ui.loadingBar.Show()
		ui.loadingBar.Start()
		ui.loadingLabel.Show()
		ui.errorLabel.Hide()
		ui.infoBox.Hide()
	case model.FetchStatusFailed:
		ui.loadingBar.Stop()
		ui.loadingBar.Hide()
		ui.loadingLabel.Hide()
		ui.errorLabel.SetText(formatFetchError(snap.Fetch.Err))
		ui.errorLabel.Show()
		ui.infoBox.Hide()
	case model.FetchStatusLoaded:
		ui.loadingBar.Stop()
		ui.loadingBar.Hide()
		ui.loadingLabel.Hide()
		ui.errorLabel.Hide()

		record := snap.Fetch.Record
		ui.nameLabel.SetText(record.DisplayName())
		ui.heightLabel.SetText(fmt.Sprintf(HeightLabelFormat, record.HeightMeters()))
		ui.weightLabel.SetText(fmt.Sprintf(WeightLabelFormat, record.WeightKilograms()))
		ui.infoBox.Show()
	default:
		ui.loadingBar.Stop()
		ui.loadingBar.Hide()
		ui.loadingLabel.Hide()
		ui.errorLabel.Hide()
		ui.infoBox.Hide()
	}

	// The sprite section is omitted entirely unless the bitmap is ready;
	// a missing or failed sprite never raises a visible error.
	if snap.Sprite.Status == model.FetchStatusLoaded && snap.Sprite.Image != nil {
		ui.spriteImage.Image = snap.Sprite.Image
		ui.spriteImage.Show()
		ui.spriteImage.Refresh()
	} else {
		ui.spriteImage.Hide()
	}
}

// formatFetchError collapses the typed client error into the single string
// shown to the user. The taxonomy stays intact on the error value itself.
func formatFetchError(err error) string {
	if err == nil || err.Error() == "" {
		return ErrorFallbackText
	}
	return err.Error()
}
