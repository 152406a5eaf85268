package home

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"tummo/internal/core/model"
	"tummo/internal/core/session"
)

// Callbacks defines home screen action handlers.
type Callbacks struct {
	OnStart           func(Settings)
	OnSettingsChanged func(Settings)
}

// View is the setup screen: session parameters plus history stats.
type View struct {
	content  fyne.CanvasObject
	settings Settings

	roundsValue  *widget.Label
	breathsValue *widget.Label
	volumeValue  *widget.Label

	streakLabel *widget.Label
	todayLabel  *widget.Label
	totalLabel  *widget.Label
	bestLabel   *widget.Label

	callbacks Callbacks
}

// New creates the home view with the given initial settings.
func New(settings Settings, callbacks Callbacks) *View {
	view := &View{
		settings:  settings.Normalized(),
		callbacks: callbacks,

		roundsValue:  widget.NewLabel(""),
		breathsValue: widget.NewLabel(""),
		volumeValue:  widget.NewLabel(""),
		streakLabel:  widget.NewLabel(""),
		todayLabel:   widget.NewLabel(""),
		totalLabel:   widget.NewLabel(""),
		bestLabel:    widget.NewLabel(""),
	}

	rounds := widget.NewSlider(model.MinRounds, model.MaxRounds)
	rounds.Step = 1
	rounds.Value = float64(view.settings.Rounds)
	rounds.OnChanged = func(value float64) {
		view.settings.Rounds = model.ClampRounds(int(value))
		view.refreshValues()
		view.notifyChanged()
	}

	breaths := widget.NewSlider(model.MinBreathsPerRound, model.MaxBreathsPerRound)
	breaths.Step = model.BreathsPerRoundStep
	breaths.Value = float64(view.settings.BreathsPerRound)
	breaths.OnChanged = func(value float64) {
		view.settings.BreathsPerRound = model.ClampBreathsPerRound(int(value))
		view.refreshValues()
		view.notifyChanged()
	}

	volume := widget.NewSlider(0, 1)
	volume.Step = 0.05
	volume.Value = view.settings.Volume
	volume.OnChanged = func(value float64) {
		view.settings.Volume = model.ClampVolume(value)
		view.refreshValues()
		view.notifyChanged()
	}

	keepAwake := widget.NewCheck("Keep screen awake during sessions", nil)
	keepAwake.SetChecked(view.settings.KeepAwake)
	keepAwake.OnChanged = func(checked bool) {
		view.settings.KeepAwake = checked
		view.notifyChanged()
	}

	startButton := widget.NewButton("Start session", func() {
		if view.callbacks.OnStart != nil {
			view.callbacks.OnStart(view.settings)
		}
	})
	startButton.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle("Session", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Rounds"), layout.NewSpacer(), view.roundsValue),
		rounds,
		container.NewHBox(widget.NewLabel("Breaths per round"), layout.NewSpacer(), view.breathsValue),
		breaths,
		container.NewHBox(widget.NewLabel("Cue volume"), layout.NewSpacer(), view.volumeValue),
		volume,
		keepAwake,
	)

	stats := container.NewVBox(
		widget.NewLabelWithStyle("History", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Streak"), layout.NewSpacer(), view.streakLabel),
		container.NewHBox(widget.NewLabel("Today"), layout.NewSpacer(), view.todayLabel),
		container.NewHBox(widget.NewLabel("Total sessions"), layout.NewSpacer(), view.totalLabel),
		container.NewHBox(widget.NewLabel("Best retention"), layout.NewSpacer(), view.bestLabel),
	)

	view.content = container.NewBorder(nil, startButton, nil, nil,
		container.NewVBox(form, widget.NewSeparator(), stats),
	)
	view.refreshValues()
	return view
}

// Content returns the renderable root of the view.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Settings returns the current editor values.
func (view *View) Settings() Settings {
	return view.settings
}

// UpdateStats refreshes the history figures from an engine snapshot.
// Must be called on the UI thread.
func (view *View) UpdateStats(snapshot session.Snapshot) {
	days := "days"
	if snapshot.Streak == 1 {
		days = "day"
	}
	view.streakLabel.SetText(fmt.Sprintf("%d %s", snapshot.Streak, days))
	view.todayLabel.SetText(fmt.Sprintf("%d sessions", snapshot.TodaySessions))
	view.totalLabel.SetText(fmt.Sprintf("%d", snapshot.TotalSessions))
	view.bestLabel.SetText(FormatSeconds(snapshot.BestRetention))
}

func (view *View) refreshValues() {
	view.roundsValue.SetText(fmt.Sprintf("%d", view.settings.Rounds))
	view.breathsValue.SetText(fmt.Sprintf("%d", view.settings.BreathsPerRound))
	view.volumeValue.SetText(fmt.Sprintf("%d%%", int(view.settings.Volume*100+0.5)))
}

func (view *View) notifyChanged() {
	if view.callbacks.OnSettingsChanged != nil {
		view.callbacks.OnSettingsChanged(view.settings)
	}
}

// FormatSeconds renders a second count as mm:ss.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
