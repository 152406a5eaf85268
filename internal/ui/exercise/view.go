package exercise

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tummo/internal/core/session"
	"tummo/internal/ui/home"
)

// Callbacks defines active-session action handlers.
type Callbacks struct {
	OnEndRetention func()
	OnNextRound    func()
	OnQuit         func()
	OnDone         func()
}

// View is the active-session screen. It renders whatever phase the engine is
// in and forwards button taps; it holds no session state of its own.
type View struct {
	content fyne.CanvasObject

	phaseLabel   *widget.Label
	primaryLabel *widget.Label
	detailLabel  *widget.Label
	summaryLabel *widget.Label

	actionButton *widget.Button
	quitButton   *widget.Button

	callbacks Callbacks
}

// New creates the exercise view.
func New(callbacks Callbacks) *View {
	view := &View{
		callbacks:    callbacks,
		phaseLabel:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		primaryLabel: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		detailLabel:  widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		summaryLabel: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}

	view.actionButton = widget.NewButton("", nil)
	view.actionButton.Importance = widget.HighImportance

	view.quitButton = widget.NewButton("Quit session", func() {
		if view.callbacks.OnQuit != nil {
			view.callbacks.OnQuit()
		}
	})

	view.content = container.NewBorder(
		view.phaseLabel,
		container.NewVBox(view.actionButton, view.quitButton),
		nil, nil,
		container.NewVBox(view.primaryLabel, view.detailLabel, view.summaryLabel),
	)
	return view
}

// Content returns the renderable root of the view.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Update re-renders the view from an engine snapshot.
// Must be called on the UI thread.
func (view *View) Update(snapshot session.Snapshot) {
	switch snapshot.Phase {
	case session.PhaseBreathing:
		view.renderBreathing(snapshot)
	case session.PhaseRetention:
		view.renderRetention(snapshot)
	case session.PhaseRecovery:
		view.renderRecovery(snapshot)
	case session.PhaseRoundDone:
		view.renderRoundDone(snapshot)
	case session.PhaseComplete:
		view.renderComplete(snapshot)
	}
}

func (view *View) renderBreathing(snapshot session.Snapshot) {
	view.phaseLabel.SetText(fmt.Sprintf("Round %d of %d", snapshot.CurrentRound, snapshot.Config.Rounds))
	if snapshot.IsInhale {
		view.primaryLabel.SetText("Breathe in")
	} else {
		view.primaryLabel.SetText("Breathe out")
	}
	view.detailLabel.SetText(fmt.Sprintf("Breath %d of %d", snapshot.BreathCount, snapshot.Config.BreathsPerRound))
	view.summaryLabel.SetText("")
	view.hideAction()
}

func (view *View) renderRetention(snapshot session.Snapshot) {
	view.phaseLabel.SetText(fmt.Sprintf("Round %d of %d - hold", snapshot.CurrentRound, snapshot.Config.Rounds))
	view.primaryLabel.SetText(home.FormatSeconds(snapshot.RetentionTime))
	view.detailLabel.SetText("Hold after the exhale for as long as it feels right")
	view.summaryLabel.SetText("")
	view.showAction("Breathe out", view.callbacks.OnEndRetention)
}

func (view *View) renderRecovery(snapshot session.Snapshot) {
	view.phaseLabel.SetText(fmt.Sprintf("Round %d of %d - recovery", snapshot.CurrentRound, snapshot.Config.Rounds))
	view.primaryLabel.SetText(fmt.Sprintf("%d", snapshot.RecoveryCountdown))
	view.detailLabel.SetText("Deep breath in and hold")
	view.summaryLabel.SetText("")
	view.hideAction()
}

func (view *View) renderRoundDone(snapshot session.Snapshot) {
	view.phaseLabel.SetText(fmt.Sprintf("Round %d of %d complete", snapshot.CurrentRound, snapshot.Config.Rounds))
	if last := len(snapshot.RoundRetentions); last > 0 {
		view.primaryLabel.SetText(home.FormatSeconds(snapshot.RoundRetentions[last-1]))
	}
	view.detailLabel.SetText("Retention this round")
	view.summaryLabel.SetText(retentionList(snapshot.RoundRetentions))

	label := "Next round"
	if snapshot.CurrentRound >= snapshot.Config.Rounds {
		label = "Finish session"
	}
	view.showAction(label, view.callbacks.OnNextRound)
}

func (view *View) renderComplete(snapshot session.Snapshot) {
	view.phaseLabel.SetText("Session complete")
	view.primaryLabel.SetText(retentionList(snapshot.RoundRetentions))

	duration := 0
	if records := snapshot.Data.Sessions; len(records) > 0 {
		duration = records[len(records)-1].DurationSeconds
	}
	view.detailLabel.SetText(fmt.Sprintf("Duration %s", home.FormatSeconds(duration)))

	days := "days"
	if snapshot.Streak == 1 {
		days = "day"
	}
	view.summaryLabel.SetText(fmt.Sprintf("Streak: %d %s", snapshot.Streak, days))
	view.showAction("Done", view.callbacks.OnDone)
	view.quitButton.Hide()
}

func (view *View) showAction(label string, handler func()) {
	view.actionButton.SetText(label)
	view.actionButton.OnTapped = func() {
		if handler != nil {
			handler()
		}
	}
	view.actionButton.Show()
	view.quitButton.Show()
}

func (view *View) hideAction() {
	view.actionButton.Hide()
	view.quitButton.Show()
}

func retentionList(retentions []int) string {
	if len(retentions) == 0 {
		return ""
	}
	parts := make([]string, len(retentions))
	for i, seconds := range retentions {
		parts[i] = home.FormatSeconds(seconds)
	}
	return strings.Join(parts, "  ·  ")
}
