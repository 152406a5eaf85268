package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"tummo/internal/audio"
	"tummo/internal/core/model"
	"tummo/internal/core/session"
	"tummo/internal/platform"
	"tummo/internal/storage"
	"tummo/internal/ui/exercise"
	"tummo/internal/ui/home"
	"tummo/resources"
)

const appName = platform.StorageID

func main() {
	guard, err := platform.AcquireSingleInstance()
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.tummo.app")
	fyneApp.SetIcon(resources.AppIcon())

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	player := audio.NewPlayer(appName)
	store := storage.NewHistoryFile(appName)
	engine := session.New(session.NewSystemScheduler(), player, store, settings.SessionConfig(), model.DefaultTimings())
	defer engine.Close()

	window := fyneApp.NewWindow(appName)
	window.Resize(fyne.NewSize(420, 520))

	var wakeLock platform.WakeLock
	releaseWakeLock := func() {
		if wakeLock == nil {
			return
		}
		if err := wakeLock.Release(); err != nil {
			log.Printf("release wake lock: %v", err)
		}
		wakeLock = nil
	}
	defer releaseWakeLock()

	var homeView *home.View
	homeView = home.New(settings, home.Callbacks{
		OnStart: func(updated home.Settings) {
			settings = updated
			if settings.KeepAwake {
				lock, err := platform.AcquireWakeLock(appName)
				if err != nil {
					log.Printf("wake lock: %v", err)
				} else {
					wakeLock = lock
				}
			}
			engine.StartSession()
		},
		OnSettingsChanged: func(updated home.Settings) {
			settings = updated
			engine.SetRounds(settings.Rounds)
			engine.SetBreathsPerRound(settings.BreathsPerRound)
			engine.SetVolume(settings.Volume)
			if err := storage.SaveSettings(appName, settings); err != nil {
				log.Printf("save settings: %v", err)
			}
		},
	})

	exerciseView := exercise.New(exercise.Callbacks{
		OnEndRetention: engine.EndRetention,
		OnNextRound:    engine.NextRound,
		OnQuit:         engine.Quit,
		OnDone:         engine.Done,
	})

	showingExercise := false
	render := func(snapshot session.Snapshot) {
		if snapshot.Phase == session.PhaseSetup {
			releaseWakeLock()
			if showingExercise {
				window.SetContent(homeView.Content())
				showingExercise = false
			}
			homeView.UpdateStats(snapshot)
			return
		}
		if !showingExercise {
			window.SetContent(exerciseView.Content())
			showingExercise = true
		}
		exerciseView.Update(snapshot)
	}

	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				render(snapshot)
			})
		}
	}()

	window.SetContent(homeView.Content())
	homeView.UpdateStats(engine.Snapshot())
	window.ShowAndRun()
}
