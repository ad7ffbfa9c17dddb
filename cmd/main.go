package main

import (
	"log"

	"allure/internal/core/clock"
	"allure/internal/core/landing"
	"allure/internal/platform"
	"allure/internal/storage"
	"allure/internal/ui/comingsoon"
	"allure/internal/ui/tray"
	"allure/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "AllureDuChic"

func main() {
	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	fyneApp := app.NewWithID("com.allureduchic.app")
	fyneApp.SetIcon(resources.MustIcon("sparkles.svg"))

	controller := landing.New(settings.LandingConfig(), clock.NewReal(fyne.Do))
	if settings.HapticsEnabled && !fyne.CurrentDevice().IsBrowser() {
		if haptics := platform.NewHaptics(); haptics != nil {
			controller.SetHaptics(haptics)
		}
	}

	view := comingsoon.New(fyneApp, controller, comingsoon.Config{
		Fullscreen:    settings.Fullscreen,
		Size:          fyne.NewSize(settings.WindowWidth, settings.WindowHeight),
		FrameInterval: settings.FrameInterval(),
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				view.Window().Show()
				view.Window().RequestFocus()
			},
			OnQuit: func() {
				view.Close()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon("sparkles.svg"))
		view.SetOnStateChange(trayManager.SetState)
		view.Window().SetCloseIntercept(func() {
			view.Window().Hide()
		})
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	events := controller.Subscribe(8)
	go func() {
		for event := range events {
			switch event.Type {
			case landing.EventStateChange:
				log.Printf("landing: state %s", event.State)
			case landing.EventInvalidEmail:
				log.Printf("landing: rejected draft")
			case landing.EventTeardown:
				log.Printf("landing: torn down")
			}
		}
	}()

	view.Show()
	fyneApp.Run()
}
