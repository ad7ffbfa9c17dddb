package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"allure/internal/core/landing"
	"allure/internal/storage"
	"allure/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

const appName = "AllureDuChic"

func main() {
	settings, settingsErr := storage.LoadSettings(appName)

	logFile := openLog()
	if logFile != nil {
		defer logFile.Close()
	}
	if settingsErr != nil {
		log.Printf("settings: %v (using defaults)", settingsErr)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	loop := terminal.NewLoop()
	controller := landing.New(settings.LandingConfig(), loop.Clock())
	defer controller.Teardown()

	view := terminal.New(screen, controller)
	if settings.HapticsEnabled {
		controller.SetHaptics(view)
	}

	controller.Mount()
	loop.Run(view, settings.FrameInterval())
}

// openLog points the standard logger away from the terminal while the
// screen is active. It returns the file it opened, if any.
func openLog() *os.File {
	dir, err := os.UserCacheDir()
	if err == nil {
		dir = filepath.Join(dir, appName)
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(filepath.Join(dir, "tui.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(file)
	return file
}
