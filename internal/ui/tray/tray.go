package tray

import (
	"fmt"

	"allure/internal/core/landing"
	"allure/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow func()
	OnQuit func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	callbacks  Callbacks
	state      landing.State
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		state:     landing.StateIdle,
	}
	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.refreshStatus()
	manager.refreshMenu()
	return manager
}

// SetState mirrors the submission state in the status line.
func (manager *Manager) SetState(state landing.State) {
	if state == manager.state {
		return
	}
	manager.state = state
	manager.refreshStatus()
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshStatus() {
	status := resources.SignupTitle
	if manager.state == landing.StateSubmitted {
		status = resources.Confirmation
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(resources.AppName,
		manager.statusItem,
		fyne.NewMenuItem("Show", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
