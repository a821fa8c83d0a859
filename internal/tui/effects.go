package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// SystemClipboard uses the platform clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// DesktopNotifier sends notifications through the desktop notification
// service.
type DesktopNotifier struct {
	AppIcon string
}

// Notify implements Notifier.
func (n DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, n.AppIcon)
}

// routeCopiedMsg reports the result of a clipboard write.
type routeCopiedMsg struct {
	route string
	err   error
}

// notifiedMsg reports the result of a desktop notification.
type notifiedMsg struct {
	err error
}

func copyRouteCmd(c Clipboard, route string) tea.Cmd {
	return func() tea.Msg {
		if err := c.WriteAll(route); err != nil {
			return routeCopiedMsg{route: route, err: fmt.Errorf("failed to copy route: %w", err)}
		}
		return routeCopiedMsg{route: route}
	}
}

func notifyCmd(n Notifier, title, message string) tea.Cmd {
	return func() tea.Msg {
		if err := n.Notify(title, message); err != nil {
			return notifiedMsg{err: fmt.Errorf("failed to send notification: %w", err)}
		}
		return notifiedMsg{}
	}
}
