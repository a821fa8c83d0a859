package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/aki-app/aki/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeNotifier struct {
	titles   []string
	messages []string
}

func (n *fakeNotifier) Notify(title, message string) error {
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
	return nil
}

var errClipboard = errors.New("no clipboard")

type testApp struct {
	*App
	t     *testing.T
	clip  *fakeClipboard
	notes *fakeNotifier
	// quitting is set once a tea.QuitMsg is produced.
	quitting bool
}

func newTestApp(t *testing.T, mutate func(*config.Config, *Options)) *testApp {
	t.Helper()

	cfg := config.DefaultConfig()
	clip := &fakeClipboard{}
	notifier := &fakeNotifier{}
	opts := Options{Config: cfg, Clipboard: clip, Notifier: notifier}
	if mutate != nil {
		mutate(cfg, &opts)
	}

	app, err := NewApp(opts)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	ta := &testApp{App: app, t: t, clip: clip, notes: notifier}
	ta.drain(app.Init(), 0)
	ta.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return ta
}

// send delivers msg and feeds back every message its commands produce
// promptly, the way the Bubble Tea runtime would.
func (ta *testApp) send(msg tea.Msg) {
	ta.t.Helper()
	ta.sendDepth(msg, 0)
}

func (ta *testApp) sendDepth(msg tea.Msg, depth int) {
	if _, ok := msg.(tea.QuitMsg); ok {
		ta.quitting = true
		return
	}
	_, cmd := ta.App.Update(msg)
	ta.drain(cmd, depth)
}

func (ta *testApp) drain(cmd tea.Cmd, depth int) {
	if depth > 10 {
		ta.t.Fatal("message loop did not settle")
	}
	for _, m := range collect(cmd) {
		ta.sendDepth(m, depth+1)
	}
}

// press sends each key in order. Named keys are spelled as in tea.KeyMsg.String.
func (ta *testApp) press(keys ...string) {
	ta.t.Helper()
	for _, k := range keys {
		ta.send(keyMsg(k))
	}
}

// typeText sends s rune by rune.
func (ta *testApp) typeText(s string) {
	ta.t.Helper()
	for _, r := range s {
		ta.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// collect runs cmd and returns the messages it produces within a short
// timeout. Timers such as cursor blinks are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if msg == nil {
			return nil
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}
