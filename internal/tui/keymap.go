package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// VimMode enables hjkl movement and the gg/dd/yy sequences.
	VimMode bool

	// Navigation
	Up       Key
	Down     Key
	Top      Key
	Bottom   Key
	HalfUp   Key
	HalfDown Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Command Key

	// Panes and sidebar
	SwitchPane      Key
	Search          Key
	ToggleLibrary   Key
	TogglePlaylists Key
	Profile         Key

	// Playlists
	NewPlaylist    Key
	RenamePlaylist Key
	DeletePlaylist Key

	// Route
	CopyRoute Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		VimMode: true,

		// Navigation
		Up:       Key{Key: "k", Help: "up"},
		Down:     Key{Key: "j", Help: "down"},
		Top:      Key{Key: "g", Help: "top (gg)"},
		Bottom:   Key{Key: "G", Help: "bottom"},
		HalfUp:   Key{Key: "ctrl+u", Help: "half page up"},
		HalfDown: Key{Key: "ctrl+d", Help: "half page down"},

		// Actions
		Select:  Key{Key: "enter", Help: "select"},
		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Command: Key{Key: ":", Help: "command"},

		// Panes and sidebar
		SwitchPane:      Key{Key: "tab", Help: "switch pane"},
		Search:          Key{Key: "/", Help: "search"},
		ToggleLibrary:   Key{Key: "L", Help: "toggle library"},
		TogglePlaylists: Key{Key: "P", Help: "toggle playlists"},
		Profile:         Key{Key: "p", Help: "profile"},

		// Playlists
		NewPlaylist:    Key{Key: "n", Help: "new playlist"},
		RenamePlaylist: Key{Key: "R", Help: "rename playlist"},
		DeletePlaylist: Key{Key: "d", Help: "delete playlist (dd)"},

		// Route
		CopyRoute: Key{Key: "y", Help: "copy route (yy)"},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap Keymap) (string, bool) {
	key := msg.String()

	if keymap.VimMode {
		if action, consumed, done := ks.handleSequence(key, keymap); done {
			return action, consumed
		}
	}

	// Single key mappings
	switch key {
	case "up":
		return "up", true
	case "down":
		return "down", true
	case "home":
		return "top", true
	case "end":
		return "bottom", true
	case keymap.HalfUp.Key, "pgup":
		return "half_up", true
	case keymap.HalfDown.Key, "pgdown":
		return "half_down", true
	case keymap.Select.Key, " ":
		return "select", true
	case keymap.Back.Key, "backspace":
		return "back", true
	case keymap.Quit.Key:
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Command.Key:
		return "command", true
	case keymap.SwitchPane.Key, "shift+tab":
		return "switch_pane", true
	case keymap.Search.Key:
		return "search", true
	case keymap.ToggleLibrary.Key:
		return "toggle_library", true
	case keymap.TogglePlaylists.Key:
		return "toggle_playlists", true
	case keymap.Profile.Key:
		return "profile", true
	case keymap.NewPlaylist.Key:
		return "new_playlist", true
	case keymap.RenamePlaylist.Key:
		return "rename_playlist", true
	case "ctrl+y":
		// Non-vim fallback for yy
		return "copy", true
	}

	if keymap.VimMode {
		switch key {
		case keymap.Up.Key:
			return "up", true
		case keymap.Down.Key:
			return "down", true
		case keymap.Bottom.Key:
			return "bottom", true
		}
	}

	return "", false
}

// handleSequence resolves the gg, dd and yy sequences. done is false when
// the key should fall through to single key mappings.
func (ks *KeyState) handleSequence(key string, keymap Keymap) (action string, consumed, done bool) {
	// Handle 'gg' sequence (go to top)
	if ks.WaitingG {
		ks.WaitingG = false
		if key == keymap.Top.Key {
			return "top", true, true
		}
	}

	// Handle 'dd' sequence (delete)
	if ks.WaitingD {
		ks.WaitingD = false
		if key == keymap.DeletePlaylist.Key {
			return "delete", true, true
		}
	}

	// Handle 'yy' sequence (copy)
	if ks.WaitingY {
		ks.WaitingY = false
		if key == keymap.CopyRoute.Key {
			return "copy", true, true
		}
	}

	// Check for multi-key sequence starts
	switch key {
	case keymap.Top.Key:
		ks.WaitingG = true
	case keymap.DeletePlaylist.Key:
		ks.WaitingD = true
	case keymap.CopyRoute.Key:
		ks.WaitingY = true
	default:
		return "", false, false
	}
	ks.LastKey = key
	return "", true, true // Key consumed, waiting for next
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/G", "Go to top/bottom"},
		{k.HalfUp.Key + "/" + k.HalfDown.Key, "Half page up/down"},
		{k.SwitchPane.Key, "Switch pane (Sidebar/Content)"},
		{k.Select.Key, "Open"},
		{"esc/backspace", "Back"},
		{"", ""},
		{"Sidebar", ""},
		{k.Search.Key, "Search"},
		{k.ToggleLibrary.Key, "Expand/collapse Library"},
		{k.TogglePlaylists.Key, "Expand/collapse Playlists"},
		{k.Profile.Key, "View profile"},
		{"", ""},
		{"General", ""},
		{"yy", "Copy route"},
		{k.Command.Key, "Command line"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key + "/ctrl+c", "Quit"},
		{"Playlists", ""},
		{k.NewPlaylist.Key, "New playlist"},
		{k.RenamePlaylist.Key, "Rename playlist"},
		{"dd", "Delete playlist"},
		{"", ""},
		{"Search", ""},
		{"f", "Open filter menus"},
		{"h/l", "Switch filter menu"},
		{"space", "Toggle filter option"},
		{"X", "Reset filters"},
		{"x", "Clear search"},
	}
}
