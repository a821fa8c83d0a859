package components

import "github.com/aki-app/aki/internal/nav"

// DestinationSelectedMsg is emitted when a sidebar row is activated.
type DestinationSelectedMsg struct {
	Dest nav.Destination
}

// PushMsg requests a drill-down to Dest.
type PushMsg struct {
	Dest nav.Destination
}

// PopMsg requests back navigation.
type PopMsg struct{}

// FocusSearchMsg is emitted when the sidebar search field is activated.
type FocusSearchMsg struct{}

// SectionToggledMsg is emitted when a sidebar section header is activated.
type SectionToggledMsg struct {
	Section nav.Section
}

// OpenProfileMsg is emitted by the sidebar footer.
type OpenProfileMsg struct{}

// SetSearchQueryMsg replaces the search text, e.g. from a recent search.
type SetSearchQueryMsg struct {
	Query string
}

// NowPlayingMsg is emitted when the watch screen is entered.
type NowPlayingMsg struct {
	Title string
}

// StatusMsg shows a message in the status bar.
type StatusMsg struct {
	Text  string
	Error bool
}

// HelpClosedMsg is emitted when the help overlay is dismissed.
type HelpClosedMsg struct{}

// PromptPurpose tells the app what a submitted prompt value is for.
type PromptPurpose int

const (
	PromptNewPlaylist PromptPurpose = iota
	PromptRenamePlaylist
)

// PromptSubmittedMsg is emitted when a prompt is confirmed.
type PromptSubmittedMsg struct {
	Purpose PromptPurpose
	Target  string // playlist key for renames
	Value   string
}

// PromptCancelledMsg is emitted when a prompt is dismissed.
type PromptCancelledMsg struct{}
