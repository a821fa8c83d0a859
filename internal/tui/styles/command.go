package styles

import "github.com/charmbracelet/lipgloss"

var (
	// CommandPrompt is the style for the ":" prompt.
	CommandPrompt = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#FFCC00"}).
			Bold(true)

	// CommandInput is the style for the active command input text.
	CommandInput = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// CommandSuggestion is the style for autocomplete suggestions.
	CommandSuggestion = lipgloss.NewStyle().
				Foreground(Subtle)

	// CommandSuggestionSelected is the style for the selected autocomplete suggestion.
	CommandSuggestionSelected = lipgloss.NewStyle().
					Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
					Background(lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#444444"})

	// CommandLineContainer is the container for the command line area.
	CommandLineContainer = lipgloss.NewStyle().
				Padding(0, 1)
)
