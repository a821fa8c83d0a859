// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#E0457B"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// Title is the style for section titles
	// NOTE: No margins - they break viewport line counting
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// Placeholder is the body text of placeholder screens
	Placeholder = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#444444", Dark: "#CCCCCC"})
)

// Sidebar styles
var (
	// Sidebar is the style for the sidebar container
	Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// SidebarFocused is for when the sidebar is focused
	SidebarFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	// SidebarItem is the base style for a destination row
	SidebarItem = lipgloss.NewStyle().
			PaddingLeft(1)

	// SidebarCursor is the row under the cursor while the sidebar is focused
	SidebarCursor = lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#333333"})

	// SidebarActive is for the selected destination
	SidebarActive = lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(Highlight).
			Bold(true)

	// SidebarHeader is for collapsible section headers
	SidebarHeader = lipgloss.NewStyle().
			Foreground(Subtle).
			Bold(true)

	// SidebarFooter is the profile button
	SidebarFooter = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Subtle)
)

// Main content area styles
var (
	// MainContent is the style for the main content area
	MainContent = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	// MainContentFocused is for when main content is focused
	MainContentFocused = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(Highlight).
				Padding(0, 1)

	// Breadcrumb is for the route trail above the content
	Breadcrumb = lipgloss.NewStyle().
			Foreground(Subtle)

	// BreadcrumbCurrent is the last route frame
	BreadcrumbCurrent = lipgloss.NewStyle().
				Foreground(Highlight).
				Bold(true)

	// Button is for primary actions in placeholder screens
	Button = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(0, 2)

	// Tile is a placeholder result card
	Tile = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Subtle).
		Foreground(Subtle).
		Align(lipgloss.Center)
)

// Toolbar styles
var (
	// ToolbarMenu is an inactive facet menu
	ToolbarMenu = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Subtle)

	// ToolbarMenuActive is the facet menu under the cursor
	ToolbarMenuActive = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(Highlight)

	// ToolbarOption is an unselected facet option
	ToolbarOption = lipgloss.NewStyle().
			Foreground(Subtle)

	// ToolbarOptionSelected is a chosen facet option
	ToolbarOptionSelected = lipgloss.NewStyle().
				Foreground(Highlight).
				Bold(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Input styles
var (
	// Input is the style for text inputs
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// InputFocused is for focused inputs
	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			MarginBottom(1)
)

// Section header style
// NOTE: No margins here - they add extra lines that break viewport line counting.
var (
	SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Subtle).
		Underline(true)
)
