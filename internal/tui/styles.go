package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the desktop.
var Colors = struct {
	// Base colors
	Desktop    lipgloss.Color
	Taskbar    lipgloss.Color
	Window     lipgloss.Color
	TitleBar   lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Selection  lipgloss.Color
	Background lipgloss.Color
}{
	Desktop:    lipgloss.Color("#0F172A"), // Slate
	Taskbar:    lipgloss.Color("#1E293B"), // Dark slate
	Window:     lipgloss.Color("#F8FAFC"), // Off white
	TitleBar:   lipgloss.Color("#E2E8F0"), // Light gray
	Text:       lipgloss.Color("#F1F5F9"), // Light text
	Muted:      lipgloss.Color("#94A3B8"), // Gray
	Border:     lipgloss.Color("#475569"), // Mid gray
	Error:      lipgloss.Color("#EF4444"), // Red
	Selection:  lipgloss.Color("#334155"), // Highlight
	Background: lipgloss.Color("#020617"), // Near black
}

// Styles contains all the lipgloss styles for the desktop.
type Styles struct {
	// Desktop icons
	Icon         lipgloss.Style
	IconSelected lipgloss.Style

	// Taskbar
	Taskbar           lipgloss.Style
	StartButton       lipgloss.Style
	StartButtonActive lipgloss.Style
	Search            lipgloss.Style
	TaskItem          lipgloss.Style
	TaskItemSelected  lipgloss.Style
	TaskIndicator     lipgloss.Style
	Tray              lipgloss.Style

	// Start menu
	StartMenu      lipgloss.Style
	StartMenuOwner lipgloss.Style
	StartMenuPower lipgloss.Style

	// Window
	Window         lipgloss.Style
	WindowFocused  lipgloss.Style
	WindowTitle    lipgloss.Style
	WindowControls lipgloss.Style
	ExplorerHeader lipgloss.Style
	ExplorerRow    lipgloss.Style
	ExplorerActive lipgloss.Style
	ExplorerEmpty  lipgloss.Style

	// Footer
	Help     lipgloss.Style
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles using accent for highlights.
func DefaultStyles(accent string) Styles {
	accentColor := lipgloss.Color(accent)

	return Styles{
		Icon: lipgloss.NewStyle().
			Width(iconCellWidth).
			Align(lipgloss.Center).
			Foreground(Colors.Text),
		IconSelected: lipgloss.NewStyle().
			Width(iconCellWidth).
			Align(lipgloss.Center).
			Foreground(Colors.Text).
			Background(Colors.Selection).
			Bold(true),

		Taskbar: lipgloss.NewStyle().
			Background(Colors.Taskbar).
			Foreground(Colors.Text),
		StartButton: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Colors.Text),
		StartButtonActive: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Colors.Text).
			Background(accentColor).
			Bold(true),
		Search: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Colors.Muted),
		TaskItem: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Colors.Text),
		TaskItemSelected: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Colors.Text).
			Background(Colors.Selection),
		TaskIndicator: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(accentColor),
		Tray: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Colors.Text),

		StartMenu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Border).
			Padding(0, 1).
			Width(28),
		StartMenuOwner: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Text),
		StartMenuPower: lipgloss.NewStyle().
			Foreground(Colors.Text).
			Background(Colors.Selection),

		Window: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Colors.Border),
		WindowFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accentColor),
		WindowTitle: lipgloss.NewStyle().
			Bold(true),
		WindowControls: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		ExplorerHeader: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Underline(true),
		ExplorerRow: lipgloss.NewStyle(),
		ExplorerActive: lipgloss.NewStyle().
			Background(Colors.Selection).
			Foreground(Colors.Text),
		ExplorerEmpty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}
