package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/civi/internal/render"
	"github.com/muurk/civi/internal/urls"
	"github.com/muurk/civi/internal/version"
)

// AppName is shown in the container header
const AppName = "NEW FLASH CIVI"

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxCardWidth     = 100 // Cards stop growing past this width
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple, replaced by the accent preference
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles. They are rebuilt by SetAccentColor.
var (
	TitleStyle           lipgloss.Style
	SectionStyle         lipgloss.Style
	SelectedSectionStyle lipgloss.Style
	SubtitleStyle        lipgloss.Style
	CardStyle            lipgloss.Style
	SelectedCardStyle    lipgloss.Style
	CardTitleStyle       lipgloss.Style
	LabelStyle           lipgloss.Style
	FocusedLabelStyle    lipgloss.Style
	ValueStyle           lipgloss.Style
	BlurredInputStyle    lipgloss.Style
	EmptyStyle           lipgloss.Style
	HintStyle            lipgloss.Style
	PreviewTitleStyle    lipgloss.Style
)

func init() {
	buildStyles()
}

// SetAccentColor swaps the primary colour and rebuilds every style that
// uses it. An empty colour keeps the current palette.
func SetAccentColor(color string) {
	if color == "" {
		return
	}
	PrimaryColor = lipgloss.Color(color)
	BorderColor = PrimaryColor
	buildStyles()
}

func buildStyles() {
	TitleStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		MarginBottom(1)

	SectionStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)

	SelectedSectionStyle = lipgloss.NewStyle().
		Foreground(HighlightColor).
		Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(SubtleColor).
		Italic(true)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SubtleColor).
		Padding(0, 1).
		MarginLeft(2)

	SelectedCardStyle = CardStyle.
		BorderForeground(HighlightColor)

	CardTitleStyle = lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true)

	LabelStyle = lipgloss.NewStyle().
		Foreground(SubtleColor)

	FocusedLabelStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	ValueStyle = lipgloss.NewStyle().
		Foreground(TextColor)

	BlurredInputStyle = lipgloss.NewStyle().
		Foreground(SubtleColor)

	EmptyStyle = lipgloss.NewStyle().
		Foreground(SubtleColor).
		Italic(true).
		PaddingLeft(4)

	HintStyle = lipgloss.NewStyle().
		Foreground(SubtleColor)

	PreviewTitleStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(1)
}

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSectionHeader renders a section heading with selection indicator
func RenderSectionHeader(title, hint string, selected bool) string {
	if selected {
		return SelectedSectionStyle.Render("→ "+title) + "  " + HintStyle.Render(hint)
	}
	return SectionStyle.Render(title)
}

// BuildHeaderContent creates header content with app name and repository
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(urls.Repository)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps every screen: header with name and
// version, bordered content, and a footer pinned to the bottom.
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, m.helpView(), m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	header := BuildHeaderContent()
	footer := BuildFooterContent(footerText)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	// No padding here, callers control their own content margins
	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// chromeHeight is the number of rows RenderApplicationContainer spends on
// borders, header and the footer divider.
const chromeHeight = 6

// CardWidth returns the card width for a terminal width, leaving room for
// the outer border and the card margin.
func CardWidth(terminalWidth int) int {
	w := terminalWidth - 8
	if w > MaxCardWidth {
		w = MaxCardWidth
	}
	if w < MinTerminalWidth-8 {
		w = MinTerminalWidth - 8
	}
	return w
}

// InlineEditorStyle returns styling for a card whose fields are being edited
func InlineEditorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top:    "━",
			Bottom: "━",
			Left:   "┃",
			Right:  "┃",
		}).
		BorderForeground(PrimaryColor).
		Padding(0, 1).
		MarginLeft(2)
}

// previewTitle is shown above the rendered Markdown preview.
var previewTitle = "Preview · " + render.Title
