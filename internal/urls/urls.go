package urls

// Repository is the project home, shown in the editor header.
const Repository = "github.com/muurk/civi"

// Issues is where bugs and feature requests go.
const Issues = "https://github.com/muurk/civi/issues"

// MarkdownStyleGallery shows every glamour standard style accepted by the
// markdown_style preference.
const MarkdownStyleGallery = "https://github.com/charmbracelet/glamour/tree/master/styles/gallery"

// LipglossColors documents the colour formats accepted by accent_color.
const LipglossColors = "https://github.com/charmbracelet/lipgloss#colors"
