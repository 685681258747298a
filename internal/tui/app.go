package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/civi/internal/cv"
	"github.com/muurk/civi/internal/logging"
	"github.com/muurk/civi/internal/render"
)

// Options configures a new AppModel.
type Options struct {
	// MarkdownStyle is the glamour style used by the preview.
	MarkdownStyle string
	// ShowFullHelp starts with the expanded help footer.
	ShowFullHelp bool
}

// AppModel is the top-level model. It owns the cursor, the preview pane and
// the help footer, and routes key presses to the section being edited.
type AppModel struct {
	// Resume holds the controllers. It is shared with the caller so the
	// final content is available after the program exits.
	Resume *cv.Resume

	general      *editorSection[cv.GeneralField, cv.General]
	academic     *listSection[cv.AcademicField, cv.Academic]
	professional *listSection[cv.ProfessionalField, cv.Professional]

	focus         focusTarget
	previewing    bool
	preview       viewport.Model
	content       viewport.Model
	markdownStyle string

	// UI state
	Width  int
	Height int

	// Help
	Help        help.Model
	BrowseKeys  browseKeyMap
	EditKeys    editKeyMap
	PreviewKeys previewKeyMap
}

// NewAppModel creates the editor for resume. A nil resume starts empty.
func NewAppModel(resume *cv.Resume, opts Options) AppModel {
	if resume == nil {
		resume = cv.NewResume(nil)
	}

	h := help.New()
	h.ShowAll = opts.ShowFullHelp

	editKeys := newEditKeyMap()
	m := AppModel{
		Resume:        resume,
		general:       newEditorSection(sectionGeneral, "General", resume.General, editKeys),
		academic:      newListSection(sectionAcademic, "Academic Background", resume.Academic, editKeys),
		professional:  newListSection(sectionProfessional, "Professional Experience", resume.Professional, editKeys),
		focus:         focusTarget{section: sectionGeneral},
		content:       viewport.New(0, 0),
		markdownStyle: opts.MarkdownStyle,
		Help:          h,
		BrowseKeys:    newBrowseKeyMap(),
		EditKeys:      editKeys,
		PreviewKeys:   newPreviewKeyMap(),
	}
	return m.sync()
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and keeps the content viewport in step with the
// cursor.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	return m.sync(), cmd
}

func (m AppModel) update(msg tea.Msg) (AppModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width - 4
		if m.previewing {
			m.openPreview()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch {
		case m.previewing:
			return m.updatePreview(msg)
		case m.editingSection() != nil:
			return m, m.editingSection().updateForm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	// Cursor blink and other input messages
	if s := m.editingSection(); s != nil {
		return m, s.updateForm(msg)
	}
	return m, nil
}

func (m AppModel) updateBrowse(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.BrowseKeys.Quit):
		logging.Info("Quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.BrowseKeys.Help):
		m.Help.ShowAll = !m.Help.ShowAll

	case key.Matches(msg, m.BrowseKeys.Up):
		m.moveFocus(-1)

	case key.Matches(msg, m.BrowseKeys.Down):
		m.moveFocus(1)

	case key.Matches(msg, m.BrowseKeys.Tab):
		m.nextSection()

	case key.Matches(msg, m.BrowseKeys.Add):
		if l := m.listing(m.focus.section); l != nil {
			m.focus = focusTarget{section: m.focus.section, uid: l.add()}
		}

	case key.Matches(msg, m.BrowseKeys.Edit):
		if m.focus.section == sectionGeneral {
			return m, m.general.beginEdit()
		}
		if l := m.listing(m.focus.section); l != nil && m.focus.uid != "" {
			return m, l.beginEdit(m.focus.uid)
		}

	case key.Matches(msg, m.BrowseKeys.Delete):
		if l := m.listing(m.focus.section); l != nil && m.focus.uid != "" {
			m.deleteFocused(l)
		}

	case key.Matches(msg, m.BrowseKeys.Preview):
		m.previewing = true
		m.openPreview()
	}
	return m, nil
}

func (m AppModel) updatePreview(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.PreviewKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.PreviewKeys.Close):
		m.previewing = false
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// openPreview renders the committed content into the preview viewport.
func (m *AppModel) openPreview() {
	width := CardWidth(m.Width)
	md := render.Markdown(m.Resume.Snapshot())
	m.preview = viewport.New(width, m.bodyHeight()-1)
	m.preview.SetContent(render.Terminal(md, m.markdownStyle, width))
}

func (m AppModel) sections() []section {
	return []section{m.general, m.academic, m.professional}
}

func (m AppModel) listing(id sectionID) listing {
	switch id {
	case sectionAcademic:
		return m.academic
	case sectionProfessional:
		return m.professional
	}
	return nil
}

func (m AppModel) editingSection() section {
	for _, s := range m.sections() {
		if s.editing() {
			return s
		}
	}
	return nil
}

// Editing reports whether any card is in edit mode.
func (m AppModel) Editing() bool {
	return m.editingSection() != nil
}

// Previewing reports whether the Markdown preview is open.
func (m AppModel) Previewing() bool {
	return m.previewing
}

func (m AppModel) targets() []focusTarget {
	var out []focusTarget
	for _, s := range m.sections() {
		out = append(out, s.targets()...)
	}
	return out
}

func (m AppModel) focusIndex(targets []focusTarget) int {
	for i, t := range targets {
		if t == m.focus {
			return i
		}
	}
	return 0
}

// moveFocus moves the cursor by delta, wrapping around.
func (m *AppModel) moveFocus(delta int) {
	targets := m.targets()
	i := m.focusIndex(targets)
	m.focus = targets[(i+delta+len(targets))%len(targets)]
}

// nextSection jumps to the next section header.
func (m *AppModel) nextSection() {
	next := (m.focus.section + 1) % (sectionProfessional + 1)
	m.focus = focusTarget{section: next}
}

// deleteFocused removes the focused item and keeps the cursor inside the
// same section.
func (m *AppModel) deleteFocused(l listing) {
	i := m.focusIndex(m.targets())
	sec := m.focus.section
	l.remove(m.focus.uid)

	targets := m.targets()
	if i >= len(targets) || targets[i].section != sec {
		i--
	}
	m.focus = targets[i]
}

// bodyHeight is the number of rows left for content once the container
// chrome and help footer are drawn.
func (m AppModel) bodyHeight() int {
	h := m.Height - chromeHeight - lipgloss.Height(m.helpView())
	if h < 3 {
		h = 3
	}
	return h
}

func (m AppModel) helpView() string {
	switch {
	case m.previewing:
		return m.Help.View(m.PreviewKeys)
	case m.Editing():
		return m.Help.View(m.EditKeys)
	default:
		return m.Help.View(m.BrowseKeys)
	}
}

// renderContent renders every section and returns the row offset and
// height of the focused block.
func (m AppModel) renderContent() (string, int, int) {
	width := CardWidth(m.Width)
	parts := []string{RenderTitle(render.Title)}
	row := lipgloss.Height(parts[0])
	focusRow, focusHeight := 0, 0

	for _, s := range m.sections() {
		for _, b := range s.blocks(m.focus, width) {
			h := lipgloss.Height(b.text)
			if b.target == m.focus && focusHeight == 0 {
				focusRow, focusHeight = row, h
			}
			parts = append(parts, b.text)
			row += h
		}
	}
	return strings.Join(parts, "\n"), focusRow, focusHeight
}

// sync refreshes the content viewport and scrolls it so the focused block
// is visible.
func (m AppModel) sync() AppModel {
	content, focusRow, focusHeight := m.renderContent()
	m.content.Width = CardWidth(m.Width) + 4
	m.content.Height = m.bodyHeight()
	m.content.SetContent(content)

	switch {
	case focusRow < m.content.YOffset:
		m.content.SetYOffset(focusRow)
	case focusRow+focusHeight > m.content.YOffset+m.content.Height:
		m.content.SetYOffset(focusRow + focusHeight - m.content.Height)
	}
	return m
}

// View renders the current state
func (m AppModel) View() string {
	if m.Width == 0 || m.Height == 0 {
		content, _, _ := m.renderContent()
		return content + "\n\n" + m.helpView()
	}

	var content string
	if m.previewing {
		content = PreviewTitleStyle.Render(previewTitle) + "\n" + m.preview.View()
	} else {
		content = m.content.View()
	}
	return RenderApplicationContainer(content, m.helpView(), m.Width, m.Height)
}
