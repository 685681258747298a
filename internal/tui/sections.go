package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/civi/internal/cv"
	"github.com/muurk/civi/internal/logging"
)

// sectionID identifies one of the three résumé sections
type sectionID int

const (
	sectionGeneral sectionID = iota
	sectionAcademic
	sectionProfessional
)

func (s sectionID) String() string {
	switch s {
	case sectionGeneral:
		return "general"
	case sectionAcademic:
		return "academic"
	case sectionProfessional:
		return "professional"
	}
	return "unknown"
}

// focusTarget is something the browse cursor can rest on: the general
// card, a section header (empty uid) or a list item.
type focusTarget struct {
	section sectionID
	uid     cv.UID
}

// block is one rendered piece of the scrollable content.
type block struct {
	target focusTarget
	text   string
}

// section is the view-side wrapper around one controller.
type section interface {
	editing() bool
	updateForm(msg tea.Msg) tea.Cmd
	targets() []focusTarget
	blocks(focus focusTarget, width int) []block
}

// listing is a section backed by a cv.List.
type listing interface {
	section
	add() cv.UID
	beginEdit(uid cv.UID) tea.Cmd
	remove(uid cv.UID)
}

// listSection drives a cv.List from key presses. Every keystroke in the
// form becomes a ChangeDraft so the controller's draft is always current.
type listSection[F cv.Field, T cv.Record[F, T]] struct {
	id    sectionID
	title string
	list  *cv.List[F, T]
	keys  editKeyMap

	form    *fieldForm[F]
	editUID cv.UID
}

func newListSection[F cv.Field, T cv.Record[F, T]](id sectionID, title string, list *cv.List[F, T], keys editKeyMap) *listSection[F, T] {
	return &listSection[F, T]{id: id, title: title, list: list, keys: keys}
}

func (s *listSection[F, T]) editing() bool {
	return s.form != nil
}

func (s *listSection[F, T]) add() cv.UID {
	uid := s.list.Add()
	s.form = nil
	logging.LogEdit(s.id.String(), "add", string(uid))
	return uid
}

func (s *listSection[F, T]) beginEdit(uid cv.UID) tea.Cmd {
	s.list.Select(uid)
	draft, _ := s.list.Draft()
	form := newFieldForm(draft.Fields.Fields(), draft.Fields.Get, s.keys)
	s.form = &form
	s.editUID = uid
	logging.LogEdit(s.id.String(), "select", string(uid))
	return textinput.Blink
}

func (s *listSection[F, T]) remove(uid cv.UID) {
	s.list.Delete(uid)
	logging.LogEdit(s.id.String(), "delete", string(uid))
}

func (s *listSection[F, T]) updateForm(msg tea.Msg) tea.Cmd {
	if s.form == nil {
		return nil
	}
	form, ev, cmd := s.form.update(msg)
	s.form = &form

	switch ev.kind {
	case formChanged:
		s.list.ChangeDraft(ev.field, ev.value)
		logging.LogField(s.id.String(), ev.field.String(), len(ev.value))
	case formSubmit:
		s.list.Submit(s.editUID)
		logging.LogEdit(s.id.String(), "submit", string(s.editUID))
		s.form = nil
	case formCancel:
		s.list.Cancel()
		logging.LogEdit(s.id.String(), "cancel", string(s.editUID))
		s.form = nil
	}
	return cmd
}

func (s *listSection[F, T]) targets() []focusTarget {
	items := s.list.Items()
	out := make([]focusTarget, 0, len(items)+1)
	out = append(out, focusTarget{section: s.id})
	for _, it := range items {
		out = append(out, focusTarget{section: s.id, uid: it.UID})
	}
	return out
}

func (s *listSection[F, T]) blocks(focus focusTarget, width int) []block {
	header := focusTarget{section: s.id}
	out := []block{{
		target: header,
		text:   "\n" + RenderSectionHeader(s.title, "a add", focus == header),
	}}

	items := s.list.Items()
	if len(items) == 0 {
		out = append(out, block{target: header, text: EmptyStyle.Render("No entries yet. Press a to add one.")})
		return out
	}

	for _, it := range items {
		target := focusTarget{section: s.id, uid: it.UID}
		var text string
		switch {
		case it.EditMode && s.form != nil && s.editUID == it.UID:
			text = InlineEditorStyle().Width(width).Render(s.form.view())
		case focus == target:
			text = SelectedCardStyle.Width(width).Render(renderRows(it.Fields.Fields(), it.Fields.Get))
		default:
			text = CardStyle.Width(width).Render(renderRows(it.Fields.Fields(), it.Fields.Get))
		}
		out = append(out, block{target: target, text: text})
	}
	return out
}

// editorSection drives a cv.Editor. Edits are live, so a keystroke becomes
// a Change on the record itself.
type editorSection[F cv.Field, T cv.Record[F, T]] struct {
	id     sectionID
	title  string
	editor *cv.Editor[F, T]
	keys   editKeyMap

	form *fieldForm[F]
}

func newEditorSection[F cv.Field, T cv.Record[F, T]](id sectionID, title string, editor *cv.Editor[F, T], keys editKeyMap) *editorSection[F, T] {
	return &editorSection[F, T]{id: id, title: title, editor: editor, keys: keys}
}

func (s *editorSection[F, T]) editing() bool {
	return s.form != nil
}

func (s *editorSection[F, T]) beginEdit() tea.Cmd {
	if s.editor.Editing() {
		return nil
	}
	s.editor.ToggleEdit()
	rec := s.editor.Record()
	form := newFieldForm(rec.Fields(), rec.Get, s.keys)
	s.form = &form
	logging.LogEdit(s.id.String(), "toggle", "")
	return textinput.Blink
}

func (s *editorSection[F, T]) updateForm(msg tea.Msg) tea.Cmd {
	if s.form == nil {
		return nil
	}
	form, ev, cmd := s.form.update(msg)
	s.form = &form

	switch ev.kind {
	case formChanged:
		s.editor.Change(ev.field, ev.value)
		logging.LogField(s.id.String(), ev.field.String(), len(ev.value))
	case formSubmit:
		s.editor.Submit()
		logging.LogEdit(s.id.String(), "submit", "")
		s.form = nil
	case formCancel:
		s.editor.Cancel()
		logging.LogEdit(s.id.String(), "cancel", "")
		s.form = nil
	}
	return cmd
}

func (s *editorSection[F, T]) targets() []focusTarget {
	return []focusTarget{{section: s.id}}
}

func (s *editorSection[F, T]) blocks(focus focusTarget, width int) []block {
	target := focusTarget{section: s.id}
	title := CardTitleStyle.Render(s.title)

	var text string
	switch {
	case s.form != nil:
		text = InlineEditorStyle().Width(width).Render(title + "\n" + s.form.view())
	default:
		rec := s.editor.Record()
		body := lipgloss.JoinVertical(lipgloss.Left, title, renderRows(rec.Fields(), rec.Get))
		style := CardStyle
		if focus == target {
			style = SelectedCardStyle
		}
		text = style.Width(width).Render(body)
	}
	return []block{{target: target, text: text}}
}
