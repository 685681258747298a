package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/civi/internal/cv"
)

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp() AppModel {
	return NewAppModel(cv.NewResume(cv.NewSequenceGenerator("u")), Options{})
}

func press(m AppModel, msgs ...tea.Msg) AppModel {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(AppModel)
	}
	return m
}

func TestNewAppModel_StartsOnGeneralCard(t *testing.T) {
	m := newTestApp()
	if m.focus != (focusTarget{section: sectionGeneral}) {
		t.Errorf("expected focus on the general card, got %+v", m.focus)
	}
	if m.Editing() || m.Previewing() {
		t.Error("expected browse mode at start")
	}
}

func TestNewAppModel_NilResume(t *testing.T) {
	m := NewAppModel(nil, Options{})
	if m.Resume == nil {
		t.Fatal("expected an empty resume to be created")
	}
}

func TestApp_AcademicScenario(t *testing.T) {
	m := newTestApp()

	// tab to the academic header, add an entry
	m = press(m, keyTab, runes("a"))
	if m.focus != (focusTarget{section: sectionAcademic, uid: "u1"}) {
		t.Fatalf("expected focus on new item u1, got %+v", m.focus)
	}

	m = press(m, keyEnter)
	if !m.Editing() {
		t.Fatal("expected edit mode after enter")
	}

	m = press(m, runes("MIT"))
	items := m.Resume.Academic.Items()
	if items[0].Fields.School != "" {
		t.Errorf("typing must only touch the draft, item has school %q", items[0].Fields.School)
	}
	draft, ok := m.Resume.Academic.Draft()
	if !ok || draft.Fields.School != "MIT" {
		t.Errorf("expected draft school MIT, got %+v (ok=%v)", draft, ok)
	}

	m = press(m, keyEnter)
	if m.Editing() {
		t.Error("expected browse mode after submit")
	}
	want := cv.Item[cv.Academic]{UID: "u1", Fields: cv.Academic{School: "MIT"}}
	items = m.Resume.Academic.Items()
	if len(items) != 1 || items[0] != want {
		t.Errorf("expected %+v, got %+v", want, items)
	}
}

func TestApp_CancelDiscardsDraft(t *testing.T) {
	m := newTestApp()
	m = press(m, keyTab, runes("a"), keyEnter, runes("Oxford"), keyEsc)

	if m.Editing() {
		t.Error("expected browse mode after esc")
	}
	items := m.Resume.Academic.Items()
	if items[0].Fields.School != "" || items[0].EditMode {
		t.Errorf("expected untouched blank item, got %+v", items[0])
	}
}

func TestApp_ProfessionalTabBetweenFields(t *testing.T) {
	m := newTestApp()
	m = press(m, keyTab, keyTab, runes("a"), keyEnter,
		runes("Acme"), keyTab, runes("Engineer"), keyTab, runes("Builds things"),
		keyShiftTab, keyShiftTab, runes(" Ltd"),
		keyEnter,
	)

	got := m.Resume.Professional.Items()[0].Fields
	want := cv.Professional{Company: "Acme Ltd", Title: "Engineer", Role: "Builds things"}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestApp_GeneralEditsAreLive(t *testing.T) {
	m := newTestApp()

	m = press(m, keyEnter, runes("Ada"))
	if got := m.Resume.General.Record().Name; got != "Ada" {
		t.Errorf("expected live name Ada, got %q", got)
	}

	m = press(m, keyEsc)
	if got := m.Resume.General.Record().Name; got != "" {
		t.Errorf("expected cancel to restore the snapshot, got %q", got)
	}

	m = press(m, runes("e"), runes("Grace"), keyTab, runes("grace@example.com"), keyEnter)
	want := cv.General{Name: "Grace", Email: "grace@example.com"}
	if got := m.Resume.General.Record(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if m.Resume.General.Editing() {
		t.Error("expected edit mode off after submit")
	}
}

func TestApp_EditModeCapturesLetters(t *testing.T) {
	m := newTestApp()
	m = press(m, keyTab, runes("a"), keyEnter)

	m = press(m, runes("q"))
	if !m.Editing() {
		t.Fatal("q must be typed into the field while editing")
	}
	draft, _ := m.Resume.Academic.Draft()
	if draft.Fields.School != "q" {
		t.Errorf("expected draft school q, got %q", draft.Fields.School)
	}
}

func TestApp_CtrlCQuitsWhileEditing(t *testing.T) {
	m := newTestApp()
	m = press(m, keyEnter)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command from ctrl+c, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestApp_QuitInBrowseMode(t *testing.T) {
	m := newTestApp()
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command from q, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestApp_AddKeepsOtherItems(t *testing.T) {
	m := newTestApp()
	m = press(m, keyTab, runes("a"), keyEnter, runes("MIT"), keyEnter, runes("a"))

	items := m.Resume.Academic.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Fields.School != "MIT" {
		t.Errorf("expected first item kept, got %+v", items[0])
	}
	if m.focus.uid != "u2" {
		t.Errorf("expected focus on u2, got %q", m.focus.uid)
	}
}

func TestApp_DeleteKeepsFocusInSection(t *testing.T) {
	m := newTestApp()
	m = press(m, keyTab, runes("a"), runes("a"))

	m = press(m, runes("d"))
	if n := m.Resume.Academic.Len(); n != 1 {
		t.Fatalf("expected 1 item after delete, got %d", n)
	}
	if m.focus != (focusTarget{section: sectionAcademic, uid: "u1"}) {
		t.Errorf("expected focus to move to u1, got %+v", m.focus)
	}

	m = press(m, runes("x"))
	if n := m.Resume.Academic.Len(); n != 0 {
		t.Fatalf("expected empty list, got %d", n)
	}
	if m.focus != (focusTarget{section: sectionAcademic}) {
		t.Errorf("expected focus on the academic header, got %+v", m.focus)
	}
}

func TestApp_DeleteIgnoredOnHeader(t *testing.T) {
	m := newTestApp()
	m = press(m, keyTab, runes("a"), keyUp, runes("d"))
	if n := m.Resume.Academic.Len(); n != 1 {
		t.Errorf("expected delete on header to do nothing, got %d items", n)
	}
}

func TestApp_AddIgnoredOnGeneral(t *testing.T) {
	m := newTestApp()
	m = press(m, runes("a"))
	if m.Resume.Academic.Len() != 0 || m.Resume.Professional.Len() != 0 {
		t.Error("expected add on the general card to do nothing")
	}
}

func TestApp_CursorWraps(t *testing.T) {
	m := newTestApp()

	m = press(m, keyUp)
	if m.focus != (focusTarget{section: sectionProfessional}) {
		t.Errorf("expected wrap to the professional header, got %+v", m.focus)
	}
	m = press(m, keyDown)
	if m.focus != (focusTarget{section: sectionGeneral}) {
		t.Errorf("expected wrap back to general, got %+v", m.focus)
	}
	m = press(m, runes("j"))
	if m.focus != (focusTarget{section: sectionAcademic}) {
		t.Errorf("expected j to move down, got %+v", m.focus)
	}
}

func TestApp_HelpToggle(t *testing.T) {
	m := newTestApp()
	m = press(m, runes("?"))
	if !m.Help.ShowAll {
		t.Error("expected full help after ?")
	}
	m = press(m, runes("?"))
	if m.Help.ShowAll {
		t.Error("expected short help after second ?")
	}
}

func TestApp_PreviewOpensAndCloses(t *testing.T) {
	r := cv.NewResume(cv.NewSequenceGenerator("u"))
	r.Seed(cv.SampleSnapshot())
	m := NewAppModel(r, Options{MarkdownStyle: "notty"})
	m = press(m, tea.WindowSizeMsg{Width: 100, Height: 40}, runes("p"))

	if !m.Previewing() {
		t.Fatal("expected preview after p")
	}
	if !strings.Contains(m.View(), "Preview") {
		t.Error("expected preview title in view")
	}

	m = press(m, runes("a"))
	if m.Resume.Academic.Len() != 1 {
		t.Error("browse keys must not act while previewing")
	}

	m = press(m, keyEsc)
	if m.Previewing() {
		t.Error("expected esc to close the preview")
	}
}

func TestApp_View(t *testing.T) {
	m := newTestApp()
	m = press(m, tea.WindowSizeMsg{Width: 100, Height: 200})

	view := m.View()
	for _, want := range []string{AppName, "General", "Academic Background", "Professional Experience", "No entries yet"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestApp_ViewShowsSubmittedValues(t *testing.T) {
	m := newTestApp()
	m = press(m, tea.WindowSizeMsg{Width: 100, Height: 200},
		keyTab, runes("a"), keyEnter, runes("Cambridge"), keyTab, runes("Physics"), keyEnter)

	view := m.View()
	for _, want := range []string{"School :", "Cambridge", "Physics"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestApp_ViewBeforeWindowSize(t *testing.T) {
	m := newTestApp()
	if !strings.Contains(m.View(), "General") {
		t.Error("expected content before the first window size message")
	}
}
