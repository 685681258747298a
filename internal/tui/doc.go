// Package tui implements the full-screen résumé editor.
//
// The editor is a single Bubble Tea program following the Elm architecture.
// AppModel is the coordinator: it owns the browse cursor, the Markdown
// preview and the help footer, and it hands key presses to whichever
// section is in edit mode.
//
// # Sections
//
// Each section wraps one controller from package cv:
//   - General: an editorSection over cv.GeneralEditor (live edits, cancel
//     restores the snapshot)
//   - Academic Background and Professional Experience: listSection values
//     over cv.AcademicList and cv.ProfessionalList (edits go to the draft
//     and land on submit)
//
// Both section kinds are generic over the record kind, so adding a new
// list section only needs a new record type in package cv.
//
// # Key Bindings
//
//   - Browse: ↑/↓ or j/k move, tab jumps sections, a adds, enter/e edits,
//     d/x deletes, p opens the preview, ? toggles help, q quits
//   - Editing: tab/shift+tab move between fields, enter submits, esc cancels
//   - Preview: ↑/↓ scroll, p/esc close
//
// # Layout
//
// Every screen goes through RenderApplicationContainer for a consistent
// header, scrolling content area and context-sensitive footer.
//
// # Usage Example
//
//	resume := cv.NewResume(nil)
//	app := tui.NewAppModel(resume, tui.Options{MarkdownStyle: "dark"})
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// All model updates occur in the Bubble Tea goroutine, so the controllers
// are never touched concurrently.
package tui
