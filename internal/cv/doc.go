// Package cv holds the in-memory state behind the résumé editor.
//
// A résumé is made of three sections. The general section is a single record
// edited in place through an Editor. The academic and professional sections
// are ordered lists of records managed by a List, one generic controller
// shared by both record kinds.
//
// # Editing Disciplines
//
// The two controllers edit differently:
//
//   - List stages edits in a draft. Select copies one item into the draft,
//     ChangeDraft mutates only the draft, Submit writes it back in place and
//     Cancel throws it away.
//   - Editor edits the live record. ToggleEdit takes a snapshot when entering
//     edit mode, Change writes straight to the record and Cancel restores the
//     snapshot.
//
// At most one item of a List is in edit mode at any time. Add, Select and
// Cancel all reset every other item's edit flag to keep it that way.
//
// # Record Kinds
//
// Each record kind is a plain struct of strings with its own field enum:
//
//	l := cv.NewList[cv.AcademicField, cv.Academic](cv.NewUUIDGenerator())
//	uid := l.Add()
//	l.Select(uid)
//	l.ChangeDraft(cv.AcademicSchool, "MIT")
//	l.Submit(uid)
//
// Field updates are typed, so a professional field can never be written into
// an academic record.
//
// # Preconditions
//
// Operations addressed by UID expect the UID to come from the same List.
// Unknown UIDs, a Submit without a matching draft and undeclared fields are
// caller defects and panic with a *PreconditionError. Use Guard to turn such
// a panic back into an error.
//
// # Thread Safety
//
// Lists and Editors are not safe for concurrent use. The terminal UI drives
// them from the single Bubble Tea update goroutine.
package cv
