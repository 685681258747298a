package cv

// Editor is the single-record controller used by the general section.
// Changes are applied live; Cancel restores the snapshot taken when edit
// mode was entered.
type Editor[F Field, T Record[F, T]] struct {
	record   T
	editMode bool

	snapshot         T
	snapshotEditMode bool
}

// NewEditor creates an editor in display mode holding initial.
func NewEditor[F Field, T Record[F, T]](initial T) *Editor[F, T] {
	return &Editor[F, T]{record: initial, snapshot: initial}
}

// ToggleEdit flips edit mode. Entering edit mode snapshots the record first.
func (e *Editor[F, T]) ToggleEdit() {
	if !e.editMode {
		e.snapshot = e.record
		e.snapshotEditMode = e.editMode
	}
	e.editMode = !e.editMode
}

// Change writes value into field f of the live record.
func (e *Editor[F, T]) Change(f F, value string) {
	if !f.Valid() {
		violate("change", "", f.String(), ErrUnknownField)
	}
	e.record = e.record.With(f, value)
}

// Submit leaves edit mode, keeping the live changes.
func (e *Editor[F, T]) Submit() {
	e.editMode = false
}

// Cancel restores the record and edit flag from the snapshot.
func (e *Editor[F, T]) Cancel() {
	e.record = e.snapshot
	e.editMode = e.snapshotEditMode
}

// Record returns the live record.
func (e *Editor[F, T]) Record() T {
	return e.record
}

// Editing reports whether the editor is in edit mode.
func (e *Editor[F, T]) Editing() bool {
	return e.editMode
}
