package cv

import "slices"

// Item is one entry of a List.
type Item[T any] struct {
	UID      UID
	Fields   T
	EditMode bool
}

// List is the editable-list controller shared by the academic and
// professional sections.
//
// The draft is valid from Select until the next Submit, Cancel or Add.
type List[F Field, T Record[F, T]] struct {
	items    []Item[T]
	draft    Item[T]
	drafting bool
	ids      IDGenerator
}

// NewList creates an empty list. A nil ids falls back to NewUUIDGenerator.
func NewList[F Field, T Record[F, T]](ids IDGenerator) *List[F, T] {
	if ids == nil {
		ids = NewUUIDGenerator()
	}
	return &List[F, T]{ids: ids}
}

// Add appends a blank item and returns its UID. Every existing item leaves
// edit mode and the new item is not selected.
func (l *List[F, T]) Add() UID {
	l.clearEditMode()
	l.drafting = false

	var blank T
	uid := l.ids.NewUID()
	l.items = append(l.items, Item[T]{UID: uid, Fields: blank})
	return uid
}

// Select puts the item uid into edit mode and copies it into the draft.
// All other items leave edit mode.
func (l *List[F, T]) Select(uid UID) {
	idx := l.mustIndex("select", uid)
	for i := range l.items {
		l.items[i].EditMode = i == idx
	}
	l.draft = l.items[idx]
	l.drafting = true
}

// ChangeDraft overwrites one field of the draft. The listed items are not
// touched.
func (l *List[F, T]) ChangeDraft(f F, value string) {
	if !f.Valid() {
		violate("change draft", "", f.String(), ErrUnknownField)
	}
	if !l.drafting {
		violate("change draft", "", f.String(), ErrNoDraft)
	}
	l.draft.Fields = l.draft.Fields.With(f, value)
}

// Submit replaces the item uid, in place, with the draft and takes it out
// of edit mode.
func (l *List[F, T]) Submit(uid UID) {
	idx := l.mustIndex("submit", uid)
	if !l.drafting {
		violate("submit", uid, "", ErrNoDraft)
	}
	if l.draft.UID != uid {
		violate("submit", uid, "", ErrDraftMismatch)
	}

	committed := l.draft
	committed.EditMode = false
	l.items[idx] = committed
	l.drafting = false
}

// Cancel takes every item out of edit mode and abandons the draft.
func (l *List[F, T]) Cancel() {
	l.clearEditMode()
	l.drafting = false
}

// Delete removes the item uid. The order of the remaining items and the
// draft are left as they are.
func (l *List[F, T]) Delete(uid UID) {
	idx := l.mustIndex("delete", uid)
	l.items = slices.Delete(l.items, idx, idx+1)
}

// Items returns a copy of the items in order.
func (l *List[F, T]) Items() []Item[T] {
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List[F, T]) Len() int {
	return len(l.items)
}

// Index returns the position of uid.
func (l *List[F, T]) Index(uid UID) (int, bool) {
	idx := slices.IndexFunc(l.items, func(it Item[T]) bool { return it.UID == uid })
	return idx, idx >= 0
}

// Item returns the item uid.
func (l *List[F, T]) Item(uid UID) (Item[T], bool) {
	idx, ok := l.Index(uid)
	if !ok {
		return Item[T]{}, false
	}
	return l.items[idx], true
}

// Draft returns the staged copy of the item being edited.
func (l *List[F, T]) Draft() (Item[T], bool) {
	return l.draft, l.drafting
}

// Editing returns the UID of the item in edit mode, if any.
func (l *List[F, T]) Editing() (UID, bool) {
	for _, it := range l.items {
		if it.EditMode {
			return it.UID, true
		}
	}
	return "", false
}

// Values returns the committed records without their list metadata.
func (l *List[F, T]) Values() []T {
	out := make([]T, len(l.items))
	for i, it := range l.items {
		out[i] = it.Fields
	}
	return out
}

func (l *List[F, T]) clearEditMode() {
	for i := range l.items {
		l.items[i].EditMode = false
	}
}

func (l *List[F, T]) mustIndex(op string, uid UID) int {
	idx, ok := l.Index(uid)
	if !ok {
		violate(op, uid, "", ErrUnknownUID)
	}
	return idx
}
