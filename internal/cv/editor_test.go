package cv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_ToggleAndSubmit(t *testing.T) {
	e := NewEditor[GeneralField](General{})
	assert.False(t, e.Editing())

	e.ToggleEdit()
	require.True(t, e.Editing())

	e.Change(GeneralName, "Grace Hopper")
	assert.Equal(t, "Grace Hopper", e.Record().Name, "changes are live")

	e.Submit()
	assert.False(t, e.Editing())
	assert.Equal(t, General{Name: "Grace Hopper"}, e.Record())
}

func TestEditor_CancelRestoresSnapshot(t *testing.T) {
	e := NewEditor[GeneralField](General{Name: "Alan", Email: "alan@example.com"})

	e.ToggleEdit()
	e.Change(GeneralName, "Alan Turing")
	e.Change(GeneralPhone, "555")
	e.Cancel()

	assert.False(t, e.Editing())
	assert.Equal(t, General{Name: "Alan", Email: "alan@example.com"}, e.Record())
}

func TestEditor_SnapshotTakenOnEachEntry(t *testing.T) {
	e := NewEditor[GeneralField](General{})

	e.ToggleEdit()
	e.Change(GeneralEmail, "first@example.com")
	e.Submit()

	e.ToggleEdit()
	e.Change(GeneralEmail, "second@example.com")
	e.Cancel()

	assert.Equal(t, "first@example.com", e.Record().Email)
}

func TestEditor_ToggleTwiceKeepsChanges(t *testing.T) {
	e := NewEditor[GeneralField](General{})

	e.ToggleEdit()
	e.Change(GeneralPhone, "123")
	e.ToggleEdit()

	assert.False(t, e.Editing())
	assert.Equal(t, "123", e.Record().Phone)
}

func TestEditor_CancelBeforeEditKeepsInitial(t *testing.T) {
	e := NewEditor[GeneralField](General{Name: "initial"})
	e.Cancel()
	assert.Equal(t, "initial", e.Record().Name)
	assert.False(t, e.Editing())
}

func TestEditor_UndeclaredField(t *testing.T) {
	e := NewEditor[GeneralField](General{})
	err := Guard(func() { e.Change(GeneralField(-1), "x") })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownField))
}
