package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResume_SeedAndSnapshot(t *testing.T) {
	r := NewResume(NewSequenceGenerator("s"))
	assert.True(t, r.Snapshot().Empty())

	r.Seed(SampleSnapshot())

	assert.Equal(t, SampleSnapshot(), r.Snapshot())
	assert.False(t, r.General.Editing())
	_, editing := r.Academic.Editing()
	assert.False(t, editing)

	items := r.Academic.Items()
	require.Len(t, items, 1)
	assert.Equal(t, UID("s1"), items[0].UID)
	assert.Equal(t, UID("s2"), r.Professional.Items()[0].UID, "sections share the generator")
}

func TestResume_SnapshotExcludesDrafts(t *testing.T) {
	r := NewResume(NewSequenceGenerator("s"))
	uid := r.Professional.Add()
	r.Professional.Select(uid)
	r.Professional.ChangeDraft(ProfessionalCompany, "pending")

	snap := r.Snapshot()
	require.Len(t, snap.Professional, 1)
	assert.Equal(t, "", snap.Professional[0].Company)
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[UID]bool)
	for i := 0; i < 100; i++ {
		uid := g.NewUID()
		assert.False(t, seen[uid], "duplicate uid %s", uid)
		seen[uid] = true
	}
}
