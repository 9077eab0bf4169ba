package drawing

import (
	"slices"
	"testing"

	"honnef.co/go/draft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entities(d *Document) []draft.Entity {
	var out []draft.Entity
	for it := range d.Entities() {
		out = append(out, it.Entity)
	}
	return out
}

func TestDocumentAddRemove(t *testing.T) {
	d := NewDocument(DefaultConfig())
	l := draft.Segment{P0: draft.Pt(0, 0), P1: draft.Pt(1, 0)}
	c := draft.Circle{Center: draft.Pt(2, 2), Radius: 1}

	it1 := d.AddEntity(l)
	d.SetActiveLayer("walls")
	d.SetActivePen(Pen{Color: "red", Width: 1, LineType: "dashed"})
	it2 := d.AddEntity(c)

	require.Equal(t, 2, d.Len())
	assert.NotEqual(t, it1.ID, it2.ID)
	assert.Equal(t, "0", it1.Layer)
	assert.Equal(t, "walls", it2.Layer)
	assert.Equal(t, "red", it2.Pen.Color)
	assert.Equal(t, []draft.Entity{l, c}, entities(d))

	d.RemoveEntity(it1)
	assert.Equal(t, []draft.Entity{c}, entities(d))
	// Removing twice is harmless.
	d.RemoveEntity(it1)
	assert.Equal(t, 1, d.Len())
}

func TestDocumentEntitiesSnapshot(t *testing.T) {
	d := NewDocument(DefaultConfig())
	for i := range 3 {
		d.AddEntity(draft.Circle{Center: draft.Pt(float64(i), 0), Radius: 1})
	}
	// Removing during iteration does not disturb the iterator.
	var n int
	for it := range d.Entities() {
		d.RemoveEntity(it)
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, d.Len())
}

func TestDocumentSelect(t *testing.T) {
	d := NewDocument(DefaultConfig())
	d.AddEntity(draft.Circle{Center: draft.Pt(0, 0), Radius: 1})
	d.AddEntity(draft.Segment{P0: draft.Pt(0, 0), P1: draft.Pt(1, 0)})
	d.AddEntity(draft.Circle{Center: draft.Pt(5, 0), Radius: 2})

	n := d.Select(func(it *Item) bool { return it.Entity.Kind() == draft.CircleKind })
	assert.Equal(t, 2, n)
	for it := range d.Entities() {
		assert.Equal(t, it.Entity.Kind() == draft.CircleKind, it.Selected)
	}
}

func TestDocumentUndoRedo(t *testing.T) {
	d := NewDocument(DefaultConfig())
	a := draft.Circle{Center: draft.Pt(0, 0), Radius: 1}
	b := draft.Circle{Center: draft.Pt(3, 0), Radius: 1}
	c := draft.Circle{Center: draft.Pt(6, 0), Radius: 1}

	d.StartTransaction()
	d.RecordCreation(d.AddEntity(a))
	d.RecordCreation(d.AddEntity(b))
	d.EndTransaction()
	itc := d.AddEntity(c)
	d.RecordCreation(itc)

	require.True(t, d.CanUndo())
	require.NoError(t, d.Undo())
	assert.Equal(t, []draft.Entity{a, b}, entities(d))
	require.NoError(t, d.Undo())
	assert.Equal(t, 0, d.Len())
	assert.ErrorIs(t, d.Undo(), ErrNothingToUndo)

	require.True(t, d.CanRedo())
	require.NoError(t, d.Redo())
	assert.Equal(t, []draft.Entity{a, b}, entities(d))
	require.NoError(t, d.Redo())
	assert.Equal(t, []draft.Entity{a, b, c}, entities(d))
	assert.ErrorIs(t, d.Redo(), ErrNothingToRedo)
}

func TestDocumentUndoDeletion(t *testing.T) {
	d := NewDocument(DefaultConfig())
	a := draft.Circle{Center: draft.Pt(0, 0), Radius: 1}
	it := d.AddEntity(a)

	d.StartTransaction()
	d.RemoveEntity(it)
	d.RecordDeletion(it)
	d.EndTransaction()
	assert.Equal(t, 0, d.Len())

	require.NoError(t, d.Undo())
	assert.Equal(t, []draft.Entity{a}, entities(d))
	require.NoError(t, d.Redo())
	assert.Equal(t, 0, d.Len())
}

func TestDocumentTransactions(t *testing.T) {
	d := NewDocument(DefaultConfig())

	// Empty transactions leave no trace.
	d.StartTransaction()
	d.EndTransaction()
	assert.False(t, d.CanUndo())

	// Nested transactions form one step.
	d.StartTransaction()
	d.RecordCreation(d.AddEntity(draft.Circle{Center: draft.Pt(0, 0), Radius: 1}))
	d.StartTransaction()
	d.RecordCreation(d.AddEntity(draft.Circle{Center: draft.Pt(1, 0), Radius: 1}))
	d.EndTransaction()
	assert.ErrorIs(t, d.Undo(), ErrOpenTransaction)
	assert.ErrorIs(t, d.Redo(), ErrOpenTransaction)
	d.EndTransaction()

	require.NoError(t, d.Undo())
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.CanUndo())

	// Unbalanced ends are ignored.
	d.EndTransaction()
	assert.False(t, d.CanUndo())
}

func TestDocumentNewTransactionClearsRedo(t *testing.T) {
	d := NewDocument(DefaultConfig())
	d.RecordCreation(d.AddEntity(draft.Circle{Center: draft.Pt(0, 0), Radius: 1}))
	require.NoError(t, d.Undo())
	require.True(t, d.CanRedo())

	d.RecordCreation(d.AddEntity(draft.Circle{Center: draft.Pt(1, 0), Radius: 1}))
	assert.False(t, d.CanRedo())
	assert.True(t, slices.ContainsFunc(slices.Collect(d.Entities()), func(it *Item) bool {
		return it.Entity == draft.Circle{Center: draft.Pt(1, 0), Radius: 1}
	}))
}
