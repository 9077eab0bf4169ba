// Package drawing commits geometry constructed by package draft to a
// drawing.
//
// The drawing itself is reached through three narrow interfaces: a
// [Container] that holds entities, an [UndoLog] that groups changes into
// transactions, and an optional [View] that is told about new entities.
// [Document] is an in-memory implementation of the first two.
//
// [Creation] wraps the constructions of package draft. Every Create method
// computes its result with the pure function of the same name and commits all
// resulting entities within a single transaction, so that one undo step
// removes them again.
package drawing

import (
	"iter"

	"honnef.co/go/draft"

	"github.com/google/uuid"
)

// Pen describes how an entity is drawn.
type Pen struct {
	Color    string  `yaml:"color"`
	Width    float64 `yaml:"width"`
	LineType string  `yaml:"line_type"`
}

// Item is an entity that has been committed to a container, together with
// its attributes. Containers own the Selected field; use [Container.Deselect]
// and [Document.Select] to change it.
type Item struct {
	ID       uuid.UUID
	Entity   draft.Entity
	Layer    string
	Pen      Pen
	Selected bool
}

// Container stores the entities of a drawing.
type Container interface {
	// AddEntity stores e with the container's active attributes and returns
	// the new item.
	AddEntity(e draft.Entity) *Item
	// RemoveEntity removes an item. Removing an item that isn't stored is a
	// no-op.
	RemoveEntity(it *Item)
	// Entities iterates over all items in insertion order.
	Entities() iter.Seq[*Item]
	// Selection returns the selected items in insertion order.
	Selection() []*Item
	// Deselect clears the selection state of an item.
	Deselect(it *Item)
}

// BlockList stores named blocks. A [Container] that also implements
// BlockList receives the blocks made by [Creation.CreateBlock].
type BlockList interface {
	// AddBlock stores b. It fails if a block of the same name exists.
	AddBlock(b *Block) error
}

// UndoLog records changes to a container. All records between
// StartTransaction and EndTransaction form one undoable step. A transaction
// without records is dropped.
type UndoLog interface {
	StartTransaction()
	EndTransaction()
	RecordCreation(it *Item)
	RecordDeletion(it *Item)
}

// View is notified of committed entities, typically to draw them.
type View interface {
	EntityCreated(it *Item)
}

// Block is a named group of entities. The entities are stored relative to
// Base, the point of the drawing they were taken from.
type Block struct {
	Name     string
	Base     draft.Point
	Entities []draft.Entity
}
