package drawing

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"honnef.co/go/draft"

	"github.com/google/uuid"
)

var (
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrNothingToRedo   = errors.New("nothing to redo")
	ErrOpenTransaction = errors.New("transaction in progress")
	ErrDuplicateBlock  = errors.New("duplicate block name")
)

type record struct {
	item    *Item
	created bool
}

type transaction struct {
	id      uuid.UUID
	records []record
}

// Document is an in-memory drawing. It implements [Container], [UndoLog]
// and [BlockList].
//
// Transactions nest: records are collected until the outermost
// EndTransaction. Records made outside of any transaction form a
// transaction of their own.
type Document struct {
	mu sync.Mutex

	items  []*Item
	blocks map[string]*Block
	cfg    Config

	open  *transaction
	depth int
	undo  []*transaction
	redo  []*transaction
}

var (
	_ Container = (*Document)(nil)
	_ UndoLog   = (*Document)(nil)
	_ BlockList = (*Document)(nil)
)

// NewDocument returns an empty document that assigns the layer and pen of
// cfg to new entities. An invalid cfg, such as the zero Config, is replaced
// by [DefaultConfig].
func NewDocument(cfg Config) *Document {
	if err := cfg.Validate(); err != nil {
		Logger().Warn("using default config", "err", err)
		cfg = DefaultConfig()
	}
	return &Document{
		cfg:    cfg,
		blocks: make(map[string]*Block),
	}
}

// Creation returns a [Creation] that commits to d, using d's tolerance.
func (d *Document) Creation(view View) *Creation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return NewCreation(d, d, view, d.cfg.Tolerance)
}

func (d *Document) SetActiveLayer(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cfg.Layer = name
}

func (d *Document) SetActivePen(pen Pen) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cfg.Pen = pen
}

// AddEntity implements Container.
func (d *Document) AddEntity(e draft.Entity) *Item {
	d.mu.Lock()
	defer d.mu.Unlock()
	it := &Item{
		ID:     uuid.New(),
		Entity: e,
		Layer:  d.cfg.Layer,
		Pen:    d.cfg.Pen,
	}
	d.items = append(d.items, it)
	return it
}

// RemoveEntity implements Container.
func (d *Document) RemoveEntity(it *Item) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.remove(it)
}

func (d *Document) remove(it *Item) {
	if i := slices.Index(d.items, it); i >= 0 {
		d.items = slices.Delete(d.items, i, i+1)
	}
}

// Entities implements Container. It iterates over a snapshot, so the
// document may be modified during iteration.
func (d *Document) Entities() iter.Seq[*Item] {
	d.mu.Lock()
	items := slices.Clone(d.items)
	d.mu.Unlock()
	return slices.Values(items)
}

// Len returns the number of items.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

// Select sets the selection state of every item to the result of fn and
// returns the number of selected items.
func (d *Document) Select(fn func(*Item) bool) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	var n int
	for _, it := range d.items {
		it.Selected = fn(it)
		if it.Selected {
			n++
		}
	}
	return n
}

// Selection implements Container.
func (d *Document) Selection() []*Item {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []*Item
	for _, it := range d.items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}

// Deselect implements Container.
func (d *Document) Deselect(it *Item) {
	d.mu.Lock()
	defer d.mu.Unlock()
	it.Selected = false
}

// AddBlock implements BlockList.
func (d *Document) AddBlock(b *Block) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.blocks[b.Name]; ok {
		return fmt.Errorf("add block %q: %w", b.Name, ErrDuplicateBlock)
	}
	d.blocks[b.Name] = b
	return nil
}

// Block returns the block with the given name.
func (d *Document) Block(name string) (*Block, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.blocks[name]
	return b, ok
}

// StartTransaction implements UndoLog.
func (d *Document) StartTransaction() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.depth == 0 {
		d.open = &transaction{id: uuid.New()}
	}
	d.depth++
}

// EndTransaction implements UndoLog.
func (d *Document) EndTransaction() {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch d.depth {
	case 0:
		Logger().Warn("EndTransaction without StartTransaction")
		return
	case 1:
		d.depth = 0
		d.commit(d.open)
		d.open = nil
	default:
		d.depth--
	}
}

func (d *Document) commit(tx *transaction) {
	if len(tx.records) == 0 {
		return
	}
	d.undo = append(d.undo, tx)
	d.redo = d.redo[:0]
	Logger().Debug("committed transaction", "id", tx.id, "records", len(tx.records))
}

func (d *Document) record(r record) {
	if d.open != nil {
		d.open.records = append(d.open.records, r)
		return
	}
	d.commit(&transaction{id: uuid.New(), records: []record{r}})
}

// RecordCreation implements UndoLog.
func (d *Document) RecordCreation(it *Item) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record(record{item: it, created: true})
}

// RecordDeletion implements UndoLog.
func (d *Document) RecordDeletion(it *Item) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record(record{item: it, created: false})
}

// CanUndo reports whether there is a transaction to undo.
func (d *Document) CanUndo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.undo) > 0
}

// CanRedo reports whether there is a transaction to redo.
func (d *Document) CanRedo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.redo) > 0
}

// Undo reverts the most recent transaction.
func (d *Document) Undo() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.depth > 0 {
		return fmt.Errorf("undo: %w", ErrOpenTransaction)
	}
	if len(d.undo) == 0 {
		return fmt.Errorf("undo: %w", ErrNothingToUndo)
	}
	tx := d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]
	for i := len(tx.records) - 1; i >= 0; i-- {
		r := tx.records[i]
		if r.created {
			d.remove(r.item)
		} else {
			d.items = append(d.items, r.item)
		}
	}
	d.redo = append(d.redo, tx)
	Logger().Debug("undo", "id", tx.id, "records", len(tx.records))
	return nil
}

// Redo reapplies the most recently undone transaction.
func (d *Document) Redo() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.depth > 0 {
		return fmt.Errorf("redo: %w", ErrOpenTransaction)
	}
	if len(d.redo) == 0 {
		return fmt.Errorf("redo: %w", ErrNothingToRedo)
	}
	tx := d.redo[len(d.redo)-1]
	d.redo = d.redo[:len(d.redo)-1]
	for _, r := range tx.records {
		if r.created {
			d.items = append(d.items, r.item)
		} else {
			d.remove(r.item)
		}
	}
	d.undo = append(d.undo, tx)
	Logger().Debug("redo", "id", tx.id, "records", len(tx.records))
	return nil
}
