package drawing

import (
	"fmt"

	"honnef.co/go/draft"
)

// Creation commits constructions to a container.
//
// The undo log and the view are optional. Without an undo log, entities are
// added to the container directly.
type Creation struct {
	container Container
	undo      UndoLog
	view      View
	tol       float64
}

// NewCreation returns a Creation that adds entities to container. tol is
// passed to the constructions, see [draft.DefaultTolerance].
func NewCreation(container Container, undo UndoLog, view View, tol float64) *Creation {
	return &Creation{
		container: container,
		undo:      undo,
		view:      view,
		tol:       tol,
	}
}

// commit adds entities to the container within one transaction and returns
// the first new item. Nothing is committed, and no transaction started, if
// entities is empty.
func (c *Creation) commit(op string, entities ...draft.Entity) *Item {
	if len(entities) == 0 {
		Logger().Debug("construction produced no entities", "op", op)
		return nil
	}
	if c.undo != nil {
		c.undo.StartTransaction()
	}
	var first *Item
	for _, e := range entities {
		it := c.container.AddEntity(e)
		if c.undo != nil {
			c.undo.RecordCreation(it)
		}
		if c.view != nil {
			c.view.EntityCreated(it)
		}
		if first == nil {
			first = it
		}
	}
	if c.undo != nil {
		c.undo.EndTransaction()
	}
	Logger().Debug("committed construction", "op", op, "entities", len(entities))
	return first
}

func segments(ls []draft.Segment) []draft.Entity {
	out := make([]draft.Entity, len(ls))
	for i, l := range ls {
		out[i] = l
	}
	return out
}

func one(l draft.Segment, ok bool) []draft.Entity {
	if !ok {
		return nil
	}
	return []draft.Entity{l}
}

// CreateParallelThrough commits the parallels of e computed by
// [draft.ParallelThrough].
func (c *Creation) CreateParallelThrough(coord draft.Point, number int, e draft.Entity) *Item {
	return c.commit("parallel through", draft.ParallelThrough(coord, number, e, c.tol)...)
}

// CreateParallel commits the parallels of e computed by [draft.Parallel].
func (c *Creation) CreateParallel(coord draft.Point, distance float64, number int, e draft.Entity) *Item {
	return c.commit("parallel", draft.Parallel(coord, distance, number, e, c.tol)...)
}

func (c *Creation) CreateParallelLine(coord draft.Point, distance float64, number int, l draft.Segment) *Item {
	return c.commit("parallel line", segments(draft.ParallelLine(coord, distance, number, l, c.tol))...)
}

func (c *Creation) CreateParallelArc(coord draft.Point, distance float64, number int, a draft.Arc) *Item {
	arcs := draft.ParallelArc(coord, distance, number, a, c.tol)
	out := make([]draft.Entity, len(arcs))
	for i, a := range arcs {
		out[i] = a
	}
	return c.commit("parallel arc", out...)
}

func (c *Creation) CreateParallelCircle(coord draft.Point, distance float64, number int, circle draft.Circle) *Item {
	circles := draft.ParallelCircle(coord, distance, number, circle, c.tol)
	out := make([]draft.Entity, len(circles))
	for i, circle := range circles {
		out[i] = circle
	}
	return c.commit("parallel circle", out...)
}

// CreateBisector commits the rays computed by [draft.Bisector].
func (c *Creation) CreateBisector(coord1, coord2 draft.Point, length float64, n int, l1, l2 draft.Segment) *Item {
	return c.commit("bisector", segments(draft.Bisector(coord1, coord2, length, n, l1, l2, c.tol))...)
}

func (c *Creation) CreateTangent1(coord, point draft.Point, conic draft.Conic) *Item {
	return c.commit("tangent", one(draft.Tangent1(coord, point, conic, c.tol))...)
}

func (c *Creation) CreateTangent2(coord draft.Point, c1, c2 draft.Conic) *Item {
	return c.commit("common tangent", one(draft.Tangent2(coord, c1, c2, c.tol))...)
}

func (c *Creation) CreateLineOrthTan(coord draft.Point, normal draft.Segment, conic draft.Conic) *Item {
	return c.commit("orthogonal tangent", one(draft.LineOrthTan(coord, normal, conic, c.tol))...)
}

func (c *Creation) CreateLineRelAngle(coord draft.Point, e draft.Entity, angle, length float64) *Item {
	return c.commit("relative angle", one(draft.LineRelAngle(coord, e, angle, length))...)
}

// CreatePolygon commits the edges of the polygon computed by
// [draft.Polygon]. It returns the first edge.
func (c *Creation) CreatePolygon(center, corner draft.Point, number int) *Item {
	return c.commit("polygon", segments(draft.Polygon(center, corner, number))...)
}

// CreatePolygon2 commits the edges of the polygon computed by
// [draft.Polygon2]. It returns the first edge.
func (c *Creation) CreatePolygon2(corner1, corner2 draft.Point, number int) *Item {
	return c.commit("polygon", segments(draft.Polygon2(corner1, corner2, number))...)
}

// CreateRectangle commits the four edges of the axis-aligned rectangle with
// opposite corners p1 and p2.
func (c *Creation) CreateRectangle(p1, p2 draft.Point) *Item {
	if !p1.IsValid() || !p2.IsValid() {
		return c.commit("rectangle")
	}
	p21 := draft.Pt(p2.X, p1.Y)
	p12 := draft.Pt(p1.X, p2.Y)
	return c.commit("rectangle",
		draft.Segment{P0: p1, P1: p12},
		draft.Segment{P0: p12, P1: p2},
		draft.Segment{P0: p2, P1: p21},
		draft.Segment{P0: p21, P1: p1},
	)
}

// CreateBlock copies the selected entities into a new block, moved so that
// reference becomes the block's origin. If the container is also a
// [BlockList], the block is added to it first; when that fails, nothing else
// changes. The copied items are then deselected. If remove is true, they are
// also removed from the container, within one transaction.
func (c *Creation) CreateBlock(name string, reference draft.Point, remove bool) (*Block, error) {
	block := &Block{Name: name, Base: reference}
	selected := c.container.Selection()
	off := draft.Point{}.Sub(reference)
	for _, it := range selected {
		block.Entities = append(block.Entities, draft.MoveEntity(it.Entity, off))
	}
	if bl, ok := c.container.(BlockList); ok {
		if err := bl.AddBlock(block); err != nil {
			return nil, fmt.Errorf("create block: %w", err)
		}
	}
	for _, it := range selected {
		c.container.Deselect(it)
	}

	if remove && len(selected) > 0 {
		if c.undo != nil {
			c.undo.StartTransaction()
		}
		for _, it := range selected {
			c.container.RemoveEntity(it)
			if c.undo != nil {
				c.undo.RecordDeletion(it)
			}
		}
		if c.undo != nil {
			c.undo.EndTransaction()
		}
	}
	Logger().Debug("created block", "name", name, "entities", len(block.Entities), "removed", remove)
	return block, nil
}
