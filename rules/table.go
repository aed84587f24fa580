package rules

import (
	"github.com/lixenwraith/kungfu-chess/core"
)

// Tag classifies a relative offset by its capture requirement
type Tag uint8

const (
	TagEither     Tag = iota // legal regardless of destination occupancy
	TagCapture               // legal only onto an opposite-color occupant
	TagNonCapture            // legal only onto an empty cell
)

func (t Tag) String() string {
	switch t {
	case TagCapture:
		return "capture"
	case TagNonCapture:
		return "non_capture"
	default:
		return ""
	}
}

// Offset is a relative displacement (rows, cols) from the source cell
type Offset struct {
	DR, DC int
}

// Rule is one entry of a table in declaration order
type Rule struct {
	Offset
	Tag Tag
}

// Table maps offsets to tags for one (piece type, state) pair
// Built once at load time and shared read-only by every piece of that type
// A nil *Table has no legal moves
type Table struct {
	rows, cols int
	tags       map[Offset]Tag
	order      []Rule
}

// NewTable builds a table for a rows x cols grid; later duplicates override earlier ones
func NewTable(rows, cols int, rules []Rule) *Table {
	t := &Table{
		rows:  rows,
		cols:  cols,
		tags:  make(map[Offset]Tag, len(rules)),
		order: make([]Rule, 0, len(rules)),
	}
	for _, r := range rules {
		if _, dup := t.tags[r.Offset]; dup {
			for i := range t.order {
				if t.order[i].Offset == r.Offset {
					t.order[i].Tag = r.Tag
				}
			}
		} else {
			t.order = append(t.order, r)
		}
		t.tags[r.Offset] = r.Tag
	}
	return t
}

// Len returns the number of distinct offsets
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Rules returns a copy of the entries in declaration order
func (t *Table) Rules() []Rule {
	if t == nil {
		return nil
	}
	out := make([]Rule, len(t.order))
	copy(out, t.order)
	return out
}

// Lookup returns the tag for an offset
func (t *Table) Lookup(dr, dc int) (Tag, bool) {
	if t == nil {
		return 0, false
	}
	tag, ok := t.tags[Offset{DR: dr, DC: dc}]
	return tag, ok
}

// Mirrored returns the table reflected across the horizontal axis
// Piece files are written from White's side; Black advances toward higher rows
func (t *Table) Mirrored() *Table {
	if t == nil {
		return nil
	}
	rules := make([]Rule, len(t.order))
	for i, r := range t.order {
		rules[i] = Rule{Offset: Offset{DR: -r.DR, DC: r.DC}, Tag: r.Tag}
	}
	return NewTable(t.rows, t.cols, rules)
}

// IsLegal checks the offset and tag against the destination occupants
func (t *Table) IsLegal(dr, dc int, occupants []core.Color, mover core.Color) bool {
	tag, ok := t.Lookup(dr, dc)
	if !ok {
		return false
	}
	switch tag {
	case TagEither:
		return true
	case TagCapture:
		for _, c := range occupants {
			if c != mover {
				return true
			}
		}
		return false
	case TagNonCapture:
		return len(occupants) == 0
	}
	return false
}
