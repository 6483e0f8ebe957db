package island

import "github.com/katalvlaran/islandpart/model"

// treeNext implements C2: scan row starting at cursor and return the next
// tree incident on it that differs from tree, plus the cursor position
// just past that nonzero. Returns nextTree -1 when the row has no further
// nonzero belonging to a different tree; the returned cursor is then the
// position at which scanning stopped (just past the last nonzero examined,
// or the input cursor if there was none) and callers must not resume from
// it.
//
// tree = model.StaticTree is a legal filter value: since no DoF's tree id
// is ever StaticTree, it causes treeNext to return the first tree incident
// on the row at all.
func treeNext(j model.Jacobian, dofTreeID []int32, tree, row, cursor int32) (nextTree, nextCursor int32) {
	for {
		col, next, ok := j.NonzeroAt(row, cursor)
		if !ok {
			return -1, cursor
		}
		cursor = next
		if t := dofTreeID[col]; t != tree {
			return t, cursor
		}
	}
}
