package island

import "github.com/katalvlaran/islandpart/model"

// edgeCollector implements C3: it walks data's constraint rows and emits
// tree-tree edges into a caller-sized scratch buffer, using a fast path per
// constraint kind where one exists and the generic Jacobian-scan fallback
// (C2) otherwise.
type edgeCollector struct {
	m *model.Model
	d *model.Data

	edges     []int32 // scratch, length 2*nedgeMax; interleaved (src,dst)
	treenedge []int32 // length ntree; bumped once per record, credited to its src

	n int32 // records emitted so far

	havePrev         bool
	prevSrc, prevDst int32
}

// collect runs C3 end to end and returns the number of records written
// into c.edges. It panics with an *InternalError on any spec §7 tier-2
// violation (double-static edge, budget overflow, a row with no tree).
func (c *edgeCollector) collect() int32 {
	var prevType model.EFCType
	var prevID int32 = -1
	first := true

	for i := int32(0); i < c.d.NEFC; i++ {
		t := c.d.EFCType[i]
		id := c.d.EFCID[i]
		if !first && t == prevType && id == prevID {
			continue // consecutive rows of the same logical constraint
		}
		first = false
		prevType, prevID = t, id

		switch t {
		case model.EFCJointFriction:
			tr := c.m.DofTreeID[id]
			c.addEdge(tr, tr)

		case model.EFCJointLimit:
			tr := c.m.DofTreeID[c.m.JntDofAdr[id]]
			c.addEdge(tr, tr)

		case model.EFCContactFrictionless, model.EFCContactPyramidal, model.EFCContactElliptic:
			ct := c.d.Contacts[id]
			t1 := c.m.BodyTreeID[c.m.GeomBodyID[ct.Geom1]]
			t2 := c.m.BodyTreeID[c.m.GeomBodyID[ct.Geom2]]
			c.addEdge(t1, t2)

		case model.EFCEquality:
			switch c.m.EqType[id] {
			case model.EqConnect, model.EqWeld:
				t1 := c.m.BodyTreeID[c.m.EqObj1ID[id]]
				t2 := c.m.BodyTreeID[c.m.EqObj2ID[id]]
				c.addEdge(t1, t2)
			default:
				c.genericFallback(i)
			}

		default:
			c.genericFallback(i)
		}
	}
	return c.n
}

// genericFallback implements the spec §4.3 fallback: chain every tree
// incident on row into a spanning chain of edges, sufficient to connect
// them all without enumerating every pair.
func (c *edgeCollector) genericFallback(row int32) {
	t1, cursor := treeNext(c.d.Jacobian, c.m.DofTreeID, model.StaticTree, row, 0)
	if t1 < 0 {
		fatal(errRowHasNoTree, "row %d", row)
	}

	t2, cursor := treeNext(c.d.Jacobian, c.m.DofTreeID, t1, row, cursor)
	if t2 < 0 {
		c.addEdge(t1, t1)
		return
	}
	c.addEdge(t1, t2)

	prev := t2
	for {
		next, nextCursor := treeNext(c.d.Jacobian, c.m.DofTreeID, prev, row, cursor)
		if next < 0 {
			break
		}
		cursor = nextCursor
		c.addEdge(prev, next)
		prev = next
	}
}

// addEdge implements the §4.3 emission rules: static-tree folding,
// self-edge/non-self-edge suppression against the immediately previous
// record, and symmetric double emission for non-self edges.
func (c *edgeCollector) addEdge(a, b int32) {
	if a == model.StaticTree && b == model.StaticTree {
		fatal(errDoubleStaticEdge, "tree %d", a)
	}
	if a == model.StaticTree {
		a = b
	} else if b == model.StaticTree {
		b = a
	}

	if a == b {
		if c.havePrev && c.prevSrc == a && c.prevDst == a {
			return
		}
		c.emit(a, a)
		return
	}

	if c.havePrev && ((c.prevSrc == a && c.prevDst == b) || (c.prevSrc == b && c.prevDst == a)) {
		return
	}
	c.emit(a, b)
	c.emit(b, a)
}

func (c *edgeCollector) emit(src, dst int32) {
	if c.n >= int32(len(c.edges))/2 {
		fatal(errEdgeBudgetOverflow, "record %d exceeds budget %d", c.n+1, len(c.edges)/2)
	}
	c.edges[2*c.n] = src
	c.edges[2*c.n+1] = dst
	c.treenedge[src]++
	c.n++
	c.prevSrc, c.prevDst = src, dst
	c.havePrev = true
}
