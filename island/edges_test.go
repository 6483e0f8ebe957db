package island

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islandpart/model"
)

func newCollector(budget int32, ntree int32, m *model.Model, d *model.Data) *edgeCollector {
	return &edgeCollector{
		m:         m,
		d:         d,
		edges:     make([]int32, 2*budget),
		treenedge: make([]int32, ntree),
	}
}

func TestEdgeCollector_JointFrictionSelfEdge(t *testing.T) {
	m := &model.Model{DofTreeID: []int32{0, 0, 1}}
	d := &model.Data{
		NEFC:    1,
		EFCType: []model.EFCType{model.EFCJointFriction},
		EFCID:   []int32{0},
	}
	c := newCollector(4, 2, m, d)
	n := c.collect()
	require.EqualValues(t, 1, n)
	require.Equal(t, []int32{0, 0}, c.edges[:2])
	require.EqualValues(t, 1, c.treenedge[0])
}

func TestEdgeCollector_ContactFastPath(t *testing.T) {
	m := &model.Model{
		BodyTreeID: []int32{5, 7},
		GeomBodyID: []int32{0, 1},
	}
	d := &model.Data{
		NEFC:     1,
		EFCType:  []model.EFCType{model.EFCContactFrictionless},
		EFCID:    []int32{0},
		Contacts: []model.Contact{{Geom1: 0, Geom2: 1}},
	}
	c := newCollector(4, 8, m, d)
	n := c.collect()
	require.EqualValues(t, 2, n) // (5,7) and (7,5)
	require.Equal(t, []int32{5, 7, 7, 5}, c.edges[:4])
}

func TestEdgeCollector_EqualityWeldFastPath(t *testing.T) {
	m := &model.Model{
		BodyTreeID: []int32{3, 9},
		EqType:     []model.EqType{model.EqWeld},
		EqObj1ID:   []int32{0},
		EqObj2ID:   []int32{1},
	}
	d := &model.Data{
		NEFC:    1,
		EFCType: []model.EFCType{model.EFCEquality},
		EFCID:   []int32{0},
	}
	c := newCollector(4, 10, m, d)
	n := c.collect()
	require.EqualValues(t, 2, n)
	require.Equal(t, []int32{3, 9, 9, 3}, c.edges[:4])
}

func TestEdgeCollector_StaticTreeFolding(t *testing.T) {
	m := &model.Model{
		BodyTreeID: []int32{model.StaticTree, 4},
		GeomBodyID: []int32{0, 1},
	}
	d := &model.Data{
		NEFC:     1,
		EFCType:  []model.EFCType{model.EFCContactPyramidal},
		EFCID:    []int32{0},
		Contacts: []model.Contact{{Geom1: 0, Geom2: 1}},
	}
	c := newCollector(4, 5, m, d)
	n := c.collect()
	// Self-edge at tree 4, emitted once (folded), not (-1,4)/(4,-1).
	require.EqualValues(t, 1, n)
	require.Equal(t, []int32{4, 4}, c.edges[:2])
}

func TestEdgeCollector_DoubleStaticEdgeFatal(t *testing.T) {
	m := &model.Model{
		BodyTreeID: []int32{model.StaticTree, model.StaticTree},
		GeomBodyID: []int32{0, 1},
	}
	d := &model.Data{
		NEFC:     1,
		EFCType:  []model.EFCType{model.EFCContactFrictionless},
		EFCID:    []int32{0},
		Contacts: []model.Contact{{Geom1: 0, Geom2: 1}},
	}
	c := newCollector(4, 1, m, d)
	require.Panics(t, func() { c.collect() })
}

func TestEdgeCollector_DedupConsecutiveRows(t *testing.T) {
	m := &model.Model{DofTreeID: []int32{0}}
	d := &model.Data{
		NEFC:    3,
		EFCType: []model.EFCType{model.EFCJointFriction, model.EFCJointFriction, model.EFCJointFriction},
		EFCID:   []int32{0, 0, 0}, // same (type,id): one logical constraint across 3 rows
	}
	c := newCollector(4, 1, m, d)
	n := c.collect()
	require.EqualValues(t, 1, n, "repeated rows of the same logical constraint must collapse to one edge event")
}

func TestEdgeCollector_SelfEdgeSuppressedAgainstImmediatePrevious(t *testing.T) {
	m := &model.Model{DofTreeID: []int32{0}}
	d := &model.Data{
		NEFC:    2,
		EFCType: []model.EFCType{model.EFCJointFriction, model.EFCJointLimit},
		EFCID:   []int32{0, 0},
	}
	m.JntDofAdr = []int32{0}
	c := newCollector(4, 1, m, d)
	n := c.collect()
	require.EqualValues(t, 1, n, "second self-edge at the same tree, immediately following the first, is suppressed")
}

func TestEdgeCollector_GenericFallbackChain(t *testing.T) {
	// A row touching 3 distinct trees via a dense Jacobian; no fast path
	// (EFCTendonFrictionLoss never has one), so the chain fallback runs:
	// t1=0 -> t2=1 (edge 0-1), then t3=2 (edge 1-2).
	m := &model.Model{DofTreeID: []int32{0, 1, 2}}
	d := &model.Data{
		NEFC:    1,
		EFCType: []model.EFCType{model.EFCTendonFrictionLoss},
		EFCID:   []int32{0},
		Jacobian: model.DenseJacobian{
			NV: 3,
			J:  []float64{1, 1, 1},
		},
	}
	c := newCollector(8, 3, m, d)
	n := c.collect()
	require.EqualValues(t, 4, n) // (0,1),(1,0),(1,2),(2,1)
	require.Equal(t, []int32{0, 1, 1, 0, 1, 2, 2, 1}, c.edges[:8])
}

func TestEdgeCollector_GenericFallbackSingleTreeSelfEdge(t *testing.T) {
	m := &model.Model{DofTreeID: []int32{0, 0}}
	d := &model.Data{
		NEFC:    1,
		EFCType: []model.EFCType{model.EFCTendonLimit},
		EFCID:   []int32{0},
		Jacobian: model.DenseJacobian{
			NV: 2,
			J:  []float64{1, 1},
		},
	}
	c := newCollector(4, 1, m, d)
	n := c.collect()
	require.EqualValues(t, 1, n)
	require.Equal(t, []int32{0, 0}, c.edges[:2])
}

func TestEdgeCollector_RowWithNoTreeIsFatal(t *testing.T) {
	m := &model.Model{DofTreeID: []int32{0}}
	d := &model.Data{
		NEFC:    1,
		EFCType: []model.EFCType{model.EFCTendonLimit},
		EFCID:   []int32{0},
		Jacobian: model.DenseJacobian{
			NV: 1,
			J:  []float64{0}, // fully zero row: no tree at all
		},
	}
	c := newCollector(4, 1, m, d)
	require.Panics(t, func() { c.collect() })
}

func TestEdgeCollector_OverflowIsFatal(t *testing.T) {
	m := &model.Model{DofTreeID: []int32{0, 1}}
	d := &model.Data{
		NEFC:    2,
		EFCType: []model.EFCType{model.EFCJointFriction, model.EFCJointFriction},
		EFCID:   []int32{0, 1},
	}
	m.DofTreeID = []int32{0, 1}
	// Budget of 1 record; two independent self-edges need 2.
	c := newCollector(1, 2, m, d)
	require.Panics(t, func() { c.collect() })
}
