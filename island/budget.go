package island

import "github.com/katalvlaran/islandpart/model"

// chainBound returns the maximum number of records genericFallback (C3)
// can write for a single row incident on n distinct trees: one self-edge
// if the row never leaves its first tree, otherwise two records (pair +
// flipped) per additional tree chained in.
func chainBound(n int32) int32 {
	if n <= 1 {
		return 1
	}
	return 2 * (n - 1)
}

// EdgeBudget computes the upper bound on tree-tree edge records the edge
// collector (C3) may emit for one (model, data) pair (spec §4.4): two per
// contact, two per equality constraint, one per joint-friction row, one
// per joint-limit row, and chainBound(tendon_num[t]) per tendon carrying
// friction-loss or a limit — a tendon's generic-fallback row can touch as
// many distinct trees as it has DoFs, so it is bounded the same way any
// other chained fallback is, not by a flat one-record-per-DoF count. It
// sizes the scratch buffers Build hands to the collector so a
// correctly-computed budget never overflows mid-collection, per spec
// §4.3's "budget estimator must keep this slack".
func EdgeBudget(m *model.Model, d *model.Data) int32 {
	budget := 2*d.NCon + 2*d.NE + d.NF + d.NL
	for t := int32(0); t < m.NTendon; t++ {
		if m.TendonFrictionLoss[t] {
			budget += chainBound(m.TendonNum[t])
		}
		if m.TendonLimited[t] {
			budget += chainBound(m.TendonNum[t])
		}
	}
	return budget
}
