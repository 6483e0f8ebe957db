package model

// Jacobian abstracts the two on-the-wire representations of the stacked
// constraint Jacobian (spec §3: "selected by a model flag"). island's tree
// scanner (C2) is written once against this interface; the dense/sparse
// branch happens exactly once, when the caller picks which implementation
// to hand to island.Build, not per row or per nonzero (design note in
// SPEC_FULL.md §4.2.FULL).
type Jacobian interface {
	// NonzeroAt scans row for the first nonzero entry at or after cursor
	// and returns its column index, the cursor position just past it, and
	// ok=true. ok=false means the row has no more nonzero entries at or
	// after cursor. cursor=0 starts a scan from the beginning of the row.
	NonzeroAt(row, cursor int32) (col, next int32, ok bool)
}

// SparseJacobian is the CSR-like representation: row i's nonzero columns
// are ColInd[RowAdr[i] : RowAdr[i]+RowNNZ[i]], not necessarily sorted or
// deduplicated.
type SparseJacobian struct {
	RowNNZ []int32
	RowAdr []int32
	ColInd []int32
}

// NonzeroAt implements Jacobian. cursor is an absolute index into ColInd;
// values below the row's own start are clamped up to it, so a cursor of 0
// always begins at the row's first entry.
func (j SparseJacobian) NonzeroAt(row, cursor int32) (col, next int32, ok bool) {
	start := j.RowAdr[row]
	end := start + j.RowNNZ[row]
	i := cursor
	if i < start {
		i = start
	}
	if i >= end {
		return 0, 0, false
	}
	return j.ColInd[i], i + 1, true
}

// DenseJacobian is the row-major dense representation: row i's entry for
// column j lives at J[i*NV+j], with nonzero defined as J[...] != 0.
type DenseJacobian struct {
	NV int32
	J  []float64
}

// NonzeroAt implements Jacobian. cursor is the column index to resume
// scanning from.
func (j DenseJacobian) NonzeroAt(row, cursor int32) (col, next int32, ok bool) {
	base := row * j.NV
	for c := cursor; c < j.NV; c++ {
		if j.J[base+c] != 0 {
			return c, c + 1, true
		}
	}
	return 0, 0, false
}
