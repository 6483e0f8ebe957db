package island

// unvisitedIsland marks a non-isolated vertex not yet reached by Flood. It
// is distinct from -1 (isolated, spec's published sentinel) and from any
// valid component id (>=0), so Flood needs no separate visited array.
const unvisitedIsland int32 = -2

// Flood partitions an n-vertex graph given by symmetric sparse adjacency
// (rownnz, rowadr, colind) into connected components (spec §4.1, C1).
//
// island must have length n; on return island[v] is the component id of v,
// or -1 if rownnz[v]==0 (v is isolated). Flood returns the number of
// components discovered. stack is scratch of length >= the sum of rownnz
// over all vertices; its contents are undefined on return. Duplicate
// column indices and self-loops in colind are tolerated without affecting
// the result.
//
// Complexity: O(n + nnz).
func Flood(rownnz, rowadr, colind []int32, island []int32, stack []int32) int32 {
	n := int32(len(rownnz))
	for v := int32(0); v < n; v++ {
		if rownnz[v] == 0 {
			island[v] = -1
		} else {
			island[v] = unvisitedIsland
		}
	}

	var k int32
	for v := int32(0); v < n; v++ {
		if island[v] != unvisitedIsland {
			continue
		}

		sp := 0
		stack[sp] = v
		sp++
		for sp > 0 {
			sp--
			u := stack[sp]
			if island[u] != unvisitedIsland {
				continue // already labeled: a duplicate push, discard
			}
			island[u] = k

			start := rowadr[u]
			end := start + rownnz[u]
			pushed := int(end - start)
			copy(stack[sp:sp+pushed], colind[start:end])
			sp += pushed
		}
		k++
	}
	return k
}
