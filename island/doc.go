// Package island discovers constraint islands: the disjoint connected
// components of the tree-adjacency graph induced by a step's active
// constraints, together with the per-DoF and per-constraint intrusive
// indexing tables downstream solvers consume.
//
// The entry point is Build. It runs single-threaded against one
// (model.Model, model.Data, arena.Arena) triple and recomputes the
// partition from scratch every call — there is no incremental update and
// no internal concurrency, matching the host engine's own per-step
// contract for this subsystem.
package island
