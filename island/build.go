package island

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/islandpart/arena"
	"github.com/katalvlaran/islandpart/model"
)

// Build implements C5: discover the constraint islands for one
// (model, data) pair and publish the per-DoF and per-constraint indexing
// tables, allocated from a.
//
// ctx is used only to carry an OpenTelemetry span (spec §5: the routine
// never blocks and has no cancellation model); it is never checked for
// cancellation. On a recoverable arena exhaustion, Build returns a zero
// Result and ErrArenaExhausted after restoring a to its entry watermark
// (C6); callers that configured WithWarnFunc also observe the warning.
// Tier-2 invariant violations (spec §7) panic with *InternalError and are
// not representable as a returned error.
func Build(ctx context.Context, a *arena.Arena, m *model.Model, d *model.Data, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	ctx, span := cfg.tracer.Start(ctx, "island.Build", trace.WithAttributes(
		attribute.Int64("island.nefc", int64(d.NEFC)),
		attribute.Int64("island.nv", int64(m.NV)),
		attribute.Int64("island.ntree", int64(m.NTree)),
	))
	defer span.End()
	_ = ctx // no further use: no cancellation model, no child calls need it

	if d.NEFC == 0 {
		span.SetAttributes(attribute.Int64("island.nisland", 0))
		return &Result{}, nil
	}

	mark := a.Mark()

	nedgeMax := EdgeBudget(m, d)
	edges, err := a.AllocInt32(2 * nedgeMax)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}
	treenedge, err := a.AllocInt32(m.NTree)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}
	rowadr, err := a.AllocInt32(m.NTree)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}
	treeIsland, err := a.AllocInt32Fill(m.NTree, -1)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}

	coll := &edgeCollector{m: m, d: d, edges: edges, treenedge: treenedge}
	nedge := coll.collect()

	colind, err := a.AllocInt32(nedge)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}
	stack, err := a.AllocInt32(nedge)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}

	// Counts -> row addresses via prefix sum, then zero the counts so the
	// reinsertion pass below can reuse them as per-row write cursors.
	var sum int32
	for t := int32(0); t < m.NTree; t++ {
		rowadr[t] = sum
		sum += treenedge[t]
		treenedge[t] = 0
	}
	for i := int32(0); i < nedge; i++ {
		src := edges[2*i]
		dst := edges[2*i+1]
		pos := rowadr[src] + treenedge[src]
		colind[pos] = dst
		treenedge[src]++
	}

	nisland := Flood(treenedge, rowadr, colind, treeIsland, stack)
	span.SetAttributes(attribute.Int64("island.nisland", int64(nisland)))

	dofIsland, err := a.AllocInt32(m.NV)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}
	dofIslandNext, err := a.AllocInt32Fill(m.NV, -1)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}
	efcIsland, err := a.AllocInt32(d.NEFC)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}
	efcIslandNext, err := a.AllocInt32Fill(d.NEFC, -1)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}
	islandDofAdr, err := a.AllocInt32(nisland)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}
	islandEFCAdr, err := a.AllocInt32(nisland)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}
	islandLast, err := a.AllocInt32Fill(nisland, -1)
	if err != nil {
		return rollback(a, mark, cfg, span)
	}

	var discovered int32
	for i := int32(0); i < m.NV; i++ {
		k := treeIsland[m.DofTreeID[i]]
		dofIsland[i] = k
		if k == -1 {
			dofIslandNext[i] = -1
			continue
		}
		if islandLast[k] == -1 {
			islandDofAdr[k] = i
			discovered++
		} else {
			dofIslandNext[islandLast[k]] = i
		}
		islandLast[k] = i
	}
	if discovered != nisland {
		fatal(errIslandCountMismatch, "dof sweep found %d, flood fill found %d", discovered, nisland)
	}
	for k := int32(0); k < nisland; k++ {
		dofIslandNext[islandLast[k]] = -1
	}

	for k := range islandLast {
		islandLast[k] = -1
	}
	for i := int32(0); i < d.NEFC; i++ {
		t1, _ := treeNext(d.Jacobian, m.DofTreeID, model.StaticTree, i, 0)
		if t1 < 0 {
			fatal(errRowHasNoTree, "row %d", i)
		}
		k := treeIsland[t1]
		efcIsland[i] = k
		if islandLast[k] == -1 {
			islandEFCAdr[k] = i
		} else {
			efcIslandNext[islandLast[k]] = i
		}
		islandLast[k] = i
	}
	for k := int32(0); k < nisland; k++ {
		efcIslandNext[islandLast[k]] = -1
	}

	return &Result{
		NIsland:       nisland,
		DofIsland:     dofIsland,
		DofIslandNext: dofIslandNext,
		EFCIsland:     efcIsland,
		EFCIslandNext: efcIslandNext,
		IslandDofAdr:  islandDofAdr,
		IslandEFCAdr:  islandEFCAdr,
	}, nil
}
