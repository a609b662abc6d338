// Package layering assigns signed integer depths to graph nodes relative to
// a set of root nodes.
//
// # Overview
//
// [Assign] runs a multi-source breadth-first traversal from the roots. Roots
// sit at depth 0 and every other reachable node receives the depth at which
// it was first discovered:
//
//   - [Forward]: depth grows by one per hop along outgoing edges (callees,
//     dependencies away from the root). Depths are >= 0.
//   - [Backward]: depth shrinks by one per hop along incoming edges (callers,
//     dependents toward the root). Depths are <= 0.
//   - [Both]: the forward and backward expansions advance in lock-step, one
//     hop per round, each over its own visited set.
//
// # Cycle Safety
//
// Each expansion walks a node at most once, so the traversal terminates in
// O(V+E) on any input, cycles and self-loops included. A node keeps the
// depth of whichever expansion reaches it first, so every node in the
// result carries exactly one depth.
//
// For single-direction layering the depth equals the hop distance from the
// nearest root. In [Both] mode a node claimed by one expansion is still
// walked through by the other, so [Both] reaches exactly the union of
// [Forward] and [Backward], and each node gets the signed hop distance of
// the closer side. Within one round the forward expansion runs first, so a
// node reachable at the same hop count in both directions gets the positive
// depth.
//
// # Partial Input
//
// Nodes unreachable from every root are left out of the [Result]; pass them
// as extra roots to include them. Roots that are not nodes of the graph are
// ignored, and edges with a missing endpoint are never followed. The only
// failure is a caller error: an empty root slice, an unknown direction or a
// negative depth limit, all reported as INVALID_ARGUMENT.
//
// # Usage
//
//	res, err := layering.Assign(g, []string{"main"}, layering.Forward)
//	if err != nil {
//	    return err
//	}
//	for _, id := range res.Discovery() {
//	    d, _ := res.Depth(id)
//	    fmt.Println(id, d)
//	}
//
// Feed the result to the ordering package to obtain per-depth positions.
package layering
