// Package ordering packs layered nodes into ordinal positions.
//
// [Pack] takes the depth assignment produced by the layering package and
// gives every node an order within its depth bucket. The result is purely
// ordinal: a caller maps (depth, order, count at depth) onto whatever
// coordinate system its renderer uses. No widths, spacing constants or
// pixel sizes live here.
//
// # Ordering Within a Level
//
// Each level starts in BFS discovery order, which keeps a node next to its
// siblings and near the node that discovered it. A caller comparator
// ([WithComparator], [ByID], [ByAttribute]) is then applied with a stable
// sort, so nodes it considers equal keep their discovery order.
//
// [WithBarycenter] optionally refines the result with the Sugiyama
// barycenter heuristic: alternating top-down and bottom-up sweeps move each
// node toward the mean position of its neighbors in the adjacent level. The
// ordering with the fewest [Crossings] seen across all sweeps is kept, so
// refinement never makes a layout worse.
//
// # Invariant
//
// For every depth holding k nodes, the orders are exactly 0..k-1 with no
// gaps or duplicates. Nothing in this package can break that: comparators
// and sweeps only permute a level, they never move nodes between levels.
package ordering
