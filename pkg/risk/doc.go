// Package risk combines per-node metrics into a bounded composite score and
// an ordinal category.
//
// Each metric of a [Policy] carries a caller-chosen cap. A raw value is
// normalized with [Normalize] to min(max(raw, 0)/cap, 1), so scores stay
// stable as the dataset grows: there is no implicit maximum discovered from
// the data. The composite score is the arithmetic mean of the normalized
// values, weighted when the policy supplies weights.
//
// [CategoryFor] buckets the score with fixed thresholds:
//
//	score < 0.25  low
//	score < 0.50  medium
//	score < 0.75  high
//	otherwise     critical
//
// A score that sits exactly on a threshold belongs to the higher bucket.
//
// # Missing Metrics
//
// A metric absent from a node's values counts as 0. The node is still
// classified, but its score is biased downward: two capped metrics score
// 1.0 (critical) while one capped metric and one missing metric score 0.5
// (high). Every [Assessment] lists the metrics it had to substitute in
// Missing so callers can surface the bias. Graph attributes holding strings
// are treated as missing.
package risk
