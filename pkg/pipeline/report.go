package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	json "github.com/goccy/go-json"

	"github.com/matzehuels/codegraph/pkg/critical"
	"github.com/matzehuels/codegraph/pkg/graph"
	gio "github.com/matzehuels/codegraph/pkg/io"
	"github.com/matzehuels/codegraph/pkg/ordering"
	"github.com/matzehuels/codegraph/pkg/risk"
)

// Report is the outcome of one analysis run.
type Report struct {
	// ID identifies this run. It is the only field that differs between
	// two runs over the same graph with the same options.
	ID string `json:"id" yaml:"id"`

	// Source is the file the graph was loaded from, if any.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// GraphHash is the SHA-256 of the graph's canonical JSON document.
	GraphHash string `json:"graph_hash" yaml:"graph_hash"`

	Stats Stats `json:"stats" yaml:"stats"`

	Roots     []string               `json:"roots" yaml:"roots"`
	Layout    []ordering.LayeredNode `json:"layout" yaml:"layout"`
	Levels    map[int]int            `json:"levels" yaml:"levels"`
	Crossings int                    `json:"crossings" yaml:"crossings"`

	Risk        []risk.Ranked `json:"risk" yaml:"risk"`
	RiskSummary risk.Summary  `json:"risk_summary" yaml:"risk_summary"`

	Critical *CriticalReport `json:"critical,omitempty" yaml:"critical,omitempty"`
	Cycles   *CycleReport    `json:"cycles,omitempty" yaml:"cycles,omitempty"`
}

// Stats describes the analyzed graph.
type Stats struct {
	Nodes         int `json:"nodes" yaml:"nodes"`
	Edges         int `json:"edges" yaml:"edges"`
	DanglingEdges int `json:"dangling_edges" yaml:"dangling_edges"`
	Reached       int `json:"reached" yaml:"reached"`
	Unreached     int `json:"unreached" yaml:"unreached"`

	// Durations holds the wall time of each stage. It is left out of
	// encoded reports so that they stay byte-identical across runs.
	Durations map[string]time.Duration `json:"-" yaml:"-"`
}

// CriticalReport is the encoded form of a critical.Result.
type CriticalReport struct {
	Flagged  []string        `json:"flagged" yaml:"flagged"`
	Nodes    []string        `json:"nodes" yaml:"nodes"`
	Edges    []graph.EdgeKey `json:"edges" yaml:"edges"`
	Blockers []string        `json:"blockers" yaml:"blockers"`
	Gated    []string        `json:"gated" yaml:"gated"`
}

func newCriticalReport(r *critical.Result) *CriticalReport {
	return &CriticalReport{
		Flagged:  r.Flagged(),
		Nodes:    r.Nodes(),
		Edges:    r.Edges(),
		Blockers: r.Blockers(),
		Gated:    r.Gated(),
	}
}

// CycleReport lists cyclic clusters and the edges that close them.
type CycleReport struct {
	Components [][]string      `json:"components" yaml:"components"`
	BackEdges  []graph.EdgeKey `json:"back_edges" yaml:"back_edges"`
}

// GraphHash returns the SHA-256 of g's canonical JSON document as a
// 64-character hex string. Attribute maps are encoded with sorted keys, so
// equal graphs hash equally.
func GraphHash(g *graph.Graph) (string, error) {
	data, err := json.Marshal(gio.FromGraph(g))
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func danglingEdges(g *graph.Graph) int {
	n := 0
	for _, e := range g.Edges() {
		if !g.HasNode(e.Source) || !g.HasNode(e.Target) {
			n++
		}
	}
	return n
}
