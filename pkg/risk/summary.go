package risk

import (
	"cmp"
	"maps"
	"slices"
)

// Summary counts assessments per category.
type Summary struct {
	Low      int `json:"low" yaml:"low"`
	Medium   int `json:"medium" yaml:"medium"`
	High     int `json:"high" yaml:"high"`
	Critical int `json:"critical" yaml:"critical"`
	Total    int `json:"total" yaml:"total"`
	// Partial counts assessments with at least one missing metric.
	Partial int `json:"partial" yaml:"partial"`
}

// Count returns the number of assessments in c.
func (s Summary) Count(c Category) int {
	switch c {
	case Low:
		return s.Low
	case Medium:
		return s.Medium
	case High:
		return s.High
	case Critical:
		return s.Critical
	}
	return 0
}

// Summarize tallies assessments by category.
func Summarize(as map[string]Assessment) Summary {
	var s Summary
	for _, a := range as {
		switch a.Category {
		case Low:
			s.Low++
		case Medium:
			s.Medium++
		case High:
			s.High++
		case Critical:
			s.Critical++
		}
		if a.Partial() {
			s.Partial++
		}
		s.Total++
	}
	return s
}

// Ranked is one entry of [Rank].
type Ranked struct {
	ID string `json:"id" yaml:"id"`
	Assessment `yaml:",inline"`
}

// Rank orders assessments by score, highest first, then by ID.
func Rank(as map[string]Assessment) []Ranked {
	out := make([]Ranked, 0, len(as))
	for _, id := range slices.Sorted(maps.Keys(as)) {
		out = append(out, Ranked{ID: id, Assessment: as[id]})
	}
	slices.SortStableFunc(out, func(a, b Ranked) int { return cmp.Compare(b.Score, a.Score) })
	return out
}
