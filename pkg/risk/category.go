package risk

import (
	"fmt"
	"strings"

	"github.com/matzehuels/codegraph/pkg/errors"
)

// Category is an ordinal risk tier.
type Category int

const (
	Low Category = iota
	Medium
	High
	Critical
)

// Lower bounds of Medium, High and Critical.
const (
	MediumThreshold   = 0.25
	HighThreshold     = 0.50
	CriticalThreshold = 0.75
)

var categoryNames = [...]string{"low", "medium", "high", "critical"}

// Categories lists every category from lowest to highest.
func Categories() []Category { return []Category{Low, Medium, High, Critical} }

// CategoryFor buckets a composite score.
func CategoryFor(score float64) Category {
	switch {
	case score < MediumThreshold:
		return Low
	case score < HighThreshold:
		return Medium
	case score < CriticalThreshold:
		return High
	default:
		return Critical
	}
}

func (c Category) String() string {
	if c < Low || c > Critical {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory converts a category name, ignoring case.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Category(i), nil
		}
	}
	return 0, errors.InvalidArgument("unknown risk category %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if c < Low || c > Critical {
		return nil, errors.InvalidArgument("unknown risk category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
