package layering

import (
	"fmt"
	"strings"

	"github.com/matzehuels/codegraph/pkg/errors"
)

// Direction selects which edges the traversal follows away from the roots.
type Direction int

const (
	// Forward follows outgoing edges; depths are positive.
	Forward Direction = iota
	// Backward follows incoming edges; depths are negative.
	Backward
	// Both follows outgoing and incoming edges from the same roots.
	Both
)

var directionNames = map[Direction]string{
	Forward:  "forward",
	Backward: "backward",
	Both:     "both",
}

// String returns "forward", "backward" or "both".
func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the defined directions.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

// ParseDirection converts a name into a Direction. Matching is
// case-insensitive and accepts the aliases "callees"/"out" for Forward and
// "callers"/"in" for Backward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "callees", "out":
		return Forward, nil
	case "backward", "callers", "in":
		return Backward, nil
	case "both":
		return Both, nil
	}
	return 0, errors.InvalidArgument("unknown direction %q (want forward, backward or both)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.InvalidArgument("unknown direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
