package cli

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/codegraph/pkg/errors"
	gio "github.com/matzehuels/codegraph/pkg/io"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var formats = []string{formatText, formatJSON, formatYAML}

func validateFormat(f string) error {
	if !slices.Contains(formats, f) {
		return errors.New(errors.ErrCodeInvalidArgument, "unknown format %q (want one of %v)", f, formats)
	}
	return nil
}

// emit writes v in the selected format to --output or the CLI's output.
// text renders the human-readable form.
func (c *CLI) emit(v any, text func(w io.Writer)) error {
	w := c.out
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", c.output)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch c.format {
	case formatJSON:
		err = gio.WriteJSON(w, v)
	case formatYAML:
		err = gio.WriteYAML(w, v)
	default:
		text(w)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", c.format, err)
	}

	if c.output != "" {
		printSuccess(c.out, "Wrote %s", c.format)
		printFile(c.out, c.output)
	}
	return nil
}
