package io

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/graph"
)

// Format identifies a graph file encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatDOT    Format = "dot"
	FormatSQLite Format = "sqlite"
)

var extFormats = map[string]Format{
	".json":   FormatJSON,
	".yaml":   FormatYAML,
	".yml":    FormatYAML,
	".dot":    FormatDOT,
	".gv":     FormatDOT,
	".db":     FormatSQLite,
	".sqlite": FormatSQLite,
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported graph file extension %q", ext)
}

// ReadFile loads the graph stored at path.
func ReadFile(ctx context.Context, path string) (*graph.Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if format == FormatSQLite {
		g, err := ReadSQLite(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var g *graph.Graph
	switch format {
	case FormatJSON:
		g, err = ReadJSON(bytes.NewReader(data))
	case FormatYAML:
		g, err = ReadYAML(bytes.NewReader(data))
	case FormatDOT:
		g, err = ReadDOT(ctx, data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
