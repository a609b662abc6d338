package io

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/graph"
)

// ReadYAML decodes a YAML document from r. It does not close r.
func ReadYAML(r io.Reader) (*graph.Graph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
	}
	return doc.Graph()
}

// WriteYAML encodes v as YAML with two-space indentation.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	return nil
}
