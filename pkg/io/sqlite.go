package io

import (
	"context"
	"database/sql"
	"fmt"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/matzehuels/codegraph/pkg/errors"
	"github.com/matzehuels/codegraph/pkg/graph"
)

// ReadSQLite loads a graph from the nodes and edges tables of the SQLite
// database at path. The database is opened read-only. Rows are read in
// rowid order.
func ReadSQLite(ctx context.Context, path string) (*graph.Graph, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open database %s", path)
	}
	defer db.Close()

	g := graph.New()
	if err := readNodes(ctx, db, g); err != nil {
		return nil, err
	}
	if err := readEdges(ctx, db, g); err != nil {
		return nil, err
	}
	return g, nil
}

func readNodes(ctx context.Context, db *sql.DB, g *graph.Graph) error {
	rows, err := db.QueryContext(ctx, `SELECT id, attrs FROM nodes ORDER BY rowid`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "query nodes")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  string
			raw sql.NullString
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "scan node")
		}
		var attrs graph.Attributes
		if raw.Valid && raw.String != "" {
			if err := json.Unmarshal([]byte(raw.String), &attrs); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidFormat, err, "node %q: decode attrs", id)
			}
		}
		if err := g.AddNode(id, attrs); err != nil {
			return err
		}
	}
	return rows.Err()
}

func readEdges(ctx context.Context, db *sql.DB, g *graph.Graph) error {
	rows, err := db.QueryContext(ctx, `SELECT source, target, weight, kind FROM edges ORDER BY rowid`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "query edges")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			source, target string
			weight         sql.NullFloat64
			kind           sql.NullString
		)
		if err := rows.Scan(&source, &target, &weight, &kind); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "scan edge")
		}
		opts := []graph.EdgeOption{graph.WithKind(kind.String)}
		if weight.Valid {
			opts = append(opts, graph.WithWeight(weight.Float64))
		}
		g.AddEdge(source, target, opts...)
	}
	return rows.Err()
}
