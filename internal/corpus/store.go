// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/research-clusters/pkg/types"
)

// DefaultStorePath is used when StoreConfig.Path is empty.
const DefaultStorePath = "corpus/index/corpus.db"

// Store manages the corpus SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the corpus database at cfg.Path, creating the
// parent directory and the schema if they do not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultStorePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			abstract TEXT NOT NULL DEFAULT '',
			authors TEXT,
			venue TEXT,
			date TEXT,
			citation_count INTEGER,
			terms TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS citations (
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			weight REAL NOT NULL DEFAULT 1,
			PRIMARY KEY (source, target)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_target ON citations(target)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one ingest run.
type IngestSummary struct {
	Added   int
	Updated int
	Edges   int
}

// Total returns the number of records processed.
func (s IngestSummary) Total() int {
	return s.Added + s.Updated
}

// Ingest reads the corpus file at path and upserts its records and edges.
// Records already in the store are updated in place and keep their
// original position in Records. Re-ingesting an edge replaces its weight.
func (s *Store) Ingest(ctx context.Context, path string, w io.Writer) (IngestSummary, error) {
	f, err := ReadFile(path)
	if err != nil {
		return IngestSummary{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var summary IngestSummary
	for _, r := range f.Records {
		var exists int
		if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM papers WHERE id = ?`, r.ID).Scan(&exists); err != nil {
			return summary, fmt.Errorf("checking paper %s: %w", r.ID, err)
		}
		if err := upsertPaper(ctx, tx, r); err != nil {
			return summary, err
		}
		if exists > 0 {
			fmt.Fprintf(w, "updated %s\n", r.ID)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "added   %s\n", r.ID)
			summary.Added++
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO citations (source, target, weight) VALUES (?, ?, ?)
		 ON CONFLICT(source, target) DO UPDATE SET weight=excluded.weight`)
	if err != nil {
		return summary, fmt.Errorf("preparing citation insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range f.Edges {
		if e.Source == "" || e.Target == "" {
			fmt.Fprintf(w, "warning: skipping edge with empty endpoint %q -> %q\n", e.Source, e.Target)
			continue
		}
		if _, err := stmt.ExecContext(ctx, e.Source, e.Target, e.EffectiveWeight()); err != nil {
			return summary, fmt.Errorf("inserting citation %s -> %s: %w", e.Source, e.Target, err)
		}
		summary.Edges++
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing ingest: %w", err)
	}

	fmt.Fprintf(w, "\nadded: %d, updated: %d, citations: %d\n", summary.Added, summary.Updated, summary.Edges)
	return summary, nil
}

func upsertPaper(ctx context.Context, tx *sql.Tx, r types.Record) error {
	authorsJSON, _ := json.Marshal(r.Authors)
	termsJSON, _ := json.Marshal(r.Terms)
	dateStr := ""
	if !r.Date.IsZero() {
		dateStr = r.Date.Format(time.RFC3339)
	}
	var citations sql.NullInt64
	if r.CitationCount != nil {
		citations = sql.NullInt64{Int64: int64(*r.CitationCount), Valid: true}
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO papers (id, title, abstract, authors, venue, date, citation_count, terms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, abstract=excluded.abstract, authors=excluded.authors,
			venue=excluded.venue, date=excluded.date,
			citation_count=excluded.citation_count, terms=excluded.terms`,
		r.ID, r.Title, r.Abstract, string(authorsJSON), r.Venue, dateStr, citations, string(termsJSON),
	)
	if err != nil {
		return fmt.Errorf("upserting paper %s: %w", r.ID, err)
	}
	return nil
}

// Records returns every stored paper in first-ingest order.
func (s *Store) Records(ctx context.Context) ([]types.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, abstract, authors, venue, date, citation_count, terms
		 FROM papers ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var (
			r                    types.Record
			authors, venue, date sql.NullString
			terms                sql.NullString
			citations            sql.NullInt64
		)
		if err := rows.Scan(&r.ID, &r.Title, &r.Abstract, &authors, &venue, &date, &citations, &terms); err != nil {
			return nil, fmt.Errorf("scanning paper: %w", err)
		}
		r.Venue = venue.String
		if authors.Valid {
			if err := json.Unmarshal([]byte(authors.String), &r.Authors); err != nil {
				return nil, fmt.Errorf("decoding authors of paper %s: %w", r.ID, err)
			}
		}
		if terms.Valid {
			if err := json.Unmarshal([]byte(terms.String), &r.Terms); err != nil {
				return nil, fmt.Errorf("decoding terms of paper %s: %w", r.ID, err)
			}
		}
		if date.String != "" {
			if t, err := time.Parse(time.RFC3339, date.String); err == nil {
				r.Date = t
			}
		}
		if citations.Valid {
			n := int(citations.Int64)
			r.CitationCount = &n
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Graph returns the stored citation graph. Every stored paper is a node.
func (s *Store) Graph(ctx context.Context) (types.Graph, error) {
	var g types.Graph

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM papers ORDER BY rowid`)
	if err != nil {
		return g, fmt.Errorf("querying paper ids: %w", err)
	}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return g, fmt.Errorf("scanning paper id: %w", err)
		}
		g.Nodes = append(g.Nodes, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return g, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT source, target, weight FROM citations ORDER BY rowid`)
	if err != nil {
		return g, fmt.Errorf("querying citations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e types.Edge
		if err := rows.Scan(&e.Source, &e.Target, &e.Weight); err != nil {
			return g, fmt.Errorf("scanning citation: %w", err)
		}
		g.Edges = append(g.Edges, e)
	}
	return g, rows.Err()
}
