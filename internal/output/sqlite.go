// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/get-papers-list/internal/pipeline"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS papers (
		pubmed_id TEXT PRIMARY KEY,
		title TEXT,
		pub_date TEXT,
		non_academic_authors TEXT,
		company_affiliations TEXT,
		corresponding_author_email TEXT,
		authors TEXT,
		journal TEXT,
		query TEXT,
		retrieved_at TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_papers_query ON papers(query)`,
}

// WriteSQLite upserts the retained records into the papers table of the
// database at path, creating it if needed. Absent fields are stored as NULL.
func WriteSQLite(ctx context.Context, path string, out pipeline.Output) error {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (pubmed_id, title, pub_date, non_academic_authors, company_affiliations,
			corresponding_author_email, authors, journal, query, retrieved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(pubmed_id) DO UPDATE SET
			title=excluded.title, pub_date=excluded.pub_date,
			non_academic_authors=excluded.non_academic_authors,
			company_affiliations=excluded.company_affiliations,
			corresponding_author_email=excluded.corresponding_author_email,
			authors=excluded.authors, journal=excluded.journal,
			query=excluded.query, retrieved_at=excluded.retrieved_at`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	retrievedAt := out.Timestamp.UTC().Format("2006-01-02T15:04:05Z")
	for _, rec := range out.Records {
		var authors sql.NullString
		if rec.HasAuthors() {
			authors = sql.NullString{String: rec.AuthorsText(), Valid: true}
		}
		_, err := stmt.ExecContext(ctx,
			rec.PubmedID, rec.Title, rec.PubDate,
			rec.NonAcademicAuthorsText(), rec.CompanyAffiliationsText(),
			rec.CorrespondingAuthorEmail, authors, rec.Journal,
			out.Query, retrievedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting paper %s: %w", rec.PubmedID, err)
		}
	}

	return tx.Commit()
}
