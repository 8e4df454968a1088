// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders classified records as tabular files or console
// output. Every format uses the same fixed column order; absent fields render
// as empty cells.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/pipeline"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Columns is the fixed column order for tabular output.
var Columns = []string{
	"PubmedID",
	"Title",
	"PubDate",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
	"Authors",
	"Journal",
}

// Row returns the cells for rec in Columns order.
func Row(rec types.ClassifiedRecord) []string {
	return []string{
		rec.PubmedID,
		types.Value(rec.Title),
		types.Value(rec.PubDate),
		rec.NonAcademicAuthorsText(),
		rec.CompanyAffiliationsText(),
		types.Value(rec.CorrespondingAuthorEmail),
		rec.AuthorsText(),
		types.Value(rec.Journal),
	}
}

// FromRow rebuilds a record from cells in Columns order. Empty cells become
// absent fields.
func FromRow(cells []string) (types.ClassifiedRecord, error) {
	if len(cells) != len(Columns) {
		return types.ClassifiedRecord{}, fmt.Errorf("row has %d cells, want %d", len(cells), len(Columns))
	}
	if cells[0] == "" {
		return types.ClassifiedRecord{}, fmt.Errorf("row has empty PubmedID")
	}
	return types.ClassifiedRecord{
		RawRecord: types.RawRecord{
			PubmedID:                 cells[0],
			Title:                    optional(cells[1]),
			PubDate:                  optional(cells[2]),
			CorrespondingAuthorEmail: optional(cells[5]),
			Authors:                  splitList(cells[6]),
			Journal:                  optional(cells[7]),
		},
		NonAcademicAuthors:  splitList(cells[3]),
		CompanyAffiliations: splitList(cells[4]),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return types.Str(s)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, types.ListSeparator)
}

// FormatFor infers the output format from a file extension. Unknown
// extensions fall back to CSV.
func FormatFor(path string) types.OutputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return types.FormatXLSX
	case ".yaml", ".yml":
		return types.FormatYAML
	case ".json":
		return types.FormatJSON
	case ".db", ".sqlite", ".sqlite3":
		return types.FormatSQLite
	default:
		return types.FormatCSV
	}
}

// Write routes out to cfg.File, or to console when no file is set.
func Write(ctx context.Context, out pipeline.Output, cfg types.OutputConfig, console io.Writer) error {
	if cfg.File == "" {
		return writeConsole(out, cfg.Format, console)
	}

	format := cfg.Format
	if format == "" {
		format = FormatFor(cfg.File)
	}

	switch format {
	case types.FormatXLSX:
		return WriteXLSX(cfg.File, out.Records)
	case types.FormatSQLite:
		return WriteSQLite(ctx, cfg.File, out)
	case types.FormatCSV, types.FormatJSON, types.FormatYAML, types.FormatLines, types.FormatTable:
		f, err := os.Create(cfg.File)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		if err := writeStream(out, format, f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeConsole(out pipeline.Output, format types.OutputFormat, w io.Writer) error {
	if format == "" {
		format = types.FormatLines
	}
	switch format {
	case types.FormatXLSX, types.FormatSQLite:
		return fmt.Errorf("format %s requires an output file", format)
	}
	return writeStream(out, format, w)
}

func writeStream(out pipeline.Output, format types.OutputFormat, w io.Writer) error {
	switch format {
	case types.FormatCSV:
		return WriteCSV(w, out.Records)
	case types.FormatJSON:
		return FormatJSON(w, out.Records)
	case types.FormatYAML:
		return WriteResultFile(w, out)
	case types.FormatLines:
		return FormatLines(w, out.Records)
	case types.FormatTable:
		FormatTable(w, out.Records)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
