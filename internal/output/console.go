// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// lineRecord is one console line, keyed by column name. Absent optional
// fields are omitted.
type lineRecord struct {
	PubmedID            string   `json:"PubmedID"`
	Title               *string  `json:"Title,omitempty"`
	PubDate             *string  `json:"PubDate,omitempty"`
	NonAcademicAuthors  string   `json:"Non-academic Author(s)"`
	CompanyAffiliations string   `json:"Company Affiliation(s)"`
	Email               *string  `json:"Corresponding Author Email,omitempty"`
	Authors             []string `json:"Authors,omitempty"`
	Journal             *string  `json:"Journal,omitempty"`
}

// FormatLines writes one JSON object per record.
func FormatLines(w io.Writer, records []types.ClassifiedRecord) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, rec := range records {
		line := lineRecord{
			PubmedID:            rec.PubmedID,
			Title:               rec.Title,
			PubDate:             rec.PubDate,
			NonAcademicAuthors:  rec.NonAcademicAuthorsText(),
			CompanyAffiliations: rec.CompanyAffiliationsText(),
			Email:               rec.CorrespondingAuthorEmail,
			Authors:             rec.Authors,
			Journal:             rec.Journal,
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("encoding record %s: %w", rec.PubmedID, err)
		}
	}
	return nil
}

// FormatJSON writes records as an indented JSON array.
func FormatJSON(w io.Writer, records []types.ClassifiedRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

const maxCellWidth = 40

// FormatTable writes records as a human-readable table.
func FormatTable(w io.Writer, records []types.ClassifiedRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No matching papers.")
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)

	header := make(table.Row, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	tw.AppendHeader(header)

	for _, rec := range records {
		cells := Row(rec)
		row := make(table.Row, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		tw.AppendRow(row)
	}

	configs := make([]table.ColumnConfig, len(Columns))
	for i := range Columns {
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			WidthMax:    maxCellWidth,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.SetColumnConfigs(configs)
	tw.Render()

	fmt.Fprintf(w, "\n%d papers\n", len(records))
}
