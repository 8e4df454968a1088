// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/get-papers-list/internal/pipeline"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// ResultFile is the YAML representation of a run: the query, summary
// statistics, and the retained records.
type ResultFile struct {
	Query   string                   `yaml:"query"`
	Summary ResultSummary            `yaml:"summary"`
	Records []types.ClassifiedRecord `yaml:"records"`
}

// ResultSummary stores run statistics and a timestamp.
type ResultSummary struct {
	Identifiers int       `yaml:"identifiers"`
	Fetched     int       `yaml:"fetched"`
	Retained    int       `yaml:"retained"`
	Failed      []string  `yaml:"failed,omitempty"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteResultFile encodes out as a ResultFile.
func WriteResultFile(w io.Writer, out pipeline.Output) error {
	rf := ResultFile{
		Query:   out.Query,
		Records: out.Records,
		Summary: ResultSummary{
			Identifiers: len(out.Identifiers),
			Fetched:     out.Fetched,
			Retained:    len(out.Records),
			Timestamp:   out.Timestamp,
		},
	}
	for _, f := range out.Failures {
		rf.Summary.Failed = append(rf.Summary.Failed, f.PubmedID)
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(&rf); err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return nil
}

// ReadResultFile decodes a file produced by WriteResultFile.
func ReadResultFile(r io.Reader) (*ResultFile, error) {
	var rf ResultFile
	if err := yaml.NewDecoder(r).Decode(&rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
