// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/get-papers-list/internal/classify"
	"github.com/pdiddy/get-papers-list/internal/output"
	"github.com/pdiddy/get-papers-list/internal/pipeline"
	"github.com/pdiddy/get-papers-list/internal/pubmed"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// newPipeline wires the PubMed stages and the classifier around one shared
// HTTP client.
func newPipeline(cfg types.Config, logger *zap.Logger) *pipeline.Pipeline {
	client := pubmed.NewHTTPClient(cfg.PubMed.HTTPConfig)
	return pipeline.New(
		pubmed.NewResolver(client, cfg.PubMed, logger),
		pubmed.NewFetcher(client, cfg.PubMed, logger),
		classify.New(cfg.Classifier),
		logger,
	)
}

// execute runs the pipeline for query and routes the result. Empty stages
// are reported on stderr and are not errors.
func execute(ctx context.Context, p *pipeline.Pipeline, query string, outCfg types.OutputConfig, stdout, stderr io.Writer) error {
	out, err := p.Run(ctx, query)
	if err != nil {
		return err
	}

	if len(out.Identifiers) == 0 {
		fmt.Fprintln(stderr, "No papers found for the query.")
		return nil
	}
	for _, f := range out.Failures {
		fmt.Fprintf(stderr, "warning: skipped %s: %v\n", f.PubmedID, f.Err)
	}
	if out.Fetched == 0 {
		fmt.Fprintln(stderr, "No paper details found for the given PMIDs.")
		return nil
	}

	if outCfg.File != "" {
		fmt.Fprintf(stdout, "Saving results to %s...\n", outCfg.File)
	}
	if err := output.Write(ctx, out, outCfg, stdout); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	if outCfg.File != "" {
		fmt.Fprintf(stdout, "Results saved to %s\n", outCfg.File)
	}
	return nil
}
