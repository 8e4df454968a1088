// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/internal/classify"
	"github.com/pdiddy/get-papers-list/internal/pipeline"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

type stubResolver struct {
	ids []string
	err error
}

func (s stubResolver) Resolve(context.Context, string) ([]string, error) { return s.ids, s.err }

type stubFetcher struct {
	out types.FetchOutput
}

func (s stubFetcher) FetchDetails(context.Context, []string) (types.FetchOutput, error) {
	return s.out, nil
}

func stubPipeline(ids []string, recs ...types.RawRecord) *pipeline.Pipeline {
	return pipeline.New(
		stubResolver{ids: ids},
		stubFetcher{out: types.FetchOutput{Records: recs}},
		classify.New(types.ClassifierConfig{}),
		nil,
	)
}

func TestExecuteNoPapers(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), stubPipeline(nil), "q", types.OutputConfig{}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "No papers found for the query.\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestExecuteNoDetails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), stubPipeline([]string{"1"}), "q", types.OutputConfig{}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "No paper details found for the given PMIDs.\n", stderr.String())
}

func TestExecuteConsole(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := stubPipeline([]string{"1", "2"},
		types.RawRecord{PubmedID: "1", Authors: []string{"Acme Pharma"}},
		types.RawRecord{PubmedID: "2", Authors: []string{"State University"}},
	)
	err := execute(context.Background(), p, "q", types.OutputConfig{}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"PubmedID":"1"`)
	assert.NotContains(t, stdout.String(), `"PubmedID":"2"`)
	assert.Empty(t, stderr.String())
}

func TestExecuteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	var stdout, stderr bytes.Buffer
	p := stubPipeline([]string{"1"}, types.RawRecord{PubmedID: "1", Authors: []string{"Acme Pharma"}})

	err := execute(context.Background(), p, "q", types.OutputConfig{File: path}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Results saved to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1,,,,Acme Pharma,,Acme Pharma,")
}

func TestExecuteError(t *testing.T) {
	boom := errors.New("boom")
	p := pipeline.New(stubResolver{err: boom}, stubFetcher{}, classify.New(types.ClassifierConfig{}), nil)

	path := filepath.Join(t.TempDir(), "out.csv")
	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), p, "q", types.OutputConfig{File: path}, &stdout, &stderr)
	assert.ErrorIs(t, err, boom)

	// No partial output.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "get-papers-list.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`pubmed:
  email: file@example.org
  database: pubmed
output:
  file: from-file.csv
`), 0o644))

	flags := rootCmd.Flags()
	set := map[string]string{
		"keep-going":              "true",
		"independent-email-check": "true",
		"keywords":                "gmbh,ltd",
		"format":                  "table",
	}
	for name, value := range set {
		require.NoError(t, flags.Set(name, value))
	}
	require.NoError(t, rootCmd.PersistentFlags().Set("config", cfgPath))
	t.Cleanup(func() {
		for name := range set {
			f := flags.Lookup(name)
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				sv.Replace(nil)
			} else {
				f.Value.Set(f.DefValue)
			}
			f.Changed = false
		}
		rootCmd.PersistentFlags().Set("config", "")
		viper.SetConfigFile("")
	})
	t.Setenv("GET_PAPERS_LIST_PUBMED_TOOL", "envtool")

	initConfig()
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.PubMed.ContinueOnError)
	assert.True(t, cfg.Classifier.IndependentEmailCheck)
	assert.Equal(t, []string{"gmbh", "ltd"}, cfg.Classifier.Keywords)
	assert.Equal(t, types.FormatTable, cfg.Output.Format)
	assert.Equal(t, 30*time.Second, cfg.PubMed.Timeout)
	assert.Equal(t, "get-papers-list/"+version, cfg.PubMed.UserAgent)
	assert.Equal(t, "envtool", cfg.PubMed.Tool)
	assert.Equal(t, "pubmed", cfg.PubMed.Database)
	assert.Equal(t, "file@example.org", cfg.PubMed.Email)
	assert.Equal(t, "from-file.csv", cfg.Output.File)
	assert.Empty(t, cfg.PubMed.APIKey)
}
