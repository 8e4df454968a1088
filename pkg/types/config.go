// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for the remote E-utilities calls.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers-list/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// PubMedConfig holds settings for identifier resolution and detail fetching.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Database is the Entrez database name (default "pubmed").
	Database string `json:"database" yaml:"database" mapstructure:"database"`

	// APIKey is an optional NCBI API key sent as api_key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Email is an optional contact address sent as email.
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`

	// Tool is the tool name sent as tool (default "get-papers-list").
	Tool string `json:"tool,omitempty" yaml:"tool,omitempty" mapstructure:"tool"`

	// ContinueOnError records per-identifier fetch failures and keeps going
	// instead of aborting the batch on the first one.
	ContinueOnError bool `json:"continue_on_error" yaml:"continue_on_error" mapstructure:"continue_on_error"`
}

// ClassifierConfig holds settings for affiliation classification.
type ClassifierConfig struct {
	// Keywords overrides the commercial keyword set. Empty means the default set.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty" mapstructure:"keywords"`

	// IndependentEmailCheck tests every author for an email address, including
	// authors already flagged as company affiliations.
	IndependentEmailCheck bool `json:"independent_email_check" yaml:"independent_email_check" mapstructure:"independent_email_check"`
}

// OutputFormat selects how classified records are written.
type OutputFormat string

const (
	FormatCSV    OutputFormat = "csv"
	FormatXLSX   OutputFormat = "xlsx"
	FormatYAML   OutputFormat = "yaml"
	FormatJSON   OutputFormat = "json"
	FormatSQLite OutputFormat = "sqlite"
	FormatLines  OutputFormat = "lines"
	FormatTable  OutputFormat = "table"
)

// OutputConfig holds settings for result routing.
type OutputConfig struct {
	// File is the output path. Empty writes to the console.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`

	// Format forces an output format. Empty infers it from File's extension,
	// or uses lines for the console.
	Format OutputFormat `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"`
}

// Config groups all stage configurations.
type Config struct {
	PubMed     PubMedConfig     `json:"pubmed" yaml:"pubmed" mapstructure:"pubmed"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier" mapstructure:"classifier"`
	Output     OutputConfig     `json:"output" yaml:"output" mapstructure:"output"`
}
