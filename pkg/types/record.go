// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers-list pipeline:
// the raw record extracted from a PubMed summary, the classified record that
// carries derived affiliation fields, and the stage configuration.
package types

import "strings"

// ListSeparator joins and splits author lists in both the AuthorList item
// and the tabular output columns.
const ListSeparator = ", "

// RawRecord holds the metadata extracted from one esummary DocSum. Optional
// fields are nil when the corresponding item was absent from the response;
// a present item with empty text is a non-nil pointer to "".
type RawRecord struct {
	// PubmedID is the identifier the record was fetched with. Always set.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the Title item.
	Title *string `json:"title,omitempty" yaml:"title,omitempty"`

	// Journal is the Source item.
	Journal *string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// PubDate is the PubDate item, verbatim (e.g. "2024 Mar 5").
	PubDate *string `json:"pub_date,omitempty" yaml:"pub_date,omitempty"`

	// Authors lists author-affiliation strings in source order. Nil when the
	// AuthorList item was absent.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// CorrespondingAuthorEmail is the CorrespondingAuthor item.
	CorrespondingAuthorEmail *string `json:"corresponding_author_email,omitempty" yaml:"corresponding_author_email,omitempty"`
}

// HasAuthors reports whether the AuthorList item was present.
func (r RawRecord) HasAuthors() bool {
	return r.Authors != nil
}

// AuthorsText returns the authors joined with ListSeparator.
func (r RawRecord) AuthorsText() string {
	return strings.Join(r.Authors, ListSeparator)
}

// ClassifiedRecord is a RawRecord enriched with the authors flagged by the
// affiliation heuristics. Only records with at least one company affiliation
// are ever constructed by the classifier.
type ClassifiedRecord struct {
	RawRecord `yaml:",inline"`

	// NonAcademicAuthors lists authors whose entry contains an email address.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors,omitempty"`

	// CompanyAffiliations lists authors whose entry matched a commercial keyword.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations,omitempty"`
}

// NonAcademicAuthorsText returns NonAcademicAuthors joined for output.
func (c ClassifiedRecord) NonAcademicAuthorsText() string {
	return strings.Join(c.NonAcademicAuthors, ListSeparator)
}

// CompanyAffiliationsText returns CompanyAffiliations joined for output.
func (c ClassifiedRecord) CompanyAffiliationsText() string {
	return strings.Join(c.CompanyAffiliations, ListSeparator)
}

// FetchFailure records one identifier whose detail request failed while the
// fetcher was configured to continue past errors.
type FetchFailure struct {
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`
	Err      error  `json:"-" yaml:"-"`
}

// FetchOutput holds the records a detail fetch produced, in identifier order,
// and any per-identifier failures that were skipped.
type FetchOutput struct {
	Records  []RawRecord
	Failures []FetchFailure
}

// Str returns a pointer to s. Convenience for building optional fields.
func Str(s string) *string {
	return &s
}

// Value dereferences an optional field, returning "" when it is absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
