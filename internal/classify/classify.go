// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify flags author-affiliation strings that point to a
// commercial organization and keeps only records with at least one such
// author.
package classify

import (
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// DefaultKeywords is the commercial keyword set. Matching is a
// case-insensitive substring test, so "inc" also matches "Incorporated"
// (and, less helpfully, "Princeton").
var DefaultKeywords = []string{"pharma", "biotech", "company", "inc", "corporation"}

// Classifier applies the affiliation heuristics to raw records.
type Classifier struct {
	keywords    []string
	independent bool
}

// New returns a Classifier for cfg. An empty keyword list selects
// DefaultKeywords.
func New(cfg types.ClassifierConfig) *Classifier {
	kw := cfg.Keywords
	if len(kw) == 0 {
		kw = DefaultKeywords
	}
	lowered := make([]string, 0, len(kw))
	for _, k := range kw {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			lowered = append(lowered, k)
		}
	}
	return &Classifier{keywords: lowered, independent: cfg.IndependentEmailCheck}
}

// IsCompanyAffiliation reports whether author contains a commercial keyword.
func (c *Classifier) IsCompanyAffiliation(author string) bool {
	lower := strings.ToLower(author)
	for _, k := range c.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// HasEmail reports whether author contains an email address marker.
func HasEmail(author string) bool {
	return strings.Contains(author, "@")
}

// Classify derives the company and non-academic author lists for rec and
// reports whether the record is retained. A record without an AuthorList
// has zero authors and is never retained.
//
// By default an author flagged as a company affiliation is not also tested
// for an email address; IndependentEmailCheck lifts that restriction.
func (c *Classifier) Classify(rec types.RawRecord) (types.ClassifiedRecord, bool) {
	var company, nonAcademic []string
	for _, author := range rec.Authors {
		isCompany := c.IsCompanyAffiliation(author)
		if isCompany {
			company = append(company, author)
		}
		if (c.independent || !isCompany) && HasEmail(author) {
			nonAcademic = append(nonAcademic, author)
		}
	}
	if len(company) == 0 {
		return types.ClassifiedRecord{}, false
	}
	return types.ClassifiedRecord{
		RawRecord:           rec,
		NonAcademicAuthors:  nonAcademic,
		CompanyAffiliations: company,
	}, true
}
