// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

func testCfg() types.PubMedConfig {
	return types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
	}
}

const sampleESearchXML = `<?xml version="1.0" encoding="UTF-8" ?>
<!DOCTYPE eSearchResult PUBLIC "-//NLM//DTD esearch 20060628//EN" "https://eutils.ncbi.nlm.nih.gov/eutils/dtd/20060628/esearch.dtd">
<eSearchResult>
	<Count>3</Count>
	<RetMax>3</RetMax>
	<RetStart>0</RetStart>
	<IdList>
		<Id>39012345</Id>
		<Id>38811111</Id>
		<Id>37000002</Id>
	</IdList>
	<TranslationSet/>
	<QueryTranslation>cancer[All Fields]</QueryTranslation>
</eSearchResult>`

func xmlServer(statusCode int, body string, gotQuery *url.Values) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.Query()
		}
		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(statusCode)
		fmt.Fprint(w, body)
	}))
}

func useESearch(t *testing.T, ts *httptest.Server) {
	t.Helper()
	old := esearchURL
	esearchURL = ts.URL
	t.Cleanup(func() { esearchURL = old })
}

func TestResolve(t *testing.T) {
	var q url.Values
	ts := xmlServer(http.StatusOK, sampleESearchXML, &q)
	defer ts.Close()
	useESearch(t, ts)

	r := NewResolver(ts.Client(), testCfg(), nil)
	ids, err := r.Resolve(context.Background(), "cancer AND biotech")
	require.NoError(t, err)

	// Service order, not sorted.
	assert.Equal(t, []string{"39012345", "38811111", "37000002"}, ids)

	assert.Equal(t, "pubmed", q.Get("db"))
	assert.Equal(t, "cancer AND biotech", q.Get("term"))
	assert.Equal(t, "xml", q.Get("retmode"))
	assert.Equal(t, "100", q.Get("retmax"))
	assert.Empty(t, q.Get("api_key"))
}

func TestResolveSendsCredentials(t *testing.T) {
	var q url.Values
	ts := xmlServer(http.StatusOK, sampleESearchXML, &q)
	defer ts.Close()
	useESearch(t, ts)

	cfg := testCfg()
	cfg.APIKey = "k123"
	cfg.Email = "me@example.org"
	cfg.Tool = "get-papers-list"

	_, err := NewResolver(ts.Client(), cfg, nil).Resolve(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "k123", q.Get("api_key"))
	assert.Equal(t, "me@example.org", q.Get("email"))
	assert.Equal(t, "get-papers-list", q.Get("tool"))
}

func TestResolveNoMatches(t *testing.T) {
	body := `<eSearchResult><Count>0</Count><RetMax>0</RetMax><IdList/></eSearchResult>`
	ts := xmlServer(http.StatusOK, body, nil)
	defer ts.Close()
	useESearch(t, ts)

	ids, err := NewResolver(ts.Client(), testCfg(), nil).Resolve(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestResolveNonNumericCount(t *testing.T) {
	body := `<eSearchResult><Count>n/a</Count><IdList><Id>1</Id><Id>2</Id></IdList></eSearchResult>`
	ts := xmlServer(http.StatusOK, body, nil)
	defer ts.Close()
	useESearch(t, ts)

	ids, err := NewResolver(ts.Client(), testCfg(), nil).Resolve(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)
}

func TestParseSearchResultCount(t *testing.T) {
	ids, count, err := parseSearchResult([]byte(sampleESearchXML))
	require.NoError(t, err)
	assert.Len(t, ids, 3)
	assert.Equal(t, "3", count)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		transport  bool
		wantStatus int
	}{
		{"server error", http.StatusInternalServerError, "boom", true, http.StatusInternalServerError},
		{"bad request", http.StatusBadRequest, "", true, http.StatusBadRequest},
		{"malformed xml", http.StatusOK, "<eSearchResult><IdList><Id>1</Id>", false, 0},
		{"wrong document", http.StatusOK, "<html><body>maintenance</body></html>", false, 0},
		{"service error element", http.StatusOK, "<eSearchResult><ERROR>Empty term and query_key - nothing todo</ERROR></eSearchResult>", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := xmlServer(tt.status, tt.body, nil)
			defer ts.Close()
			useESearch(t, ts)

			ids, err := NewResolver(ts.Client(), testCfg(), nil).Resolve(context.Background(), "q")
			require.Error(t, err)
			assert.Nil(t, ids)

			var te *TransportError
			var pe *ParseError
			if tt.transport {
				require.True(t, errors.As(err, &te), "want TransportError, got %T", err)
				assert.Equal(t, tt.wantStatus, te.StatusCode)
				assert.Equal(t, "esearch", te.Op)
			} else {
				require.True(t, errors.As(err, &pe), "want ParseError, got %T", err)
				assert.Equal(t, "esearch", pe.Op)
			}
		})
	}
}

func TestResolveNetworkFailure(t *testing.T) {
	ts := xmlServer(http.StatusOK, sampleESearchXML, nil)
	useESearch(t, ts)
	ts.Close()

	_, err := NewResolver(http.DefaultClient, testCfg(), nil).Resolve(context.Background(), "q")
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Zero(t, te.StatusCode)
	assert.Contains(t, te.Error(), "esearch: request failed")
}
