package cashbook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// RemoteStore persists entries to a remote tabular endpoint. The endpoint is
// a dumb sink: it serves the rows back on GET and records whatever fields a
// POST carries, balances included.
type RemoteStore struct {
	Endpoint string
	Client   *http.Client
}

// NewRemoteStore returns a store backed by the given endpoint URL.
func NewRemoteStore(endpoint string) *RemoteStore {
	return &RemoteStore{Endpoint: endpoint, Client: http.DefaultClient}
}

// rowPaths are the places a row array is looked for when the endpoint wraps
// its response in an envelope. Tabular backends are never clear about their
// envelope, so a few common ones are probed before giving up.
var rowPaths = []string{"$.data", "$.records", "$.rows"}

// FetchAll GETs the endpoint and decodes the JSON array of rows, either bare
// or wrapped in a common envelope.
func (s *RemoteStore) FetchAll(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build request for %q: %w", s.Endpoint, err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot http GET %q: %w", s.Endpoint, err)
	}
	defer resp.Body.Close()
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("cannot read response from %q: %w", s.Endpoint, err)
	}

	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse response from %q: %w", s.Endpoint, err)
	}

	rows, ok := jobj.([]any)
	if !ok {
		for _, path := range rowPaths {
			jval, err := jsonpath.Get(path, jobj)
			if err != nil {
				continue
			}
			if jrows, isList := jval.([]any); isList {
				rows, ok = jrows, true
				break
			}
		}
	}
	if !ok {
		return nil, fmt.Errorf("response from %q does not contain a row array", s.Endpoint)
	}
	return decodeLooseRows(rows)
}

// Append POSTs the entry fields, plus the precomputed balance, form-encoded.
// Any status but OK is a failure.
func (s *RemoteStore) Append(ctx context.Context, e AnnotatedEntry) error {
	form := url.Values{}
	form.Set("date", e.Date.String())
	form.Set("name", e.Name)
	form.Set("description", e.Description)
	form.Set("type", string(e.Kind))
	form.Set("amount", e.Amount.String())
	form.Set("balance", e.Balance.String())
	if e.ID != "" {
		form.Set("id", e.ID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("cannot build request for %q: %w", s.Endpoint, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http POST %q: %w", s.Endpoint, err)
	}
	defer resp.Body.Close()
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http POST %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return nil
}
