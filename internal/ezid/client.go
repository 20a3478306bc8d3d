// Package ezid is a thin client for the EZID registration API. The
// engine is agnostic to it: the client consumes one encoded metadata
// record per call and returns the assigned (or prior) identifier and a
// per-record error message, never aborting the run itself.
package ezid

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"metabatch/internal/anvl"
	"metabatch/internal/record"
)

// DefaultBaseURL is the production EZID endpoint.
const DefaultBaseURL = "https://ezid.cdlib.org"

// Credentials selects how requests authenticate: a raw session cookie
// or username/password basic auth.
type Credentials struct {
	Username string
	Password string
	Session  string // raw "sessionid=..." cookie value
}

// ParseCredentials parses the credential argument forms: "sessionid=...",
// "username:password", or a bare username (password supplied later).
func ParseCredentials(s string) Credentials {
	if strings.HasPrefix(s, "sessionid=") {
		return Credentials{Session: s}
	}

	username, password, _ := strings.Cut(s, ":")

	return Credentials{Username: username, Password: password}
}

// NeedsPassword reports whether a password prompt is required before
// any request can authenticate.
func (c Credentials) NeedsPassword() bool {
	return c.Session == "" && c.Password == ""
}

// Client talks to the EZID registration API.
type Client struct {
	BaseURL     string
	Credentials Credentials
	HTTPClient  *http.Client
}

// New creates a client for the given endpoint. An empty baseURL
// selects the production endpoint.
func New(baseURL string, creds Credentials) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{BaseURL: baseURL, Credentials: creds, HTTPClient: http.DefaultClient}
}

// Mint requests a new identifier under shoulder.
func (c *Client) Mint(ctx context.Context, shoulder string, rec record.Record) (string, string) {
	return c.do(ctx, http.MethodPost, "/shoulder/"+escapePath(shoulder), "", rec)
}

// Create registers rec under an exact identifier. The prior identifier
// is returned alongside any error message.
func (c *Client) Create(ctx context.Context, id string, rec record.Record) (string, string) {
	return c.do(ctx, http.MethodPut, "/id/"+escapePath(id), id, rec)
}

// Update modifies the metadata of an existing identifier.
func (c *Client) Update(ctx context.Context, id string, rec record.Record) (string, string) {
	return c.do(ctx, http.MethodPost, "/id/"+escapePath(id), id, rec)
}

// do performs one registration call and returns (identifier, error
// message). Transport failures and server error bodies both surface as
// the error message, normalized to an "error: " prefix.
func (c *Client) do(ctx context.Context, method, path, prior string, rec record.Record) (string, string) {
	body := anvl.Encode(rec)

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, strings.NewReader(body))
	if err != nil {
		return prior, "error: " + err.Error()
	}

	req.Header.Set("Content-Type", "text/plain; charset=UTF-8")

	if c.Credentials.Session != "" {
		req.Header.Set("Cookie", c.Credentials.Session)
	} else {
		req.SetBasicAuth(c.Credentials.Username, c.Credentials.Password)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return prior, "error: " + err.Error()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return prior, "error: " + err.Error()
	}

	text := strings.TrimSpace(string(data))

	if after, ok := strings.CutPrefix(text, "success:"); ok {
		fields := strings.Fields(after)
		if len(fields) == 0 {
			return prior, "error: malformed success response"
		}

		return fields[0], ""
	}

	if !strings.HasPrefix(text, "error:") {
		text = "error: " + text
	}

	return prior, text
}

// escapePath percent-escapes a path suffix while keeping ":" and "/"
// intact, since identifiers embed both.
func escapePath(s string) string {
	e := url.PathEscape(s)
	e = strings.ReplaceAll(e, "%2F", "/")
	e = strings.ReplaceAll(e, "%3A", ":")

	return e
}
