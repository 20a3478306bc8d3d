package ezid

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metabatch/internal/record"
)

func TestParseCredentials(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Credentials
		prompt   bool
	}{
		{
			name:     "username and password",
			input:    "alice:s3cret",
			expected: Credentials{Username: "alice", Password: "s3cret"},
		},
		{
			name:     "bare username",
			input:    "alice",
			expected: Credentials{Username: "alice"},
			prompt:   true,
		},
		{
			name:     "session cookie",
			input:    "sessionid=abc123",
			expected: Credentials{Session: "sessionid=abc123"},
		},
		{
			name:     "password containing colon",
			input:    "alice:a:b",
			expected: Credentials{Username: "alice", Password: "a:b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := ParseCredentials(tt.input)
			assert.Equal(t, tt.expected, creds)
			assert.Equal(t, tt.prompt, creds.NeedsPassword())
		})
	}
}

func TestClientMint(t *testing.T) {
	var (
		gotMethod, gotPath, gotBody, gotContentType string
		gotUser, gotPass                            string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotUser, gotPass, _ = r.BasicAuth()

		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		io.WriteString(w, "success: ark:/99999/fk4test | more detail")
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{Username: "alice", Password: "pw"})

	id, errMsg := c.Mint(context.Background(), "ark:/99999/fk4", record.Record{"title": "T"})
	assert.Empty(t, errMsg)
	assert.Equal(t, "ark:/99999/fk4test", id)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/shoulder/ark:/99999/fk4", gotPath)
	assert.Equal(t, "text/plain; charset=UTF-8", gotContentType)
	assert.Equal(t, "title: T\n", gotBody)
	assert.Equal(t, "alice", gotUser)
	assert.Equal(t, "pw", gotPass)
}

func TestClientCreateAndUpdateMethods(t *testing.T) {
	var gotMethod, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		io.WriteString(w, "success: doi:10.5072/FK2X")
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{Username: "u", Password: "p"})

	id, errMsg := c.Create(context.Background(), "doi:10.5072/FK2X", record.Record{"title": "T"})
	assert.Empty(t, errMsg)
	assert.Equal(t, "doi:10.5072/FK2X", id)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/id/doi:10.5072/FK2X", gotPath)

	_, errMsg = c.Update(context.Background(), "doi:10.5072/FK2X", record.Record{"title": "U"})
	assert.Empty(t, errMsg)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func TestClientSessionCookie(t *testing.T) {
	var gotCookie string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		io.WriteString(w, "success: ark:/99999/fk4x")
	}))
	defer srv.Close()

	c := New(srv.URL, Credentials{Session: "sessionid=abc"})

	_, errMsg := c.Mint(context.Background(), "ark:/99999/fk4", record.Record{})
	assert.Empty(t, errMsg)
	assert.Equal(t, "sessionid=abc", gotCookie)
}

func TestClientErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "server error prefix kept",
			status:   http.StatusBadRequest,
			body:     "error: bad metadata",
			expected: "error: bad metadata",
		},
		{
			name:     "prefix added when missing",
			status:   http.StatusInternalServerError,
			body:     "something broke",
			expected: "error: something broke",
		},
		{
			name:     "malformed success",
			status:   http.StatusOK,
			body:     "success:",
			expected: "error: malformed success response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c := New(srv.URL, Credentials{Username: "u", Password: "p"})

			id, errMsg := c.Create(context.Background(), "doi:10.5072/FK2X", record.Record{})
			assert.Equal(t, "doi:10.5072/FK2X", id, "prior identifier survives an error")
			assert.Equal(t, tt.expected, errMsg)
		})
	}
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, Credentials{Username: "u", Password: "p"})

	id, errMsg := c.Mint(context.Background(), "ark:/99999/fk4", record.Record{})
	assert.Empty(t, id)
	assert.Contains(t, errMsg, "error: ")
}

func TestEscapePath(t *testing.T) {
	assert.Equal(t, "ark:/99999/fk4", escapePath("ark:/99999/fk4"))
	assert.Equal(t, "doi:10.5072/FK2%20X", escapePath("doi:10.5072/FK2 X"))
}

func TestDefaultBaseURL(t *testing.T) {
	c := New("", Credentials{})
	require.Equal(t, DefaultBaseURL, c.BaseURL)
}
