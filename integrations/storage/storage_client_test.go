package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Equal(t, "key", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/storage/v1/object/list/documents":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "users/u1", body["prefix"])
			io.WriteString(w, `[{"name":"sign-code.pdf","metadata":{"size":42}}]`)
		case r.URL.Path == "/storage/v1/object/documents/users/u1/sign-code.pdf" && r.Method == http.MethodPost:
			assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
			b, _ := io.ReadAll(r.Body)
			assert.Equal(t, "%PDF-1.4", string(b))
			io.WriteString(w, `{"Key":"documents/users/u1/sign-code.pdf"}`)
		case r.URL.Path == "/storage/v1/object/documents/users/u1/sign-code.pdf" && r.Method == http.MethodGet:
			io.WriteString(w, "%PDF-1.4")
		case r.URL.Path == "/storage/v1/object/documents/users/u1/sign-code.pdf" && r.Method == http.MethodDelete:
			io.WriteString(w, `{"message":"Successfully deleted"}`)
		case r.URL.Path == "/storage/v1/object/sign/documents/users/u1/sign-code.pdf":
			var body map[string]int
			json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, 3600, body["expiresIn"])
			io.WriteString(w, `{"signedURL":"/object/sign/documents/users/u1/sign-code.pdf?token=abc"}`)
		case strings.HasPrefix(r.URL.Path, "/storage/v1/object/sign/"):
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"error":"not found"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "documents")
	ctx := context.Background()

	objects, err := c.List(ctx, "/users/u1/")
	require.Nil(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, int64(42), objects[0].Size)

	require.Nil(t, c.Upload(ctx, "users/u1/sign-code.pdf", "application/pdf", strings.NewReader("%PDF-1.4")))

	b, err := c.Download(ctx, "users/u1/sign-code.pdf")
	require.Nil(t, err)
	assert.Equal(t, "%PDF-1.4", string(b))

	assert.Nil(t, c.Delete(ctx, "users/u1/sign-code.pdf"))
	assert.NotNil(t, c.Delete(ctx, "users/u1/missing.pdf"))

	signed, err := c.SignedURL(ctx, "users/u1/sign-code.pdf", time.Hour)
	require.Nil(t, err)
	assert.Equal(t, srv.URL+"/storage/v1/object/sign/documents/users/u1/sign-code.pdf?token=abc", signed)

	_, err = c.SignedURL(ctx, "users/u1/missing.pdf", time.Hour)
	assert.NotNil(t, err)
}
