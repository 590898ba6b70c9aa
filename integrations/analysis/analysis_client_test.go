package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/govgoose/govgoose/common"
	"github.com/govgoose/govgoose/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *client {
	c := NewClient(srv.URL, srv.Client())
	c.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return c
}

func TestAnswerQuestions(t *testing.T) {
	t.Run("should post address zone and questions", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/answer-questions", r.URL.Path)
			var req dtos.AnswerQuestionsRequest
			require.Nil(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "1 Main St", req.Address)
			assert.Equal(t, "C-1, R-2", req.Zone)
			assert.Equal(t, []string{"q1"}, req.Questions)
			io.WriteString(w, `[{"question":"q1","short_answer":"yes","detailed_answer":"yes it is","citations":[]}]`)
		}))
		defer srv.Close()

		answers, err := newTestClient(srv).AnswerQuestions(context.Background(), dtos.AnswerQuestionsRequest{Address: "1 Main St", Zone: "C-1, R-2", Questions: []string{"q1"}})
		require.Nil(t, err)
		require.Len(t, answers, 1)
		assert.Equal(t, "yes", answers[0].ShortAnswer)
		assert.Empty(t, answers[0].Citations)
	})

	t.Run("should give up after three attempts", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestClient(srv).AnswerQuestions(context.Background(), dtos.AnswerQuestionsRequest{})
		var statusErr *common.HTTPStatusError
		assert.True(t, errors.As(err, &statusErr))
		assert.Equal(t, int32(3), calls.Load())
	})
}

func TestDocumentEndpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		switch r.URL.Path {
		case "/check-documents":
			assert.Equal(t, "1 Main St", body["address"])
			io.WriteString(w, `{"exists":true,"paths":["tx/austin/sign-code.pdf"]}`)
		case "/list-documents":
			assert.Equal(t, "tx/austin", body["path"])
			io.WriteString(w, `{"documents":[{"name":"sign-code.pdf","path":"tx/austin/sign-code.pdf"}]}`)
		case "/extract-text":
			assert.Equal(t, "https://files.example.com/a.pdf", body["url"])
			io.WriteString(w, `{"text":"Section 1"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	c := newTestClient(srv)

	exists, err := c.CheckDocuments(context.Background(), "1 Main St")
	require.Nil(t, err)
	assert.True(t, exists.Exists)
	assert.Equal(t, []string{"tx/austin/sign-code.pdf"}, exists.Paths)

	docs, err := c.ListDocuments(context.Background(), "tx/austin")
	require.Nil(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "sign-code.pdf", docs[0].Name)

	text, err := c.ExtractText(context.Background(), "https://files.example.com/a.pdf")
	require.Nil(t, err)
	assert.Equal(t, "Section 1", text)
}
