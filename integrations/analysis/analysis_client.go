package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/govgoose/govgoose/common"
	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/dtos"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewClient(baseURL string, httpClient *http.Client) *client {
	if httpClient == nil {
		// answering a full question battery takes a while
		httpClient = common.NewHTTPClient(5 * time.Minute)
	}
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		retries:    common.DefaultRetries,
	}
}

func NewClientFromConfig(cfg config.Config) *client {
	return NewClient(cfg.AnalysisAPIURL, nil)
}

func (c *client) post(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := common.FetchWithRetry(ctx, c.httpClient, c.baseURL+path, common.FetchOptions{
		Method: http.MethodPost,
		Body:   b,
		Sleep:  c.sleep,
	}, c.retries)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch v := out.(type) {
	case *[]byte:
		*v = raw
		return nil
	default:
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("could not decode response of %s: %w", path, err)
		}
	}
	return nil
}

func (c *client) CheckDocuments(ctx context.Context, address string) (dtos.DocumentExistsResponse, error) {
	var res dtos.DocumentExistsResponse
	err := c.post(ctx, "/check-documents", map[string]string{"address": address}, &res)
	if res.Paths == nil {
		res.Paths = []string{}
	}
	return res, err
}

func (c *client) ListDocuments(ctx context.Context, path string) ([]dtos.RemoteDocument, error) {
	var raw []byte
	if err := c.post(ctx, "/list-documents", map[string]string{"path": path}, &raw); err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	docs := []dtos.RemoteDocument{}
	if len(raw) > 0 && raw[0] == '[' {
		err := json.Unmarshal(raw, &docs)
		return docs, err
	}

	var wrapped struct {
		Documents []dtos.RemoteDocument `json:"documents"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Documents != nil {
		docs = wrapped.Documents
	}
	return docs, nil
}

func (c *client) ExtractText(ctx context.Context, pdfURL string) (string, error) {
	var res struct {
		Text string `json:"text"`
	}
	if err := c.post(ctx, "/extract-text", map[string]string{"url": pdfURL}, &res); err != nil {
		return "", err
	}
	return res.Text, nil
}

func (c *client) AnswerQuestions(ctx context.Context, req dtos.AnswerQuestionsRequest) ([]dtos.Answer, error) {
	var raw []byte
	if err := c.post(ctx, "/answer-questions", req, &raw); err != nil {
		return nil, err
	}

	analysis, err := dtos.ParseAnalysis(raw)
	if errors.Is(err, dtos.ErrNoAnalysis) {
		return []dtos.Answer{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode answers: %w", err)
	}
	return analysis.Answers, nil
}
