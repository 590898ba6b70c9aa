// Copyright (C) 2026 The GovGoose Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/dtos"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type listedObject struct {
	Name      string     `json:"name"`
	UpdatedAt *time.Time `json:"updated_at"`
	Metadata  struct {
		Size int64 `json:"size"`
	} `json:"metadata"`
}

// Client talks to the object storage REST api. All object paths are relative to the bucket.
type Client struct {
	baseURL string
	bucket  string
	http    *resty.Client
}

func NewClient(baseURL, key, bucket string) *Client {
	c := resty.New().
		SetTimeout(60*time.Second).
		SetTransport(otelhttp.NewTransport(nil)).
		SetAuthToken(key).
		SetHeader("apikey", key)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/storage/v1",
		bucket:  bucket,
		http:    c,
	}
}

func NewClientFromConfig(cfg config.Config) *Client {
	return NewClient(cfg.Storage.URL, cfg.Storage.Key, cfg.Storage.Bucket)
}

func escapePath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func (c *Client) objectURL(kind, path string) string {
	if kind == "" {
		return fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, escapePath(path))
	}
	return fmt.Sprintf("%s/object/%s/%s/%s", c.baseURL, kind, c.bucket, escapePath(path))
}

func (c *Client) List(ctx context.Context, prefix string) ([]dtos.StoredObject, error) {
	var listed []listedObject
	r, err := c.http.R().SetContext(ctx).
		SetBody(map[string]any{"prefix": strings.Trim(prefix, "/"), "limit": 1000, "offset": 0}).
		SetResult(&listed).
		Post(fmt.Sprintf("%s/object/list/%s", c.baseURL, c.bucket))
	if err != nil {
		return nil, err
	}
	if r.IsError() {
		return nil, fmt.Errorf("storage list: %s; body: %s", r.Status(), r.String())
	}

	objects := make([]dtos.StoredObject, 0, len(listed))
	for _, o := range listed {
		objects = append(objects, dtos.StoredObject{Name: o.Name, Size: o.Metadata.Size, UpdatedAt: o.UpdatedAt})
	}
	return objects, nil
}

func (c *Client) Upload(ctx context.Context, path, contentType string, body io.Reader) error {
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(body).
		Post(c.objectURL("", path))
	if err != nil {
		return err
	}
	if r.IsError() {
		return fmt.Errorf("storage upload: %s; body: %s", r.Status(), r.String())
	}
	return nil
}

func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	r, err := c.http.R().SetContext(ctx).Get(c.objectURL("", path))
	if err != nil {
		return nil, err
	}
	if r.IsError() {
		return nil, fmt.Errorf("storage download: %s; body: %s", r.Status(), r.String())
	}
	return r.Body(), nil
}

func (c *Client) Delete(ctx context.Context, path string) error {
	r, err := c.http.R().SetContext(ctx).Delete(c.objectURL("", path))
	if err != nil {
		return err
	}
	if r.IsError() {
		return fmt.Errorf("storage delete: %s; body: %s", r.Status(), r.String())
	}
	return nil
}

func (c *Client) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	var res struct {
		SignedURL string `json:"signedURL"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetBody(map[string]int{"expiresIn": int(ttl.Seconds())}).
		SetResult(&res).
		Post(c.objectURL("sign", path))
	if err != nil {
		return "", err
	}
	if r.IsError() {
		return "", fmt.Errorf("storage sign: %s; body: %s", r.Status(), r.String())
	}
	if res.SignedURL == "" {
		return "", fmt.Errorf("storage sign: empty signed url for %s", path)
	}
	return c.baseURL + "/" + strings.TrimLeft(res.SignedURL, "/"), nil
}
