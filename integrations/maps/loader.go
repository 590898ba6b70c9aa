package maps

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/govgoose/govgoose/common"
	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/dtos"
	"golang.org/x/sync/singleflight"
)

var ErrMissingAccessToken = errors.New("maps access token is not configured")

type LoaderConfig struct {
	AccessToken string
	StyleURL    string
	HTTPClient  *http.Client
}

// Loader validates the maps configuration once per process.
// Concurrent callers share a single in flight validation, a failed validation is retried by the next call.
type Loader struct {
	cfg LoaderConfig

	loaded atomic.Pointer[dtos.MapConfig]
	group  singleflight.Group
}

func NewLoader(cfg LoaderConfig) *Loader {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = common.NewHTTPClient(10 * time.Second)
	}
	return &Loader{cfg: cfg}
}

func NewLoaderFromConfig(cfg config.Config) *Loader {
	return NewLoader(LoaderConfig{
		AccessToken: cfg.Maps.AccessToken,
		StyleURL:    cfg.Maps.StyleURL,
	})
}

func (l *Loader) EnsureLoaded(ctx context.Context) (dtos.MapConfig, error) {
	if cfg := l.loaded.Load(); cfg != nil {
		return *cfg, nil
	}

	ch := l.group.DoChan("maps", l.load)
	select {
	case res := <-ch:
		if res.Err != nil {
			return dtos.MapConfig{}, res.Err
		}
		return res.Val.(dtos.MapConfig), nil
	case <-ctx.Done():
		return dtos.MapConfig{}, ctx.Err()
	}
}

func (l *Loader) load() (any, error) {
	if cfg := l.loaded.Load(); cfg != nil {
		return *cfg, nil
	}

	// detached from the first caller so its cancellation does not fail the other waiters
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := l.validate(ctx)
	if err != nil {
		slog.Warn("could not load maps configuration", "err", err)
		return nil, err
	}
	l.loaded.Store(&cfg)
	return cfg, nil
}

func (l *Loader) validate(ctx context.Context) (dtos.MapConfig, error) {
	if l.cfg.AccessToken == "" {
		return dtos.MapConfig{}, ErrMissingAccessToken
	}

	u, err := url.Parse(l.cfg.StyleURL)
	if err != nil {
		return dtos.MapConfig{}, fmt.Errorf("%w: %s", common.ErrInvalidURL, err)
	}
	q := u.Query()
	q.Set("access_token", l.cfg.AccessToken)
	u.RawQuery = q.Encode()

	resp, err := common.FetchWithRetry(ctx, l.cfg.HTTPClient, u.String(), common.FetchOptions{}, 1)
	if err != nil {
		return dtos.MapConfig{}, fmt.Errorf("could not validate maps access token: %w", err)
	}
	resp.Body.Close()

	return dtos.MapConfig{
		AccessToken: l.cfg.AccessToken,
		StyleURL:    l.cfg.StyleURL,
	}, nil
}
