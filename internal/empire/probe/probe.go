package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/metrics"
)

// Probe outcomes for the live MusicJam application.
const (
	StatusOnline  = "online"
	StatusIssues  = "issues"
	StatusOffline = "offline"
)

const cacheKey = "musicjam:status"

// Result describes one uptime check. Code is only set when the site answered
// with a non-200 status.
type Result struct {
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
	Code   int    `json:"code,omitempty"`
}

// Prober checks the live MusicJam application and caches the outcome in the
// store so the overview endpoint does not probe on every request.
type Prober struct {
	url    string
	client *http.Client
	store  *docstore.Store
	ttl    time.Duration
	logger zerolog.Logger
}

func New(url string, timeout time.Duration, store *docstore.Store, ttl time.Duration, logger zerolog.Logger) *Prober {
	return &Prober{
		url:    url,
		client: &http.Client{Timeout: timeout},
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Check performs a single live probe.
func (p *Prober) Check(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Result{Status: StatusOffline, URL: p.url}
	}

	resp, err := p.client.Do(req)
	metrics.ObserveUpstream("musicjam", "probe", err)
	if err != nil {
		return Result{Status: StatusOffline, URL: p.url}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return Result{Status: StatusOnline, URL: p.url}
	}
	return Result{Status: StatusIssues, Code: resp.StatusCode}
}

// Refresh probes and overwrites the cached result.
func (p *Prober) Refresh(ctx context.Context) Result {
	result := p.Check(ctx)

	encoded, err := json.Marshal(result)
	if err == nil {
		err = p.store.SetKV(ctx, cacheKey, string(encoded), p.ttl)
	}
	if err != nil {
		p.logger.Warn().Err(err).Msg("could not cache musicjam probe result")
	}
	return result
}

// Status returns the cached result, probing inline when the cache is cold.
func (p *Prober) Status(ctx context.Context) Result {
	cached, err := p.store.GetKV(ctx, cacheKey)
	if err == nil {
		var result Result
		if json.Unmarshal([]byte(cached), &result) == nil {
			return result
		}
	}
	return p.Refresh(ctx)
}
