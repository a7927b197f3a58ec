// Package remote fetches the initial directory collection from the
// configured employee-listing endpoint and normalizes it into the internal
// record shape before it reaches the collection store.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rai/employee-directory/modules/directory/domain"
)

// Config holds the fetch policy. The original behavior has no timeout or
// retry; both are made explicit here.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	// Retries is the number of extra attempts after the first, on transport
	// error or 5xx response. Other failures are not retried.
	Retries int
}

// DefaultConfig returns the public employee listing with a 10s timeout and
// a single retry.
func DefaultConfig() Config {
	return Config{
		Endpoint: "https://jsonplaceholder.typicode.com/users",
		Timeout:  10 * time.Second,
		Retries:  1,
	}
}

// rawUser is the remote wire shape. The combined name field is split during
// normalization; unknown fields are ignored.
type rawUser struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Loader performs the one outbound request of a session.
type Loader struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

func NewLoader(cfg Config, logger *slog.Logger) *Loader {
	def := DefaultConfig()
	if cfg.Endpoint == "" {
		cfg.Endpoint = def.Endpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Load fetches and normalizes the remote collection. The load is
// all-or-nothing: any failure after the retry budget surfaces
// domain.ErrFetchFailed and leaves the collection untouched.
func (l *Loader) Load(ctx context.Context) ([]domain.Record, error) {
	var lastErr error
	for attempt := 0; attempt <= l.cfg.Retries; attempt++ {
		records, retryable, err := l.fetch(ctx)
		if err == nil {
			return records, nil
		}
		lastErr = err
		l.logger.Warn("fetch attempt failed",
			slog.Int("attempt", attempt+1),
			slog.String("endpoint", l.cfg.Endpoint),
			slog.Any("error", err))
		if !retryable || ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, lastErr)
}

// fetch performs a single request. The second return value reports whether
// the failure is worth retrying.
func (l *Loader) fetch(ctx context.Context) ([]domain.Record, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.Endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("requesting %s: %w", l.cfg.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		retryable := resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, l.cfg.Endpoint)
	}

	var raw []rawUser
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, false, fmt.Errorf("decoding response: %w", err)
	}

	records := make([]domain.Record, len(raw))
	for i, r := range raw {
		records[i] = normalize(r)
	}
	return records, false, nil
}

// normalize converts a raw remote user into the strict internal shape:
// the combined name is split on the first space and a missing department
// defaults to "General". Remote departments are passed through unchecked.
func normalize(raw rawUser) domain.Record {
	first, last := domain.SplitFullName(raw.Name)
	department := raw.Department
	if department == "" {
		department = domain.DepartmentGeneral
	}
	return domain.Record{
		ID:         raw.ID,
		FirstName:  first,
		LastName:   last,
		Email:      raw.Email,
		Department: department,
	}
}
