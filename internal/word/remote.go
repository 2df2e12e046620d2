package word

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avast/retry-go"
	"github.com/samber/lo"
	"resty.dev/v3"
)

const (
	// DefaultMaxRetryAttempts is the retry budget for remote fetches.
	DefaultMaxRetryAttempts = 3
)

// RemoteSource fetches candidate words from a dictionary service and fills in
// missing glosses through its translation endpoint.
type RemoteSource struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewRemoteSource creates a remote source against the given base URL.
func NewRemoteSource(baseURL, apiKey string, retryAttempts uint) *RemoteSource {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("X-Api-Key", apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &RemoteSource{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (s *RemoteSource) Close() error {
	return s.httpClient.Close()
}

// remoteEntry mirrors the upstream service's field names.
type remoteEntry struct {
	Word            string   `json:"word"`
	Phonetic        string   `json:"phonetic"`
	Chinese         string   `json:"chinese"`
	Examples        []string `json:"examples"`
	ChineseExamples []string `json:"chinese_ex"`
}

type translateRequest struct {
	Texts []string `json:"texts"`
}

type translateResponse struct {
	Translations []string `json:"translations"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// Server errors and rate limiting
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// FetchCandidates fetches up to limit candidate records. Entries without a
// gloss are run through the translation endpoint; records that are still
// malformed afterwards are dropped from the batch rather than failing the
// whole fetch.
func (s *RemoteSource) FetchCandidates(ctx context.Context, limit int) ([]Record, error) {
	var entries []remoteEntry
	if err := retry.Do(
		func() error {
			fetched, err := s.fetchDailyWords(ctx, limit)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			entries = fetched
			return nil
		},
		retry.Attempts(s.maxRetryAttempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	); err != nil {
		return nil, fmt.Errorf("fetchDailyWords() > %w", err)
	}

	entries, err := s.translateMissing(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("translateMissing() > %w", err)
	}

	records := lo.Map(entries, func(e remoteEntry, _ int) Record {
		return Record{
			Term:               e.Word,
			Phonetic:           e.Phonetic,
			Translation:        e.Chinese,
			Examples:           e.Examples,
			TranslatedExamples: e.ChineseExamples,
		}
	})

	sanitized := Sanitize(records)
	if dropped := len(records) - len(sanitized); dropped > 0 {
		slog.Debug("dropped malformed records from remote batch", "dropped", dropped)
	}
	return sanitized, nil
}

func (s *RemoteSource) fetchDailyWords(ctx context.Context, limit int) ([]remoteEntry, error) {
	var entries []remoteEntry
	response, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&entries).
		Get("/v1/words/daily")
	if err != nil {
		return nil, fmt.Errorf("httpClient.R().Get(/v1/words/daily) > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return entries, nil
}

// translateMissing fills glosses for entries that arrived without one.
// A failed translation leaves the entry untranslated; Sanitize drops it later.
func (s *RemoteSource) translateMissing(ctx context.Context, entries []remoteEntry) ([]remoteEntry, error) {
	missing := lo.Filter(lo.Range(len(entries)), func(i, _ int) bool {
		return entries[i].Chinese == ""
	})
	if len(missing) == 0 {
		return entries, nil
	}

	request := translateRequest{
		Texts: lo.Map(missing, func(i, _ int) string {
			return entries[i].Word
		}),
	}

	var result translateResponse
	response, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/v1/translate")
	if err != nil {
		return nil, fmt.Errorf("httpClient.R().Post(/v1/translate) > %w", err)
	}
	if response.IsError() {
		// Translation outage shouldn't fail the fetch; untranslated entries
		// get dropped during sanitation.
		slog.Warn("translation endpoint unavailable", "status", response.StatusCode())
		return entries, nil
	}

	for n, i := range missing {
		if n >= len(result.Translations) {
			break
		}
		entries[i].Chinese = result.Translations[n]
	}
	return entries, nil
}
