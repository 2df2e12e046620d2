package word

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteSource_FetchCandidates(t *testing.T) {
	tests := []struct {
		name          string
		dailyWords    []remoteEntry
		translations  map[string]string
		expectedTerms []string
		wantErr       bool
	}{
		{
			name: "complete entries need no translation",
			dailyWords: []remoteEntry{
				{Word: "Purchase", Phonetic: "/ˈpɜːrtʃəs/", Chinese: "購買"},
				{Word: "Agenda", Chinese: "議程"},
			},
			expectedTerms: []string{"Purchase", "Agenda"},
		},
		{
			name: "missing glosses are filled by the translation endpoint",
			dailyWords: []remoteEntry{
				{Word: "Purchase", Chinese: "購買"},
				{Word: "Invoice"},
			},
			translations:  map[string]string{"Invoice": "發票"},
			expectedTerms: []string{"Purchase", "Invoice"},
		},
		{
			name: "entries still malformed after translation are dropped",
			dailyWords: []remoteEntry{
				{Word: "Purchase", Chinese: "購買"},
				{Word: "Invoice"},
			},
			translations:  map[string]string{},
			expectedTerms: []string{"Purchase"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/v1/words/daily":
					w.Header().Set("Content-Type", "application/json")
					require.NoError(t, json.NewEncoder(w).Encode(tt.dailyWords))
				case "/v1/translate":
					var request translateRequest
					require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
					response := translateResponse{}
					for _, text := range request.Texts {
						response.Translations = append(response.Translations, tt.translations[text])
					}
					w.Header().Set("Content-Type", "application/json")
					require.NoError(t, json.NewEncoder(w).Encode(response))
				default:
					w.WriteHeader(http.StatusNotFound)
				}
			}))
			defer server.Close()

			source := NewRemoteSource(server.URL, "test-key", DefaultMaxRetryAttempts)
			defer func() {
				_ = source.Close()
			}()

			got, err := source.FetchCandidates(context.Background(), 10)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTerms, Terms(got))
		})
	}
}

func TestRemoteSource_FetchCandidates_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode([]remoteEntry{
			{Word: "Purchase", Chinese: "購買"},
		}))
	}))
	defer server.Close()

	source := NewRemoteSource(server.URL, "test-key", DefaultMaxRetryAttempts)
	defer func() {
		_ = source.Close()
	}()

	got, err := source.FetchCandidates(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Purchase"}, Terms(got))
	assert.Equal(t, int32(2), calls.Load())
}

func TestRemoteSource_FetchCandidates_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	source := NewRemoteSource(server.URL, "bad-key", DefaultMaxRetryAttempts)
	defer func() {
		_ = source.Close()
	}()

	_, err := source.FetchCandidates(context.Background(), 10)
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "unrelated error", err: assert.AnError, expected: false},
		{name: "server error", err: errors.New("response error 503: unavailable"), expected: true},
		{name: "rate limited", err: errors.New("response error 429: slow down"), expected: true},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), expected: true},
		{name: "client error", err: errors.New("response error 404: not found"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isRetryableError(tt.err))
		})
	}
}
