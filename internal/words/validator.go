package words

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultDictionaryURL is the free dictionary endpoint used as a fallback
// when a word is not in the local corpus.
const DefaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"

// Validator is the word-validity oracle: local corpus first, remote
// dictionary lookup as a fallback. Any failure to complete the remote check
// resolves to invalid (fail-closed) so submitters can simply retry.
type Validator struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewValidator creates a validator against the given dictionary endpoint.
// An empty baseURL disables the remote fallback entirely.
func NewValidator(baseURL string, timeout time.Duration, logger *slog.Logger) *Validator {
	return &Validator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Validate reports whether the word is a recognized English word
func (v *Validator) Validate(ctx context.Context, word string) bool {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if len(normalized) < 3 {
		return false
	}

	if Contains(normalized) {
		return true
	}

	if v.baseURL == "" {
		return false
	}

	return v.lookupRemote(ctx, normalized)
}

func (v *Validator) lookupRemote(ctx context.Context, word string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+url.PathEscape(word), nil)
	if err != nil {
		v.logger.Debug("dictionary request build failed", "word", word, "error", err)
		return false
	}

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Warn("dictionary lookup failed", "word", word, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode != http.StatusNotFound {
			v.logger.Warn("dictionary lookup rejected", "word", word, "status", fmt.Sprint(resp.StatusCode))
		}
		return false
	}

	return true
}
