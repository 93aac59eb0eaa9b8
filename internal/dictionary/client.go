// Package dictionary looks words up in the free dictionary service.
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wordgrip/internal/domain"
)

// DefaultBaseURL is the free dictionary lookup endpoint
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

var (
	// ErrNotFound is returned for any non-2xx response
	ErrNotFound = errors.New("word not found")
	// ErrMalformedResponse is returned when the body is not a non-empty entry array
	ErrMalformedResponse = errors.New("malformed response")
)

// Client fetches word records from the dictionary service
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout bounds each lookup. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for baseURL; an empty baseURL uses DefaultBaseURL
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        logger.With().Str("component", "dictionary").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Normalize returns the form of term used in lookup requests
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Lookup fetches the record for term. Only the first entry of the response
// is used.
func (c *Client) Lookup(ctx context.Context, term string) (*domain.WordRecord, error) {
	word := Normalize(term)
	reqURL := c.baseURL + "/" + url.PathEscape(word)
	requestID := uuid.NewString()

	log := c.log.With().Str("word", word).Str("request_id", requestID).Logger()
	log.Debug().Str("url", reqURL).Msg("dictionary request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dictionary: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("dictionary request failed")
		return nil, fmt.Errorf("dictionary: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug().Int("status", resp.StatusCode).Msg("dictionary word not found")
		return nil, fmt.Errorf("dictionary: status %d: %w", resp.StatusCode, ErrNotFound)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("dictionary: decode json: %v: %w", err, ErrMalformedResponse)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("dictionary: empty entry list: %w", ErrMalformedResponse)
	}

	record := mapEntry(entries[0])

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Int("entries", len(entries)).
		Int("meanings", len(record.Meanings)).
		Int("phonetics", len(record.Phonetics)).
		Msg("dictionary response")

	return record, nil
}

// mapEntry converts one API entry into a domain record
func mapEntry(e apiEntry) *domain.WordRecord {
	record := &domain.WordRecord{
		Word:      e.Word,
		Origin:    strings.TrimSpace(e.Origin),
		Phonetics: make([]domain.Phonetic, 0, len(e.Phonetics)),
		Meanings:  make([]domain.Meaning, 0, len(e.Meanings)),
	}

	for _, ph := range e.Phonetics {
		if ph.Text == "" && ph.Audio == "" {
			continue
		}
		record.Phonetics = append(record.Phonetics, domain.Phonetic{
			Text:     ph.Text,
			AudioURL: normalizeAudioURL(ph.Audio),
		})
	}
	// Some entries only carry the top-level transcription
	if e.Phonetic != "" && record.PhoneticText() == "" {
		record.Phonetics = append([]domain.Phonetic{{Text: e.Phonetic}}, record.Phonetics...)
	}

	for _, m := range e.Meanings {
		meaning := domain.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  make([]domain.Definition, 0, len(m.Definitions)),
		}
		for _, d := range m.Definitions {
			meaning.Definitions = append(meaning.Definitions, domain.Definition{
				Text:     d.Definition,
				Example:  d.Example,
				Synonyms: d.Synonyms,
				Antonyms: d.Antonyms,
			})
		}
		record.Meanings = append(record.Meanings, meaning)
	}

	return record
}

// normalizeAudioURL fixes protocol-relative URLs the service sometimes returns
func normalizeAudioURL(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}
