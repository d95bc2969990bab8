// Package translate provides machine translation for journal text.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/tagebuch-backend/internal/config"
	"github.com/heartmarshall/tagebuch-backend/internal/domain"
)

// Target languages understood by Translate.
const (
	German  = "German"
	English = "English"
)

const retryDelay = 500 * time.Millisecond

// Gemini translates text with the Gemini generateContent API.
type Gemini struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewGemini creates a Gemini client from config.
func NewGemini(cfg config.TranslateConfig, logger *slog.Logger) *Gemini {
	return &Gemini{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		apiKey:     cfg.GeminiAPIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "gemini"),
	}
}

// Translate returns text translated into target (German or English).
func (g *Gemini) Translate(ctx context.Context, text, target string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt(text, target)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	newRequest := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", g.apiKey)
		return req, nil
	}

	g.log.DebugContext(ctx, "gemini request", slog.String("target", target), slog.Int("chars", len(text)))

	resp, err := g.doWithRetry(ctx, newRequest)
	if err != nil {
		g.log.ErrorContext(ctx, "gemini request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini: request failed: %w: %w", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		if resp.StatusCode >= 500 {
			return "", fmt.Errorf("gemini: %s: %w", msg, domain.ErrUnavailable)
		}
		return "", fmt.Errorf("gemini: %s", msg)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("gemini: decode json: %w", err)
	}
	translated, ok := out.text()
	if !ok {
		return "", fmt.Errorf("gemini: unexpected response format")
	}
	return strings.TrimSpace(translated), nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (g *Gemini) doWithRetry(ctx context.Context, newRequest func() (*http.Request, error)) (*http.Response, error) {
	req, err := newRequest()
	if err != nil {
		return nil, err
	}
	resp, err := g.httpClient.Do(req)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	g.log.WarnContext(ctx, "gemini retry", slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	req, err = newRequest()
	if err != nil {
		return nil, err
	}
	return g.httpClient.Do(req)
}

func prompt(text, target string) string {
	return fmt.Sprintf("Translate the following text to %s. Only return the translated text without any explanation or markdown formatting: %q", target, text)
}
