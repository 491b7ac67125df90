// Package assist mediates between user chat input and the external
// text-generation service. Every outcome resolves to a display-ready
// string; no error ever reaches the caller.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/common/config"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/common/logger"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/fleet"
)

// User-facing fallback strings, in site language.
const (
	// FallbackNotConfigured is returned when no API key is present;
	// no network call is attempted.
	FallbackNotConfigured = "API Key belum terkonfigurasi. Silakan hubungi admin RJM."

	// FallbackNoAnswer is returned when the service answers with no
	// usable text.
	FallbackNoAnswer = "Mohon maaf, saya tidak dapat menemukan rekomendasi spesifik. Bisa ceritakan lebih lanjut kebutuhan perjalanan Anda?"

	// FallbackUnavailable covers every transport or service fault.
	FallbackUnavailable = "Asisten AI sedang beristirahat sejenak. Silakan jelajahi katalog kami secara manual!"

	// FallbackBusy is returned while a previous message is still in
	// flight; overlapping submissions of the same conversation are
	// not allowed.
	FallbackBusy = "Mohon tunggu sebentar, saya masih menyiapkan jawaban sebelumnya."
)

const maxResponseBody = 1 << 20

// Gateway issues one stateless generation request per user message:
// fixed instruction block + current fleet listing + the latest user
// text only, no conversation history.
type Gateway struct {
	endpoint    string
	model       string
	apiKey      string
	temperature float64
	client      *http.Client
	breaker     *CircuitBreaker
	limiter     *TokenBucket
	log         logger.Logger
	busy        atomic.Bool
}

func New(cfg config.AssistConfig, log logger.Logger) *Gateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Gateway{
		endpoint:    strings.TrimRight(cfg.Endpoint, "/"),
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: timeout},
		breaker:     NewCircuitBreaker("assist", 5, 30*time.Second),
		limiter:     NewTokenBucket(5, 1),
		log:         log,
	}
}

// Recommend turns one user message into one generated recommendation
// grounded in cars. Empty input returns the empty string without any
// external call; every failure mode returns a fallback string.
func (g *Gateway) Recommend(ctx context.Context, userText string, cars []fleet.Car) string {
	if strings.TrimSpace(userText) == "" {
		return ""
	}
	if g.apiKey == "" {
		return FallbackNotConfigured
	}
	if !g.busy.CompareAndSwap(false, true) {
		return FallbackBusy
	}
	defer g.busy.Store(false)

	if g.limiter != nil && !g.limiter.Allow(ctx) {
		if g.log != nil {
			g.log.Warn("assist request throttled")
		}
		return FallbackUnavailable
	}

	var text string
	err := g.breaker.Call(ctx, func() error {
		var genErr error
		text, genErr = g.generate(ctx, userText, cars)
		return genErr
	})
	if err != nil {
		if g.log != nil {
			g.log.Warnf("assist generation failed: %v", err)
		}
		return FallbackUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return FallbackNoAnswer
	}
	return text
}

type textPart struct {
	Text string `json:"text"`
}

type contentBlock struct {
	Role  string     `json:"role,omitempty"`
	Parts []textPart `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateRequest struct {
	SystemInstruction *contentBlock    `json:"system_instruction,omitempty"`
	Contents          []contentBlock   `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []textPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *Gateway) generate(ctx context.Context, userText string, cars []fleet.Car) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "assist.generateContent")
	defer span.Finish()
	ext.SpanKindRPCClient.Set(span)
	ext.Component.Set(span, "http")
	span.SetTag("model", g.model)

	body := generateRequest{
		SystemInstruction: &contentBlock{
			Parts: []textPart{{Text: systemInstruction(cars)}},
		},
		Contents: []contentBlock{
			{Role: "user", Parts: []textPart{{Text: userText}}},
		},
		GenerationConfig: generationConfig{Temperature: g.temperature},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.endpoint, g.model, url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		ext.Error.Set(span, true)
		return "", fmt.Errorf("call generation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ext.Error.Set(span, true)
		return "", fmt.Errorf("generation service returned %s", resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
