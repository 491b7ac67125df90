// Package backup moves the full site state between independent slot
// stores as one opaque token: standard base64 over a UTF-8 JSON
// document. The session user is deliberately excluded.
package backup

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/account"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/content"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/fleet"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/storage"
)

// ErrInvalidToken is returned when a token cannot be decoded. No slot
// is written in that case.
var ErrInvalidToken = errors.New("kode backup tidak valid")

// Document is the decoded token layout. Pointer fields distinguish an
// absent field from an empty collection: only present fields are
// restored. There is no schema version; decoding is defensive.
type Document struct {
	Cars      *[]fleet.Car         `json:"cars,omitempty"`
	Articles  *[]content.Article   `json:"articles,omitempty"`
	Sliders   *[]content.Slide     `json:"sliders,omitempty"`
	Contact   *content.ContactInfo `json:"contact,omitempty"`
	Users     *[]account.User      `json:"users,omitempty"`
	Timestamp string               `json:"timestamp"`
}

// Export gathers the five collection slots plus a generation
// timestamp and encodes them into one transportable token. Absent
// slots export as empty collections, mirroring what a consumer sees.
func Export(ctx context.Context, kv storage.KV) (string, error) {
	cars := storage.Load(ctx, kv, storage.SlotCars, []fleet.Car{})
	articles := storage.Load(ctx, kv, storage.SlotArticles, []content.Article{})
	sliders := storage.Load(ctx, kv, storage.SlotSliders, []content.Slide{})
	contact := storage.Load(ctx, kv, storage.SlotContact, content.ContactInfo{})
	users := storage.Load(ctx, kv, storage.SlotUsers, []account.User{})

	doc := Document{
		Cars:      &cars,
		Articles:  &articles,
		Sliders:   &sliders,
		Contact:   &contact,
		Users:     &users,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}
	// base64 over the UTF-8 bytes keeps non-ASCII article and contact
	// text intact through copy-paste transport.
	return base64.StdEncoding.EncodeToString(b), nil
}

// Import decodes a token and writes each present field to its slot,
// bypassing the Store. A malformed token changes nothing; the caller
// reloads the Store afterwards.
func Import(ctx context.Context, kv storage.KV, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidToken
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if doc.Cars != nil {
		if err := storage.Save(ctx, kv, storage.SlotCars, *doc.Cars); err != nil {
			return err
		}
	}
	if doc.Articles != nil {
		if err := storage.Save(ctx, kv, storage.SlotArticles, *doc.Articles); err != nil {
			return err
		}
	}
	if doc.Sliders != nil {
		if err := storage.Save(ctx, kv, storage.SlotSliders, *doc.Sliders); err != nil {
			return err
		}
	}
	if doc.Contact != nil {
		if err := storage.Save(ctx, kv, storage.SlotContact, *doc.Contact); err != nil {
			return err
		}
	}
	if doc.Users != nil {
		if err := storage.Save(ctx, kv, storage.SlotUsers, *doc.Users); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears every persisted slot; the next Store load falls back
// to the built-in seed dataset.
func Reset(ctx context.Context, kv storage.KV) error {
	return kv.Clear(ctx)
}
