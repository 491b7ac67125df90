// Package storage provides the named-slot persistence layer: a small
// JSON codec over a pluggable key-value backend. Each top-level site
// collection lives in one slot as a single JSON document.
package storage

import "context"

// Well-known slot names. These are the persisted key names and are
// shared with existing deployments, so they must not change.
const (
	SlotCars     = "rjm_cars"
	SlotUsers    = "rjm_users"
	SlotSliders  = "rjm_sliders"
	SlotArticles = "rjm_articles"
	SlotContact  = "rjm_contact"
	SlotSession  = "rjm_logged_user"
)

// Slots lists every well-known slot name.
func Slots() []string {
	return []string{SlotCars, SlotUsers, SlotSliders, SlotArticles, SlotContact, SlotSession}
}

// KV is a named-slot store. Get reports ok=false when the slot does
// not exist; an error means the backend itself failed.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
