package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Load reads a slot and decodes it as JSON. A missing slot, a backend
// error, or undecodable contents all return fallback unchanged; Load
// never fails. Corrupt persisted state is treated the same as absent
// state.
func Load[T any](ctx context.Context, kv KV, key string, fallback T) T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback
	}
	return v
}

// Save serializes value as JSON and overwrites the slot. The caller
// decides what to do with a write failure; readers will simply see the
// previous contents.
func Save(ctx context.Context, kv KV, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}
