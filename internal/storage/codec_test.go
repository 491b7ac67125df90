package storage

import (
	"context"
	"reflect"
	"testing"
)

type record struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Tags  []string `json:"tags"`
}

func TestLoadSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	want := []record{
		{Name: "Innova Zenix", Price: 850000, Tags: []string{"AC", "Kamera Parkir"}},
		{Name: "Alphard", Price: 2500000, Tags: []string{"Sunroof"}},
	}
	if err := Save(ctx, kv, "test_slot", want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Load(ctx, kv, "test_slot", []record(nil))
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Name != "Innova Zenix" || got[0].Price != 850000 {
		t.Fatalf("record mismatch: %+v", got[0])
	}
	if len(got[1].Tags) != 1 || got[1].Tags[0] != "Sunroof" {
		t.Fatalf("tags mismatch: %+v", got[1].Tags)
	}
}

func TestLoadMissingKeyReturnsFallback(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	fallback := record{Name: "default", Price: 42}
	got := Load(ctx, kv, "missing-key", fallback)
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("expected fallback unchanged, got %+v", got)
	}
}

func TestLoadCorruptSlotReturnsFallback(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	if err := kv.Set(ctx, "bad_slot", "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	fallback := record{Name: "default"}
	got := Load(ctx, kv, "bad_slot", fallback)
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("expected fallback for corrupt slot, got %+v", got)
	}
}

func TestLoadWrongShapeReturnsFallback(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	// valid JSON, wrong structure for the target type
	if err := kv.Set(ctx, "shape_slot", `"just a string"`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got := Load(ctx, kv, "shape_slot", record{Name: "default"})
	if got.Name != "default" {
		t.Fatalf("expected fallback, got %+v", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	if err := Save(ctx, kv, "slot", record{Name: "first"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(ctx, kv, "slot", record{Name: "second"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Load(ctx, kv, "slot", record{})
	if got.Name != "second" {
		t.Fatalf("expected overwrite, got %q", got.Name)
	}
}

func TestMemoryClear(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	if err := kv.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "a"); ok {
		t.Fatalf("expected cleared store")
	}
}
