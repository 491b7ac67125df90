package site

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/account"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/content"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/fleet"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	s := New(context.Background(), kv, nil)
	return s, kv
}

func TestNewSeedsDefaults(t *testing.T) {
	s, kv := newTestStore(t)

	if got := len(s.Cars()); got != 5 {
		t.Fatalf("expected 5 seed cars, got %d", got)
	}
	if got := len(s.Users()); got != 1 {
		t.Fatalf("expected 1 seed user, got %d", got)
	}
	if got := len(s.Slides()); got != 3 {
		t.Fatalf("expected 3 seed slides, got %d", got)
	}
	if got := len(s.Articles()); got != 1 {
		t.Fatalf("expected 1 seed article, got %d", got)
	}
	if s.Contact().Phone == "" {
		t.Fatalf("expected seed contact")
	}
	if _, ok := s.Session(); ok {
		t.Fatalf("expected no session on fresh store")
	}

	// New mirrors the loaded state back to storage immediately
	for _, slot := range storage.Slots() {
		if _, ok, _ := kv.Get(context.Background(), slot); !ok {
			t.Fatalf("slot %s not persisted after init", slot)
		}
	}
}

func TestNewPrefersPersistedState(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	if err := storage.Save(ctx, kv, storage.SlotCars, []fleet.Car{{ID: "x", Brand: "Honda", Name: "CR-V"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s := New(ctx, kv, nil)
	cars := s.Cars()
	if len(cars) != 1 || cars[0].Brand != "Honda" {
		t.Fatalf("expected persisted state to win over seeds, got %+v", cars)
	}
}

func TestAddCarAssignsFreshID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	before := s.Cars()
	added := s.AddCar(ctx, fleet.Car{Brand: "Toyota", Name: "Supra", PricePerDay: 500000})

	after := s.Cars()
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d cars, got %d", len(before)+1, len(after))
	}
	if added.ID == "" {
		t.Fatalf("expected assigned id")
	}
	count := 0
	for _, c := range after {
		if c.ID == added.ID {
			count++
		}
		if c.Brand == "Toyota" && c.Name == "Supra" && c.ID != added.ID {
			t.Fatalf("duplicate record created")
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one record with the new id, got %d", count)
	}
	for _, c := range before {
		if c.ID == added.ID {
			t.Fatalf("new id collides with existing id %s", c.ID)
		}
	}
}

func TestAddCarPersists(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	s.AddCar(ctx, fleet.Car{Brand: "Honda", Name: "CR-V", PricePerDay: 600000})

	raw, ok, err := kv.Get(ctx, storage.SlotCars)
	if err != nil || !ok {
		t.Fatalf("cars slot missing: ok=%v err=%v", ok, err)
	}
	var persisted []fleet.Car
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("unmarshal persisted cars: %v", err)
	}
	if len(persisted) != 6 {
		t.Fatalf("expected 6 persisted cars, got %d", len(persisted))
	}
	found := false
	for _, c := range persisted {
		if c.Brand == "Honda" && c.Name == "CR-V" {
			found = true
		}
	}
	if !found {
		t.Fatalf("added car not persisted")
	}
}

func TestCustomIDGenerator(t *testing.T) {
	ctx := context.Background()
	n := 0
	s := New(ctx, storage.NewMemory(), nil, WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("car-%d", n)
	}))

	a := s.AddCar(ctx, fleet.Car{Brand: "A", Name: "One"})
	b := s.AddCar(ctx, fleet.Car{Brand: "B", Name: "Two"})
	if a.ID != "car-1" || b.ID != "car-2" {
		t.Fatalf("expected injected generator ids, got %s / %s", a.ID, b.ID)
	}
}

func TestUpdateCarInPlace(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	cars := s.Cars()
	target := cars[2]
	target.PricePerDay = 999000
	if !s.UpdateCar(ctx, target) {
		t.Fatalf("expected update to hit")
	}

	after := s.Cars()
	if len(after) != len(cars) {
		t.Fatalf("update changed collection size")
	}
	if after[2].ID != target.ID || after[2].PricePerDay != 999000 {
		t.Fatalf("expected in-place replacement, got %+v", after[2])
	}
}

func TestUpdateCarMissingIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	before := s.Cars()
	if s.UpdateCar(ctx, fleet.Car{ID: "no-such-id", Brand: "Ghost", Name: "Car"}) {
		t.Fatalf("expected miss")
	}
	after := s.Cars()
	if len(after) != len(before) {
		t.Fatalf("no-op edit changed collection size")
	}
	for _, c := range after {
		if c.Brand == "Ghost" {
			t.Fatalf("no-op edit created a record")
		}
	}
}

func TestDeleteCar(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	before := s.Cars()
	if !s.DeleteCar(ctx, before[0].ID) {
		t.Fatalf("expected delete to hit")
	}
	if got := len(s.Cars()); got != len(before)-1 {
		t.Fatalf("expected %d cars, got %d", len(before)-1, got)
	}

	// deleting again is a silent no-op
	if s.DeleteCar(ctx, before[0].ID) {
		t.Fatalf("expected miss on second delete")
	}
}

func TestAddSlideNumericIDs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	sl := s.AddSlide(ctx, content.Slide{Title: "Promo", Subtitle: "Akhir Tahun"})
	if sl.ID != 4 {
		t.Fatalf("expected next numeric id 4, got %d", sl.ID)
	}

	s.DeleteSlide(ctx, 4)
	again := s.AddSlide(ctx, content.Slide{Title: "Promo 2"})
	if again.ID != 4 {
		t.Fatalf("expected id 4 after delete, got %d", again.ID)
	}
}

func TestLoginSeededMasterAdmin(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	u, err := s.Login(ctx, "ucu.suratman.mpd@gmail.com", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Role != account.RoleMasterAdmin || u.ID != "root-1" {
		t.Fatalf("expected master admin session, got %+v", u)
	}

	session, ok := s.Session()
	if !ok || session.ID != "root-1" {
		t.Fatalf("session not set: %+v ok=%v", session, ok)
	}

	// session user is persisted in its own slot
	raw, ok, _ := kv.Get(ctx, storage.SlotSession)
	if !ok {
		t.Fatalf("session slot missing")
	}
	var persisted account.User
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("unmarshal session: %v", err)
	}
	if persisted.ID != "root-1" {
		t.Fatalf("persisted session mismatch: %+v", persisted)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Login(ctx, "ucu.suratman.mpd@gmail.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Login(ctx, "nobody@rjm.com", "admin123"); err != ErrInvalidCredentials {
		t.Fatalf("expected same error for unknown email, got %v", err)
	}
	if _, ok := s.Session(); ok {
		t.Fatalf("failed login must leave session unset")
	}
}

func TestLoginIsCaseSensitive(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Login(context.Background(), "Ucu.Suratman.Mpd@gmail.com", "admin123"); err != ErrInvalidCredentials {
		t.Fatalf("expected case-sensitive match, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Login(ctx, "ucu.suratman.mpd@gmail.com", "admin123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	s.Logout(ctx)

	if _, ok := s.Session(); ok {
		t.Fatalf("expected cleared session")
	}
	raw, ok, _ := kv.Get(ctx, storage.SlotSession)
	if !ok || raw != "null" {
		t.Fatalf("expected persisted null session, got %q ok=%v", raw, ok)
	}
}

func TestSessionSurvivesReload(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	s := New(ctx, kv, nil)
	if _, err := s.Login(ctx, "ucu.suratman.mpd@gmail.com", "admin123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	s2 := New(ctx, kv, nil)
	session, ok := s2.Session()
	if !ok || session.ID != "root-1" {
		t.Fatalf("expected session restored from storage, got %+v ok=%v", session, ok)
	}
}

func TestSetContact(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetContact(ctx, content.ContactInfo{Phone: "+62 800", Email: "baru@rjm.com", Address: "Bandung"})
	c := s.Contact()
	if c.Phone != "+62 800" || c.Email != "baru@rjm.com" || c.Address != "Bandung" {
		t.Fatalf("contact not replaced wholesale: %+v", c)
	}
}

func TestReloadPicksUpExternalWrites(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	s := New(ctx, kv, nil)

	// simulate an import writing the slot behind the store's back
	if err := storage.Save(ctx, kv, storage.SlotCars, []fleet.Car{{ID: "only", Brand: "Honda", Name: "CR-V"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Reload(ctx)

	cars := s.Cars()
	if len(cars) != 1 || cars[0].ID != "only" {
		t.Fatalf("expected reloaded state, got %+v", cars)
	}
}
