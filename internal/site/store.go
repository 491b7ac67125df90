// Package site holds the authoritative in-memory application state
// and mirrors it to the slot store on every mutation.
package site

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/account"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/common/logger"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/content"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/fleet"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/storage"
)

// ErrInvalidCredentials is returned on any login mismatch. It carries
// no detail about which field was wrong.
var ErrInvalidCredentials = errors.New("email atau password salah")

// Store is the single in-memory snapshot of all site collections plus
// the session user. Every mutation re-serializes the entire set back
// to storage, one Save per slot.
type Store struct {
	mu    sync.Mutex
	kv    storage.KV
	log   logger.Logger
	newID func() string

	cars     []fleet.Car
	users    []account.User
	slides   []content.Slide
	articles []content.Article
	contact  content.ContactInfo
	session  *account.User
}

type Option func(*Store)

// WithIDGenerator replaces the record id generator (uuid by default).
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New loads every collection from storage, seeding absent or corrupt
// slots with the built-in defaults, then writes the loaded state back
// so a fresh environment is fully populated.
func New(ctx context.Context, kv storage.KV, log logger.Logger, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		log:   log,
		newID: uuid.NewString,
	}
	for _, apply := range opts {
		if apply != nil {
			apply(s)
		}
	}
	s.load(ctx)
	s.persist(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	s.cars = storage.Load(ctx, s.kv, storage.SlotCars, fleet.DefaultFleet())
	s.users = storage.Load(ctx, s.kv, storage.SlotUsers, account.DefaultUsers())
	s.slides = storage.Load(ctx, s.kv, storage.SlotSliders, content.DefaultSlides())
	s.articles = storage.Load(ctx, s.kv, storage.SlotArticles, content.DefaultArticles())
	s.contact = storage.Load(ctx, s.kv, storage.SlotContact, content.DefaultContact())
	s.session = storage.Load(ctx, s.kv, storage.SlotSession, (*account.User)(nil))
}

// Reload re-reads all slots, discarding the in-memory state. Used
// after a backup import or reset, which write storage directly.
func (s *Store) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)
	s.persist(ctx)
}

// persist writes the full collection set and session user. Caller
// holds s.mu. Write failures are logged and otherwise ignored:
// readers keep seeing the previous slot contents.
func (s *Store) persist(ctx context.Context) {
	saves := []struct {
		key   string
		value any
	}{
		{storage.SlotCars, s.cars},
		{storage.SlotUsers, s.users},
		{storage.SlotSliders, s.slides},
		{storage.SlotArticles, s.articles},
		{storage.SlotContact, s.contact},
		{storage.SlotSession, s.session},
	}
	for _, sv := range saves {
		if err := storage.Save(ctx, s.kv, sv.key, sv.value); err != nil && s.log != nil {
			s.log.Warnf("persist %s: %v", sv.key, err)
		}
	}
}

// Cars returns a copy of the fleet in storage order.
func (s *Store) Cars() []fleet.Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]fleet.Car(nil), s.cars...)
}

// Users returns a copy of the account collection.
func (s *Store) Users() []account.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]account.User(nil), s.users...)
}

// Slides returns a copy of the banner slides.
func (s *Store) Slides() []content.Slide {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]content.Slide(nil), s.slides...)
}

// Articles returns a copy of the article collection.
func (s *Store) Articles() []content.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]content.Article(nil), s.articles...)
}

// Contact returns the singleton contact record.
func (s *Store) Contact() content.ContactInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contact
}

// Session returns the logged-in user, if any.
func (s *Store) Session() (account.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return account.User{}, false
	}
	return *s.session, true
}

// AddCar appends a car under a fresh id and returns the stored record.
func (s *Store) AddCar(ctx context.Context, c fleet.Car) fleet.Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID()
	s.cars = append(s.cars, c)
	s.persist(ctx)
	return c
}

// UpdateCar replaces the car matching c.ID in place. A missing id is
// a no-op and reports false.
func (s *Store) UpdateCar(ctx context.Context, c fleet.Car) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cars {
		if s.cars[i].ID == c.ID {
			s.cars[i] = c
			s.persist(ctx)
			return true
		}
	}
	return false
}

// DeleteCar removes the car with the given id. Missing id is a no-op.
func (s *Store) DeleteCar(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cars {
		if s.cars[i].ID == id {
			s.cars = append(s.cars[:i], s.cars[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// AddArticle appends an article under a fresh id.
func (s *Store) AddArticle(ctx context.Context, a content.Article) content.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.newID()
	s.articles = append(s.articles, a)
	s.persist(ctx)
	return a
}

func (s *Store) UpdateArticle(ctx context.Context, a content.Article) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.articles {
		if s.articles[i].ID == a.ID {
			s.articles[i] = a
			s.persist(ctx)
			return true
		}
	}
	return false
}

func (s *Store) DeleteArticle(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// AddSlide appends a slide. Slide ids are numeric; the next id is one
// past the current maximum.
func (s *Store) AddSlide(ctx context.Context, sl content.Slide) content.Slide {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := 1
	for i := range s.slides {
		if s.slides[i].ID >= next {
			next = s.slides[i].ID + 1
		}
	}
	sl.ID = next
	s.slides = append(s.slides, sl)
	s.persist(ctx)
	return sl
}

func (s *Store) UpdateSlide(ctx context.Context, sl content.Slide) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slides {
		if s.slides[i].ID == sl.ID {
			s.slides[i] = sl
			s.persist(ctx)
			return true
		}
	}
	return false
}

func (s *Store) DeleteSlide(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slides {
		if s.slides[i].ID == id {
			s.slides = append(s.slides[:i], s.slides[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// AddUser appends an account under a fresh id.
func (s *Store) AddUser(ctx context.Context, u account.User) account.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.newID()
	s.users = append(s.users, u)
	s.persist(ctx)
	return u
}

func (s *Store) UpdateUser(ctx context.Context, u account.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			s.persist(ctx)
			return true
		}
	}
	return false
}

func (s *Store) DeleteUser(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// FindUser returns the account with the given id.
func (s *Store) FindUser(id string) (account.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return account.User{}, false
}

// SetContact replaces the contact record wholesale.
func (s *Store) SetContact(ctx context.Context, c content.ContactInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contact = c
	s.persist(ctx)
}

// Login matches email and password exactly (case-sensitive) against
// the account collection. On success the matching user becomes the
// session user; on mismatch the session is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) (account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		u := s.users[i]
		if u.Email == email && u.Password == password {
			s.session = &u
			s.persist(ctx)
			return u, nil
		}
	}
	return account.User{}, ErrInvalidCredentials
}

// Logout clears the session user.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.persist(ctx)
}
