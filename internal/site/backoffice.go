package site

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/account"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/content"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/fleet"
)

var (
	// ErrMasterAdminProtected guards the root account: it can never be
	// edited or deleted, no matter who asks.
	ErrMasterAdminProtected = errors.New("akun master admin tidak dapat diubah atau dihapus")

	// ErrCarIncomplete rejects fleet writes without a brand and name.
	ErrCarIncomplete = errors.New("brand dan nama mobil tidak boleh kosong")
)

// Backoffice is the admin interaction surface over the Store. The
// Store itself stays permissive; this layer carries the policy checks
// the admin UI performs: required fields on fleet writes and the
// master-admin protection.
type Backoffice struct {
	store *Store
}

func NewBackoffice(store *Store) *Backoffice {
	return &Backoffice{store: store}
}

// Store exposes the underlying store for reads.
func (b *Backoffice) Store() *Store {
	return b.store
}

func (b *Backoffice) AddCar(ctx context.Context, c fleet.Car) (fleet.Car, error) {
	if strings.TrimSpace(c.Brand) == "" || strings.TrimSpace(c.Name) == "" {
		return fleet.Car{}, ErrCarIncomplete
	}
	return b.store.AddCar(ctx, c), nil
}

func (b *Backoffice) UpdateCar(ctx context.Context, c fleet.Car) error {
	if strings.TrimSpace(c.Brand) == "" || strings.TrimSpace(c.Name) == "" {
		return ErrCarIncomplete
	}
	// unknown id is a silent no-op
	b.store.UpdateCar(ctx, c)
	return nil
}

func (b *Backoffice) DeleteCar(ctx context.Context, id string) {
	b.store.DeleteCar(ctx, id)
}

// AddArticle stamps today's date when none is given. Articles carry
// no required-field checks; that matches the admin surface as shipped.
func (b *Backoffice) AddArticle(ctx context.Context, a content.Article) content.Article {
	if strings.TrimSpace(a.Date) == "" {
		a.Date = time.Now().Format("2 Jan 2006")
	}
	return b.store.AddArticle(ctx, a)
}

func (b *Backoffice) UpdateArticle(ctx context.Context, a content.Article) {
	b.store.UpdateArticle(ctx, a)
}

func (b *Backoffice) DeleteArticle(ctx context.Context, id string) {
	b.store.DeleteArticle(ctx, id)
}

func (b *Backoffice) AddSlide(ctx context.Context, sl content.Slide) content.Slide {
	return b.store.AddSlide(ctx, sl)
}

func (b *Backoffice) UpdateSlide(ctx context.Context, sl content.Slide) {
	b.store.UpdateSlide(ctx, sl)
}

func (b *Backoffice) DeleteSlide(ctx context.Context, id int) {
	b.store.DeleteSlide(ctx, id)
}

// AddUser defaults the role to ADMIN when none is given.
func (b *Backoffice) AddUser(ctx context.Context, u account.User) account.User {
	if u.Role == "" {
		u.Role = account.RoleAdmin
	}
	return b.store.AddUser(ctx, u)
}

func (b *Backoffice) UpdateUser(ctx context.Context, u account.User) error {
	existing, ok := b.store.FindUser(u.ID)
	if !ok {
		return nil
	}
	if existing.IsMasterAdmin() {
		return ErrMasterAdminProtected
	}
	b.store.UpdateUser(ctx, u)
	return nil
}

func (b *Backoffice) DeleteUser(ctx context.Context, id string) error {
	existing, ok := b.store.FindUser(id)
	if !ok {
		return nil
	}
	if existing.IsMasterAdmin() {
		return ErrMasterAdminProtected
	}
	b.store.DeleteUser(ctx, id)
	return nil
}

func (b *Backoffice) SetContact(ctx context.Context, c content.ContactInfo) {
	b.store.SetContact(ctx, c)
}

// Overview returns the dashboard counters: fleet units, articles,
// accounts.
func (b *Backoffice) Overview() (units, articles, users int) {
	return len(b.store.Cars()), len(b.store.Articles()), len(b.store.Users())
}
