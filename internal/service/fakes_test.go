package service

import (
	"context"
	"fmt"
	"time"

	"folio-be/internal/apperr"
	"folio-be/internal/entities"
)

// --- in-memory repositories used across the service tests ---

type memUserRepo struct {
	users  map[string]*entities.User // by id
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entities.User{}}
}

func (r *memUserRepo) Create(name, email, passwordHash string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return nil, apperr.ErrEmailTaken
		}
	}
	r.nextID++
	now := time.Now()
	user := &entities.User{
		ID:           fmt.Sprintf("user-%d", r.nextID),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[user.ID] = user
	return cloneUser(user), nil
}

func (r *memUserRepo) FindByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, apperr.ErrUserNotFound
}

func (r *memUserRepo) FindByID(id string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *memUserRepo) Update(id, name, passwordHash string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	u.Name = name
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return cloneUser(u), nil
}

func cloneUser(u *entities.User) *entities.User {
	copied := *u
	return &copied
}

type memAssetRepo struct {
	assets map[string]*entities.Asset
	nextID int
}

func newMemAssetRepo() *memAssetRepo {
	return &memAssetRepo{assets: map[string]*entities.Asset{}}
}

func (r *memAssetRepo) Create(ownerID, name, symbol string, quantity, buyPrice float64, purchaseDate time.Time, notes *string) (*entities.Asset, error) {
	r.nextID++
	now := time.Now()
	asset := &entities.Asset{
		ID:           fmt.Sprintf("asset-%d", r.nextID),
		OwnerID:      ownerID,
		Name:         name,
		Symbol:       symbol,
		Quantity:     quantity,
		BuyPrice:     buyPrice,
		PurchaseDate: purchaseDate,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.assets[asset.ID] = asset
	return cloneAsset(asset), nil
}

func (r *memAssetRepo) FindByID(id string) (*entities.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, apperr.ErrAssetNotFound
	}
	return cloneAsset(a), nil
}

func (r *memAssetRepo) FindAllByOwner(ownerID string) ([]*entities.Asset, error) {
	out := []*entities.Asset{}
	for _, a := range r.assets {
		if a.OwnerID == ownerID {
			out = append(out, cloneAsset(a))
		}
	}
	return out, nil
}

func (r *memAssetRepo) Update(asset *entities.Asset) (*entities.Asset, error) {
	stored, ok := r.assets[asset.ID]
	if !ok {
		return nil, apperr.ErrAssetNotFound
	}
	updated := *asset
	updated.OwnerID = stored.OwnerID
	updated.UpdatedAt = time.Now()
	r.assets[asset.ID] = &updated
	return cloneAsset(&updated), nil
}

func (r *memAssetRepo) Delete(id string) error {
	if _, ok := r.assets[id]; !ok {
		return apperr.ErrAssetNotFound
	}
	delete(r.assets, id)
	return nil
}

func cloneAsset(a *entities.Asset) *entities.Asset {
	copied := *a
	return &copied
}

// recordingCache tracks invalidations; Get always misses so tests exercise
// the repository path unless a test opts in via stored.
type recordingCache struct {
	deleted []string
	stored  map[string][]byte
}

func newRecordingCache() *recordingCache {
	return &recordingCache{stored: map[string][]byte{}}
}

func (c *recordingCache) Delete(ctx context.Context, key string) error {
	c.deleted = append(c.deleted, key)
	delete(c.stored, key)
	return nil
}

func (c *recordingCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.stored[key] = []byte("set")
	return nil
}

func (c *recordingCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	return fmt.Errorf("key not found")
}
