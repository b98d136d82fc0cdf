package users

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/common"
	"inkwell/internal/models"
	"inkwell/internal/storage"
)

// Collection is the backend name the user documents live under.
const Collection = "users"

// JSONRepository implements Repository over a storage.Backend, keeping the
// whole collection as one JSON array snapshot. State is re-read from the
// backend on every call, never cached across calls.
type JSONRepository struct {
	mu      sync.Mutex
	backend storage.Backend
	now     func() time.Time
}

// NewJSONRepository returns a repository bound to the given backend.
func NewJSONRepository(backend storage.Backend) *JSONRepository {
	return &JSONRepository{backend: backend, now: time.Now}
}

func (r *JSONRepository) load(ctx context.Context) ([]models.User, error) {
	data, ok, err := r.backend.Get(ctx, Collection)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode %s collection: %w", Collection, err)
	}
	return users, nil
}

func (r *JSONRepository) save(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", Collection, err)
	}
	return r.backend.Set(ctx, Collection, data)
}

func (r *JSONRepository) findBy(ctx context.Context, match func(*models.User) bool) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(&users[i]) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *JSONRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findBy(ctx, func(u *models.User) bool { return u.Email == email })
}

func (r *JSONRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findBy(ctx, func(u *models.User) bool { return u.Username == username })
}

func (r *JSONRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == user.Email || users[i].Username == user.Username {
			return nil, common.ErrorAlreadyExists
		}
	}

	created := *user
	created.ID = uuid.New().String()
	created.CreatedAt = r.now()
	if created.Followers == nil {
		created.Followers = []string{}
	}
	if created.Following == nil {
		created.Following = []string{}
	}

	users = append(users, created)
	if err := r.save(ctx, users); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *JSONRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, common.ErrorNotFound
	}

	u := &users[idx]
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Bio != nil {
		u.Bio = *patch.Bio
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.Followers != nil {
		u.Followers = append([]string(nil), (*patch.Followers)...)
	}
	if patch.Following != nil {
		u.Following = append([]string(nil), (*patch.Following)...)
	}

	if err := r.save(ctx, users); err != nil {
		return nil, err
	}
	merged := users[idx]
	return &merged, nil
}

// SeedIfEmpty persists the given documents only when the collection holds
// no users yet. Seed documents are stored as provided, ids included.
func (r *JSONRepository) SeedIfEmpty(ctx context.Context, seed []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return r.save(ctx, seed)
}
