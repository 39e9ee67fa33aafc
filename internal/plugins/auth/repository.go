package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/auditdesk/auditdesk/internal/apperror"
	"github.com/auditdesk/auditdesk/internal/kvstore"
)

// UserRepository defines the data access contract for user operations.
// The backing document is a single JSON array of users; all persistence
// details stay behind this interface.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id string) error
}

// userRepository stores the user collection as one JSON array in the
// key-value store. The mutex serializes read-modify-write sequences so
// two concurrent registrations cannot drop each other's write.
type userRepository struct {
	store kvstore.Store
	key   string

	mu sync.Mutex
}

// NewUserRepository creates a user repository persisting under key.
func NewUserRepository(store kvstore.Store, key string) UserRepository {
	return &userRepository{store: store, key: key}
}

// Create appends a new user to the stored collection.
func (r *userRepository) Create(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	users = append(users, storedUser{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		BusinessName: user.BusinessName,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		LastLoginAt:  user.LastLoginAt,
	})

	return r.persist(ctx, users)
}

// FindByID retrieves a user by ID.
// Returns apperror.NotFound if no user exists with this ID.
func (r *userRepository) FindByID(ctx context.Context, id string) (*User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u.toUser(), nil
		}
	}
	return nil, apperror.NewNotFound("user not found")
}

// FindByEmail retrieves a user by email address (case-insensitive).
// Returns apperror.NotFound if no user exists with this email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u.toUser(), nil
		}
	}
	return nil, apperror.NewNotFound("user not found")
}

// EmailExists reports whether a user with the given email already exists.
// Used during registration to check for duplicates before hashing the password.
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	users, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// UpdateLastLogin stamps the user's last login time to now.
func (r *userRepository) UpdateLastLogin(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			now := time.Now().UTC()
			users[i].LastLoginAt = &now
			return r.persist(ctx, users)
		}
	}
	return apperror.NewNotFound("user not found")
}

func (r *userRepository) load(ctx context.Context) ([]storedUser, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading users: %w", err)
	}

	var users []storedUser
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

func (r *userRepository) persist(ctx context.Context, users []storedUser) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encoding users: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("writing users: %w", err)
	}
	return nil
}
