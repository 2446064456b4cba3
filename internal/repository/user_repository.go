package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/utils"
)

// ErrEmailExists is returned when registering an email twice.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidCredentials is returned when email and password do not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepo is the session-lifetime user registry behind the mock identity
// provider.  Users are kept in memory only and vanish on restart.
type UserRepo struct {
	cost int

	mu      sync.RWMutex
	byEmail map[string]model.User
	byID    map[string]string // id -> email
}

// NewUserRepo returns an empty registry hashing passwords with the given
// bcrypt cost.
func NewUserRepo(cost int) *UserRepo {
	return &UserRepo{
		cost:    cost,
		byEmail: make(map[string]model.User),
		byID:    make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create registers a user and returns its identity.
func (r *UserRepo) Create(ctx context.Context, name, phone, email, password string) (model.Identity, error) {
	email = normalizeEmail(email)
	hash, err := utils.HashPassword(password, r.cost)
	if err != nil {
		return model.Identity{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return model.Identity{}, ErrEmailExists
	}
	u := model.User{
		Identity: model.Identity{
			ID:    uuid.NewString(),
			Name:  strings.TrimSpace(name),
			Phone: strings.TrimSpace(phone),
			Email: email,
		},
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	r.byEmail[email] = u
	r.byID[u.ID] = email
	return u.Identity, nil
}

// Authenticate checks the password for email.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (model.Identity, error) {
	r.mu.RLock()
	u, ok := r.byEmail[normalizeEmail(email)]
	r.mu.RUnlock()
	if !ok || !utils.VerifyPassword(u.PasswordHash, password) {
		return model.Identity{}, ErrInvalidCredentials
	}
	return u.Identity, nil
}

// GetByID fetches a user identity by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.Identity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email, ok := r.byID[id]
	if !ok {
		return model.Identity{}, false
	}
	return r.byEmail[email].Identity, true
}
