package user

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

// Repository stores accounts. Emails are compared as given; the service
// normalises them before they get here.
type Repository interface {
	FindByID(id int) (User, error)
	FindByEmail(email string) (User, error)
	// Insert assigns an id and fails with ErrEmailExists on a duplicate email.
	Insert(u User) (User, error)
}

// InMemoryRepository backs the api when no database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[int]User
	byEmail map[string]int
	lastID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: map[int]User{}, byEmail: map[string]int{}}
}

func (r *InMemoryRepository) FindByID(id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *InMemoryRepository) FindByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.byID[id], nil
}

func (r *InMemoryRepository) Insert(u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[u.Email]; taken {
		return User{}, ErrEmailExists
	}
	r.lastID++
	u.ID = r.lastID
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}
