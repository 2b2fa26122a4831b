package address

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("address not found")
)

type Repository interface {
	List(userID int) ([]Address, error)
	Add(userID int, rec Record, now string) (Address, error)
	Update(userID int, rec Record, now string) (Address, error)
	Delete(userID int, addressID int) error
}

// InMemoryRepository for tests and for running the api without a database.
type InMemoryRepository struct {
	mu     sync.RWMutex
	data   map[int][]Address // keyed by userID
	nextID int
}

func NewInMemoryRepository(seed map[int][]Address) *InMemoryRepository {
	repo := &InMemoryRepository{data: map[int][]Address{}, nextID: 1}
	for userID, addrs := range seed {
		repo.data[userID] = append([]Address(nil), addrs...)
		for _, a := range addrs {
			if a.ID >= repo.nextID {
				repo.nextID = a.ID + 1
			}
		}
	}
	return repo
}

func (r *InMemoryRepository) List(userID int) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Address, len(r.data[userID]))
	copy(out, r.data[userID])
	return out, nil
}

func (r *InMemoryRepository) Add(userID int, rec Record, now string) (Address, error) {
	if userID <= 0 {
		return Address{}, ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID
	r.nextID++
	addr := Address{Record: rec, UserID: userID, CreatedAt: now, UpdatedAt: now}
	r.data[userID] = append(r.data[userID], addr)
	return addr, nil
}

func (r *InMemoryRepository) Update(userID int, rec Record, now string) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.data[userID] {
		if a.ID == rec.ID {
			a.Record = rec
			a.UpdatedAt = now
			r.data[userID][i] = a
			return a, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(userID int, addressID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	addrs := r.data[userID]
	for i, a := range addrs {
		if a.ID == addressID {
			r.data[userID] = append(addrs[:i:i], addrs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
