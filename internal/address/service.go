package address

import (
	"fmt"
	"time"
)

// ValidationError is returned when a record fails Validate.
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid address: %d field(s) rejected", len(e.Errors))
}

// Service orchestrates address storage. Every mutation answers with the
// user's complete address list so clients can replace their copy wholesale.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func (s *Service) GetAddresses(userID int) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.List(userID)
}

func (s *Service) AddAddress(userID int, rec Record) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	if errs := Validate(rec); !errs.Valid() {
		return nil, &ValidationError{Errors: errs}
	}
	rec.ID = 0
	if _, err := s.repo.Add(userID, rec, s.timestamp()); err != nil {
		return nil, fmt.Errorf("add address: %w", err)
	}
	return s.repo.List(userID)
}

func (s *Service) UpdateAddress(userID int, rec Record) ([]Address, error) {
	if userID <= 0 || rec.ID <= 0 {
		return nil, ErrNotFound
	}
	if errs := Validate(rec); !errs.Valid() {
		return nil, &ValidationError{Errors: errs}
	}
	if _, err := s.repo.Update(userID, rec, s.timestamp()); err != nil {
		return nil, fmt.Errorf("update address %d: %w", rec.ID, err)
	}
	return s.repo.List(userID)
}

func (s *Service) DeleteAddress(userID, addressID int) ([]Address, error) {
	if userID <= 0 || addressID <= 0 {
		return nil, ErrNotFound
	}
	if err := s.repo.Delete(userID, addressID); err != nil {
		return nil, fmt.Errorf("delete address %d: %w", addressID, err)
	}
	return s.repo.List(userID)
}
