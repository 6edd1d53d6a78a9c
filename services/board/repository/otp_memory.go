package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/reelboard/reelboard/internal/pkg/models"
)

// MemoryOTPStore keeps OTP records in a process-local map. Records survive
// only as long as the process; a restart clears all pending resets.
type MemoryOTPStore struct {
	mu      sync.RWMutex
	records map[string]models.OTP
}

// NewMemoryOTPStore creates an in-memory OTP store
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		records: make(map[string]models.OTP),
	}
}

// Put stores the record, overwriting any existing one for the same email.
func (s *MemoryOTPStore) Put(_ context.Context, otp *models.OTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[strings.ToLower(otp.Email)] = *otp
	return nil
}

// Get returns a copy of the record for the email, or nil if absent.
func (s *MemoryOTPStore) Get(_ context.Context, email string) (*models.OTP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Delete removes the record for the email. Deleting an absent key is a no-op.
func (s *MemoryOTPStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, strings.ToLower(email))
	return nil
}
