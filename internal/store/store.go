// internal/store/store.go
package store

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/minimarket/marketplace-backend/internal/apperrors"
)

// Store is the only reader and writer of marketplace state. It is
// constructed once at startup and handed to the services explicitly.
//
// With a nil database handle the store runs degraded: reads return empty
// results with a logged warning, writes fail with ErrUnavailable. Absent
// rows are signalled as (nil, nil), never as an error.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Available reports whether a database connection is configured.
func (s *Store) Available() bool {
	return s.db != nil
}

func (s *Store) warnDegraded(op string) {
	logrus.WithField("op", op).Warn("storage not configured; returning empty result")
}

func (s *Store) writeGuard() error {
	if s.db == nil {
		return apperrors.ErrUnavailable
	}
	return nil
}
