// Package repository is the persistence layer for accounts and complaints.
package repository

import (
	"context" // Request scoped sessions
	"errors"  // Error matching
	"fmt"     // Error wrapping

	"complaint_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Store wraps an explicitly constructed *gorm.DB. Every method opens a
// session bound to ctx, so the pooled connection goes back when it returns.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store backed by db
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateAccount inserts a new account and fills in its ID
func (s *Store) CreateAccount(ctx context.Context, account *domain.Account) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Account{}).Where("username = ?", account.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateUsername
		}
		return tx.Create(account).Error
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicateUsername), errors.Is(err, gorm.ErrDuplicatedKey):
		// The unique index catches racing registrations the count missed
		return domain.ErrDuplicateUsername
	default:
		return fmt.Errorf("create account: %w", err)
	}
}

// AccountExists reports whether an account with the given ID exists
func (s *Store) AccountExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.Account{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("lookup account %d: %w", id, err)
	}
	return count > 0, nil
}

// CreateComplaint inserts an unresolved complaint owned by an existing account
func (s *Store) CreateComplaint(ctx context.Context, complaint *domain.Complaint) error {
	complaint.Resolved = false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := NewStore(tx).AccountExists(ctx, complaint.CustomerID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrCustomerNotFound
		}
		return tx.Omit("Customer").Create(complaint).Error
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrCustomerNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrCustomerNotFound
	default:
		return fmt.Errorf("create complaint: %w", err)
	}
}

// ListComplaints returns complaints in insertion order. A nil filter returns
// all of them, otherwise only those whose resolved flag equals *resolved.
func (s *Store) ListComplaints(ctx context.Context, resolved *bool) ([]domain.Complaint, error) {
	query := s.db.WithContext(ctx).Model(&domain.Complaint{})
	if resolved != nil {
		query = query.Where("resolved = ?", *resolved)
	}
	complaints := make([]domain.Complaint, 0)
	if err := query.Order("id asc").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

// GetComplaint looks a complaint up by ID
func (s *Store) GetComplaint(ctx context.Context, id uint) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := s.db.WithContext(ctx).First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("get complaint %d: %w", id, err)
	}
	return &complaint, nil
}

// ResolveComplaint marks a complaint resolved and returns the stored record.
// Resolving an already resolved complaint succeeds and changes nothing.
func (s *Store) ResolveComplaint(ctx context.Context, id uint) (*domain.Complaint, error) {
	var complaint domain.Complaint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&complaint, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&complaint).Update("resolved", true).Error; err != nil {
			return err
		}
		// Re-read so the caller sees what was committed
		return tx.First(&complaint, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("resolve complaint %d: %w", id, err)
	}
	return &complaint, nil
}

// Ping checks that the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
