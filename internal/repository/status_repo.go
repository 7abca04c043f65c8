package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MagnetoUSP/PixV3/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatusStore is the key-value surface for last-known payment statuses.
// Get reports absence via found=false, not an error. Callers on hot paths
// treat Set failures as best-effort and only log them.
type StatusStore interface {
	Get(ctx context.Context, paymentID string) (status string, found bool, err error)
	Set(ctx context.Context, paymentID, status string) error
}

// GormStatusStore persists statuses in a single MySQL table, one row per
// provider payment ID.
type GormStatusStore struct {
	db *gorm.DB
}

func NewGormStatusStore(db *gorm.DB) *GormStatusStore {
	return &GormStatusStore{db: db}
}

func (s *GormStatusStore) Get(ctx context.Context, paymentID string) (string, bool, error) {
	row := s.db.WithContext(ctx).
		Model(&models.PaymentStatus{}).
		Select("status").
		Where("payment_id = ?", paymentID).
		Row()
	var v any
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return decodeText(v), true, nil
}

func (s *GormStatusStore) Set(ctx context.Context, paymentID, status string) error {
	entry := models.PaymentStatus{PaymentID: paymentID, Status: status}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "payment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&entry).Error
}

// decodeText normalizes driver values to text. The MySQL driver hands string
// columns back as []byte unless the result type is cached.
func decodeText(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
