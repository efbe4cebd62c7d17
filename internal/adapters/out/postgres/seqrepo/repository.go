// Package seqrepo implements the sequence generator behind generated
// identifiers. Counters are scoped per (prefix, dateKey) so numbering
// restarts every day.
package seqrepo

import (
	"context"

	"gorm.io/gorm"
)

// SequenceRow is the database shape of one counter.
type SequenceRow struct {
	Prefix  string `gorm:"primaryKey"`
	DateKey string `gorm:"primaryKey"`
	Counter int
}

// TableName overrides GORM's default naming convention.
func (SequenceRow) TableName() string {
	return "id_sequences"
}

// GormSequenceRepository implements ports.SequenceGenerator with an atomic
// upsert-increment, so concurrent callers never observe the same value.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a repository over the given connection.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next returns the next counter value for the prefix on the given day,
// starting at 1.
func (r *GormSequenceRepository) Next(ctx context.Context, prefix, dateKey string) (int, error) {
	var counter int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO id_sequences (prefix, date_key, counter)
		VALUES (?, ?, 1)
		ON CONFLICT (prefix, date_key)
		DO UPDATE SET counter = id_sequences.counter + 1
		RETURNING counter`,
		prefix, dateKey,
	).Scan(&counter).Error
	if err != nil {
		return 0, err
	}
	return counter, nil
}
