package lookuplog

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const DefaultRecentLimit = 20

type Repository interface {
	LogLookup(ctx context.Context, record *LookupRecord) error
	RecentLookups(ctx context.Context, city string, limit int) ([]LookupRecord, error)
}

type LookupSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LookupSQLRepository{db: db}
}

func (r *LookupSQLRepository) LogLookup(ctx context.Context, record *LookupRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(record).Error
}

// RecentLookups returns the newest records first. An empty city matches every city.
func (r *LookupSQLRepository) RecentLookups(ctx context.Context, city string, limit int) ([]LookupRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	query := r.db.WithContext(ctx)
	if city != "" {
		query = query.Where("city = ?", city)
	}

	var records []LookupRecord
	err := query.Order("created_at DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
