package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/octofitapp/octofit-tracker/internal/entity"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	Create(ctx context.Context, entry *entity.LeaderboardEntry) error
	FindAll(ctx context.Context) ([]*entity.LeaderboardEntry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LeaderboardEntry, error)
	Update(ctx context.Context, entry *entity.LeaderboardEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceAll discards every existing entry and inserts the given set in
	// order inside a single transaction.
	ReplaceAll(ctx context.Context, entries []entity.LeaderboardEntry) error
	Count(ctx context.Context) (int64, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) Create(ctx context.Context, entry *entity.LeaderboardEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *leaderboardRepository) FindAll(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	var entries []*entity.LeaderboardEntry
	if err := r.db.WithContext(ctx).Order("rank").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *leaderboardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LeaderboardEntry, error) {
	var entry entity.LeaderboardEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *leaderboardRepository) Update(ctx context.Context, entry *entity.LeaderboardEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *leaderboardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.LeaderboardEntry{}, "id = ?", id).Error
}

func (r *leaderboardRepository) ReplaceAll(ctx context.Context, entries []entity.LeaderboardEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.LeaderboardEntry{}).Error; err != nil {
			return err
		}

		// Insert in rank order; not required semantically but keeps the
		// physical order readable when debugging.
		for i := range entries {
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *leaderboardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.LeaderboardEntry{}).Count(&count).Error
	return count, err
}
