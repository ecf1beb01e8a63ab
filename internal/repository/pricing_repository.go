package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
)

var ErrPricingNotFound = errors.New("pricing entry not found")

type PricingRepository interface {
	Create(ctx context.Context, entry *domain.PricingEntry) error
	FindByID(ctx context.Context, id uint) (*domain.PricingEntry, error)
	List(ctx context.Context) ([]domain.PricingEntry, error)
	Update(ctx context.Context, id uint, updates map[string]any) error
	DeleteByID(ctx context.Context, id uint) error
}

type GormPricingRepository struct{ db *gorm.DB }

func NewPricingRepository(db *gorm.DB) PricingRepository {
	return &GormPricingRepository{db: db}
}

func (r *GormPricingRepository) Create(ctx context.Context, entry *domain.PricingEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "pricing", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(ctx, "pricing", "create", "success")
	return nil
}

func (r *GormPricingRepository) FindByID(ctx context.Context, id uint) (*domain.PricingEntry, error) {
	var entry domain.PricingEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(ctx, "pricing", "find_by_id", "not_found")
			return nil, ErrPricingNotFound
		}
		observability.RecordRepositoryOperation(ctx, "pricing", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "pricing", "find_by_id", "success")
	return &entry, nil
}

func (r *GormPricingRepository) List(ctx context.Context) ([]domain.PricingEntry, error) {
	entries := []domain.PricingEntry{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&entries).Error; err != nil {
		observability.RecordRepositoryOperation(ctx, "pricing", "list", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(ctx, "pricing", "list", "success")
	return entries, nil
}

func (r *GormPricingRepository) Update(ctx context.Context, id uint, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.PricingEntry{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		observability.RecordRepositoryOperation(ctx, "pricing", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(ctx, "pricing", "update", "not_found")
		return ErrPricingNotFound
	}
	observability.RecordRepositoryOperation(ctx, "pricing", "update", "success")
	return nil
}

func (r *GormPricingRepository) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.PricingEntry{}, id)
	if res.Error != nil {
		observability.RecordRepositoryOperation(ctx, "pricing", "delete_by_id", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(ctx, "pricing", "delete_by_id", "not_found")
		return ErrPricingNotFound
	}
	observability.RecordRepositoryOperation(ctx, "pricing", "delete_by_id", "success")
	return nil
}
