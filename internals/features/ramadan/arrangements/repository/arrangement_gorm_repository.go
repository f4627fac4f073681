package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alkareem_backend/internals/features/ramadan/arrangements/model"
)

// GormArrangementRepository: implementasi produksi di atas Postgres.
// ID monotonic dijamin bigserial; atomisitas Update dijamin
// SELECT ... FOR UPDATE di dalam transaksi.
type GormArrangementRepository struct {
	DB *gorm.DB
}

func NewGormArrangementRepository(db *gorm.DB) *GormArrangementRepository {
	return &GormArrangementRepository{DB: db}
}

func (r *GormArrangementRepository) Insert(ctx context.Context, arr *model.ArrangementModel) error {
	if err := r.DB.WithContext(ctx).Create(arr).Error; err != nil {
		return fmt.Errorf("insert arrangement: %w", err)
	}
	return nil
}

func (r *GormArrangementRepository) GetByID(ctx context.Context, id int) (*model.ArrangementModel, error) {
	var arr model.ArrangementModel
	err := r.DB.WithContext(ctx).
		Where("arrangement_id = ?", id).
		First(&arr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get arrangement %d: %w", id, err)
	}
	return &arr, nil
}

func (r *GormArrangementRepository) Update(ctx context.Context, id int, mutate func(*model.ArrangementModel) error) (*model.ArrangementModel, error) {
	var updated *model.ArrangementModel
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var arr model.ArrangementModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("arrangement_id = ?", id).
			First(&arr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("lock arrangement %d: %w", id, err)
		}
		if err := mutate(&arr); err != nil {
			return err
		}
		if err := tx.Save(&arr).Error; err != nil {
			return fmt.Errorf("save arrangement %d: %w", id, err)
		}
		updated = &arr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *GormArrangementRepository) List(ctx context.Context, filter ArrangementFilter) ([]model.ArrangementModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.ArrangementModel{})

	if filter.Status != nil {
		active, approved := statusToFlags(*filter.Status)
		q = q.Where("arrangement_is_active = ? AND arrangement_is_approved = ?", active, approved)
	}
	if t := strings.TrimSpace(filter.Type); t != "" {
		q = q.Where("LOWER(arrangement_type) = LOWER(?)", t)
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		q = q.Where("arrangement_location ILIKE ?", "%"+city+"%")
	}

	var out []model.ArrangementModel
	if err := q.Order("arrangement_id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list arrangements: %w", err)
	}
	return out, nil
}

func (r *GormArrangementRepository) CountByStatus(ctx context.Context) (map[model.ArrangementStatus]int64, error) {
	type row struct {
		IsActive   bool
		IsApproved bool
		Total      int64
	}
	var rows []row
	err := r.DB.WithContext(ctx).Model(&model.ArrangementModel{}).
		Select("arrangement_is_active AS is_active, arrangement_is_approved AS is_approved, COUNT(*) AS total").
		Group("arrangement_is_active, arrangement_is_approved").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count arrangements: %w", err)
	}

	counts := make(map[model.ArrangementStatus]int64, 4)
	for _, r := range rows {
		m := model.ArrangementModel{ArrangementIsActive: r.IsActive, ArrangementIsApproved: r.IsApproved}
		counts[m.Status()] += r.Total
	}
	return counts, nil
}
