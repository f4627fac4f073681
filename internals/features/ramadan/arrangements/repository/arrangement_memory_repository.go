package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"alkareem_backend/internals/features/ramadan/arrangements/model"
)

// MemoryArrangementRepository: store in-memory untuk unit test dan
// deployment minimal tanpa Postgres. Semua operasi dilindungi satu
// mutex; id = max id yang pernah ada + 1 (tidak pernah dipakai ulang,
// juga setelah soft-delete).
type MemoryArrangementRepository struct {
	mu     sync.Mutex
	byID   map[int]model.ArrangementModel
	order  []int // urutan insert
	lastID int
}

func NewMemoryArrangementRepository() *MemoryArrangementRepository {
	return &MemoryArrangementRepository{
		byID: make(map[int]model.ArrangementModel),
	}
}

func (r *MemoryArrangementRepository) Insert(_ context.Context, arr *model.ArrangementModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	now := time.Now().UTC()

	arr.ArrangementID = r.lastID
	arr.ArrangementCreatedAt = now
	arr.ArrangementUpdatedAt = &now

	r.byID[arr.ArrangementID] = *arr
	r.order = append(r.order, arr.ArrangementID)
	return nil
}

func (r *MemoryArrangementRepository) GetByID(_ context.Context, id int) (*model.ArrangementModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	arr, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &arr, nil
}

func (r *MemoryArrangementRepository) Update(_ context.Context, id int, mutate func(*model.ArrangementModel) error) (*model.ArrangementModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	arr, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	// mutator bekerja pada salinan: gagal → record asli tidak tersentuh
	if err := mutate(&arr); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	arr.ArrangementUpdatedAt = &now
	r.byID[id] = arr

	out := arr
	return &out, nil
}

func (r *MemoryArrangementRepository) List(_ context.Context, filter ArrangementFilter) ([]model.ArrangementModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.ArrangementModel, 0, len(r.order))
	for _, id := range r.order {
		arr := r.byID[id]
		if !matchFilter(&arr, filter) {
			continue
		}
		out = append(out, arr)
	}
	return out, nil
}

func (r *MemoryArrangementRepository) CountByStatus(_ context.Context) (map[model.ArrangementStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[model.ArrangementStatus]int64, 4)
	for _, id := range r.order {
		arr := r.byID[id]
		counts[arr.Status()]++
	}
	return counts, nil
}

func matchFilter(arr *model.ArrangementModel, filter ArrangementFilter) bool {
	if filter.Status != nil && arr.Status() != *filter.Status {
		return false
	}
	if t := strings.TrimSpace(filter.Type); t != "" {
		if !strings.EqualFold(arr.ArrangementType, t) {
			return false
		}
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		if !strings.Contains(strings.ToLower(arr.ArrangementLocation), strings.ToLower(city)) {
			return false
		}
	}
	return true
}
