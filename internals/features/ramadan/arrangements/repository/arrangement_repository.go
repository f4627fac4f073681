package repository

import (
	"context"
	"errors"

	"alkareem_backend/internals/features/ramadan/arrangements/model"
)

// ErrNotFound: id tidak dikenal di store.
var ErrNotFound = errors.New("arrangement tidak ditemukan")

// ArrangementFilter menyaring hasil List. Semua field opsional,
// komposisi AND. Type dicocokkan exact case-insensitive, City substring
// case-insensitive terhadap location.
type ArrangementFilter struct {
	Status *model.ArrangementStatus
	Type   string
	City   string
}

// ArrangementRepository adalah listing store untuk arrangement.
// Controller/service tidak pernah pegang storage langsung, hanya
// interface ini: implementasi GORM untuk produksi, in-memory untuk
// test & deployment minimal.
//
// Kontrak:
//   - ID di-assign store saja, monotonic naik, tidak pernah dipakai ulang.
//   - Update atomic per record: mutator gagal → record tidak berubah;
//     sukses → updated_at di-stamp ulang.
//   - List mengembalikan urutan insert (arrangement_id naik).
type ArrangementRepository interface {
	Insert(ctx context.Context, arr *model.ArrangementModel) error
	GetByID(ctx context.Context, id int) (*model.ArrangementModel, error)
	Update(ctx context.Context, id int, mutate func(*model.ArrangementModel) error) (*model.ArrangementModel, error)
	List(ctx context.Context, filter ArrangementFilter) ([]model.ArrangementModel, error)
	CountByStatus(ctx context.Context) (map[model.ArrangementStatus]int64, error)
}

// statusToFlags menerjemahkan status turunan ke pasangan boolean kolom.
func statusToFlags(s model.ArrangementStatus) (active, approved bool) {
	switch s {
	case model.StatusPublished:
		return true, true
	case model.StatusPending:
		return true, false
	case model.StatusWithdrawn:
		return false, true
	default:
		return false, false
	}
}
