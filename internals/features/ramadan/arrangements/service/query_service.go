package service

import (
	"context"
	"fmt"

	"alkareem_backend/internals/features/ramadan/arrangements/dto"
	"alkareem_backend/internals/features/ramadan/arrangements/model"
	"alkareem_backend/internals/features/ramadan/arrangements/repository"
)

// Panjang maksimum excerpt deskripsi pada map marker
const markerExcerptLen = 100

// QueryService: sisi baca. Caller publik hanya pernah melihat record
// published; pending/rejected/withdrawn tidak bocor, bahkan
// keberadaannya pun tidak (GetPublic balas 404, bukan 403).
type QueryService struct {
	Repo repository.ArrangementRepository
}

func NewQueryService(repo repository.ArrangementRepository) *QueryService {
	return &QueryService{Repo: repo}
}

// PublicList: daftar published, filter opsional type (exact,
// case-insensitive) dan city (substring location, case-insensitive),
// komposisi AND, urutan insert. Type yang tidak dikenal diabaikan,
// bukan error.
func (s *QueryService) PublicList(ctx context.Context, kind, city string) ([]model.ArrangementModel, error) {
	published := model.StatusPublished
	filter := repository.ArrangementFilter{
		Status: &published,
		Type:   model.NormalizeArrangementType(kind),
		City:   city,
	}
	out, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

// GetPublic: record published by id. Record pending/rejected/withdrawn
// dibalas ErrNotFound, tidak bisa dibedakan dari id yang tidak ada.
func (s *QueryService) GetPublic(ctx context.Context, id int) (*model.ArrangementModel, error) {
	arr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !arr.IsPublished() {
		return nil, ErrNotFound
	}
	return arr, nil
}

// MapMarkers: proyeksi marker peta dari record published yang punya
// koordinat. Deskripsi dipotong 100 karakter + "..." kalau lebih.
func (s *QueryService) MapMarkers(ctx context.Context) ([]dto.MapMarkerDTO, error) {
	published := model.StatusPublished
	records, err := s.Repo.List(ctx, repository.ArrangementFilter{Status: &published})
	if err != nil {
		return nil, storageErr(err)
	}

	markers := make([]dto.MapMarkerDTO, 0, len(records))
	for _, arr := range records {
		coords := arr.Coordinates()
		if coords == nil {
			continue
		}
		icon := "restaurant"
		if arr.ArrangementType == model.ArrangementTypeSehri {
			icon = "mosque"
		}
		markers = append(markers, dto.MapMarkerDTO{
			ArrangementID: arr.ArrangementID,
			Type:          arr.ArrangementType,
			Title:         fmt.Sprintf("%s - %s", arr.ArrangementType, arr.ArrangementLocation),
			Description:   excerpt(arr.ArrangementDescription),
			Organizer:     arr.ArrangementOrganizer,
			Coordinates:   *coords,
			Contact:       arr.ArrangementContact,
			Icon:          icon,
		})
	}
	return markers, nil
}

// PendingList: antrean moderasi (admin), urutan insert.
func (s *QueryService) PendingList(ctx context.Context) ([]model.ArrangementModel, error) {
	pending := model.StatusPending
	out, err := s.Repo.List(ctx, repository.ArrangementFilter{Status: &pending})
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

// DashboardStats: jumlah arrangement per state untuk dashboard admin.
func (s *QueryService) DashboardStats(ctx context.Context) (dto.ArrangementStatsDTO, error) {
	counts, err := s.Repo.CountByStatus(ctx)
	if err != nil {
		return dto.ArrangementStatsDTO{}, storageErr(err)
	}
	stats := dto.ArrangementStatsDTO{
		Pending:   counts[model.StatusPending],
		Published: counts[model.StatusPublished],
		Rejected:  counts[model.StatusRejected],
		Withdrawn: counts[model.StatusWithdrawn],
	}
	stats.Total = stats.Pending + stats.Published + stats.Rejected + stats.Withdrawn
	return stats, nil
}

// excerpt memotong deskripsi di 100 karakter (rune) + ellipsis.
func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= markerExcerptLen {
		return s
	}
	return string(runes[:markerExcerptLen]) + "..."
}
