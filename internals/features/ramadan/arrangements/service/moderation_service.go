package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/datatypes"

	"alkareem_backend/internals/features/ramadan/arrangements/dto"
	"alkareem_backend/internals/features/ramadan/arrangements/model"
	"alkareem_backend/internals/features/ramadan/arrangements/repository"
)

// ModerationService memegang state machine lifecycle arrangement:
//
//	pending → published  (approve, admin)
//	pending → rejected   (reject, admin, dengan reason)
//	pending/published → withdrawn-equivalent (delete oleh creator/admin)
//	rejected & withdrawn terminal
//
// Semua mutasi lewat repository.Update supaya atomic per record.
type ModerationService struct {
	Repo repository.ArrangementRepository
}

func NewModerationService(repo repository.ArrangementRepository) *ModerationService {
	return &ModerationService{Repo: repo}
}

// Create: arranger/admin submit arrangement baru → state pending,
// menunggu approval admin.
func (s *ModerationService) Create(ctx context.Context, actor Actor, req dto.CreateArrangementRequest) (*model.ArrangementModel, error) {
	if err := Authorize(actor, ActionCreate, nil); err != nil {
		return nil, err
	}

	kind := model.NormalizeArrangementType(req.ArrangementType)
	if kind == "" {
		return nil, fmt.Errorf("%w: arrangement_type harus Sehri atau Iftari", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ArrangementLocation) == "" ||
		strings.TrimSpace(req.ArrangementDescription) == "" ||
		strings.TrimSpace(req.ArrangementOrganizer) == "" {
		return nil, fmt.Errorf("%w: location, description, dan organizer wajib diisi", ErrInvalidInput)
	}

	coords, err := parseCoordinates(req.ArrangementCoordinates)
	if err != nil {
		return nil, err
	}

	arr := model.ArrangementModel{
		ArrangementType:        kind,
		ArrangementLocation:    strings.TrimSpace(req.ArrangementLocation),
		ArrangementDescription: req.ArrangementDescription,
		ArrangementOrganizer:   strings.TrimSpace(req.ArrangementOrganizer),
		ArrangementContact:     strings.TrimSpace(req.ArrangementContact),
		ArrangementMapLink:     strings.TrimSpace(req.ArrangementMapLink),
		ArrangementCoordinates: coords,
		ArrangementCreatedBy:   actor.ID,
		ArrangementIsActive:    true,  // aktif sejak submit
		ArrangementIsApproved:  false, // tampil publik baru setelah approve
	}

	if err := s.Repo.Insert(ctx, &arr); err != nil {
		return nil, storageErr(err)
	}
	return &arr, nil
}

// Approve: admin menerbitkan arrangement pending. Approve ulang
// terhadap record yang sudah published = no-op idempotent.
func (s *ModerationService) Approve(ctx context.Context, actor Actor, id int) (*model.ArrangementModel, error) {
	if err := Authorize(actor, ActionApprove, nil); err != nil {
		return nil, err
	}

	updated, err := s.Repo.Update(ctx, id, func(arr *model.ArrangementModel) error {
		switch arr.Status() {
		case model.StatusPublished:
			// sudah published → biarkan, audit tidak ditulis ulang
			return nil
		case model.StatusPending:
			now := time.Now().UTC()
			action := model.ModerationActionApproved
			arr.ArrangementIsApproved = true
			arr.ArrangementModeratedAction = &action
			arr.ArrangementModeratedBy = &actor.ID
			arr.ArrangementModeratedAt = &now
			arr.ArrangementModerationReason = nil
			return nil
		default:
			return fmt.Errorf("%w: tidak bisa approve arrangement %s", ErrInvalidTransition, arr.Status())
		}
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

// Reject: admin menolak arrangement pending, reason tercatat di audit.
// Record yang sudah terminal (rejected/withdrawn) atau sudah published
// tidak bisa di-reject.
func (s *ModerationService) Reject(ctx context.Context, actor Actor, id int, reason string) (*model.ArrangementModel, error) {
	if err := Authorize(actor, ActionReject, nil); err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "No reason provided"
	}

	updated, err := s.Repo.Update(ctx, id, func(arr *model.ArrangementModel) error {
		if arr.Status() != model.StatusPending {
			return fmt.Errorf("%w: tidak bisa reject arrangement %s", ErrInvalidTransition, arr.Status())
		}
		now := time.Now().UTC()
		action := model.ModerationActionRejected
		arr.ArrangementIsActive = false
		arr.ArrangementIsApproved = false
		arr.ArrangementModeratedAction = &action
		arr.ArrangementModeratedBy = &actor.ID
		arr.ArrangementModeratedAt = &now
		arr.ArrangementModerationReason = &reason
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

// Edit: creator/admin mengubah field non-status selama record masih
// aktif (pending atau published). Type, created_by, dan kedua flag
// status tidak pernah tersentuh dari sini.
func (s *ModerationService) Edit(ctx context.Context, actor Actor, id int, req dto.UpdateArrangementRequest) (*model.ArrangementModel, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if err := Authorize(actor, ActionEdit, existing); err != nil {
		return nil, err
	}

	coords, err := parseCoordinates(req.ArrangementCoordinates)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.Update(ctx, id, func(arr *model.ArrangementModel) error {
		if !arr.ArrangementIsActive {
			return fmt.Errorf("%w: arrangement %s tidak bisa diedit", ErrInvalidTransition, arr.Status())
		}
		if req.ArrangementDescription != nil {
			arr.ArrangementDescription = *req.ArrangementDescription
		}
		if req.ArrangementOrganizer != nil {
			arr.ArrangementOrganizer = strings.TrimSpace(*req.ArrangementOrganizer)
		}
		if req.ArrangementContact != nil {
			arr.ArrangementContact = strings.TrimSpace(*req.ArrangementContact)
		}
		if req.ArrangementMapLink != nil {
			arr.ArrangementMapLink = strings.TrimSpace(*req.ArrangementMapLink)
		}
		if coords != nil {
			arr.ArrangementCoordinates = coords
		}
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

// Delete: soft-delete oleh creator/admin. Published → withdrawn,
// pending → nonaktif (setara rejected di pasangan boolean, dibedakan
// lewat audit action "withdrawn"). is_active tidak pernah bisa
// dinyalakan lagi setelah ini.
func (s *ModerationService) Delete(ctx context.Context, actor Actor, id int) (*model.ArrangementModel, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if err := Authorize(actor, ActionDelete, existing); err != nil {
		return nil, err
	}

	updated, err := s.Repo.Update(ctx, id, func(arr *model.ArrangementModel) error {
		if !arr.ArrangementIsActive {
			return fmt.Errorf("%w: arrangement %s sudah nonaktif", ErrInvalidTransition, arr.Status())
		}
		now := time.Now().UTC()
		action := model.ModerationActionWithdrawn
		arr.ArrangementIsActive = false
		arr.ArrangementModeratedAction = &action
		arr.ArrangementModeratedBy = &actor.ID
		arr.ArrangementModeratedAt = &now
		arr.ArrangementModerationReason = nil
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

// parseCoordinates memvalidasi {lat,lng}: keduanya wajib ada dan finite.
// nil input = arrangement tanpa marker, itu valid.
func parseCoordinates(req *dto.CoordinatesRequest) (*datatypes.JSONType[model.ArrangementCoordinates], error) {
	if req == nil {
		return nil, nil
	}
	if req.Lat == nil || req.Lng == nil {
		return nil, fmt.Errorf("%w: coordinates harus {lat: number, lng: number}", ErrInvalidInput)
	}
	lat, lng := *req.Lat, *req.Lng
	if !isFinite(lat) || !isFinite(lng) {
		return nil, fmt.Errorf("%w: lat/lng harus angka finite", ErrInvalidInput)
	}
	return model.NewCoordinates(lat, lng), nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// mapRepoErr menerjemahkan error repository ke taksonomi service.
func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrForbidden):
		return err
	default:
		return storageErr(err)
	}
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
