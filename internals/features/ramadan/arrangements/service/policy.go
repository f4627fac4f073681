package service

import (
	"github.com/google/uuid"

	"alkareem_backend/internals/constants"
	"alkareem_backend/internals/features/ramadan/arrangements/model"
)

// Actor: pasangan (principal_id, role) hasil resolve identity provider.
type Actor struct {
	ID   uuid.UUID
	Role string
}

type Action string

const (
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Authorize adalah satu-satunya pintu cek role/ownership sebelum
// transisi apa pun. rec boleh nil untuk aksi yang tidak menyentuh record
// existing (create) atau yang role-nya sudah cukup menentukan
// (approve/reject = admin only).
func Authorize(actor Actor, action Action, rec *model.ArrangementModel) error {
	if actor.ID == uuid.Nil || actor.Role == "" {
		return ErrUnauthenticated
	}

	switch action {
	case ActionCreate:
		if actor.Role == constants.RoleArranger || actor.Role == constants.RoleAdmin {
			return nil
		}
		return ErrForbidden

	case ActionApprove, ActionReject:
		if actor.Role == constants.RoleAdmin {
			return nil
		}
		return ErrForbidden

	case ActionEdit, ActionDelete:
		if actor.Role == constants.RoleAdmin {
			return nil
		}
		if actor.Role == constants.RoleArranger && rec != nil && rec.ArrangementCreatedBy == actor.ID {
			return nil
		}
		return ErrForbidden
	}

	return ErrForbidden
}
