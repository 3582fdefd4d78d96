// Package policy is the single decision point for ownership-based access.
// Every endpoint that compares the caller against a resource owner goes
// through here instead of repeating the comparison inline.
package policy

import (
	"github.com/google/uuid"
	"github.com/quizmaster/quizmaster-backend/internal/model"
)

// CanAccessOwned reports whether a caller may access a resource owned by
// ownerID. Teachers may access any resource; students only their own.
func CanAccessOwned(role model.Role, callerID, ownerID uuid.UUID) bool {
	if role == model.RoleTeacher {
		return true
	}
	return callerID == ownerID
}

// CanChangeRole reports whether a caller may change account roles.
func CanChangeRole(role model.Role) bool {
	return role == model.RoleTeacher
}
