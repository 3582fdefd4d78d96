package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/quizmaster/quizmaster-backend/internal/model"
)

func TestCanAccessOwned(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name     string
		role     model.Role
		callerID uuid.UUID
		want     bool
	}{
		{"student accesses own resource", model.RoleStudent, owner, true},
		{"student denied another's resource", model.RoleStudent, other, false},
		{"teacher accesses own resource", model.RoleTeacher, owner, true},
		{"teacher accesses another's resource", model.RoleTeacher, other, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessOwned(tt.role, tt.callerID, owner); got != tt.want {
				t.Errorf("CanAccessOwned(%s) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestCanChangeRole(t *testing.T) {
	if !CanChangeRole(model.RoleTeacher) {
		t.Error("teachers should be able to change roles")
	}
	if CanChangeRole(model.RoleStudent) {
		t.Error("students should not be able to change roles")
	}
}
