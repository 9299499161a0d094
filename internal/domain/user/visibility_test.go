package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestVisibilityFor(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		want  Visibility
	}{
		{
			name:  "admin sees everything",
			actor: Actor{UserID: 1, Role: RoleAdmin},
			want:  Visibility{},
		},
		{
			name:  "hr gated on manager approval",
			actor: Actor{UserID: 2, Role: RoleHR},
			want:  Visibility{ManagerApprovedOnly: true},
		},
		{
			name:  "manager scoped to own department",
			actor: Actor{UserID: 3, Role: RoleManager, EmployeeID: int64Ptr(7), DepartmentID: int64Ptr(2)},
			want:  Visibility{DepartmentID: int64Ptr(2)},
		},
		{
			name:  "manager without department falls back to own records",
			actor: Actor{UserID: 4, Role: RoleManager, EmployeeID: int64Ptr(9)},
			want:  Visibility{EmployeeID: int64Ptr(9)},
		},
		{
			name:  "regular user sees own requests only",
			actor: Actor{UserID: 5, Role: RoleUser, EmployeeID: int64Ptr(11)},
			want:  Visibility{EmployeeID: int64Ptr(11)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibilityFor(tt.actor)
			if tt.want.DepartmentID != nil {
				require.NotNil(t, got.DepartmentID)
				assert.Equal(t, *tt.want.DepartmentID, *got.DepartmentID)
			} else {
				assert.Nil(t, got.DepartmentID)
			}
			if tt.want.EmployeeID != nil {
				require.NotNil(t, got.EmployeeID)
				assert.Equal(t, *tt.want.EmployeeID, *got.EmployeeID)
			} else {
				assert.Nil(t, got.EmployeeID)
			}
			assert.Equal(t, tt.want.ManagerApprovedOnly, got.ManagerApprovedOnly)
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleHR))
	assert.True(t, ValidRole(RoleManager))
	assert.True(t, ValidRole(RoleUser))
	assert.False(t, ValidRole(Role("owner")))
	assert.False(t, ValidRole(Role("")))
}
