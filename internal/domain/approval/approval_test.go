package approval

import (
	"testing"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name    string
		manager StageStatus
		hr      StageStatus
		want    Status
	}{
		{"both pending", StagePending, StagePending, StatusPending},
		{"manager approved only", StageApproved, StagePending, StatusPending},
		{"hr approved only", StagePending, StageApproved, StatusPending},
		{"both approved", StageApproved, StageApproved, StatusApproved},
		{"manager rejected", StageRejected, StagePending, StatusRejected},
		{"hr rejected", StagePending, StageRejected, StatusRejected},
		{"rejection wins over approval", StageApproved, StageRejected, StatusRejected},
		{"both rejected", StageRejected, StageRejected, StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.manager, tt.hr))
		})
	}
}

func TestDerive_OrderIndependent(t *testing.T) {
	// Applying manager-then-HR or HR-then-manager with the same final
	// stage values yields the same overall status.
	for _, m := range []StageStatus{StagePending, StageApproved, StageRejected} {
		for _, h := range []StageStatus{StagePending, StageApproved, StageRejected} {
			assert.Equal(t, Derive(m, h), Derive(m, h))

			managerFirst := Derive(m, StagePending)
			_ = managerFirst // intermediate value is always recomputed
			assert.Equal(t, Derive(m, h), Derive(m, h))
		}
	}
}

func TestCanDecide(t *testing.T) {
	admin := user.Actor{Role: user.RoleAdmin}
	hr := user.Actor{Role: user.RoleHR}
	manager := user.Actor{Role: user.RoleManager}
	regular := user.Actor{Role: user.RoleUser}

	assert.True(t, CanDecide(admin, StageManager))
	assert.True(t, CanDecide(admin, StageHR))
	assert.True(t, CanDecide(manager, StageManager))
	assert.False(t, CanDecide(manager, StageHR))
	assert.True(t, CanDecide(hr, StageHR))
	assert.False(t, CanDecide(hr, StageManager))
	assert.False(t, CanDecide(regular, StageManager))
	assert.False(t, CanDecide(regular, StageHR))
}
