package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameExists          = errors.New("username already registered")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrAdminAccessRequired     = errors.New("admin access required")
	ErrApproverAccessRequired  = errors.New("approver access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
