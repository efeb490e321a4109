package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
