package core

import "fmt"

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

// ErrorConfiguration is fatal at startup: a partially-initialized grant
// table is a security defect, not a degraded feature.
type ErrorConfiguration struct {
	Reason string
}

func (e ErrorConfiguration) Error() string {
	return fmt.Sprintf("Invalid Configuration: %s", e.Reason)
}

func NewErrorConfiguration(format string, args ...any) ErrorConfiguration {
	return ErrorConfiguration{Reason: fmt.Sprintf(format, args...)}
}
