package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCompanyInactive    = errors.New("company is inactive")
	ErrUserInactive       = errors.New("user is inactive")
	ErrRenderFailed       = errors.New("report rendering failed")
	ErrArchiveFailed      = errors.New("report archive upload failed")
)
