package admin

import "errors"

var (
	ErrAuthenticationFailed = errors.New("email atau password salah")
)
