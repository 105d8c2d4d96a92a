package employee

import "errors"

var (
	ErrNIKExists         = errors.New("NIK already registered")
	ErrInvalidEmployeeID = errors.New("employee id must be a positive integer")
)
