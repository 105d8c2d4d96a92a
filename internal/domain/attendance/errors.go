package attendance

import "errors"

var (
	ErrInvalidEmployeeID = errors.New("employee id must be a positive integer")
)
