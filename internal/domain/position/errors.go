package position

import "errors"

var (
	ErrPositionNameExists = errors.New("position with this name already exists")
)
