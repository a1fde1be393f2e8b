package client

import (
	"errors"

	"github.com/dmitrijs2005/garden/internal/common"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches common.ErrorUnauthorized with errors.Is.
	ErrUnauthorized          = common.ErrorUnauthorized
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
