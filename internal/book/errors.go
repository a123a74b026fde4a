package book

import (
	"errors"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Sentinel errors forming the recoverable error taxonomy of the core.
// Callers branch with errors.Is; the messages are user-facing.
var (
	ErrInvalidPhone     = errors.New(config.ErrMsgInvalidPhone)
	ErrInvalidDate      = errors.New(config.ErrMsgInvalidDate)
	ErrOldPhoneNotFound = errors.New(config.ErrMsgOldPhoneNotFound)
	ErrContactNotFound  = errors.New(config.ErrMsgContactNotFound)
	ErrUsage            = errors.New(config.ErrMsgUsage)
)
