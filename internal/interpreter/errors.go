package interpreter

import "errors"

var ErrUnreadableConfig = errors.New("interpreter configuration is unreadable")
