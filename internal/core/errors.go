package core

import "errors"

var errClassifierUnavailable = errors.New("no classifier configured")
