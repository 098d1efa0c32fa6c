package models

import "errors"

// Request-rejection errors. The controller maps these to 401/400; everything
// else surfaces as a 500 with the underlying message.
var (
	ErrBadSecret = errors.New("bad secret")
	ErrBadSignal = errors.New("signal must be BUY or SELL")
)
