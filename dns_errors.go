package main

import "errors"

// Classified lookup failures. Each validation step of a response has its own
// error so a caller (and the retry loop) can tell a silent server from a
// misbehaving one.
var (
	ErrInvalidServer   = errors.New("dns: no resolver server configured")
	ErrInvalidHostname = errors.New("dns: invalid hostname")
	ErrTimedOut        = errors.New("dns: no response within deadline")

	ErrTruncated             = errors.New("dns: packet shorter than declared content")
	ErrIDMismatch            = errors.New("dns: transaction id mismatch")
	ErrUnexpectedFlags       = errors.New("dns: unexpected flags word")
	ErrNoQuestion            = errors.New("dns: response carries no question")
	ErrNoAnswer              = errors.New("dns: response carries no answer")
	ErrMalformedName         = errors.New("dns: malformed name")
	ErrUnexpectedQType       = errors.New("dns: unexpected question type")
	ErrUnexpectedQClass      = errors.New("dns: unexpected question class")
	ErrUnexpectedAnswerType  = errors.New("dns: unexpected answer type")
	ErrUnexpectedAnswerClass = errors.New("dns: unexpected answer class")
	ErrUnexpectedDataLength  = errors.New("dns: unexpected answer data length")
)

// IsRetryable reports whether a later attempt could still succeed.
// InvalidServer and InvalidHostname are caller mistakes and fail the call
// before any packet is sent; everything else may be a stray or damaged
// datagram.
func IsRetryable(err error) bool {
	return err != nil &&
		!errors.Is(err, ErrInvalidServer) &&
		!errors.Is(err, ErrInvalidHostname)
}
