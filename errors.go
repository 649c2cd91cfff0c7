package goCertify

import "errors"

var (
	// ErrEngineNotReady is an exported constant or variable used by the certificate engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrSessionRequired is an exported constant or variable used by the certificate engine.
	ErrSessionRequired = errors.New("session required")
	// ErrEventUIDRequired is an exported constant or variable used by the certificate engine.
	ErrEventUIDRequired = errors.New("event uid required")
	// ErrParticipantUIDRequired is an exported constant or variable used by the certificate engine.
	ErrParticipantUIDRequired = errors.New("participant uid required")
	// ErrUserUIDRequired is an exported constant or variable used by the certificate engine.
	ErrUserUIDRequired = errors.New("user uid required")
	// ErrBackendFailure is an exported constant or variable used by the certificate engine.
	ErrBackendFailure = errors.New("backend request failed")
	// ErrMalformedPayload is an exported constant or variable used by the certificate engine.
	ErrMalformedPayload = errors.New("malformed backend payload")
)
