package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and persistence backends
// return these (optionally wrapped) so services can translate them into domain
// errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity or snapshot slot does not exist in the backend
// - ErrConflict: concurrent writer beat us to the slot
// - ErrUnavailable: backend temporarily unreachable
//
// For validation errors (bad input, missing fields), use pkg/derrors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
