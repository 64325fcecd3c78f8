package service

import "errors"

var (
	// ErrRemoteCall is a network failure, empty response or missing
	// payload from the generative capability. Never retried.
	ErrRemoteCall = errors.New("remote model call failed")
	// ErrSizeLimit is an artifact over the ingestion size cap, rejected
	// before any processing.
	ErrSizeLimit = errors.New("artifact too large")
	// ErrRead is local file content that could not be decoded as text.
	ErrRead = errors.New("could not read artifact as text")
	// ErrInvalid is a request that fails validation.
	ErrInvalid = errors.New("invalid")
	// ErrNotFound is a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a failed credential or token check.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPageFetch is a failed page download for URL translation.
	ErrPageFetch = errors.New("page fetch failed")
)
