package entities

import "errors"

// Phase sentinels for the dependency synchronization run. Controllers and
// tests match them with errors.Is; the wrapped message names the cause.
var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrManifestParse       = errors.New("manifest parse error")
	ErrVerificationFailed  = errors.New("verification failed")
	ErrCommitFailed        = errors.New("commit failed")
)
