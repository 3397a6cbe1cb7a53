package domain

import "errors"

var (
	ErrManifestNotFound  = errors.New("manifest not found")
	ErrManifestMalformed = errors.New("manifest malformed")
	ErrMissingField      = errors.New("missing field")
	ErrNotAGitRepository = errors.New("not a git repository")
	ErrGitCommandFailed  = errors.New("git command failed")
	ErrInvalidTagName    = errors.New("invalid tag name")
)
