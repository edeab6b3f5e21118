package token

import "errors"

var (
	ErrFailedToGenerate = errors.New("failed to generate token")
)
