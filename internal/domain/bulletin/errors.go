package bulletin

import "errors"

// Bulletin domain errors
var (
	ErrPostNotFound = errors.New("bulletin post not found")
	ErrNotAuthor    = errors.New("only the author may modify this post")
)
