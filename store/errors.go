package store

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by Latest when no posts have been stored yet.
var ErrEmpty = errors.New("no posts exist yet")

// NotFoundError reports an operation that targeted an id with no stored post.
type NotFoundError struct {
	ID uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("post with id %d was not found", e.ID)
}
