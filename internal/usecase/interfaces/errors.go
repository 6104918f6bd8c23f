package interfaces

import "errors"

// ErrAlreadyExists is returned by repositories when a conditional create finds
// an item with the same key.
var ErrAlreadyExists = errors.New("item already exists")
