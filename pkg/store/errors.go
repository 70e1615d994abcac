package store

import "errors"

// ErrNotFound is returned when a looked-up row doesn't exist
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique or primary key
var ErrDuplicate = errors.New("duplicate record")

// ErrReferenced is returned when a write violates a foreign key: the row is
// still referenced, or it references a row that doesn't exist
var ErrReferenced = errors.New("foreign key violation")
