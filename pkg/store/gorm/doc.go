// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// Many-to-many associations are read in two steps: the junction pairs for
// the source keys, then the distinct targets in one query, grouped back per
// source. Junction columns never reach the caller. Driver errors are mapped
// onto store.ErrNotFound, store.ErrDuplicate and store.ErrReferenced.
package gorm
