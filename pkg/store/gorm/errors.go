package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/cms-in-go/pkg/db"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// wrapErr prefixes err with a message and maps gorm and driver errors onto
// the store sentinels. The driver error stays in the chain.
func wrapErr(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", msg, store.ErrNotFound)
	case db.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", msg, store.ErrDuplicate, err)
	case db.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: %w", msg, store.ErrReferenced, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
