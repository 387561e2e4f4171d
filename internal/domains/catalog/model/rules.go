package model

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// requiredID rejects the zero uuid. ozzo's Required sees a uuid.UUID as a
// non-empty 16-byte array, so uuid.Nil needs an explicit check.
var requiredID = validation.By(func(value any) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
})

// pageCountRange bounds an optional page count. ozzo's threshold rules skip
// the zero value, which would let pageCount 0 through.
func pageCountRange(value any) error {
	count, ok := value.(*int)
	if !ok || count == nil {
		return nil
	}
	if *count < 1 || *count >= maxPageCount {
		return fmt.Errorf("must be between 1 and %d", maxPageCount-1)
	}
	return nil
}
