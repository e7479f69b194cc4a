package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/shandysiswandi/goitems/internal/item/entity"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgerror"
)

const (
	fieldItemID = "item_id"

	reasonNotInteger = "value is not a valid integer"
	reasonOutOfRange = "value is out of range"
)

type Usecase struct{}

func New() *Usecase {
	return &Usecase{}
}

// Get coerces the raw path segment into an item.
//
// The segment must be a base-10 signed integer: an optional sign, then digits
// only. Leading zeros are fine; decimal points, exponents, whitespace and
// digit separators are rejected rather than truncated.
func (u *Usecase) Get(_ context.Context, rawID string) (entity.Item, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return entity.Item{}, pkgerror.NewInvalidField(fieldItemID, reasonOutOfRange)
		}
		return entity.Item{}, pkgerror.NewInvalidField(fieldItemID, reasonNotInteger)
	}

	return entity.Item{ID: id}, nil
}
