package booking

import (
	"net/url"
	"testing"

	"lodge/internal/domains/booking/model"
	gDto "lodge/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestListFilter(t *testing.T) {
	t.Run("no query params yields no filters", func(t *testing.T) {
		filterGroup := listFilter(url.Values{})

		assert.Empty(t, filterGroup.Filters)

		where, args := filterGroup.GetWhereClause()
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("only the provided params become filters", func(t *testing.T) {
		query := url.Values{}
		query.Set(model.FieldStatus, model.StatusConfirmed)

		filterGroup := listFilter(query)

		assert.Equal(t, []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusConfirmed,
				Table:    model.TableName,
			},
		}, filterGroup.Filters)
	})

	t.Run("all params become filters", func(t *testing.T) {
		query := url.Values{}
		query.Set(model.FieldRoomID, "5f2d1c3a-9a1b-4a2e-8c3d-1e2f3a4b5c6d")
		query.Set(model.FieldGuestID, "0b1c2d3e-4f5a-6b7c-8d9e-0f1a2b3c4d5e")
		query.Set(model.FieldStatus, model.StatusPending)

		filterGroup := listFilter(query)

		assert.Len(t, filterGroup.Filters, 3)
	})
}
