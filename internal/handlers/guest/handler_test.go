package guest

import (
	"net/url"
	"testing"

	"lodge/internal/domains/guest/model"
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
		query.Set(model.FieldEmail, "jane.doe@example.com")

		filterGroup := listFilter(query)

		assert.Equal(t, []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorLike,
				Value:    "jane.doe@example.com",
				Table:    model.TableName,
			},
		}, filterGroup.Filters)
	})

	t.Run("all params become filters", func(t *testing.T) {
		query := url.Values{}
		query.Set(model.FieldEmail, "jane.doe@example.com")
		query.Set(model.FieldLastName, "Doe")
		query.Set(model.FieldStatus, model.StatusActive)

		filterGroup := listFilter(query)

		assert.Len(t, filterGroup.Filters, 3)
	})
}
