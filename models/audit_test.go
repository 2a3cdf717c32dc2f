package models

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestAuditStrategyFrom(t *testing.T) {
	strategy, err := AuditStrategyFrom("")
	assert.NoError(t, err)
	assert.Equal(t, AuditStrategyDefault, strategy)

	strategy, err = AuditStrategyFrom("validity")
	assert.NoError(t, err)
	assert.Equal(t, AuditStrategyValidity, strategy)

	_, err = AuditStrategyFrom("chrono")
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}

func TestAuditMappingLookups(t *testing.T) {
	mapping := AuditMapping{
		Table:      "customers",
		AuditTable: "customers_audit",
		IdColumn:   "id",
		Columns:    []string{"first_name", "address_id"},
		Properties: map[string]string{"firstName": "first_name"},
		Relations:  map[string]string{"address": "address_id"},
	}

	column, err := mapping.PropertyColumn("firstName")
	assert.NoError(t, err)
	assert.Equal(t, "first_name", column)

	_, err = mapping.PropertyColumn("lastName")
	assert.True(t, errors.Is(err, ErrUnknownProperty))

	column, err = mapping.RelationColumn("address")
	assert.NoError(t, err)
	assert.Equal(t, "address_id", column)

	_, err = mapping.RelationColumn("company")
	assert.True(t, errors.Is(err, ErrUnknownRelation))
}

func TestRevisionTypeString(t *testing.T) {
	assert.Equal(t, "add", RevisionAdd.String())
	assert.Equal(t, "mod", RevisionMod.String())
	assert.Equal(t, "del", RevisionDel.String())
}

func TestWithDefaultPagination(t *testing.T) {
	p := WithDefaultPagination(PaginationAndSorting{})
	assert.Equal(t, DefaultHistoryLimit, p.Limit)
	assert.Equal(t, SortingOrderAsc, p.Order)

	p = WithDefaultPagination(PaginationAndSorting{Order: SortingOrderDesc, Offset: 1, Limit: 2})
	assert.Equal(t, 2, p.Limit)
	assert.Equal(t, 1, p.Offset)
	assert.Equal(t, SortingOrderDesc, p.Order)
}
