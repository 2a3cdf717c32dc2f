package repositories

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/repositories/dbmodels"
)

const customerRevisionColumns = "id, first_name, last_name, created_on, address_id, rev, rev_end, rev_type, changed_fields"

func TestAuditQueryEntitiesAtRevisionValidity(t *testing.T) {
	repo := NewHindsightDbRepository(models.AuditStrategyValidity)

	query, err := repo.NewCustomerAuditQuery().
		ForEntitiesAtRevision(1).
		WhereEntityIdEq(1).
		ToSquirrel()
	assert.NoError(t, err)

	sql, args, err := query.ToSql()
	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT "+customerRevisionColumns+" FROM customers_audit "+
			"WHERE rev <= $1 AND (rev_end IS NULL OR rev_end > $2) AND rev_type <> $3 AND id = $4 "+
			"ORDER BY rev ASC",
		sql)
	assert.Equal(t, []any{int64(1), int64(1), int16(models.RevisionDel), int64(1)}, args)
}

func TestAuditQueryEntitiesAtRevisionDefault(t *testing.T) {
	repo := NewHindsightDbRepository(models.AuditStrategyDefault)

	query, err := repo.NewCustomerAuditQuery().
		ForEntitiesAtRevision(2).
		ToSquirrel()
	assert.NoError(t, err)

	sql, args, err := query.ToSql()
	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT "+customerRevisionColumns+" FROM customers_audit "+
			"WHERE rev = (SELECT max(past.rev) FROM customers_audit past "+
			"WHERE past.id = customers_audit.id AND past.rev <= $1) AND rev_type <> $2 "+
			"ORDER BY rev ASC",
		sql)
	assert.Equal(t, []any{int64(2), int16(models.RevisionDel)}, args)
}

func TestAuditQueryRevisionsOfEntityExcludesDeletionRows(t *testing.T) {
	repo := NewHindsightDbRepository(models.AuditStrategyValidity)

	query, err := repo.NewCustomerAuditQuery().
		ForRevisionsOfEntity(false).
		WherePropertyEq("firstName", "Doe").
		ToSquirrel()
	assert.NoError(t, err)

	sql, args, err := query.ToSql()
	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT "+customerRevisionColumns+" FROM customers_audit "+
			"WHERE rev_type <> $1 AND first_name = $2 "+
			"ORDER BY rev ASC",
		sql)
	assert.Equal(t, []any{int16(models.RevisionDel), "Doe"}, args)
}

func TestAuditQueryRevisionsOfEntityIncludingDeletionRows(t *testing.T) {
	repo := NewHindsightDbRepository(models.AuditStrategyValidity)

	query, err := repo.NewCustomerAuditQuery().
		ForRevisionsOfEntity(true).
		WhereEntityIdEq(1).
		ToSquirrel()
	assert.NoError(t, err)

	sql, args, err := query.ToSql()
	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT "+customerRevisionColumns+" FROM customers_audit "+
			"WHERE id = $1 "+
			"ORDER BY rev ASC",
		sql)
	assert.Equal(t, []any{int64(1)}, args)
}

func TestAuditQueryRelatedIdFilters(t *testing.T) {
	repo := NewHindsightDbRepository(models.AuditStrategyValidity)

	t.Run("equality", func(t *testing.T) {
		query, err := repo.NewCustomerAuditQuery().
			ForRevisionsOfEntity(false).
			WhereRelatedIdEq("address", int64(10)).
			ToSquirrel()
		assert.NoError(t, err)

		sql, args, err := query.ToSql()
		assert.NoError(t, err)
		assert.Equal(t,
			"SELECT "+customerRevisionColumns+" FROM customers_audit "+
				"WHERE rev_type <> $1 AND address_id = $2 "+
				"ORDER BY rev ASC",
			sql)
		assert.Equal(t, []any{int16(models.RevisionDel), int64(10)}, args)
	})

	t.Run("membership", func(t *testing.T) {
		query, err := repo.NewCustomerAuditQuery().
			ForRevisionsOfEntity(false).
			WhereRelatedIdIn("address", []int64{10, 11}).
			ToSquirrel()
		assert.NoError(t, err)

		sql, args, err := query.ToSql()
		assert.NoError(t, err)
		assert.Equal(t,
			"SELECT "+customerRevisionColumns+" FROM customers_audit "+
				"WHERE rev_type <> $1 AND address_id IN ($2,$3) "+
				"ORDER BY rev ASC",
			sql)
		assert.Equal(t, []any{int16(models.RevisionDel), int64(10), int64(11)}, args)
	})
}

func TestAuditQueryOrderingAndPagination(t *testing.T) {
	repo := NewHindsightDbRepository(models.AuditStrategyValidity)

	query, err := repo.NewCustomerAuditQuery().
		ForRevisionsOfEntity(false).
		WhereRelatedIdEq("address", int64(10)).
		OrderByProperty("lastName", models.SortingOrderDesc).
		Offset(1).
		Limit(2).
		ToSquirrel()
	assert.NoError(t, err)

	sql, args, err := query.ToSql()
	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT "+customerRevisionColumns+" FROM customers_audit "+
			"WHERE rev_type <> $1 AND address_id = $2 "+
			"ORDER BY last_name DESC, rev ASC "+
			"LIMIT 2 OFFSET 1",
		sql)
	assert.Equal(t, []any{int16(models.RevisionDel), int64(10)}, args)
}

func TestAuditQueryRejectsUnknownNames(t *testing.T) {
	repo := NewHindsightDbRepository(models.AuditStrategyValidity)

	t.Run("unknown property", func(t *testing.T) {
		_, err := repo.NewCustomerAuditQuery().
			ForRevisionsOfEntity(false).
			WherePropertyEq("streetNumber", "1 A").
			ToSquirrel()
		assert.True(t, errors.Is(err, models.ErrUnknownProperty))
	})

	t.Run("unknown relation", func(t *testing.T) {
		_, err := repo.NewCustomerAuditQuery().
			ForRevisionsOfEntity(false).
			WhereRelatedIdEq("company", int64(1)).
			ToSquirrel()
		assert.True(t, errors.Is(err, models.ErrUnknownRelation))
	})

	t.Run("unknown order property", func(t *testing.T) {
		_, err := repo.NewAuditQuery(dbmodels.AddressAuditMapping, dbmodels.SelectAddressRevisionColumns).
			ForRevisionsOfEntity(false).
			OrderByProperty("firstName", models.SortingOrderAsc).
			ToSquirrel()
		assert.True(t, errors.Is(err, models.ErrUnknownProperty))
	})

	t.Run("first error wins", func(t *testing.T) {
		_, err := repo.NewCustomerAuditQuery().
			ForRevisionsOfEntity(false).
			WherePropertyEq("nope", "x").
			WhereRelatedIdEq("company", int64(1)).
			ToSquirrel()
		assert.True(t, errors.Is(err, models.ErrUnknownProperty))
	})
}

func TestAuditQueryRejectsBadPagination(t *testing.T) {
	repo := NewHindsightDbRepository(models.AuditStrategyValidity)

	t.Run("negative offset", func(t *testing.T) {
		_, err := repo.NewCustomerAuditQuery().
			ForRevisionsOfEntity(false).
			Offset(-1).
			ToSquirrel()
		assert.True(t, errors.Is(err, models.BadParameterError))
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := repo.NewCustomerAuditQuery().
			ForRevisionsOfEntity(false).
			Limit(-1).
			ToSquirrel()
		assert.True(t, errors.Is(err, models.BadParameterError))
	})

	t.Run("invalid sorting order", func(t *testing.T) {
		_, err := repo.NewCustomerAuditQuery().
			ForRevisionsOfEntity(false).
			OrderByProperty("lastName", models.SortingOrder("SIDEWAYS")).
			ToSquirrel()
		assert.True(t, errors.Is(err, models.BadParameterError))
	})
}
