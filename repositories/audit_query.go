package repositories

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/hindsight-db/hindsight/models"
)

// AuditQuery composes a query over one audit table: either a point-in-time
// reconstruction ("entities at revision") or the change history of entities
// ("revisions of entity"), with property filters, related-entity filters,
// ordering and offset/limit pagination.
//
// Property and relation names are resolved through the audit mapping; an
// unknown name poisons the builder and surfaces when the query is built.
type AuditQuery struct {
	mapping       models.AuditMapping
	strategy      models.AuditStrategy
	selectColumns []string

	atRevision     *int64
	includeDeleted bool

	predicates []squirrel.Sqlizer
	orderBy    []string
	offset     *uint64
	limit      *uint64

	err error
}

func (repo *HindsightDbRepository) NewAuditQuery(mapping models.AuditMapping, selectColumns []string) *AuditQuery {
	return &AuditQuery{
		mapping:       mapping,
		strategy:      repo.strategy,
		selectColumns: selectColumns,
	}
}

// ForEntitiesAtRevision reconstructs entity state as of the given revision.
// Entities deleted at or before that revision are not returned.
func (q *AuditQuery) ForEntitiesAtRevision(revision int64) *AuditQuery {
	q.atRevision = &revision
	return q
}

// ForRevisionsOfEntity lists audit rows in the order the changes happened.
// With includeDeleted, deletion rows are returned as well.
func (q *AuditQuery) ForRevisionsOfEntity(includeDeleted bool) *AuditQuery {
	q.atRevision = nil
	q.includeDeleted = includeDeleted
	return q
}

func (q *AuditQuery) WhereEntityIdEq(id int64) *AuditQuery {
	q.predicates = append(q.predicates, squirrel.Eq{q.mapping.IdColumn: id})
	return q
}

func (q *AuditQuery) WherePropertyEq(property string, value any) *AuditQuery {
	column, err := q.mapping.PropertyColumn(property)
	if err != nil {
		return q.fail(err)
	}
	q.predicates = append(q.predicates, squirrel.Eq{column: value})
	return q
}

func (q *AuditQuery) WhereRelatedIdEq(relation string, id any) *AuditQuery {
	column, err := q.mapping.RelationColumn(relation)
	if err != nil {
		return q.fail(err)
	}
	q.predicates = append(q.predicates, squirrel.Eq{column: id})
	return q
}

func (q *AuditQuery) WhereRelatedIdIn(relation string, ids []int64) *AuditQuery {
	column, err := q.mapping.RelationColumn(relation)
	if err != nil {
		return q.fail(err)
	}
	q.predicates = append(q.predicates, squirrel.Eq{column: ids})
	return q
}

func (q *AuditQuery) OrderByProperty(property string, order models.SortingOrder) *AuditQuery {
	column, err := q.mapping.PropertyColumn(property)
	if err != nil {
		return q.fail(err)
	}
	if order != models.SortingOrderAsc && order != models.SortingOrderDesc {
		return q.fail(errors.Wrapf(models.BadParameterError, "invalid sorting order %q", order))
	}
	q.orderBy = append(q.orderBy, fmt.Sprintf("%s %s", column, order))
	return q
}

func (q *AuditQuery) Offset(offset int) *AuditQuery {
	if offset < 0 {
		return q.fail(errors.Wrap(models.BadParameterError, "offset must not be negative"))
	}
	n := uint64(offset)
	q.offset = &n
	return q
}

func (q *AuditQuery) Limit(limit int) *AuditQuery {
	if limit < 0 {
		return q.fail(errors.Wrap(models.BadParameterError, "limit must not be negative"))
	}
	n := uint64(limit)
	q.limit = &n
	return q
}

func (q *AuditQuery) fail(err error) *AuditQuery {
	if q.err == nil {
		q.err = err
	}
	return q
}

func (q *AuditQuery) ToSquirrel() (squirrel.SelectBuilder, error) {
	if q.err != nil {
		return squirrel.SelectBuilder{}, q.err
	}

	query := NewQueryBuilder().
		Select(q.selectColumns...).
		From(q.mapping.AuditTable)

	if q.atRevision != nil {
		query = q.restrictToRevision(query, *q.atRevision).
			Where("rev_type <> ?", int16(models.RevisionDel))
	} else if !q.includeDeleted {
		query = query.Where("rev_type <> ?", int16(models.RevisionDel))
	}

	for _, predicate := range q.predicates {
		query = query.Where(predicate)
	}

	// rev ASC is always the last ordering criterion: it is the change order
	// and makes pagination windows deterministic.
	query = query.OrderBy(append(append([]string{}, q.orderBy...), "rev ASC")...)

	if q.offset != nil {
		query = query.Offset(*q.offset)
	}
	if q.limit != nil {
		query = query.Limit(*q.limit)
	}
	return query, nil
}

func (q *AuditQuery) restrictToRevision(query squirrel.SelectBuilder, revision int64) squirrel.SelectBuilder {
	if q.strategy == models.AuditStrategyValidity {
		return query.
			Where("rev <= ?", revision).
			Where("(rev_end IS NULL OR rev_end > ?)", revision)
	}

	// Default strategy: resolve the head row per entity id with a correlated
	// max(rev) subquery over the same audit table.
	subquery := fmt.Sprintf(
		"rev = (SELECT max(past.rev) FROM %s past WHERE past.%s = %s.%s AND past.rev <= ?)",
		q.mapping.AuditTable, q.mapping.IdColumn, q.mapping.AuditTable, q.mapping.IdColumn,
	)
	return query.Where(subquery, revision)
}
