package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/repositories/dbmodels"
)

// CreateRevision allocates the next global revision number. The timestamp is
// taken on the database side so that revision ordering and timestamps agree.
func (repo *HindsightDbRepository) CreateRevision(ctx context.Context, exec Executor) (models.Revision, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_REVISIONS).
		Columns("created_at").
		Values(squirrel.Expr("now()")).
		Suffix("RETURNING rev, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return models.Revision{}, errors.Wrap(err, "can't build sql query")
	}

	var db dbmodels.DbRevision
	if err := exec.QueryRow(ctx, sql, args...).Scan(&db.Rev, &db.CreatedAt); err != nil {
		return models.Revision{}, errors.Wrap(err, "error allocating revision")
	}

	revision, err := dbmodels.AdaptRevision(db)
	if err != nil {
		return models.Revision{}, err
	}
	repo.revisionCache.Add(revision.Number, revision)
	return revision, nil
}

func (repo *HindsightDbRepository) GetRevision(ctx context.Context, exec Executor, number int64) (models.Revision, error) {
	if revision, ok := repo.revisionCache.Get(number); ok {
		return revision, nil
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectRevisionColumns...).
		From(dbmodels.TABLE_REVISIONS).
		Where(squirrel.Eq{"rev": number})

	revision, err := SqlToModel(ctx, exec, query, dbmodels.AdaptRevision)
	if err != nil {
		return models.Revision{}, err
	}
	repo.revisionCache.Add(revision.Number, revision)
	return revision, nil
}

// ListRevisionNumbers returns the revisions in which the entity changed, in
// ascending order, including its deletion revision.
func (repo *HindsightDbRepository) ListRevisionNumbers(
	ctx context.Context,
	exec Executor,
	mapping models.AuditMapping,
	entityId int64,
) ([]int64, error) {
	query := NewQueryBuilder().
		Select("rev").
		From(mapping.AuditTable).
		Where(squirrel.Eq{mapping.IdColumn: entityId}).
		OrderBy("rev ASC")

	return SqlToListOfRow(ctx, exec, query, func(row pgx.CollectableRow) (int64, error) {
		var rev int64
		err := row.Scan(&rev)
		return rev, err
	})
}
