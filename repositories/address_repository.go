package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/repositories/dbmodels"
)

func (repo *HindsightDbRepository) GetAddress(ctx context.Context, exec Executor, id int64) (models.Address, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAddressColumns...).
		From(dbmodels.TABLE_ADDRESSES).
		Where(squirrel.Eq{"id": id})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptAddress)
}

func (repo *HindsightDbRepository) CreateAddress(
	ctx context.Context,
	rec *AuditRecorder,
	address models.Address,
) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_ADDRESSES).
		Columns("id", "country", "city", "street", "street_number").
		Values(address.Id, address.Country, address.City, address.Street, address.StreetNumber)

	if _, err := ExecBuilder(ctx, rec.exec, query); err != nil {
		if IsUniqueViolationError(err) {
			return errors.Wrapf(models.ConflictError, "address %d already exists", address.Id)
		}
		return errors.Wrap(err, "error creating address")
	}

	return rec.RecordInsert(ctx, dbmodels.AddressAuditMapping, address.Id,
		dbmodels.AddressAuditValues(address))
}

func (repo *HindsightDbRepository) UpdateAddress(
	ctx context.Context,
	rec *AuditRecorder,
	address models.Address,
) error {
	before, err := repo.GetAddress(ctx, rec.exec, address.Id)
	if err != nil {
		return err
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_ADDRESSES).
		Set("country", address.Country).
		Set("city", address.City).
		Set("street", address.Street).
		Set("street_number", address.StreetNumber).
		Where(squirrel.Eq{"id": address.Id})

	if _, err := ExecBuilder(ctx, rec.exec, query); err != nil {
		return errors.Wrap(err, "error updating address")
	}

	return rec.RecordUpdate(ctx, dbmodels.AddressAuditMapping, address.Id,
		dbmodels.AddressAuditValues(before), dbmodels.AddressAuditValues(address))
}

func (repo *HindsightDbRepository) DeleteAddress(ctx context.Context, rec *AuditRecorder, id int64) error {
	query := NewQueryBuilder().
		Delete(dbmodels.TABLE_ADDRESSES).
		Where(squirrel.Eq{"id": id})

	rowsAffected, err := ExecBuilder(ctx, rec.exec, query)
	if err != nil {
		if IsForeignKeyViolationError(err) {
			return errors.Wrapf(models.ConflictError, "address %d is still referenced by a customer", id)
		}
		return errors.Wrap(err, "error deleting address")
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.NotFoundError, "address %d", id)
	}

	return rec.RecordDelete(ctx, dbmodels.AddressAuditMapping, id)
}

func (repo *HindsightDbRepository) ListAddressRevisionNumbers(ctx context.Context, exec Executor, id int64) ([]int64, error) {
	return repo.ListRevisionNumbers(ctx, exec, dbmodels.AddressAuditMapping, id)
}

func (repo *HindsightDbRepository) NewAddressAuditQuery() *AuditQuery {
	return repo.NewAuditQuery(dbmodels.AddressAuditMapping, dbmodels.SelectAddressRevisionColumns)
}

func (repo *HindsightDbRepository) ListAddressRevisions(
	ctx context.Context,
	exec Executor,
	q *AuditQuery,
) ([]models.AddressRevision, error) {
	query, err := q.ToSquirrel()
	if err != nil {
		return nil, err
	}
	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAddressRevision)
}
