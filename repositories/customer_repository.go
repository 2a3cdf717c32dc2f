package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/pure_utils"
	"github.com/hindsight-db/hindsight/repositories/dbmodels"
)

func (repo *HindsightDbRepository) GetCustomer(ctx context.Context, exec Executor, id int64) (models.Customer, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCustomerColumns...).
		From(dbmodels.TABLE_CUSTOMERS).
		Where(squirrel.Eq{"id": id})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptCustomer)
}

// CreateCustomer inserts the customer and records an add audit row under the
// recorder's revision. created_on is assigned by the database on insert.
func (repo *HindsightDbRepository) CreateCustomer(
	ctx context.Context,
	rec *AuditRecorder,
	input models.CreateCustomerInput,
) (models.Customer, error) {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_CUSTOMERS).
		Columns("id", "first_name", "last_name", "address_id").
		Values(input.Id, input.FirstName, input.LastName, input.AddressId).
		Suffix("RETURNING created_on")

	sql, args, err := query.ToSql()
	if err != nil {
		return models.Customer{}, errors.Wrap(err, "can't build sql query")
	}

	var createdOn time.Time
	if err := rec.exec.QueryRow(ctx, sql, args...).Scan(&createdOn); err != nil {
		if IsUniqueViolationError(err) {
			return models.Customer{}, errors.Wrapf(models.ConflictError, "customer %d already exists", input.Id)
		}
		return models.Customer{}, errors.Wrap(err, "error creating customer")
	}

	customer := models.Customer{
		Id:        input.Id,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedOn: createdOn,
		AddressId: input.AddressId,
	}

	err = rec.RecordInsert(ctx, dbmodels.CustomerAuditMapping, customer.Id,
		dbmodels.CustomerAuditValues(customer))
	return customer, err
}

func (repo *HindsightDbRepository) UpdateCustomer(
	ctx context.Context,
	rec *AuditRecorder,
	id int64,
	input models.UpdateCustomerInput,
) (models.Customer, error) {
	before, err := repo.GetCustomer(ctx, rec.exec, id)
	if err != nil {
		return models.Customer{}, err
	}

	after := before
	after.FirstName = pure_utils.PtrValueOrDefault(input.FirstName, before.FirstName)
	after.LastName = pure_utils.PtrValueOrDefault(input.LastName, before.LastName)
	if input.AddressId != nil {
		after.AddressId = input.AddressId
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CUSTOMERS).
		Set("first_name", after.FirstName).
		Set("last_name", after.LastName).
		Set("address_id", after.AddressId).
		Where(squirrel.Eq{"id": id})

	if _, err := ExecBuilder(ctx, rec.exec, query); err != nil {
		return models.Customer{}, errors.Wrap(err, "error updating customer")
	}

	err = rec.RecordUpdate(ctx, dbmodels.CustomerAuditMapping, id,
		dbmodels.CustomerAuditValues(before), dbmodels.CustomerAuditValues(after))
	return after, err
}

func (repo *HindsightDbRepository) DeleteCustomer(ctx context.Context, rec *AuditRecorder, id int64) error {
	query := NewQueryBuilder().
		Delete(dbmodels.TABLE_CUSTOMERS).
		Where(squirrel.Eq{"id": id})

	rowsAffected, err := ExecBuilder(ctx, rec.exec, query)
	if err != nil {
		return errors.Wrap(err, "error deleting customer")
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.NotFoundError, "customer %d", id)
	}

	return rec.RecordDelete(ctx, dbmodels.CustomerAuditMapping, id)
}

func (repo *HindsightDbRepository) ListCustomerRevisionNumbers(ctx context.Context, exec Executor, id int64) ([]int64, error) {
	return repo.ListRevisionNumbers(ctx, exec, dbmodels.CustomerAuditMapping, id)
}

// NewCustomerAuditQuery starts a revision query over the customers audit table.
func (repo *HindsightDbRepository) NewCustomerAuditQuery() *AuditQuery {
	return repo.NewAuditQuery(dbmodels.CustomerAuditMapping, dbmodels.SelectCustomerRevisionColumns)
}

func (repo *HindsightDbRepository) ListCustomerRevisions(
	ctx context.Context,
	exec Executor,
	q *AuditQuery,
) ([]models.CustomerRevision, error) {
	query, err := q.ToSquirrel()
	if err != nil {
		return nil, err
	}
	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCustomerRevision)
}

func (repo *HindsightDbRepository) CustomersAtRevision(
	ctx context.Context,
	exec Executor,
	revision int64,
) ([]models.Customer, error) {
	query, err := repo.NewCustomerAuditQuery().ForEntitiesAtRevision(revision).ToSquirrel()
	if err != nil {
		return nil, err
	}
	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCustomerOfRevision)
}

func (repo *HindsightDbRepository) CustomerAtRevision(
	ctx context.Context,
	exec Executor,
	id int64,
	revision int64,
) (models.Customer, error) {
	query, err := repo.NewCustomerAuditQuery().
		ForEntitiesAtRevision(revision).
		WhereEntityIdEq(id).
		ToSquirrel()
	if err != nil {
		return models.Customer{}, err
	}
	return SqlToModel(ctx, exec, query, dbmodels.AdaptCustomerOfRevision)
}
