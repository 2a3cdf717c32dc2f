package usecases

import (
	"context"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/repositories"
	"github.com/hindsight-db/hindsight/usecases/executor_factory"
)

// HistoryUsecase serves the revision queries over the audit tables.
type HistoryUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      *repositories.HindsightDbRepository
}

func (uc HistoryUsecase) ListCustomerRevisions(ctx context.Context, id int64) ([]models.Revision, error) {
	exec := uc.executorFactory.NewExecutor()

	numbers, err := uc.repository.ListCustomerRevisionNumbers(ctx, exec, id)
	if err != nil {
		return nil, err
	}

	revisions := make([]models.Revision, len(numbers))
	for i, number := range numbers {
		revisions[i], err = uc.repository.GetRevision(ctx, exec, number)
		if err != nil {
			return nil, err
		}
	}
	return revisions, nil
}

func (uc HistoryUsecase) ListAddressRevisions(ctx context.Context, id int64) ([]models.Revision, error) {
	exec := uc.executorFactory.NewExecutor()

	numbers, err := uc.repository.ListAddressRevisionNumbers(ctx, exec, id)
	if err != nil {
		return nil, err
	}

	revisions := make([]models.Revision, len(numbers))
	for i, number := range numbers {
		revisions[i], err = uc.repository.GetRevision(ctx, exec, number)
		if err != nil {
			return nil, err
		}
	}
	return revisions, nil
}

// AddressHistory returns all audit rows of one address, deletion row included.
func (uc HistoryUsecase) AddressHistory(ctx context.Context, id int64) ([]models.AddressRevision, error) {
	exec := uc.executorFactory.NewExecutor()

	q := uc.repository.NewAddressAuditQuery().
		ForRevisionsOfEntity(true).
		WhereEntityIdEq(id)

	return uc.repository.ListAddressRevisions(ctx, exec, q)
}

func (uc HistoryUsecase) CustomerAtRevision(ctx context.Context, id int64, revision int64) (models.Customer, error) {
	return uc.repository.CustomerAtRevision(ctx, uc.executorFactory.NewExecutor(), id, revision)
}

func (uc HistoryUsecase) CustomersAtRevision(ctx context.Context, revision int64) ([]models.Customer, error) {
	return uc.repository.CustomersAtRevision(ctx, uc.executorFactory.NewExecutor(), revision)
}

func (uc HistoryUsecase) CustomerHistory(
	ctx context.Context,
	filters models.CustomerHistoryFilters,
	pagination models.PaginationAndSorting,
) ([]models.CustomerRevision, error) {
	exec := uc.executorFactory.NewExecutor()
	pagination = models.WithDefaultPagination(pagination)

	q := uc.repository.NewCustomerAuditQuery().ForRevisionsOfEntity(filters.IncludeDeleted)
	if filters.FirstName != nil {
		q = q.WherePropertyEq("firstName", *filters.FirstName)
	}
	if filters.LastName != nil {
		q = q.WherePropertyEq("lastName", *filters.LastName)
	}
	if filters.AddressId != nil {
		q = q.WhereRelatedIdEq("address", *filters.AddressId)
	}
	if len(filters.AddressIdIn) > 0 {
		q = q.WhereRelatedIdIn("address", filters.AddressIdIn)
	}
	if pagination.OrderBy != "" {
		q = q.OrderByProperty(pagination.OrderBy, pagination.Order)
	}
	q = q.Offset(pagination.Offset).Limit(pagination.Limit)

	revisions, err := uc.repository.ListCustomerRevisions(ctx, exec, q)
	if err != nil {
		return nil, err
	}

	// Revision timestamps live on the shared revisions table, not on the
	// audit rows; lookups are memoized because revisions are immutable.
	for i := range revisions {
		revision, err := uc.repository.GetRevision(ctx, exec, revisions[i].Revision)
		if err != nil {
			return nil, err
		}
		revisions[i].RevisionCreatedAt = revision.CreatedAt
	}
	return revisions, nil
}
