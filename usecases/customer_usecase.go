package usecases

import (
	"context"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/repositories"
	"github.com/hindsight-db/hindsight/usecases/executor_factory"
)

type CustomerUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      *repositories.HindsightDbRepository
}

func (uc CustomerUsecase) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	return uc.repository.GetCustomer(ctx, uc.executorFactory.NewExecutor(), id)
}

// CreateCustomer persists the customer, and the address first when one is
// given, in a single transaction: both audit rows share one revision.
func (uc CustomerUsecase) CreateCustomer(
	ctx context.Context,
	input models.CreateCustomerInput,
	newAddress *models.Address,
) (models.Customer, error) {
	var customer models.Customer
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		rec := uc.repository.NewAuditRecorder(tx)

		if newAddress != nil {
			if err := uc.repository.CreateAddress(ctx, rec, *newAddress); err != nil {
				return err
			}
			addressId := newAddress.Id
			input.AddressId = &addressId
		}

		var err error
		customer, err = uc.repository.CreateCustomer(ctx, rec, input)
		return err
	})
	return customer, err
}

func (uc CustomerUsecase) UpdateCustomer(
	ctx context.Context,
	id int64,
	input models.UpdateCustomerInput,
) (models.Customer, error) {
	var customer models.Customer
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		rec := uc.repository.NewAuditRecorder(tx)

		var err error
		customer, err = uc.repository.UpdateCustomer(ctx, rec, id, input)
		return err
	})
	return customer, err
}

func (uc CustomerUsecase) DeleteCustomer(ctx context.Context, id int64) error {
	return uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		rec := uc.repository.NewAuditRecorder(tx)
		return uc.repository.DeleteCustomer(ctx, rec, id)
	})
}
