package usecases

import (
	"context"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/repositories"
	"github.com/hindsight-db/hindsight/usecases/executor_factory"
)

type AddressUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      *repositories.HindsightDbRepository
}

func (uc AddressUsecase) GetAddress(ctx context.Context, id int64) (models.Address, error) {
	return uc.repository.GetAddress(ctx, uc.executorFactory.NewExecutor(), id)
}

func (uc AddressUsecase) CreateAddress(ctx context.Context, address models.Address) error {
	return uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		rec := uc.repository.NewAuditRecorder(tx)
		return uc.repository.CreateAddress(ctx, rec, address)
	})
}

func (uc AddressUsecase) UpdateAddress(ctx context.Context, address models.Address) error {
	return uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		rec := uc.repository.NewAuditRecorder(tx)
		return uc.repository.UpdateAddress(ctx, rec, address)
	})
}

func (uc AddressUsecase) DeleteAddress(ctx context.Context, id int64) error {
	return uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		rec := uc.repository.NewAuditRecorder(tx)
		return uc.repository.DeleteAddress(ctx, rec, id)
	})
}
