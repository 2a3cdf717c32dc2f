package usecases

import (
	"github.com/hindsight-db/hindsight/repositories"
	"github.com/hindsight-db/hindsight/usecases/executor_factory"
)

type Usecases struct {
	Repository      *repositories.HindsightDbRepository
	ExecutorFactory executor_factory.ExecutorFactory
}

func NewUsecases(
	repository *repositories.HindsightDbRepository,
	executorFactory executor_factory.ExecutorFactory,
) Usecases {
	return Usecases{
		Repository:      repository,
		ExecutorFactory: executorFactory,
	}
}

func (uc Usecases) NewCustomerUsecase() CustomerUsecase {
	return CustomerUsecase{
		executorFactory: uc.ExecutorFactory,
		repository:      uc.Repository,
	}
}

func (uc Usecases) NewAddressUsecase() AddressUsecase {
	return AddressUsecase{
		executorFactory: uc.ExecutorFactory,
		repository:      uc.Repository,
	}
}

func (uc Usecases) NewHistoryUsecase() HistoryUsecase {
	return HistoryUsecase{
		executorFactory: uc.ExecutorFactory,
		repository:      uc.Repository,
	}
}
