package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/repositories"
	"github.com/hindsight-db/hindsight/usecases/executor_factory"
)

func buildCustomerUsecaseMock(strategy models.AuditStrategy) (CustomerUsecase, executor_factory.ExecutorFactoryStub) {
	exec := executor_factory.NewExecutorFactoryStub()
	uc := CustomerUsecase{
		executorFactory: exec,
		repository:      repositories.NewHindsightDbRepository(strategy),
	}
	return uc, exec
}

func TestCreateCustomerWithAddressSharesOneRevision(t *testing.T) {
	uc, exec := buildCustomerUsecaseMock(models.AuditStrategyValidity)

	createdOn := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	address := models.Address{
		Id:           1,
		Country:      "România",
		City:         "Cluj-Napoca",
		Street:       "Bulevardul Eroilor",
		StreetNumber: "1 A",
	}

	exec.Mock.ExpectExec(`INSERT INTO addresses \(id,country,city,street,street_number\)`).
		WithArgs(address.Id, address.Country, address.City, address.Street, address.StreetNumber).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	exec.Mock.ExpectQuery(`INSERT INTO revisions \(created_at\) VALUES \(now\(\)\) RETURNING rev, created_at`).
		WillReturnRows(pgxmock.NewRows([]string{"rev", "created_at"}).AddRow(int64(1), createdOn))
	exec.Mock.ExpectExec(`UPDATE addresses_audit SET rev_end`).
		WithArgs(int64(1), address.Id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	exec.Mock.ExpectExec(`INSERT INTO addresses_audit`).
		WithArgs(pgxmock.AnyArg(), address.Id,
			address.Country, address.City, address.Street, address.StreetNumber,
			int64(1), int16(models.RevisionAdd), nil).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	exec.Mock.ExpectQuery(`INSERT INTO customers \(id,first_name,last_name,address_id\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING created_on`).
		WithArgs(int64(1), "John", "Doe", &address.Id).
		WillReturnRows(pgxmock.NewRows([]string{"created_on"}).AddRow(createdOn))
	exec.Mock.ExpectExec(`UPDATE customers_audit SET rev_end`).
		WithArgs(int64(1), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	exec.Mock.ExpectExec(`INSERT INTO customers_audit`).
		WithArgs(pgxmock.AnyArg(), int64(1),
			"John", "Doe", createdOn, address.Id,
			int64(1), int16(models.RevisionAdd), nil).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	customer, err := uc.CreateCustomer(context.TODO(), models.CreateCustomerInput{
		Id:        1,
		FirstName: "John",
		LastName:  "Doe",
	}, &address)

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Equal(t, createdOn, customer.CreatedOn)
	if assert.NotNil(t, customer.AddressId) {
		assert.Equal(t, address.Id, *customer.AddressId)
	}
}

func TestCreateCustomerConflict(t *testing.T) {
	uc, exec := buildCustomerUsecaseMock(models.AuditStrategyValidity)

	exec.Mock.ExpectQuery(`INSERT INTO customers \(id,first_name,last_name,address_id\)`).
		WithArgs(int64(1), "John", "Doe", (*int64)(nil)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := uc.CreateCustomer(context.TODO(), models.CreateCustomerInput{
		Id:        1,
		FirstName: "John",
		LastName:  "Doe",
	}, nil)

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.True(t, errors.Is(err, models.ConflictError))
}
