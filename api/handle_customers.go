package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hindsight-db/hindsight/dto"
	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/usecases"
)

type CustomerUriInput struct {
	CustomerId int64 `uri:"customer_id" binding:"required"`
}

func handleGetCustomer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var customerInput CustomerUriInput
		if err := c.ShouldBindUri(&customerInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCustomerUsecase()
		customer, err := usecase.GetCustomer(ctx, customerInput.CustomerId)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": dto.AdaptCustomerDto(customer)})
	}
}

func handleCreateCustomer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateCustomerBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var newAddress *models.Address
		if data.Address != nil {
			address := dto.AdaptAddressModel(*data.Address)
			newAddress = &address
		}

		usecase := uc.NewCustomerUsecase()
		customer, err := usecase.CreateCustomer(ctx, models.CreateCustomerInput{
			Id:        data.Id,
			FirstName: data.FirstName,
			LastName:  data.LastName,
			AddressId: data.AddressId,
		}, newAddress)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"customer": dto.AdaptCustomerDto(customer)})
	}
}

func handleUpdateCustomer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var customerInput CustomerUriInput
		if err := c.ShouldBindUri(&customerInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var data dto.UpdateCustomerBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCustomerUsecase()
		customer, err := usecase.UpdateCustomer(ctx, customerInput.CustomerId, models.UpdateCustomerInput{
			FirstName: data.FirstName,
			LastName:  data.LastName,
			AddressId: data.AddressId,
		})

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": dto.AdaptCustomerDto(customer)})
	}
}

func handleDeleteCustomer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var customerInput CustomerUriInput
		if err := c.ShouldBindUri(&customerInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCustomerUsecase()
		err := usecase.DeleteCustomer(ctx, customerInput.CustomerId)

		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
