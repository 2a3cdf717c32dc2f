package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hindsight-db/hindsight/dto"
	"github.com/hindsight-db/hindsight/pure_utils"
	"github.com/hindsight-db/hindsight/usecases"
)

type CustomerRevisionUriInput struct {
	CustomerId int64 `uri:"customer_id" binding:"required"`
	Revision   int64 `uri:"revision" binding:"required"`
}

type RevisionUriInput struct {
	Revision int64 `uri:"revision" binding:"required"`
}

func handleListCustomerRevisions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var customerInput CustomerUriInput
		if err := c.ShouldBindUri(&customerInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewHistoryUsecase()
		revisions, err := usecase.ListCustomerRevisions(ctx, customerInput.CustomerId)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"revisions": pure_utils.Map(revisions, dto.AdaptRevisionDto)})
	}
}

func handleGetCustomerAtRevision(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input CustomerRevisionUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewHistoryUsecase()
		customer, err := usecase.CustomerAtRevision(ctx, input.CustomerId, input.Revision)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": dto.AdaptCustomerDto(customer)})
	}
}

func handleListCustomersAtRevision(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input RevisionUriInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewHistoryUsecase()
		customers, err := usecase.CustomersAtRevision(ctx, input.Revision)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"customers": pure_utils.Map(customers, dto.AdaptCustomerDto)})
	}
}

func handleListAddressRevisions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var addressInput AddressUriInput
		if err := c.ShouldBindUri(&addressInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewHistoryUsecase()
		revisions, err := usecase.ListAddressRevisions(ctx, addressInput.AddressId)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"revisions": pure_utils.Map(revisions, dto.AdaptRevisionDto)})
	}
}

func handleAddressHistory(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var addressInput AddressUriInput
		if err := c.ShouldBindUri(&addressInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewHistoryUsecase()
		revisions, err := usecase.AddressHistory(ctx, addressInput.AddressId)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"history": pure_utils.Map(revisions, dto.AdaptAddressRevisionDto)})
	}
}

func handleCustomerHistory(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var params dto.CustomerHistoryFilters
		if err := c.ShouldBindQuery(&params); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		filters, pagination := dto.AdaptCustomerHistoryFilters(params)

		usecase := uc.NewHistoryUsecase()
		revisions, err := usecase.CustomerHistory(ctx, filters, pagination)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"history": pure_utils.Map(revisions, dto.AdaptCustomerRevisionDto)})
	}
}
