package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hindsight-db/hindsight/dto"
	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/usecases"
)

type AddressUriInput struct {
	AddressId int64 `uri:"address_id" binding:"required"`
}

func handleGetAddress(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var addressInput AddressUriInput
		if err := c.ShouldBindUri(&addressInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewAddressUsecase()
		address, err := usecase.GetAddress(ctx, addressInput.AddressId)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"address": dto.AdaptAddressDto(address)})
	}
}

func handleCreateAddress(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateAddressBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		address := dto.AdaptAddressModel(data)

		usecase := uc.NewAddressUsecase()
		err := usecase.CreateAddress(ctx, address)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"address": dto.AdaptAddressDto(address)})
	}
}

func handleUpdateAddress(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var addressInput AddressUriInput
		if err := c.ShouldBindUri(&addressInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var data dto.UpdateAddressBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		address := models.Address{
			Id:           addressInput.AddressId,
			Country:      data.Country,
			City:         data.City,
			Street:       data.Street,
			StreetNumber: data.StreetNumber,
		}

		usecase := uc.NewAddressUsecase()
		err := usecase.UpdateAddress(ctx, address)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"address": dto.AdaptAddressDto(address)})
	}
}

func handleDeleteAddress(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var addressInput AddressUriInput
		if err := c.ShouldBindUri(&addressInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewAddressUsecase()
		err := usecase.DeleteAddress(ctx, addressInput.AddressId)

		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
