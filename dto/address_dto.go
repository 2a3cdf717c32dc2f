package dto

import (
	"github.com/hindsight-db/hindsight/models"
)

type AddressDto struct {
	Id           int64  `json:"id"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Street       string `json:"street"`
	StreetNumber string `json:"street_number"`
}

func AdaptAddressDto(address models.Address) AddressDto {
	return AddressDto{
		Id:           address.Id,
		Country:      address.Country,
		City:         address.City,
		Street:       address.Street,
		StreetNumber: address.StreetNumber,
	}
}

type CreateAddressBody struct {
	Id           int64  `json:"id" binding:"required"`
	Country      string `json:"country" binding:"required"`
	City         string `json:"city" binding:"required"`
	Street       string `json:"street" binding:"required"`
	StreetNumber string `json:"street_number" binding:"required"`
}

type UpdateAddressBody struct {
	Country      string `json:"country" binding:"required"`
	City         string `json:"city" binding:"required"`
	Street       string `json:"street" binding:"required"`
	StreetNumber string `json:"street_number" binding:"required"`
}

func AdaptAddressModel(body CreateAddressBody) models.Address {
	return models.Address{
		Id:           body.Id,
		Country:      body.Country,
		City:         body.City,
		Street:       body.Street,
		StreetNumber: body.StreetNumber,
	}
}
