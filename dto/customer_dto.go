package dto

import (
	"time"

	"github.com/hindsight-db/hindsight/models"
)

type CustomerDto struct {
	Id        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedOn time.Time `json:"created_on"`
	AddressId *int64    `json:"address_id,omitempty"`
}

func AdaptCustomerDto(customer models.Customer) CustomerDto {
	return CustomerDto{
		Id:        customer.Id,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		CreatedOn: customer.CreatedOn,
		AddressId: customer.AddressId,
	}
}

type CreateCustomerBody struct {
	Id        int64              `json:"id" binding:"required"`
	FirstName string             `json:"first_name" binding:"required"`
	LastName  string             `json:"last_name" binding:"required"`
	AddressId *int64             `json:"address_id"`
	Address   *CreateAddressBody `json:"address"`
}

type UpdateCustomerBody struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AddressId *int64  `json:"address_id"`
}
