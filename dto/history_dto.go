package dto

import (
	"strings"
	"time"

	"github.com/hindsight-db/hindsight/models"
)

type RevisionDto struct {
	Number    int64     `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptRevisionDto(revision models.Revision) RevisionDto {
	return RevisionDto{
		Number:    revision.Number,
		CreatedAt: revision.CreatedAt,
	}
}

type CustomerRevisionDto struct {
	Revision          int64       `json:"revision"`
	Type              string      `json:"type"`
	RevisionCreatedAt time.Time   `json:"revision_created_at"`
	ChangedFields     []string    `json:"changed_fields,omitempty"`
	Customer          CustomerDto `json:"customer"`
}

func AdaptCustomerRevisionDto(revision models.CustomerRevision) CustomerRevisionDto {
	return CustomerRevisionDto{
		Revision:          revision.Revision,
		Type:              revision.Type.String(),
		RevisionCreatedAt: revision.RevisionCreatedAt,
		ChangedFields:     revision.ChangedFields,
		Customer:          AdaptCustomerDto(revision.Customer),
	}
}

type AddressRevisionDto struct {
	Revision      int64      `json:"revision"`
	Type          string     `json:"type"`
	ChangedFields []string   `json:"changed_fields,omitempty"`
	Address       AddressDto `json:"address"`
}

func AdaptAddressRevisionDto(revision models.AddressRevision) AddressRevisionDto {
	return AddressRevisionDto{
		Revision:      revision.Revision,
		Type:          revision.Type.String(),
		ChangedFields: revision.ChangedFields,
		Address:       AdaptAddressDto(revision.Address),
	}
}

type CustomerHistoryFilters struct {
	FirstName      *string `form:"first_name"`
	LastName       *string `form:"last_name"`
	AddressId      *int64  `form:"address_id"`
	AddressIdIn    []int64 `form:"address_id_in"`
	IncludeDeleted bool    `form:"include_deleted"`
	OrderBy        string  `form:"order_by"`
	Order          string  `form:"order"`
	Offset         int     `form:"offset"`
	Limit          int     `form:"limit"`
}

func AdaptCustomerHistoryFilters(filters CustomerHistoryFilters) (models.CustomerHistoryFilters, models.PaginationAndSorting) {
	order := models.SortingOrderAsc
	if strings.EqualFold(filters.Order, string(models.SortingOrderDesc)) {
		order = models.SortingOrderDesc
	}

	return models.CustomerHistoryFilters{
			FirstName:      filters.FirstName,
			LastName:       filters.LastName,
			AddressId:      filters.AddressId,
			AddressIdIn:    filters.AddressIdIn,
			IncludeDeleted: filters.IncludeDeleted,
		}, models.PaginationAndSorting{
			OrderBy: filters.OrderBy,
			Order:   order,
			Offset:  filters.Offset,
			Limit:   filters.Limit,
		}
}
