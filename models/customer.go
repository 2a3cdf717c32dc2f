package models

import (
	"time"
)

type Customer struct {
	Id        int64
	FirstName string
	LastName  string
	CreatedOn time.Time
	AddressId *int64
}

type CreateCustomerInput struct {
	Id        int64
	FirstName string
	LastName  string
	AddressId *int64
}

type UpdateCustomerInput struct {
	FirstName *string
	LastName  *string
	AddressId *int64
}

// CustomerRevision is one audit row of a customer: the entity state captured
// at Revision, plus the change metadata. For deletion rows the entity fields
// other than the id are zero values.
type CustomerRevision struct {
	Customer      Customer
	Revision      int64
	Type          RevisionType
	ChangedFields []string

	// RevisionCreatedAt is filled in from the revisions table when the
	// history is presented, not stored on the audit row itself.
	RevisionCreatedAt time.Time
}

type CustomerHistoryFilters struct {
	FirstName      *string
	LastName       *string
	AddressId      *int64
	AddressIdIn    []int64
	IncludeDeleted bool
}
