package models

type Address struct {
	Id           int64
	Country      string
	City         string
	Street       string
	StreetNumber string
}

type AddressRevision struct {
	Address       Address
	Revision      int64
	Type          RevisionType
	ChangedFields []string
}
