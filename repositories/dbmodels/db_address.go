package dbmodels

import (
	"github.com/guregu/null/v5"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/utils"
)

type DbAddress struct {
	Id           int64  `db:"id"`
	Country      string `db:"country"`
	City         string `db:"city"`
	Street       string `db:"street"`
	StreetNumber string `db:"street_number"`
}

const (
	TABLE_ADDRESSES       = "addresses"
	TABLE_ADDRESSES_AUDIT = "addresses_audit"
)

var SelectAddressColumns = utils.ColumnList[DbAddress]()

func AdaptAddress(db DbAddress) (models.Address, error) {
	return models.Address{
		Id:           db.Id,
		Country:      db.Country,
		City:         db.City,
		Street:       db.Street,
		StreetNumber: db.StreetNumber,
	}, nil
}

type DbAddressRevision struct {
	Id            int64       `db:"id"`
	Country       null.String `db:"country"`
	City          null.String `db:"city"`
	Street        null.String `db:"street"`
	StreetNumber  null.String `db:"street_number"`
	Rev           int64       `db:"rev"`
	RevEnd        null.Int    `db:"rev_end"`
	RevType       int16       `db:"rev_type"`
	ChangedFields []string    `db:"changed_fields"`
}

var SelectAddressRevisionColumns = utils.ColumnList[DbAddressRevision]()

func AdaptAddressRevision(db DbAddressRevision) (models.AddressRevision, error) {
	return models.AddressRevision{
		Address: models.Address{
			Id:           db.Id,
			Country:      db.Country.ValueOrZero(),
			City:         db.City.ValueOrZero(),
			Street:       db.Street.ValueOrZero(),
			StreetNumber: db.StreetNumber.ValueOrZero(),
		},
		Revision:      db.Rev,
		Type:          models.RevisionType(db.RevType),
		ChangedFields: db.ChangedFields,
	}, nil
}

var AddressAuditMapping = models.AuditMapping{
	Table:      TABLE_ADDRESSES,
	AuditTable: TABLE_ADDRESSES_AUDIT,
	IdColumn:   "id",
	Columns:    []string{"country", "city", "street", "street_number"},
	Properties: map[string]string{
		"country":      "country",
		"city":         "city",
		"street":       "street",
		"streetNumber": "street_number",
	},
	Relations: map[string]string{},
}

func AddressAuditValues(address models.Address) map[string]any {
	return map[string]any{
		"country":       address.Country,
		"city":          address.City,
		"street":        address.Street,
		"street_number": address.StreetNumber,
	}
}
