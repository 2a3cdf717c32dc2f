package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/utils"
)

type DbCustomer struct {
	Id        int64     `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedOn time.Time `db:"created_on"`
	AddressId *int64    `db:"address_id"`
}

const (
	TABLE_CUSTOMERS       = "customers"
	TABLE_CUSTOMERS_AUDIT = "customers_audit"
)

var SelectCustomerColumns = utils.ColumnList[DbCustomer]()

func AdaptCustomer(db DbCustomer) (models.Customer, error) {
	return models.Customer{
		Id:        db.Id,
		FirstName: db.FirstName,
		LastName:  db.LastName,
		CreatedOn: db.CreatedOn,
		AddressId: db.AddressId,
	}, nil
}

// DbCustomerRevision is one row of the customers audit table. Entity columns
// are nullable because deletion rows only carry the entity id.
type DbCustomerRevision struct {
	Id            int64       `db:"id"`
	FirstName     null.String `db:"first_name"`
	LastName      null.String `db:"last_name"`
	CreatedOn     null.Time   `db:"created_on"`
	AddressId     null.Int    `db:"address_id"`
	Rev           int64       `db:"rev"`
	RevEnd        null.Int    `db:"rev_end"`
	RevType       int16       `db:"rev_type"`
	ChangedFields []string    `db:"changed_fields"`
}

var SelectCustomerRevisionColumns = utils.ColumnList[DbCustomerRevision]()

func AdaptCustomerRevision(db DbCustomerRevision) (models.CustomerRevision, error) {
	customer := models.Customer{
		Id:        db.Id,
		FirstName: db.FirstName.ValueOrZero(),
		LastName:  db.LastName.ValueOrZero(),
		CreatedOn: db.CreatedOn.ValueOrZero(),
	}
	if db.AddressId.Valid {
		addressId := db.AddressId.Int64
		customer.AddressId = &addressId
	}
	return models.CustomerRevision{
		Customer:      customer,
		Revision:      db.Rev,
		Type:          models.RevisionType(db.RevType),
		ChangedFields: db.ChangedFields,
	}, nil
}

// AdaptCustomerOfRevision projects an audit row back onto the entity, for
// point-in-time reconstruction.
func AdaptCustomerOfRevision(db DbCustomerRevision) (models.Customer, error) {
	revision, err := AdaptCustomerRevision(db)
	if err != nil {
		return models.Customer{}, err
	}
	return revision.Customer, nil
}

var CustomerAuditMapping = models.AuditMapping{
	Table:      TABLE_CUSTOMERS,
	AuditTable: TABLE_CUSTOMERS_AUDIT,
	IdColumn:   "id",
	Columns:    []string{"first_name", "last_name", "created_on", "address_id"},
	Properties: map[string]string{
		"firstName": "first_name",
		"lastName":  "last_name",
		"createdOn": "created_on",
	},
	Relations: map[string]string{
		"address": "address_id",
	},
}

// CustomerAuditValues renders the versioned columns of a customer for an
// audit row, keyed per CustomerAuditMapping.Columns.
func CustomerAuditValues(customer models.Customer) map[string]any {
	var addressId any
	if customer.AddressId != nil {
		addressId = *customer.AddressId
	}
	return map[string]any{
		"first_name": customer.FirstName,
		"last_name":  customer.LastName,
		"created_on": customer.CreatedOn,
		"address_id": addressId,
	}
}
