package models

import (
	"github.com/cockroachdb/errors"
)

// AuditStrategy selects the audit table layout used for point-in-time queries.
type AuditStrategy string

const (
	// AuditStrategyValidity stamps each audit row with the revision at which it
	// was superseded (rev_end), so "as of revision" lookups are a direct range
	// check instead of a scan of all prior rows.
	AuditStrategyValidity AuditStrategy = "validity"

	// AuditStrategyDefault keeps audit rows insert-only; "as of revision"
	// lookups resolve the head row with a correlated max(rev) subquery.
	AuditStrategyDefault AuditStrategy = "default"
)

func AuditStrategyFrom(s string) (AuditStrategy, error) {
	switch AuditStrategy(s) {
	case AuditStrategyValidity:
		return AuditStrategyValidity, nil
	case AuditStrategyDefault, "":
		return AuditStrategyDefault, nil
	}
	return "", errors.Wrapf(ErrUnknownStrategy, "%q", s)
}

// AuditMapping describes how one audited table maps onto its shadow audit
// table: which columns are versioned, and how exposed property and relation
// names translate to columns. Query builders only accept property and
// relation names that are declared here.
type AuditMapping struct {
	Table      string
	AuditTable string
	IdColumn   string

	// Columns are the versioned entity columns, without the id column.
	// Their order is the insert order of audit rows.
	Columns []string

	// Properties maps exposed property names to entity columns.
	Properties map[string]string

	// Relations maps exposed relation names to foreign key columns.
	Relations map[string]string
}

func (m AuditMapping) PropertyColumn(name string) (string, error) {
	if col, ok := m.Properties[name]; ok {
		return col, nil
	}
	return "", errors.Wrapf(ErrUnknownProperty, "%q on %s", name, m.Table)
}

func (m AuditMapping) RelationColumn(name string) (string, error) {
	if col, ok := m.Relations[name]; ok {
		return col, nil
	}
	return "", errors.Wrapf(ErrUnknownRelation, "%q on %s", name, m.Table)
}
