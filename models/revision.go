package models

import (
	"time"
)

// RevisionType tags an audit row with the kind of change that produced it.
// The encoding (0/1/2) is part of the audit table schema, do not reorder.
type RevisionType int16

const (
	RevisionAdd RevisionType = 0
	RevisionMod RevisionType = 1
	RevisionDel RevisionType = 2
)

func (t RevisionType) String() string {
	switch t {
	case RevisionAdd:
		return "add"
	case RevisionMod:
		return "mod"
	case RevisionDel:
		return "del"
	}
	return "unknown"
}

// Revision is allocated once per write transaction and shared by every
// audited change committed in it. Numbers are monotonically increasing
// across the whole database.
type Revision struct {
	Number    int64
	CreatedAt time.Time
}
