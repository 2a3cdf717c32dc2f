package dbmodels

import (
	"time"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/utils"
)

type DbRevision struct {
	Rev       int64     `db:"rev"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_REVISIONS = "revisions"

var SelectRevisionColumns = utils.ColumnList[DbRevision]()

func AdaptRevision(db DbRevision) (models.Revision, error) {
	return models.Revision{
		Number:    db.Rev,
		CreatedAt: db.CreatedAt,
	}, nil
}
