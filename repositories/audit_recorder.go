package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/hindsight-db/hindsight/models"
	"github.com/hindsight-db/hindsight/pure_utils"
)

// AuditRecorder writes audit rows for one transaction. The revision number is
// allocated lazily on the first recorded change and reused for every change
// recorded afterwards, so all audited writes of the transaction share it.
//
// The recorder must run on the same executor as the entity writes it records.
type AuditRecorder struct {
	repo     *HindsightDbRepository
	exec     Executor
	strategy models.AuditStrategy
	revision *models.Revision
}

func (repo *HindsightDbRepository) NewAuditRecorder(exec Executor) *AuditRecorder {
	return &AuditRecorder{
		repo:     repo,
		exec:     exec,
		strategy: repo.strategy,
	}
}

func (rec *AuditRecorder) Revision(ctx context.Context) (models.Revision, error) {
	if rec.revision != nil {
		return *rec.revision, nil
	}
	revision, err := rec.repo.CreateRevision(ctx, rec.exec)
	if err != nil {
		return models.Revision{}, err
	}
	rec.revision = &revision
	return revision, nil
}

func (rec *AuditRecorder) RecordInsert(
	ctx context.Context,
	mapping models.AuditMapping,
	entityId int64,
	values map[string]any,
) error {
	return rec.record(ctx, models.RevisionAdd, mapping, entityId, values, nil)
}

func (rec *AuditRecorder) RecordUpdate(
	ctx context.Context,
	mapping models.AuditMapping,
	entityId int64,
	before, after map[string]any,
) error {
	oldSnapshot, err := pure_utils.SnapshotJSON(mapping.Columns, before)
	if err != nil {
		return err
	}
	newSnapshot, err := pure_utils.SnapshotJSON(mapping.Columns, after)
	if err != nil {
		return err
	}

	return rec.record(ctx, models.RevisionMod, mapping, entityId, after,
		pure_utils.ChangedFields(oldSnapshot, newSnapshot))
}

// RecordDelete writes a deletion row carrying only the entity id: all other
// entity columns are null, so property filters never match deletion rows.
func (rec *AuditRecorder) RecordDelete(
	ctx context.Context,
	mapping models.AuditMapping,
	entityId int64,
) error {
	return rec.record(ctx, models.RevisionDel, mapping, entityId, nil, nil)
}

func (rec *AuditRecorder) record(
	ctx context.Context,
	revType models.RevisionType,
	mapping models.AuditMapping,
	entityId int64,
	values map[string]any,
	changedFields []string,
) error {
	revision, err := rec.Revision(ctx)
	if err != nil {
		return err
	}

	if rec.strategy == models.AuditStrategyValidity {
		if err := rec.closeHeadRow(ctx, mapping, entityId, revision.Number); err != nil {
			return err
		}
	}

	columns := make([]string, 0, len(mapping.Columns)+5)
	columns = append(columns, "audit_id", mapping.IdColumn)
	columns = append(columns, mapping.Columns...)
	columns = append(columns, "rev", "rev_type", "changed_fields")

	rowValues := make([]any, 0, len(columns))
	rowValues = append(rowValues, uuid.New(), entityId)
	for _, column := range mapping.Columns {
		rowValues = append(rowValues, values[column])
	}

	var changed any
	if len(changedFields) > 0 {
		encoded, err := json.Marshal(changedFields)
		if err != nil {
			return errors.Wrap(err, "could not encode changed fields")
		}
		changed = encoded
	}
	rowValues = append(rowValues, revision.Number, int16(revType), changed)

	query := NewQueryBuilder().
		Insert(mapping.AuditTable).
		Columns(columns...).
		Values(rowValues...)

	_, err = ExecBuilder(ctx, rec.exec, query)
	return errors.Wrapf(err, "could not record %s revision on %s", revType, mapping.Table)
}

// closeHeadRow stamps the current head audit row of the entity with the
// superseding revision. It runs before the new row is inserted, so at most
// one open row per entity id exists at any time.
func (rec *AuditRecorder) closeHeadRow(
	ctx context.Context,
	mapping models.AuditMapping,
	entityId int64,
	revision int64,
) error {
	query := NewQueryBuilder().
		Update(mapping.AuditTable).
		Set("rev_end", revision).
		Where(squirrel.Eq{mapping.IdColumn: entityId}).
		Where("rev_end IS NULL")

	_, err := ExecBuilder(ctx, rec.exec, query)
	return errors.Wrapf(err, "could not close head audit row on %s", mapping.AuditTable)
}
