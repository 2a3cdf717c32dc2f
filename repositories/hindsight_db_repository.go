package repositories

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hindsight-db/hindsight/models"
)

const revisionCacheSize = 4096

// HindsightDbRepository groups all queries against the hindsight database:
// the live entity tables, the shared revisions table and the audit tables.
// Revision rows are immutable once committed, so their metadata is memoized.
type HindsightDbRepository struct {
	strategy      models.AuditStrategy
	revisionCache *lru.Cache[int64, models.Revision]
}

func NewHindsightDbRepository(strategy models.AuditStrategy) *HindsightDbRepository {
	cache, err := lru.New[int64, models.Revision](revisionCacheSize)
	if err != nil {
		panic(err)
	}
	return &HindsightDbRepository{
		strategy:      strategy,
		revisionCache: cache,
	}
}

func (repo *HindsightDbRepository) Strategy() models.AuditStrategy {
	return repo.strategy
}
