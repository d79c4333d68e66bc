package workflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pennyflow/pennyflow_backend/cache"
	"github.com/pennyflow/pennyflow_backend/config"
	"github.com/pennyflow/pennyflow_backend/models"
)

// RecordSource is the authoritative side of the cache-aside path.
type RecordSource interface {
	GetUserWithAssociations(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetCategoryTotals(ctx context.Context, userID uuid.UUID) (map[models.TransactionCategory]int64, error)
}

// SnapshotCache is the cache side. Read errors and write errors are both
// recoverable here; only record-store errors abort a load.
type SnapshotCache interface {
	CacheUser(ctx context.Context, snapshot models.UserSnapshot) error
	GetCachedUser(ctx context.Context, userID string) (*models.UserSnapshot, bool, error)
	GetCachedField(ctx context.Context, userID string, field string) cache.FieldResult
}

// SnapshotLoader implements the load path shared by the budgets,
// transactions and dashboard endpoints: check cache, on miss query the
// record store, write the result back, serve it either way.
//
// Two concurrent misses for the same user both query and both write; the
// second write wins on the whole key. That race is tolerated: the snapshot
// is a read-through cache of authoritative data, not itself authoritative.
type SnapshotLoader struct {
	records RecordSource
	cache   SnapshotCache
	logger  *logrus.Logger
}

func NewSnapshotLoader(records RecordSource, snapshots SnapshotCache, logger *logrus.Logger) *SnapshotLoader {
	return &SnapshotLoader{records: records, cache: snapshots, logger: logger}
}

// LoadSnapshot returns the user's snapshot, from cache when present,
// otherwise from the record store (caching the result). The fromCache flag
// tells the caller which source served the data.
//
// A cache write failure is non-fatal: it is logged and the freshly queried
// data is still returned. utils.ErrorRecordNotFound propagates when the
// record store has no such user.
func (l *SnapshotLoader) LoadSnapshot(ctx context.Context, userID uuid.UUID) (*models.UserSnapshot, bool, error) {
	cached, found, err := l.cache.GetCachedUser(ctx, userID.String())
	if err != nil {
		// Cache read failures are masked; the record store remains the
		// source of truth.
		config.LogError(l.logger, "workflow", "LoadSnapshot", "GetCachedUser", userID.String(), err)
	}
	if found {
		return cached, true, nil
	}

	snapshot, err := l.loadAndCache(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return snapshot, false, nil
}

// LoadTransactions serves the snapshot's transaction list, reading only the
// transactions field on a cache hit. Missing and malformed fields both fall
// back to a full snapshot load (malformed is a forced refetch, never an
// empty default).
func (l *SnapshotLoader) LoadTransactions(ctx context.Context, userID uuid.UUID) ([]models.TransactionView, bool, error) {
	result := l.cache.GetCachedField(ctx, userID.String(), cache.FieldTransactions)
	if result.Err != nil {
		config.LogError(l.logger, "workflow", "LoadTransactions", "GetCachedField", userID.String(), result.Err)
	}
	if transactions, state := cache.FieldResultAs[[]models.TransactionView](result); state == cache.FieldHit {
		return transactions, true, nil
	}

	snapshot, err := l.loadAndCache(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return snapshot.Transactions, false, nil
}

// LoadBudgets serves the snapshot's budget list; same shape as
// LoadTransactions.
func (l *SnapshotLoader) LoadBudgets(ctx context.Context, userID uuid.UUID) ([]models.BudgetView, bool, error) {
	result := l.cache.GetCachedField(ctx, userID.String(), cache.FieldBudgets)
	if result.Err != nil {
		config.LogError(l.logger, "workflow", "LoadBudgets", "GetCachedField", userID.String(), result.Err)
	}
	if budgets, state := cache.FieldResultAs[[]models.BudgetView](result); state == cache.FieldHit {
		return budgets, true, nil
	}

	snapshot, err := l.loadAndCache(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return snapshot.Budgets, false, nil
}

func (l *SnapshotLoader) loadAndCache(ctx context.Context, userID uuid.UUID) (*models.UserSnapshot, error) {
	user, err := l.records.GetUserWithAssociations(ctx, userID)
	if err != nil {
		return nil, err
	}
	categoryTotals, err := l.records.GetCategoryTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := user.ToSnapshot(categoryTotals)
	if err := l.cache.CacheUser(ctx, snapshot); err != nil {
		// Non-fatal: next request refetches, this one still gets data.
		config.LogError(l.logger, "workflow", "loadAndCache", "CacheUser", userID.String(), err)
	}
	return &snapshot, nil
}
