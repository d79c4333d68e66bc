package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pennyflow/pennyflow_backend/config"
	"github.com/pennyflow/pennyflow_backend/models"
	"github.com/pennyflow/pennyflow_backend/utils"
)

// Snapshot hash fields under user:{id}. Each field is JSON-encoded on its
// own so single-field readers skip decoding the rest, while CacheUser still
// writes them as one operation.
const (
	FieldMeta         = "meta"
	FieldTransactions = "transactions"
	FieldBudgets      = "budgets"
)

type FieldState int

const (
	// FieldHit: the field exists and holds valid JSON.
	FieldHit FieldState = iota
	// FieldMissing: the key or field does not exist. Not an error.
	FieldMissing
	// FieldMalformed: the field exists but its payload does not decode.
	// Callers treat this as a forced miss-and-refetch rather than silently
	// defaulting to empty collections.
	FieldMalformed
)

// FieldResult is the outcome of a single-field cache read.
type FieldResult struct {
	State FieldState
	Raw   string
	Err   error
}

func (r FieldResult) Hit() bool { return r.State == FieldHit }

// UserCache bridges the record store's object graph and the field store's
// flat key/field model. It never mutates records, only republishes
// snapshots.
type UserCache struct {
	store  FieldStore
	ttl    time.Duration
	logger *logrus.Logger
}

func NewUserCache(store FieldStore, ttl time.Duration, logger *logrus.Logger) *UserCache {
	if ttl <= 0 {
		ttl = config.DefaultCacheLifespan
	}
	return &UserCache{store: store, ttl: ttl, logger: logger}
}

func userKey(userID string) string {
	return "user:" + userID
}

// CacheUser serialises the snapshot into the user:{id} hash and sets the
// expiry on the whole key. Overwrites any existing entry. Store errors
// propagate to the caller; there is no retry here.
func (c *UserCache) CacheUser(ctx context.Context, snapshot models.UserSnapshot) error {
	meta, err := utils.MarshalToJSON(snapshot.Meta)
	if err != nil {
		return err
	}
	transactions, err := utils.MarshalToJSON(emptyIfNil(snapshot.Transactions))
	if err != nil {
		return err
	}
	budgets, err := utils.MarshalToJSON(emptyIfNil(snapshot.Budgets))
	if err != nil {
		return err
	}

	key := userKey(snapshot.Meta.Id)
	fields := map[string]string{
		FieldMeta:         meta,
		FieldTransactions: transactions,
		FieldBudgets:      budgets,
	}
	if err := c.store.SetFields(ctx, key, fields); err != nil {
		return err
	}
	return c.store.Expire(ctx, key, c.ttl)
}

// GetCachedUser reads the whole snapshot. The bool is false when the key
// does not exist or any present field fails to decode; a malformed entry is
// logged and treated as a miss so the caller refetches from the record
// store.
func (c *UserCache) GetCachedUser(ctx context.Context, userID string) (*models.UserSnapshot, bool, error) {
	fields, err := c.store.GetAllFields(ctx, userKey(userID))
	if err != nil {
		return nil, false, err
	}
	if len(fields) == 0 {
		return nil, false, nil
	}

	snapshot := models.UserSnapshot{
		Transactions: []models.TransactionView{},
		Budgets:      []models.BudgetView{},
	}
	if raw, ok := fields[FieldMeta]; ok {
		if err := utils.UnmarshalFromJSON([]byte(raw), &snapshot.Meta); err != nil {
			c.logMalformed(userID, FieldMeta, err)
			return nil, false, nil
		}
	}
	if raw, ok := fields[FieldTransactions]; ok {
		if err := utils.UnmarshalFromJSON([]byte(raw), &snapshot.Transactions); err != nil {
			c.logMalformed(userID, FieldTransactions, err)
			return nil, false, nil
		}
	}
	if raw, ok := fields[FieldBudgets]; ok {
		if err := utils.UnmarshalFromJSON([]byte(raw), &snapshot.Budgets); err != nil {
			c.logMalformed(userID, FieldBudgets, err)
			return nil, false, nil
		}
	}
	return &snapshot, true, nil
}

// GetCachedField reads a single named field without decoding the others.
func (c *UserCache) GetCachedField(ctx context.Context, userID string, field string) FieldResult {
	raw, found, err := c.store.GetField(ctx, userKey(userID), field)
	if err != nil {
		return FieldResult{State: FieldMissing, Err: err}
	}
	if !found {
		return FieldResult{State: FieldMissing}
	}
	if !json.Valid([]byte(raw)) {
		c.logMalformed(userID, field, nil)
		return FieldResult{State: FieldMalformed, Raw: raw}
	}
	return FieldResult{State: FieldHit, Raw: raw}
}

// Invalidate drops the snapshot. Nothing on the write paths calls this:
// staleness is bounded by the TTL alone (documented behavior).
func (c *UserCache) Invalidate(ctx context.Context, userID string) error {
	return c.store.Delete(ctx, userKey(userID))
}

func (c *UserCache) logMalformed(userID string, field string, err error) {
	if c.logger == nil {
		return
	}
	entry := c.logger.WithFields(logrus.Fields{
		"module":   "cache",
		"funcName": "UserCache",
		"user_id":  userID,
		"field":    field,
	})
	if err != nil {
		entry.Error("malformed cached field: " + err.Error())
	} else {
		entry.Error("malformed cached field")
	}
}

// FieldResultAs decodes a hit into a typed value. A decode failure at the
// typed level is reported as FieldMalformed too, so callers fall back to the
// record store.
func FieldResultAs[T any](r FieldResult) (T, FieldState) {
	var value T
	if r.State != FieldHit {
		return value, r.State
	}
	if err := utils.UnmarshalFromJSON([]byte(r.Raw), &value); err != nil {
		return value, FieldMalformed
	}
	return value, FieldHit
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
