package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pennyflow/pennyflow_backend/models"
	"github.com/pennyflow/pennyflow_backend/utils"
)

type fakeFieldStore struct {
	data    map[string]map[string]string
	ttls    map[string]time.Duration
	failSet bool
}

func newFakeFieldStore() *fakeFieldStore {
	return &fakeFieldStore{
		data: map[string]map[string]string{},
		ttls: map[string]time.Duration{},
	}
}

func (s *fakeFieldStore) SetFields(ctx context.Context, key string, fields map[string]string) error {
	if s.failSet {
		return errors.New("store unavailable")
	}
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.data[key] = copied
	return nil
}

func (s *fakeFieldStore) GetField(ctx context.Context, key string, field string) (string, bool, error) {
	fields, ok := s.data[key]
	if !ok {
		return "", false, nil
	}
	value, ok := fields[field]
	return value, ok, nil
}

func (s *fakeFieldStore) GetAllFields(ctx context.Context, key string) (map[string]string, error) {
	fields, ok := s.data[key]
	if !ok {
		return map[string]string{}, nil
	}
	return fields, nil
}

func (s *fakeFieldStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	s.ttls[key] = ttl
	return nil
}

func (s *fakeFieldStore) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	delete(s.ttls, key)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func sampleSnapshot(t *testing.T) models.UserSnapshot {
	t.Helper()
	userID := uuid.New()
	monthly := models.FrequencyMonthly
	user := models.User{
		ID:    userID,
		Alias: "Captain Test",
		Transactions: []models.Transaction{
			{ID: uuid.New(), UserId: userID, Type: models.TransactionTypeIncome, Category: models.CategorySalary, Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), Frequency: &monthly, Amount: 250000},
			{ID: uuid.New(), UserId: userID, Type: models.TransactionTypeExpense, Category: models.CategoryRent, Date: time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC), Amount: 95000},
		},
		Budgets: []models.Budget{
			{ID: uuid.New(), UserId: userID, Category: models.CategoryRent, Frequency: models.FrequencyMonthly, Amount: 100000},
		},
	}
	return user.ToSnapshot(map[models.TransactionCategory]int64{models.CategoryRent: 95000})
}

func TestCacheUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeFieldStore()
	userCache := NewUserCache(store, 30*time.Minute, testLogger())
	snapshot := sampleSnapshot(t)

	if err := userCache.CacheUser(ctx, snapshot); err != nil {
		t.Fatalf("CacheUser: %v", err)
	}

	got, found, err := userCache.GetCachedUser(ctx, snapshot.Meta.Id)
	if err != nil || !found {
		t.Fatalf("GetCachedUser found=%v err=%v", found, err)
	}

	// Field-wise JSON round-tripping must preserve the snapshot.
	want, _ := utils.MarshalToJSON(snapshot)
	have, _ := utils.MarshalToJSON(*got)
	if want != have {
		t.Fatalf("snapshot changed over round trip:\nwant %s\nhave %s", want, have)
	}
}

func TestCacheUserSetsExpiryOnWholeKey(t *testing.T) {
	ctx := context.Background()
	store := newFakeFieldStore()
	userCache := NewUserCache(store, 1800*time.Second, testLogger())
	snapshot := sampleSnapshot(t)

	if err := userCache.CacheUser(ctx, snapshot); err != nil {
		t.Fatalf("CacheUser: %v", err)
	}
	if store.ttls[userKey(snapshot.Meta.Id)] != 1800*time.Second {
		t.Fatalf("expiry not set: %v", store.ttls)
	}
}

func TestCacheUserPropagatesStoreError(t *testing.T) {
	store := newFakeFieldStore()
	store.failSet = true
	userCache := NewUserCache(store, 0, testLogger())

	if err := userCache.CacheUser(context.Background(), sampleSnapshot(t)); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}

func TestGetCachedUserAbsentKey(t *testing.T) {
	userCache := NewUserCache(newFakeFieldStore(), 0, testLogger())

	snapshot, found, err := userCache.GetCachedUser(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("absence is not an error: %v", err)
	}
	if found || snapshot != nil {
		t.Fatalf("expected absent, got %+v", snapshot)
	}
}

func TestGetCachedUserDefaultsMissingFields(t *testing.T) {
	ctx := context.Background()
	store := newFakeFieldStore()
	userID := uuid.NewString()
	store.data[userKey(userID)] = map[string]string{
		FieldMeta: `{"id":"` + userID + `","alias":"Captain Test"}`,
	}
	userCache := NewUserCache(store, 0, testLogger())

	snapshot, found, err := userCache.GetCachedUser(ctx, userID)
	if err != nil || !found {
		t.Fatalf("found=%v err=%v", found, err)
	}
	if len(snapshot.Transactions) != 0 || len(snapshot.Budgets) != 0 {
		t.Fatalf("missing fields should default to empty lists: %+v", snapshot)
	}
	if snapshot.Meta.Alias != "Captain Test" {
		t.Fatalf("meta lost: %+v", snapshot.Meta)
	}
}

func TestGetCachedUserMalformedFieldIsForcedMiss(t *testing.T) {
	ctx := context.Background()
	store := newFakeFieldStore()
	userID := uuid.NewString()
	store.data[userKey(userID)] = map[string]string{
		FieldMeta:         `{"id":"` + userID + `","alias":"Captain Test"}`,
		FieldTransactions: `{not json`,
	}
	userCache := NewUserCache(store, 0, testLogger())

	snapshot, found, err := userCache.GetCachedUser(ctx, userID)
	if err != nil {
		t.Fatalf("malformed entry must not error, got %v", err)
	}
	if found || snapshot != nil {
		t.Fatalf("malformed entry should read as a miss so the caller refetches")
	}
}

func TestGetCachedFieldStates(t *testing.T) {
	ctx := context.Background()
	store := newFakeFieldStore()
	userID := uuid.NewString()
	store.data[userKey(userID)] = map[string]string{
		FieldBudgets:      `[]`,
		FieldTransactions: `{oops`,
	}
	userCache := NewUserCache(store, 0, testLogger())

	if got := userCache.GetCachedField(ctx, userID, FieldBudgets); got.State != FieldHit {
		t.Fatalf("budgets: expected hit, got %v", got.State)
	}
	if got := userCache.GetCachedField(ctx, userID, FieldTransactions); got.State != FieldMalformed {
		t.Fatalf("transactions: expected malformed, got %v", got.State)
	}
	if got := userCache.GetCachedField(ctx, userID, FieldMeta); got.State != FieldMissing {
		t.Fatalf("meta: expected missing, got %v", got.State)
	}
	if got := userCache.GetCachedField(ctx, uuid.NewString(), FieldBudgets); got.State != FieldMissing {
		t.Fatalf("absent key: expected missing, got %v", got.State)
	}
}

func TestFieldResultAsReportsTypedDecodeFailure(t *testing.T) {
	// Valid JSON of the wrong shape still counts as malformed at the typed
	// level.
	result := FieldResult{State: FieldHit, Raw: `{"a":1}`}
	if _, state := FieldResultAs[[]models.TransactionView](result); state != FieldMalformed {
		t.Fatalf("expected malformed, got %v", state)
	}

	result = FieldResult{State: FieldHit, Raw: `[]`}
	views, state := FieldResultAs[[]models.TransactionView](result)
	if state != FieldHit || len(views) != 0 {
		t.Fatalf("expected empty hit, got state=%v views=%v", state, views)
	}
}

func TestInvalidateRemovesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newFakeFieldStore()
	userCache := NewUserCache(store, 0, testLogger())
	snapshot := sampleSnapshot(t)

	if err := userCache.CacheUser(ctx, snapshot); err != nil {
		t.Fatalf("CacheUser: %v", err)
	}
	if err := userCache.Invalidate(ctx, snapshot.Meta.Id); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, found, _ := userCache.GetCachedUser(ctx, snapshot.Meta.Id); found {
		t.Fatalf("snapshot still present after invalidate")
	}
}
