package storage_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/domain/order"
	"github.com/jsamuelsen11/storesync/internal/domain/product"
	"github.com/jsamuelsen11/storesync/internal/domain/shipment"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
)

const (
	testSite  int64 = 123
	testOrder int64 = 963
)

func newManager(t *testing.T, opts ...storage.Option) *storage.Manager {
	t.Helper()
	m, err := storage.New(context.Background(), slog.New(slog.DiscardHandler), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func tracking(id string) shipment.Tracking {
	return shipment.Tracking{
		SiteID:           testSite,
		OrderID:          testOrder,
		TrackingID:       id,
		TrackingNumber:   "NUM-" + id,
		TrackingProvider: "USPS",
		DateShipped:      time.Date(2019, 2, 15, 0, 0, 0, 0, time.UTC),
	}
}

func syncTrackings(t *testing.T, m *storage.Manager, items []shipment.Tracking) storage.SyncStats {
	t.Helper()
	var stats storage.SyncStats
	err := m.Write(context.Background(), func(tx *storage.Tx) error {
		var err error
		stats, err = storage.UpsertAndPrune(tx.ShipmentTrackings(),
			storage.OrderScope(testSite, testOrder), items, storage.TrackingKey)
		return err
	})
	require.NoError(t, err)
	return stats
}

func trackingIDs(ts []shipment.Tracking) []string {
	ids := make([]string, len(ts))
	for i, tr := range ts {
		ids[i] = tr.TrackingID
	}
	return ids
}

func TestUpsertAndPrune_DeletesRecordsMissingFromResponse(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	stats := syncTrackings(t, m, []shipment.Tracking{tracking("a"), tracking("b"), tracking("c"), tracking("d")})
	assert.Equal(t, storage.SyncStats{Inserted: 4}, stats)

	stats = syncTrackings(t, m, []shipment.Tracking{tracking("a"), tracking("c"), tracking("d")})
	assert.Equal(t, storage.SyncStats{Updated: 3, Deleted: 1}, stats)

	got := m.View().ShipmentTrackings(testSite, testOrder)
	assert.Equal(t, []string{"a", "c", "d"}, trackingIDs(got))
}

func TestUpsertAndPrune_Idempotent(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	items := []shipment.Tracking{tracking("a"), tracking("b")}

	syncTrackings(t, m, items)
	first := m.View().ShipmentTrackings(testSite, testOrder)

	stats := syncTrackings(t, m, items)
	assert.Equal(t, storage.SyncStats{Updated: 2}, stats)
	assert.Equal(t, first, m.View().ShipmentTrackings(testSite, testOrder))
}

func TestUpsertAndPrune_FollowsResponseOrder(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	syncTrackings(t, m, []shipment.Tracking{tracking("a"), tracking("b"), tracking("c")})

	stats := syncTrackings(t, m, []shipment.Tracking{tracking("c"), tracking("d"), tracking("a")})

	assert.Equal(t, storage.SyncStats{Inserted: 1, Updated: 2, Deleted: 1}, stats)
	assert.Equal(t, []string{"c", "d", "a"}, trackingIDs(m.View().ShipmentTrackings(testSite, testOrder)))
}

func TestUpsertAndPrune_ProviderGroupsFollowServerOrder(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	syncGroups := func(names ...string) {
		groups := make([]shipment.ProviderGroup, len(names))
		for i, name := range names {
			groups[i] = shipment.ProviderGroup{SiteID: testSite, Name: name}
		}
		err := m.Write(context.Background(), func(tx *storage.Tx) error {
			_, err := storage.UpsertAndPrune(tx.ProviderGroups(), storage.SiteScope(testSite), groups, storage.ProviderGroupKey)
			return err
		})
		require.NoError(t, err)
	}

	syncGroups("Australia", "Canada")
	syncGroups("Canada", "Australia")

	var names []string
	for _, g := range m.View().ProviderGroups(testSite) {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Canada", "Australia"}, names)
}

func TestUpsertAndPrune_ReplacesEveryField(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	syncTrackings(t, m, []shipment.Tracking{tracking("a")})

	changed := tracking("a")
	changed.TrackingNumber = "NEW"
	changed.TrackingURL = ""
	changed.DateShipped = time.Time{}
	syncTrackings(t, m, []shipment.Tracking{changed})

	got, ok := m.View().ShipmentTracking(testSite, testOrder, "a")
	require.True(t, ok)
	assert.Equal(t, changed, got)
}

func TestUpsertAndPrune_LeavesOtherScopesAlone(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	other := tracking("x")
	other.OrderID = testOrder + 1
	err := m.Write(context.Background(), func(tx *storage.Tx) error {
		storage.Upsert(tx.ShipmentTrackings(), []shipment.Tracking{other}, storage.TrackingKey)
		return nil
	})
	require.NoError(t, err)

	syncTrackings(t, m, nil)
	assert.Len(t, m.View().ShipmentTrackings(testSite, testOrder+1), 1)
}

func TestUpsertAndPrune_DuplicateKeysStoredOnce(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	second := tracking("a")
	second.TrackingNumber = "LAST"
	stats := syncTrackings(t, m, []shipment.Tracking{tracking("a"), second})

	assert.Equal(t, storage.SyncStats{Inserted: 1}, stats)
	got := m.View().ShipmentTrackings(testSite, testOrder)
	require.Len(t, got, 1)
	assert.Equal(t, "LAST", got[0].TrackingNumber)
}

func TestUpsertAndPrune_OutOfScopeRejected(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	syncTrackings(t, m, []shipment.Tracking{tracking("a")})

	stray := tracking("b")
	stray.OrderID = 1
	err := m.Write(context.Background(), func(tx *storage.Tx) error {
		_, err := storage.UpsertAndPrune(tx.ShipmentTrackings(),
			storage.OrderScope(testSite, testOrder), []shipment.Tracking{tracking("c"), stray}, storage.TrackingKey)
		return err
	})

	require.Error(t, err)
	assert.Equal(t, []string{"a"}, trackingIDs(m.View().ShipmentTrackings(testSite, testOrder)))
}

func TestWrite_FailedTransactionPublishesNothing(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	syncTrackings(t, m, []shipment.Tracking{tracking("a")})
	boom := errors.New("boom")

	err := m.Write(context.Background(), func(tx *storage.Tx) error {
		tx.ShipmentTrackings().DeleteScope(storage.OrderScope(testSite, testOrder))
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Len(t, m.View().ShipmentTrackings(testSite, testOrder), 1)
}

func TestView_IsolatedFromLaterWrites(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	syncTrackings(t, m, []shipment.Tracking{tracking("a")})

	before := m.View()
	syncTrackings(t, m, []shipment.Tracking{tracking("b")})

	assert.Equal(t, []string{"a"}, trackingIDs(before.ShipmentTrackings(testSite, testOrder)))
	assert.Equal(t, []string{"b"}, trackingIDs(m.View().ShipmentTrackings(testSite, testOrder)))
}

func TestView_ReturnsCopies(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	label := shippinglabel.Label{
		SiteID: testSite, OrderID: testOrder, ShippingLabelID: 1,
		ProductIDs: []int64{101, 102},
		Rate:       decimal.RequireFromString("7.65"),
		Refund:     &shippinglabel.Refund{Status: shippinglabel.RefundPending},
	}
	require.NoError(t, m.Write(context.Background(), func(tx *storage.Tx) error {
		storage.Upsert(tx.ShippingLabels(), []shippinglabel.Label{label}, storage.LabelKey)
		return nil
	}))

	got := m.View().ShippingLabels(testSite, testOrder)
	require.Len(t, got, 1)
	got[0].ProductIDs[0] = 999
	got[0].Refund.Status = shippinglabel.RefundRejected

	again := m.View().ShippingLabels(testSite, testOrder)
	assert.Equal(t, int64(101), again[0].ProductIDs[0])
	assert.Equal(t, shippinglabel.RefundPending, again[0].Refund.Status)
	assert.True(t, again[0].Rate.Equal(decimal.RequireFromString("7.65")))
}

func TestTable_InsertNewConflict(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	err := m.Write(context.Background(), func(tx *storage.Tx) error {
		key := storage.IntKey(testSite, 0, 101)
		rec, err := tx.Products().InsertNew(key)
		if err != nil {
			return err
		}
		rec.Update(product.Product{SiteID: testSite, ProductID: 101, Name: "Beanie"})
		_, err = tx.Products().InsertNew(key)
		return err
	})

	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, m.View().Products(testSite, []int64{101}))
}

func TestTable_FindOrInsertAndPredicates(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	require.NoError(t, m.Write(context.Background(), func(tx *storage.Tx) error {
		products := tx.Products()
		for _, id := range []int64{101, 102, 103} {
			rec, inserted := products.FindOrInsert(storage.IntKey(testSite, 0, id))
			assert.True(t, inserted)
			rec.Update(product.Product{SiteID: testSite, ProductID: id, Price: decimal.NewFromInt(id)})
		}
		_, inserted := products.FindOrInsert(storage.IntKey(testSite, 0, 101))
		assert.False(t, inserted)

		cheap := func(_ storage.Key, p product.Product) bool { return p.Price.LessThan(decimal.NewFromInt(103)) }
		assert.Equal(t, 2, products.CountWhere(cheap))
		assert.Equal(t, 2, products.DeleteWhere(cheap))
		return nil
	}))

	got := m.View().Products(testSite, []int64{101, 102, 103})
	require.Len(t, got, 1)
	assert.Equal(t, int64(103), got[0].ProductID)
}

func TestTx_DeleteOrderScope(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	syncTrackings(t, m, []shipment.Tracking{tracking("a"), tracking("b")})

	require.NoError(t, m.Write(context.Background(), func(tx *storage.Tx) error {
		storage.Upsert(tx.Orders(), []order.Order{{SiteID: testSite, OrderID: testOrder}}, storage.OrderKey)
		return nil
	}))

	var deleted int
	require.NoError(t, m.Write(context.Background(), func(tx *storage.Tx) error {
		deleted = tx.DeleteOrderScope(testSite, testOrder)
		return nil
	}))

	assert.Equal(t, 3, deleted)
	_, ok := m.View().Order(testSite, testOrder)
	assert.False(t, ok)
	assert.Empty(t, m.View().ShipmentTrackings(testSite, testOrder))
}

func TestWrite_ConcurrentCallersSerialized(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			err := m.Write(context.Background(), func(tx *storage.Tx) error {
				storage.Upsert(tx.Products(), []product.Product{{SiteID: testSite, ProductID: int64(i)}}, storage.ProductKey)
				return nil
			})
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	assert.Equal(t, 50, m.View().Counts()[storage.TableProducts])
}

func TestWrite_AfterClose(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	require.NoError(t, m.Close())

	err := m.Write(context.Background(), func(*storage.Tx) error { return nil })

	require.ErrorIs(t, err, storage.ErrClosed)
	require.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, m.HealthCheck(context.Background()), storage.ErrClosed)
}

type memPersister struct {
	mu      sync.Mutex
	tables  map[string][]byte
	saveErr error
	saves   int
}

func (p *memPersister) Load(context.Context) (map[string][]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string][]byte, len(p.tables))
	for k, v := range p.tables {
		out[k] = v
	}
	return out, nil
}

func (p *memPersister) Save(_ context.Context, tables map[string][]byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves++
	if p.saveErr != nil {
		return p.saveErr
	}
	if p.tables == nil {
		p.tables = make(map[string][]byte)
	}
	for k, v := range tables {
		p.tables[k] = v
	}
	return nil
}

func (p *memPersister) Ping(context.Context) error { return nil }
func (p *memPersister) Close() error               { return nil }

func TestWrite_PersistFailureKeepsPriorState(t *testing.T) {
	t.Parallel()
	p := &memPersister{}
	m := newManager(t, storage.WithPersister(p))
	syncTrackings(t, m, []shipment.Tracking{tracking("a")})

	p.saveErr = errors.New("disk full")
	err := m.Write(context.Background(), func(tx *storage.Tx) error {
		tx.ShipmentTrackings().DeleteScope(storage.OrderScope(testSite, testOrder))
		return nil
	})

	require.ErrorIs(t, err, domain.ErrStorage)
	assert.Len(t, m.View().ShipmentTrackings(testSite, testOrder), 1)
	assert.Error(t, m.HealthCheck(context.Background()))
}

func TestNew_RestoresPersistedSnapshot(t *testing.T) {
	t.Parallel()
	p := &memPersister{}
	m := newManager(t, storage.WithPersister(p))
	syncTrackings(t, m, []shipment.Tracking{tracking("b"), tracking("a")})
	require.NoError(t, m.Write(context.Background(), func(tx *storage.Tx) error {
		storage.Upsert(tx.Products(), []product.Product{
			{SiteID: testSite, ProductID: 101, Price: decimal.RequireFromString("18.00")},
		}, storage.ProductKey)
		return nil
	}))
	assert.Equal(t, 2, p.saves)

	restored := newManager(t, storage.WithPersister(p))

	got := restored.View().ShipmentTrackings(testSite, testOrder)
	assert.Equal(t, []string{"b", "a"}, trackingIDs(got))
	assert.True(t, got[0].DateShipped.Equal(tracking("b").DateShipped))
	products := restored.View().Products(testSite, []int64{101})
	require.Len(t, products, 1)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(18)))
}

func TestWrite_NoChangesSkipsPersist(t *testing.T) {
	t.Parallel()
	p := &memPersister{}
	m := newManager(t, storage.WithPersister(p))

	require.NoError(t, m.Write(context.Background(), func(*storage.Tx) error { return nil }))
	assert.Zero(t, p.saves)
}

func TestCollector(t *testing.T) {
	t.Parallel()
	m := newManager(t)
	syncTrackings(t, m, []shipment.Tracking{tracking("a"), tracking("b")})

	expected := `
# HELP storesync_storage_commits_total Number of published local commits.
# TYPE storesync_storage_commits_total counter
storesync_storage_commits_total 1
`
	err := testutil.CollectAndCompare(storage.NewCollector(m), strings.NewReader(expected),
		"storesync_storage_commits_total")
	require.NoError(t, err)
	assert.Equal(t, 8, testutil.CollectAndCount(storage.NewCollector(m)))
}
