package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Despensa-api/internal/application/stock"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/pkg/logger"
	"github.com/jhoicas/Despensa-api/pkg/retry"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repositorios + TxRunner con semántica de rollback
// (snapshot antes de fn, restore si fn falla).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	items   map[string]*entity.StockItem // clave bucket/id
	entries []*entity.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{items: map[string]*entity.StockItem{}}
}

func key(bucket, id string) string { return bucket + "/" + id }

func (s *memStore) snapshot() memStore {
	cp := memStore{items: map[string]*entity.StockItem{}}
	for k, v := range s.items {
		c := *v
		cp.items[k] = &c
	}
	cp.entries = append([]*entity.LedgerEntry(nil), s.entries...)
	return cp
}

type memItemRepo struct{ s *memStore }

var _ repository.StockItemRepository = (*memItemRepo)(nil)

func (r *memItemRepo) GetByID(bucket, id string) (*entity.StockItem, error) {
	if it, ok := r.s.items[key(bucket, id)]; ok {
		c := *it
		return &c, nil
	}
	return nil, nil
}

func (r *memItemRepo) GetForUpdate(bucket, id string) (*entity.StockItem, error) {
	return r.GetByID(bucket, id)
}

func (r *memItemRepo) FindByNameAndCategory(bucket, location, name, category string) (*entity.StockItem, error) {
	for _, it := range r.s.items {
		if it.Bucket == bucket && it.Location == location && it.Name == name && it.Category == category {
			c := *it
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) ListByBucket(bucket, location string) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range r.s.items {
		if it.Bucket == bucket && it.Location == location {
			c := *it
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memItemRepo) Create(item *entity.StockItem) error {
	c := *item
	r.s.items[key(item.Bucket, item.ID)] = &c
	return nil
}

func (r *memItemRepo) Update(item *entity.StockItem) error {
	k := key(item.Bucket, item.ID)
	if _, ok := r.s.items[k]; !ok {
		return domain.ErrNotFound
	}
	c := *item
	r.s.items[k] = &c
	return nil
}

func (r *memItemRepo) Delete(bucket, id string) error {
	delete(r.s.items, key(bucket, id))
	return nil
}

type memLedgerRepo struct{ s *memStore }

var _ repository.LedgerRepository = (*memLedgerRepo)(nil)

func (r *memLedgerRepo) Create(entry *entity.LedgerEntry) error {
	c := *entry
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	r.s.entries = append(r.s.entries, &c)
	return nil
}

func (r *memLedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	for _, e := range r.s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memLedgerRepo) ListByBucket(bucket, location string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.s.entries {
		if e.Bucket == bucket && (location == "" || e.Location == location) {
			out = append(out, e)
		}
	}
	return out, nil
}

type memTxRunner struct{ s *memStore }

var _ appstock.TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(&memItemRepo{s: r.s}, &memLedgerRepo{s: r.s}); err != nil {
		*r.s = snap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newUseCase(s *memStore) *appstock.UseCase {
	return appstock.NewUseCase(
		&memTxRunner{s: s},
		&memItemRepo{s: s},
		&memLedgerRepo{s: s},
		nil,
		retry.Policy{MaxAttempts: 1},
		testLogger(),
	)
}

func seedItem(s *memStore, bucket, name, category string, qty int64) *entity.StockItem {
	item := &entity.StockItem{
		ID:           uuid.New().String(),
		Bucket:       bucket,
		Name:         name,
		Quantity:     decimal.NewFromInt(qty),
		Unit:         "kg",
		Category:     category,
		MinThreshold: decimal.NewFromInt(10),
		Location:     entity.LocationSedeCentro,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.items[key(bucket, item.ID)] = item
	return item
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_AplicaDefaultsYAsientoDeApertura(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)

	item, err := uc.AddItem(context.Background(), appstock.AddItemInput{
		Bucket:   entity.BucketSecos,
		Name:     "Arroz",
		Quantity: decimal.NewFromInt(12),
		Category: "granos",
		Location: entity.LocationSedeCentro,
		UserID:   "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "kg", item.Unit, "unidad por defecto de la bodega")
	assert.True(t, item.MinThreshold.Equal(decimal.NewFromInt(5)), "umbral por defecto de la bodega")

	require.Len(t, s.entries, 1)
	assert.Equal(t, entity.MovementTypeIN, s.entries[0].Type)
	assert.True(t, s.entries[0].Quantity.Equal(decimal.NewFromInt(12)))
}

func TestAddItem_CantidadCeroSinAsiento(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)

	_, err := uc.AddItem(context.Background(), appstock.AddItemInput{
		Bucket:   entity.BucketDesechables,
		Name:     "Vasos 12oz",
		Quantity: decimal.Zero,
		Category: "vasos",
		Location: entity.LocationSedeNorte,
		UserID:   "user-1",
	})
	require.NoError(t, err)
	assert.Empty(t, s.entries, "cantidad inicial cero no debe abrir el ledger")
}

func TestAddItem_CategoriaFueraDelEnum(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)

	_, err := uc.AddItem(context.Background(), appstock.AddItemInput{
		Bucket:   entity.BucketSecos,
		Name:     "Arroz",
		Quantity: decimal.NewFromInt(1),
		Category: "carnes", // pertenece a congelados, no a secos
		Location: entity.LocationSedeCentro,
		UserID:   "user-1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.items)
}

// ──────────────────────────────────────────────────────────────────────────────
// ConfirmQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmQuantity_SalidaConAsiento(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)
	item := seedItem(s, entity.BucketCongelados, "Costilla de res", "carnes", 30)

	updated, err := uc.ConfirmQuantity(context.Background(), entity.BucketCongelados, item.ID, decimal.NewFromInt(22), "user-1")
	require.NoError(t, err)

	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(22)))
	require.Len(t, s.entries, 1)
	assert.Equal(t, entity.MovementTypeOUT, s.entries[0].Type)
	assert.True(t, s.entries[0].Quantity.Equal(decimal.NewFromInt(8)))
}

func TestConfirmQuantity_SinCambioNoEscribe(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)
	item := seedItem(s, entity.BucketCongelados, "Costilla de res", "carnes", 30)
	before := s.items[key(entity.BucketCongelados, item.ID)].UpdatedAt

	updated, err := uc.ConfirmQuantity(context.Background(), entity.BucketCongelados, item.ID, decimal.NewFromInt(30), "user-1")
	require.NoError(t, err)

	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(30)))
	assert.Empty(t, s.entries, "delta cero no debe producir asiento")
	assert.Equal(t, before, s.items[key(entity.BucketCongelados, item.ID)].UpdatedAt, "el item no debe reescribirse")
}

func TestConfirmQuantity_NegativaRechazadaSinEscribir(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)
	item := seedItem(s, entity.BucketCongelados, "Costilla de res", "carnes", 30)

	_, err := uc.ConfirmQuantity(context.Background(), entity.BucketCongelados, item.ID, decimal.NewFromInt(-5), "user-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, s.entries)
	assert.True(t, s.items[key(entity.BucketCongelados, item.ID)].Quantity.Equal(decimal.NewFromInt(30)))
}

func TestConfirmQuantity_ItemInexistente(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)

	_, err := uc.ConfirmQuantity(context.Background(), entity.BucketCongelados, uuid.New().String(), decimal.NewFromInt(5), "user-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteItem
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteItem_ConRemanenteEmiteCierre(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)
	item := seedItem(s, entity.BucketSecos, "Lentejas", "granos", 5)

	err := uc.DeleteItem(context.Background(), entity.BucketSecos, item.ID, "user-1")
	require.NoError(t, err)

	assert.NotContains(t, s.items, key(entity.BucketSecos, item.ID))
	require.Len(t, s.entries, 1)
	assert.Equal(t, entity.MovementTypeOUT, s.entries[0].Type)
	assert.True(t, s.entries[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "retiro de inventario", s.entries[0].Note)
}

func TestDeleteItem_EnCeroSinAsiento(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)
	item := seedItem(s, entity.BucketSecos, "Lentejas", "granos", 0)

	err := uc.DeleteItem(context.Background(), entity.BucketSecos, item.ID, "user-1")
	require.NoError(t, err)

	assert.NotContains(t, s.items, key(entity.BucketSecos, item.ID))
	assert.Empty(t, s.entries)
}

func TestDeleteItem_YaBorrado(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)

	err := uc.DeleteItem(context.Background(), entity.BucketSecos, uuid.New().String(), "user-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus / LowStock
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_SoloBodegasConEstado(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)
	item := seedItem(s, entity.BucketDescongelando, "Pechuga", "pollo", 3)

	updated, err := uc.UpdateStatus(context.Background(), entity.BucketDescongelando, item.ID, entity.StatusListo, "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusListo, updated.Status)

	seco := seedItem(s, entity.BucketSecos, "Arroz", "granos", 3)
	_, err = uc.UpdateStatus(context.Background(), entity.BucketSecos, seco.ID, entity.StatusListo, "user-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLowStock_UmbralInclusivo(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)
	enUmbral := seedItem(s, entity.BucketCongelados, "Costilla de res", "carnes", 10) // umbral 10
	seedItem(s, entity.BucketCongelados, "Pechuga", "pollo", 11)

	low, err := uc.LowStock(context.Background(), entity.BucketCongelados, entity.LocationSedeCentro)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, enUmbral.ID, low[0].ID)
}

func TestListBucket_BodegaInvalida(t *testing.T) {
	uc := newUseCase(newMemStore())

	_, err := uc.ListBucket(context.Background(), "camara-lunar", entity.LocationSedeCentro)
	require.ErrorIs(t, err, domain.ErrInvalidBucket)
}
