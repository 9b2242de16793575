package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/GantalaAvinash/mobile-store/internal/catalog"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	carts   map[string]Cart
	loadErr error
	saveErr error
	saveCnt int
}

func newFakeStore() *fakeStore {
	return &fakeStore{carts: make(map[string]Cart)}
}

func (f *fakeStore) Load(_ context.Context, userID string) (*Cart, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	c, ok := f.carts[userID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeStore) Save(_ context.Context, userID string, c Cart) error {
	f.saveCnt++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.carts[userID] = c
	return nil
}

func phone(id string, price int64) catalog.Product {
	return catalog.Product{
		ID:    id,
		Name:  "Phone " + id,
		Price: price,
	}
}

func TestAddToCart_MergesByProductID(t *testing.T) {
	s := NewService(newFakeStore(), zap.NewNop())
	ctx := context.Background()

	s.AddToCart(ctx, "u1", phone("p1", 1000), 1)
	got := s.AddToCart(ctx, "u1", phone("p1", 1000), 2)

	require.Len(t, got.Items, 1)
	require.Equal(t, 3, got.Items[0].Quantity)
	require.Equal(t, int64(3000), got.Total)
	require.Equal(t, 3, got.ItemCount)
}

func TestAddToCart_NonPositiveQuantityDefaultsToOne(t *testing.T) {
	s := NewService(newFakeStore(), zap.NewNop())
	ctx := context.Background()

	got := s.AddToCart(ctx, "u1", phone("p1", 500), 0)

	require.Len(t, got.Items, 1)
	require.Equal(t, 1, got.Items[0].Quantity)
}

func TestTotals_SumAcrossItems(t *testing.T) {
	s := NewService(newFakeStore(), zap.NewNop())
	ctx := context.Background()

	s.AddToCart(ctx, "u1", phone("p1", 9990000), 2)
	got := s.AddToCart(ctx, "u1", phone("p2", 2490000), 1)

	require.Equal(t, int64(2*9990000+2490000), got.Total)
	require.Equal(t, 3, got.ItemCount)
	require.Len(t, got.Items, 2)
}

func TestUpdateQuantity_ReplacesQuantity(t *testing.T) {
	s := NewService(newFakeStore(), zap.NewNop())
	ctx := context.Background()

	s.AddToCart(ctx, "u1", phone("p1", 1000), 5)
	got := s.UpdateQuantity(ctx, "u1", "p1", 2)

	require.Equal(t, 2, got.Items[0].Quantity)
	require.Equal(t, int64(2000), got.Total)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	s := NewService(newFakeStore(), zap.NewNop())
	ctx := context.Background()

	s.AddToCart(ctx, "u1", phone("p1", 1000), 5)
	got := s.UpdateQuantity(ctx, "u1", "p1", 0)

	require.Empty(t, got.Items)
	require.Zero(t, got.Total)
	require.Zero(t, got.ItemCount)
}

func TestRemoveFromCart_AbsentProductIsNoOp(t *testing.T) {
	s := NewService(newFakeStore(), zap.NewNop())
	ctx := context.Background()

	s.AddToCart(ctx, "u1", phone("p1", 1000), 1)
	got := s.RemoveFromCart(ctx, "u1", "nope")

	require.Len(t, got.Items, 1)
}

func TestClear_EmptiesCart(t *testing.T) {
	s := NewService(newFakeStore(), zap.NewNop())
	ctx := context.Background()

	s.AddToCart(ctx, "u1", phone("p1", 1000), 1)
	s.AddToCart(ctx, "u1", phone("p2", 2000), 4)
	got := s.Clear(ctx, "u1")

	require.Empty(t, got.Items)
	require.Zero(t, got.Total)
	require.Zero(t, got.ItemCount)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	s := NewService(newFakeStore(), zap.NewNop())
	ctx := context.Background()

	s.AddToCart(ctx, "u1", phone("p1", 1000), 1)
	got := s.Get(ctx, "u2")

	require.Empty(t, got.Items)
}

func TestSubscribe_ReceivesSnapshotAfterMutation(t *testing.T) {
	s := NewService(newFakeStore(), zap.NewNop())
	ctx := context.Background()

	var gotUser string
	var gotCart Cart
	s.Subscribe(func(userID string, snapshot Cart) {
		gotUser = userID
		gotCart = snapshot
	})

	s.AddToCart(ctx, "u1", phone("p1", 1000), 2)

	require.Equal(t, "u1", gotUser)
	require.Equal(t, int64(2000), gotCart.Total)
}

func TestSubscribe_CallbackMayReenterService(t *testing.T) {
	s := NewService(newFakeStore(), zap.NewNop())
	ctx := context.Background()

	var seen Cart
	s.Subscribe(func(userID string, _ Cart) {
		seen = s.Get(ctx, userID)
	})

	s.AddToCart(ctx, "u1", phone("p1", 1000), 2)

	require.Equal(t, int64(2000), seen.Total)
	require.Equal(t, 2, seen.ItemCount)
}

func TestCartRestoredFromStore(t *testing.T) {
	store := newFakeStore()
	store.carts["u1"] = Cart{
		Items: []CartItem{{Product: phone("p1", 1000), Quantity: 3}},
	}

	s := NewService(store, zap.NewNop())
	got := s.Get(context.Background(), "u1")

	require.Len(t, got.Items, 1)
	require.Equal(t, int64(3000), got.Total)
	require.Equal(t, 3, got.ItemCount)
}

func TestLoadFailure_StartsEmpty(t *testing.T) {
	store := newFakeStore()
	store.loadErr = errors.New("store down")

	s := NewService(store, zap.NewNop())
	got := s.Get(context.Background(), "u1")

	require.Empty(t, got.Items)
}

func TestSaveFailure_DoesNotAffectInMemoryCart(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("store down")

	s := NewService(store, zap.NewNop())
	ctx := context.Background()

	got := s.AddToCart(ctx, "u1", phone("p1", 1000), 1)

	require.Len(t, got.Items, 1)
	require.Equal(t, int64(1000), s.Get(ctx, "u1").Total)
}

func TestMutationMirroredToStore(t *testing.T) {
	store := newFakeStore()
	s := NewService(store, zap.NewNop())
	ctx := context.Background()

	s.AddToCart(ctx, "u1", phone("p1", 1000), 2)

	stored, ok := store.carts["u1"]
	require.True(t, ok)
	require.Equal(t, int64(2000), stored.Total)
	require.Equal(t, 1, store.saveCnt)
}
