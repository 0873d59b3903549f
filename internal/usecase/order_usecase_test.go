package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"foodcourt_api/internal/domain/entities"
	"foodcourt_api/internal/usecase/interfaces"
	mock_interfaces "foodcourt_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func burgerEvent(qty int64) entities.OrderEvent {
	return entities.OrderEvent{
		RestaurantID: 1,
		MenuItem:     "Burger",
		Quantity:     qty,
		UnitPrice:    9.99,
		TotalPrice:   9.99 * float64(qty),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOrderUseCase_AddOrderValidation(t *testing.T) {
	cases := []struct {
		name string
		ev   entities.OrderEvent
		want error
	}{
		{name: "zero restaurant", ev: entities.OrderEvent{RestaurantID: 0, MenuItem: "Burger", Quantity: 1, UnitPrice: 9.99}, want: ErrInvalidRestaurantID},
		{name: "blank item", ev: entities.OrderEvent{RestaurantID: 1, MenuItem: "   ", Quantity: 1, UnitPrice: 9.99}, want: ErrInvalidMenuItem},
		{name: "zero quantity", ev: entities.OrderEvent{RestaurantID: 1, MenuItem: "Burger", Quantity: 0, UnitPrice: 9.99}, want: ErrInvalidQuantity},
		{name: "negative quantity", ev: entities.OrderEvent{RestaurantID: 1, MenuItem: "Burger", Quantity: -2, UnitPrice: 9.99}, want: ErrInvalidQuantity},
		{name: "non-positive price", ev: entities.OrderEvent{RestaurantID: 1, MenuItem: "Burger", Quantity: 1, UnitPrice: 0}, want: ErrInvalidUnitPrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewOrderUseCase(nil)
			_, _, err := uc.AddOrder(context.Background(), tc.ev)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestOrderUseCase_AddOrderInsert(t *testing.T) {
	t.Run("first event creates the aggregate with caller-supplied total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		ev := burgerEvent(2)
		ev.TotalPrice = 19.98

		repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(entities.OrderAggregate{}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderAggregate{})).DoAndReturn(
			func(_ context.Context, agg entities.OrderAggregate) error {
				if agg.Quantity != 2 || !almostEqual(agg.TotalPrice, 19.98) || !almostEqual(agg.UnitPrice, 9.99) {
					t.Fatalf("unexpected aggregate: %+v", agg)
				}
				return nil
			},
		)

		agg, created, err := uc.AddOrder(context.Background(), ev)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Fatalf("expected created")
		}
		if agg.Quantity != 2 {
			t.Fatalf("unexpected quantity: %d", agg.Quantity)
		}
	})

	t.Run("advisory total is stored as given on insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		ev := burgerEvent(2)
		ev.TotalPrice = 42.0 // inconsistent on purpose

		repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(entities.OrderAggregate{}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, agg entities.OrderAggregate) error {
				if !almostEqual(agg.TotalPrice, 42.0) {
					t.Fatalf("expected caller total kept, got %v", agg.TotalPrice)
				}
				return nil
			},
		)

		if _, _, err := uc.AddOrder(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_AddOrderMerge(t *testing.T) {
	t.Run("second event accumulates quantity and recomputes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		existing := entities.OrderAggregate{RestaurantID: 1, MenuItem: "Burger", Quantity: 2, UnitPrice: 9.99, TotalPrice: 19.98}
		repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(existing, nil)
		repo.EXPECT().UpdateIfQuantity(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, agg entities.OrderAggregate, _ int64) error {
				if agg.Quantity != 5 || !almostEqual(agg.TotalPrice, 49.95) {
					t.Fatalf("unexpected merged aggregate: %+v", agg)
				}
				return nil
			},
		)

		agg, created, err := uc.AddOrder(context.Background(), burgerEvent(3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created {
			t.Fatalf("expected update, not create")
		}
		if agg.Quantity != 5 || !almostEqual(agg.TotalPrice, 49.95) {
			t.Fatalf("unexpected aggregate: %+v", agg)
		}
	})

	t.Run("incoming unit price is authoritative on merge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		existing := entities.OrderAggregate{RestaurantID: 1, MenuItem: "Burger", Quantity: 4, UnitPrice: 8.00, TotalPrice: 32.00}
		repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(existing, nil)
		repo.EXPECT().UpdateIfQuantity(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(
			func(_ context.Context, agg entities.OrderAggregate, _ int64) error {
				if !almostEqual(agg.UnitPrice, 9.99) || !almostEqual(agg.TotalPrice, 9.99*5) {
					t.Fatalf("expected incoming price applied, got %+v", agg)
				}
				return nil
			},
		)

		if _, _, err := uc.AddOrder(context.Background(), burgerEvent(1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repeated identical events double-count", func(t *testing.T) {
		// No idempotency keys: the same event applied twice adds twice.
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(entities.OrderAggregate{}, nil),
			repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
			repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(
				entities.OrderAggregate{RestaurantID: 1, MenuItem: "Burger", Quantity: 2, UnitPrice: 9.99, TotalPrice: 19.98}, nil),
			repo.EXPECT().UpdateIfQuantity(gomock.Any(), gomock.Any(), int64(2)).Return(nil),
		)

		ev := burgerEvent(2)
		if _, _, err := uc.AddOrder(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		agg, created, err := uc.AddOrder(context.Background(), ev)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created || agg.Quantity != 4 {
			t.Fatalf("expected doubled quantity 4, got created=%v qty=%d", created, agg.Quantity)
		}
	})
}

func TestOrderUseCase_AddOrderConflictRetry(t *testing.T) {
	t.Run("insert race falls back to merge against the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(entities.OrderAggregate{}, nil),
			repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(interfaces.ErrConflict),
			repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(
				entities.OrderAggregate{RestaurantID: 1, MenuItem: "Burger", Quantity: 1, UnitPrice: 9.99, TotalPrice: 9.99}, nil),
			repo.EXPECT().UpdateIfQuantity(gomock.Any(), gomock.Any(), int64(1)).Return(nil),
		)

		agg, created, err := uc.AddOrder(context.Background(), burgerEvent(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created || agg.Quantity != 2 {
			t.Fatalf("expected merged quantity 2, got created=%v qty=%d", created, agg.Quantity)
		}
	})

	t.Run("update conflict re-reads the fresh quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(
				entities.OrderAggregate{RestaurantID: 1, MenuItem: "Burger", Quantity: 1, UnitPrice: 9.99, TotalPrice: 9.99}, nil),
			repo.EXPECT().UpdateIfQuantity(gomock.Any(), gomock.Any(), int64(1)).Return(interfaces.ErrConflict),
			repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(
				entities.OrderAggregate{RestaurantID: 1, MenuItem: "Burger", Quantity: 2, UnitPrice: 9.99, TotalPrice: 19.98}, nil),
			repo.EXPECT().UpdateIfQuantity(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
				func(_ context.Context, agg entities.OrderAggregate, _ int64) error {
					if agg.Quantity != 3 {
						t.Fatalf("expected quantity 3 after re-read, got %d", agg.Quantity)
					}
					return nil
				},
			),
		)

		if _, _, err := uc.AddOrder(context.Background(), burgerEvent(1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exhausted contention surfaces as store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(
			entities.OrderAggregate{RestaurantID: 1, MenuItem: "Burger", Quantity: 1, UnitPrice: 9.99, TotalPrice: 9.99}, nil,
		).Times(maxUpsertAttempts)
		repo.EXPECT().UpdateIfQuantity(gomock.Any(), gomock.Any(), int64(1)).Return(interfaces.ErrConflict).Times(maxUpsertAttempts)

		_, _, err := uc.AddOrder(context.Background(), burgerEvent(1))
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("find failure surfaces as store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").Return(entities.OrderAggregate{}, errors.New("timeout"))

		_, _, err := uc.AddOrder(context.Background(), burgerEvent(1))
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestOrderUseCase_AddOrderSequence(t *testing.T) {
	// After events with quantities q1..qN at a final price p, quantity
	// must equal the sum and total must equal p * sum.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
	uc := NewOrderUseCase(repo)

	quantities := []int64{2, 3, 1, 4}
	var stored entities.OrderAggregate

	repo.EXPECT().Find(gomock.Any(), int64(1), "Burger").DoAndReturn(
		func(context.Context, int64, string) (entities.OrderAggregate, error) {
			return stored, nil
		},
	).Times(len(quantities))
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, agg entities.OrderAggregate) error {
			stored = agg
			return nil
		},
	)
	repo.EXPECT().UpdateIfQuantity(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, agg entities.OrderAggregate, _ int64) error {
			stored = agg
			return nil
		},
	).Times(len(quantities) - 1)

	for _, q := range quantities {
		if _, _, err := uc.AddOrder(context.Background(), burgerEvent(q)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if stored.Quantity != 10 {
		t.Fatalf("expected total quantity 10, got %d", stored.Quantity)
	}
	if !almostEqual(stored.TotalPrice, 9.99*10) {
		t.Fatalf("expected total %v, got %v", 9.99*10, stored.TotalPrice)
	}
	if !almostEqual(stored.TotalPrice, stored.UnitPrice*float64(stored.Quantity)) {
		t.Fatalf("total/unit-price invariant violated: %+v", stored)
	}
}

func TestOrderUseCase_ListOrders(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListOrders(context.Background()); !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderLedgerRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.OrderAggregate{{RestaurantID: 1, MenuItem: "Burger"}}, nil)

		orders, err := uc.ListOrders(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 {
			t.Fatalf("expected 1 order, got %d", len(orders))
		}
	})
}
