package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodcourt_api/internal/adapter/http/handlers/mocks"
	"foodcourt_api/internal/domain/entities"
	"foodcourt_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_AddOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/add_order", h.AddOrder)

		req := httptest.NewRequest(http.MethodPost, "/api/add_order", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/add_order", h.AddOrder)

		req := httptest.NewRequest(http.MethodPost, "/api/add_order", bytes.NewBufferString(`{"restaurant_id":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("first event returns 201 with inserted message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/add_order", h.AddOrder)

		agg := entities.OrderAggregate{RestaurantID: 1, MenuItem: "Burger", Quantity: 2, UnitPrice: 9.99, TotalPrice: 19.98}
		uc.EXPECT().AddOrder(gomock.Any(), entities.OrderEvent{
			RestaurantID: 1, MenuItem: "Burger", Quantity: 2, UnitPrice: 9.99, TotalPrice: 19.98,
		}).Return(agg, true, nil)

		body := `{"restaurant_id":1,"menu_item":"Burger","quantity":2,"price":9.99,"total_price":19.98}`
		req := httptest.NewRequest(http.MethodPost, "/api/add_order", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Inserted Burger with quantity 2") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("merge returns 200 with updated message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/add_order", h.AddOrder)

		agg := entities.OrderAggregate{RestaurantID: 1, MenuItem: "Burger", Quantity: 5, UnitPrice: 9.99, TotalPrice: 49.95}
		uc.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(agg, false, nil)

		body := `{"restaurant_id":1,"menu_item":"Burger","quantity":3,"price":9.99}`
		req := httptest.NewRequest(http.MethodPost, "/api/add_order", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Updated Burger quantity to 5") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing total falls back to price times quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/add_order", h.AddOrder)

		uc.EXPECT().AddOrder(gomock.Any(), entities.OrderEvent{
			RestaurantID: 1, MenuItem: "Burger", Quantity: 2, UnitPrice: 9.99, TotalPrice: 19.98,
		}).Return(entities.OrderAggregate{MenuItem: "Burger", Quantity: 2}, true, nil)

		body := `{"restaurant_id":1,"menu_item":"Burger","quantity":2,"price":9.99}`
		req := httptest.NewRequest(http.MethodPost, "/api/add_order", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/add_order", h.AddOrder)

		uc.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(entities.OrderAggregate{}, false, usecase.ErrInvalidQuantity)

		body := `{"restaurant_id":1,"menu_item":"Burger","quantity":-1,"price":9.99,"total_price":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/add_order", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("store failure maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/add_order", h.AddOrder)

		uc.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(entities.OrderAggregate{}, false, usecase.ErrStoreUnavailable)

		body := `{"restaurant_id":1,"menu_item":"Burger","quantity":2,"price":9.99}`
		req := httptest.NewRequest(http.MethodPost, "/api/add_order", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the food_orders array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/api/food_orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any()).Return([]entities.OrderAggregate{
			{RestaurantID: 1, MenuItem: "Burger", Quantity: 5, UnitPrice: 9.99, TotalPrice: 49.95},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/food_orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			FoodOrders []entities.OrderAggregate `json:"food_orders"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if len(body.FoodOrders) != 1 || body.FoodOrders[0].MenuItem != "Burger" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty ledger yields an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/api/food_orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/food_orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"food_orders":[]`) {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("store failure maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/api/food_orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any()).Return(nil, usecase.ErrStoreUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/api/food_orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
