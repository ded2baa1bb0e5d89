package http_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/in/http"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/commands"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/ports"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository stubs the order port for handler-level tests.
type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsForRecipe(ctx context.Context, recipeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ExistsForClient(ctx context.Context, clientID kernel.UUID) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ExistsRunForVehicle(ctx context.Context, vehicleID kernel.UUID) (bool, error) {
	args := m.Called(ctx, vehicleID)
	return args.Bool(0), args.Error(1)
}

// MockProductionUoW covers both OrderUoW and ProductionUoW; the recipe and
// settings factories go unused on the paths these tests exercise.
type MockProductionUoW struct {
	mock.Mock
	orderRepo *MockOrderRepository
}

func (m *MockProductionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductionUoW) OrderRepository() ports.OrderRepository { return m.orderRepo }

func (m *MockProductionUoW) RecipeRepository() ports.RecipeRepository { return nil }

func (m *MockProductionUoW) SettingsRepository() ports.SettingsRepository { return nil }

type orderUoWFactory struct{ uow *MockProductionUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type productionUoWFactory struct{ uow *MockProductionUoW }

func (f productionUoWFactory) Create() commands.ProductionUoW { return f.uow }

func newTestEcho(server *adapter.Server) *echo.Echo {
	e := echo.New()
	e.Validator = adapter.NewRequestValidator()
	server.RegisterRoutes(e)
	return e
}

func newOrderUoW(t *testing.T) *MockProductionUoW {
	t.Helper()
	uow := &MockProductionUoW{orderRepo: &MockOrderRepository{}}
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

func pausedOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2.0, 1.0, time.Now().UTC(),
	)
	require.NoError(t, err)
	_, changed := aggregate.Pause()
	require.True(t, changed)
	return aggregate
}

func TestPauseOrder(t *testing.T) {
	t.Run("already_paused_reports_no_op", func(t *testing.T) {
		aggregate := pausedOrder(t)
		uow := newOrderUoW(t)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil)

		handler := commands.NewPauseOrderCommandHandler(orderUoWFactory{uow: uow})
		server := adapter.NewServer(adapter.Commands{PauseOrder: handler}, adapter.Queries{})
		e := newTestEcho(server)

		req := httptest.NewRequest(echo.POST, "/api/orders/"+aggregate.ID().String()+"/pause", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, 200, rec.Code)

		var resp adapter.OrderStatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "paused", resp.Status)
		assert.Equal(t, "Order already paused", resp.Message)
		uow.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown_order_is_404", func(t *testing.T) {
		orderID := kernel.NewUUID()
		uow := newOrderUoW(t)
		uow.orderRepo.On("GetForUpdate", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String()))

		handler := commands.NewPauseOrderCommandHandler(orderUoWFactory{uow: uow})
		server := adapter.NewServer(adapter.Commands{PauseOrder: handler}, adapter.Queries{})
		e := newTestEcho(server)

		req := httptest.NewRequest(echo.POST, "/api/orders/"+orderID.String()+"/pause", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, 404, rec.Code)

		var resp adapter.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 404, resp.Code)
	})

	t.Run("malformed_order_id_is_400", func(t *testing.T) {
		server := adapter.NewServer(adapter.Commands{}, adapter.Queries{})
		e := newTestEcho(server)

		req := httptest.NewRequest(echo.POST, "/api/orders/not-a-uuid/pause", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, 400, rec.Code)
	})
}

func TestCompleteRow(t *testing.T) {
	t.Run("already_done_row_reports_stored_reading", func(t *testing.T) {
		aggregate, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2.0, 1.0, time.Now().UTC(),
		)
		require.NoError(t, err)

		row, err := aggregate.StartNextRow(time.Now().UTC())
		require.NoError(t, err)
		stored := recipe.Quantities{Cement: 351.2, Sand: 648.9, Agg1: 601.4, Agg2: 399.1, Water: 180.3, Admix: 2.5}
		_, err = aggregate.CompleteRow(row.ID(), stored, time.Now().UTC())
		require.NoError(t, err)

		uow := newOrderUoW(t)
		uow.orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil)

		handler := commands.NewCompleteRowCommandHandler(productionUoWFactory{uow: uow}, nil)
		server := adapter.NewServer(adapter.Commands{CompleteRow: handler}, adapter.Queries{})
		e := newTestEcho(server)

		target := "/api/orders/" + aggregate.ID().String() + "/rows/" + row.ID().String() + "/done"
		req := httptest.NewRequest(echo.POST, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, 200, rec.Code)

		var resp adapter.CompleteRowResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Row already done", resp.Message)
		assert.InDelta(t, stored.Cement, resp.Actual.Cement, 0.0001)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestCreateClientValidation(t *testing.T) {
	server := adapter.NewServer(adapter.Commands{}, adapter.Queries{})
	e := newTestEcho(server)

	body := `{"email":"not-an-email"}`
	req := httptest.NewRequest(echo.POST, "/api/clients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestGetOrdersLimitParam(t *testing.T) {
	server := adapter.NewServer(adapter.Commands{}, adapter.Queries{})
	e := newTestEcho(server)

	for _, raw := range []string{"abc", "12abc", "1.5"} {
		req := httptest.NewRequest(echo.GET, "/api/orders?limit="+raw, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, 400, rec.Code, "limit=%s", raw)
	}
}

func TestHealth(t *testing.T) {
	server := adapter.NewServer(adapter.Commands{}, adapter.Queries{})
	e := newTestEcho(server)

	req := httptest.NewRequest(echo.GET, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
}
