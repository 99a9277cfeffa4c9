package servicedesk_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akmatov/servicedesk/internal/adapters/store/errstore"
	"github.com/akmatov/servicedesk/internal/adapters/store/model"
	"github.com/akmatov/servicedesk/internal/core/servicedesk"
	mockstore "github.com/akmatov/servicedesk/internal/mocks/store"
)

func TestCreateOrder_SnapshotsPriceAndPrepayment(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleUser}, nil)
	storeMock.EXPECT().
		GetServiceByID(ctx, uint(3)).
		Return(model.Service{ID: 3, Price: decimal.RequireFromString("500.00")}, nil)
	storeMock.EXPECT().
		CreateOrder(ctx, gomock.Any()).
		Return(nil)

	desk := servicedesk.New(storeMock)
	order, err := desk.CreateOrder(ctx, 1, servicedesk.CreateOrderInput{ServiceID: 3})
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusNew, order.Status)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, order.PrepaymentAmount.Equal(decimal.RequireFromString("50")))
	assert.NotEmpty(t, order.Number)
}

func TestCreateOrder_BookingFlowWaitsPayment(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleUser}, nil)
	storeMock.EXPECT().
		GetServiceByID(ctx, uint(3)).
		Return(model.Service{ID: 3, Price: decimal.RequireFromString("100.00")}, nil)
	storeMock.EXPECT().
		CreateOrder(ctx, gomock.Any()).
		Return(nil)

	desk := servicedesk.New(storeMock)
	order, err := desk.CreateOrder(ctx, 1, servicedesk.CreateOrderInput{
		ServiceID:         3,
		RequirePrepayment: true,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusWaitingPayment, order.Status)
}

func TestCreateOrder_ServiceRequired(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleUser}, nil)

	desk := servicedesk.New(storeMock)
	_, err := desk.CreateOrder(ctx, 1, servicedesk.CreateOrderInput{})
	assert.ErrorIs(t, err, servicedesk.ErrServiceRequired)
}

// transitionThrough runs the apply callback against a fixture order the way
// the database store would, capturing the resulting history row.
func transitionThrough(order model.Order, history **model.OrderHistory) func(ctx context.Context, orderID uint, apply func(*model.Order) (*model.OrderHistory, error)) (model.Order, error) {
	return func(ctx context.Context, orderID uint, apply func(*model.Order) (*model.OrderHistory, error)) (model.Order, error) {
		h, err := apply(&order)
		if err != nil {
			return model.Order{}, err
		}
		*history = h
		return order, nil
	}
}

func TestTransitionOrder_ManagerOtherBuildingDenied(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	buildingA := uint(1)
	buildingB := uint(2)
	order := model.Order{ID: 10, Status: model.OrderStatusPaid, BuildingID: &buildingB}

	var history *model.OrderHistory
	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, uint(2)).
		Return(model.Account{ID: 2, Role: model.RoleManager, ManagedBuildingID: &buildingA}, nil)
	storeMock.EXPECT().
		TransitionOrder(ctx, uint(10), gomock.Any()).
		DoAndReturn(transitionThrough(order, &history))

	desk := servicedesk.New(storeMock)
	_, err := desk.TransitionOrder(ctx, 2, 10, model.OrderStatusInProgress)
	assert.ErrorIs(t, err, servicedesk.ErrPermissionDenied)
	assert.Nil(t, history)
}

func TestTransitionOrder_AdminWritesHistory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	order := model.Order{ID: 10, Status: model.OrderStatusInProgress}

	var history *model.OrderHistory
	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleAdmin}, nil)
	storeMock.EXPECT().
		TransitionOrder(ctx, uint(10), gomock.Any()).
		DoAndReturn(transitionThrough(order, &history))

	desk := servicedesk.New(storeMock)
	updated, err := desk.TransitionOrder(ctx, 1, 10, model.OrderStatusDone)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDone, updated.Status)
	require.NotNil(t, history)
	assert.Equal(t, "In progress", history.OldStatus)
	assert.Equal(t, "Done", history.NewStatus)
}

func TestTransitionOrder_UnknownStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mockstore.NewMockStore(ctrl)
	desk := servicedesk.New(storeMock)

	_, err := desk.TransitionOrder(ctx, 1, 10, model.OrderStatus("SHIPPED"))
	assert.ErrorIs(t, err, servicedesk.ErrUnknownStatus)
}

func TestEditOrder_RepricesAndWritesHistory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	order := model.Order{
		ID:         10,
		Status:     model.OrderStatusNew,
		ServiceID:  3,
		TotalPrice: decimal.RequireFromString("500.00"),
	}

	var history *model.OrderHistory
	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleAdmin}, nil)
	storeMock.EXPECT().
		GetServiceByID(ctx, uint(8)).
		Return(model.Service{ID: 8, Price: decimal.RequireFromString("800.00")}, nil)
	storeMock.EXPECT().
		TransitionOrder(ctx, uint(10), gomock.Any()).
		DoAndReturn(transitionThrough(order, &history))

	newService := uint(8)
	comment := "move to the east wing"
	next := model.OrderStatusWaitingPayment
	desk := servicedesk.New(storeMock)
	updated, err := desk.EditOrder(ctx, 1, 10, servicedesk.EditOrderInput{
		ServiceID: &newService,
		Comment:   &comment,
		Status:    &next,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(8), updated.ServiceID)
	assert.Equal(t, "move to the east wing", updated.Comment)
	assert.True(t, updated.TotalPrice.Equal(decimal.RequireFromString("800.00")))
	assert.True(t, updated.PrepaymentAmount.Equal(decimal.RequireFromString("80")))
	assert.Equal(t, model.OrderStatusWaitingPayment, updated.Status)
	require.NotNil(t, history)
	assert.Equal(t, "New", history.OldStatus)
	assert.Equal(t, "Waiting payment", history.NewStatus)
}

func TestEditOrder_UserForbidden(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	order := model.Order{ID: 10, AccountID: 4, Status: model.OrderStatusNew}

	var history *model.OrderHistory
	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, uint(4)).
		Return(model.Account{ID: 4, Role: model.RoleUser}, nil)
	storeMock.EXPECT().
		TransitionOrder(ctx, uint(10), gomock.Any()).
		DoAndReturn(transitionThrough(order, &history))

	comment := "cheaper please"
	desk := servicedesk.New(storeMock)
	_, err := desk.EditOrder(ctx, 4, 10, servicedesk.EditOrderInput{Comment: &comment})
	assert.ErrorIs(t, err, servicedesk.ErrPermissionDenied)
	assert.Nil(t, history)
}

func TestEditOrder_UnknownStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mockstore.NewMockStore(ctrl)
	desk := servicedesk.New(storeMock)

	bogus := model.OrderStatus("SHIPPED")
	_, err := desk.EditOrder(ctx, 1, 10, servicedesk.EditOrderInput{Status: &bogus})
	assert.ErrorIs(t, err, servicedesk.ErrUnknownStatus)
}

func TestPayOrder_OnlyOrderingAccount(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	order := model.Order{ID: 10, AccountID: 4, Status: model.OrderStatusWaitingPayment}

	var history *model.OrderHistory
	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, uint(5)).
		Return(model.Account{ID: 5, Role: model.RoleUser}, nil)
	storeMock.EXPECT().
		TransitionOrder(ctx, uint(10), gomock.Any()).
		DoAndReturn(transitionThrough(order, &history))

	desk := servicedesk.New(storeMock)
	_, err := desk.PayOrder(ctx, 5, 10)
	assert.ErrorIs(t, err, servicedesk.ErrPermissionDenied)
}

func TestPayOrder_SecondCallNoHistory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	order := model.Order{ID: 10, AccountID: 4, Status: model.OrderStatusWaitingPayment}
	desk := servicedesk.New(newPayStore(t, ctrl, &order))

	paid, err := desk.PayOrder(ctx, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, paid.Status)

	paid, err = desk.PayOrder(ctx, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, paid.Status)
}

// newPayStore shares one order fixture across calls and fails the test if a
// second history row is produced for the same transition.
func newPayStore(t *testing.T, ctrl *gomock.Controller, order *model.Order) *mockstore.MockStore {
	t.Helper()
	rows := 0
	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(4)).
		Return(model.Account{ID: 4, Role: model.RoleUser}, nil).
		Times(2)
	storeMock.EXPECT().
		TransitionOrder(gomock.Any(), uint(10), gomock.Any()).
		DoAndReturn(func(ctx context.Context, orderID uint, apply func(*model.Order) (*model.OrderHistory, error)) (model.Order, error) {
			h, err := apply(order)
			if err != nil {
				return model.Order{}, err
			}
			if h != nil {
				rows++
			}
			if rows > 1 {
				t.Fatal("repeated payment produced a second history row")
			}
			return *order, nil
		}).
		Times(2)
	return storeMock
}

func TestGetOrder_InvisibleIsNotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, uint(4)).
		Return(model.Account{ID: 4, Role: model.RoleUser}, nil)
	storeMock.EXPECT().
		GetOrderByID(ctx, uint(10)).
		Return(model.Order{ID: 10, AccountID: 5}, nil)

	desk := servicedesk.New(storeMock)
	_, err := desk.GetOrder(ctx, 4, 10)
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)
}

func TestListOrders_UserScope(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uint(4)
	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, userID).
		Return(model.Account{ID: userID, Role: model.RoleUser}, nil)
	storeMock.EXPECT().
		ListOrders(ctx, model.OrderScope{AccountID: &userID}).
		Return([]*model.Order{}, nil)

	desk := servicedesk.New(storeMock)
	orders, err := desk.ListOrders(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateBuilding_AdminOnly(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mockstore.NewMockStore(ctrl)
	storeMock.EXPECT().
		GetAccountByID(ctx, uint(4)).
		Return(model.Account{ID: 4, Role: model.RoleUser}, nil)

	desk := servicedesk.New(storeMock)
	_, err := desk.CreateBuilding(ctx, 4, "Block A", "Main street 1")
	assert.ErrorIs(t, err, servicedesk.ErrPermissionDenied)
}

func TestAddReview_RatingValidated(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mockstore.NewMockStore(ctrl)
	desk := servicedesk.New(storeMock)

	_, err := desk.AddReview(ctx, 4, 3, 0, "bad")
	assert.ErrorIs(t, err, servicedesk.ErrRatingOutOfRange)
	_, err = desk.AddReview(ctx, 4, 3, 6, "too good")
	assert.ErrorIs(t, err, servicedesk.ErrRatingOutOfRange)
}
