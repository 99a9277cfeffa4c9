package rest_test

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akmatov/servicedesk/internal/adapters/api/rest"
	"github.com/akmatov/servicedesk/internal/adapters/store/errstore"
	"github.com/akmatov/servicedesk/internal/adapters/store/model"
	"github.com/akmatov/servicedesk/internal/core/servicedesk"
	mockstore "github.com/akmatov/servicedesk/internal/mocks/store"
	"github.com/akmatov/servicedesk/pkg/jwt"
)

var testSecret = []byte("secret")

func newTestServer(t *testing.T) (*rest.Server, *mockstore.MockStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	storeMock := mockstore.NewMockStore(ctrl)
	desk := servicedesk.New(storeMock)

	srv, err := rest.New(desk, rest.SetSecretKey(testSecret))
	require.NoError(t, err)
	return srv, storeMock
}

func authCookie(t *testing.T, accountID string) *http.Cookie {
	t.Helper()
	token, err := jwt.New(testSecret).Create("AccountID", accountID)
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}

func doJSON(srv *rest.Server, method, target string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func TestHandlerLogin(t *testing.T) {
	hash, err := servicedesk.HashPassword("correct-pass")
	require.NoError(t, err)
	account := model.Account{ID: 1, Login: "vasya", PasswordHash: hash}

	tests := []struct {
		name       string
		body       map[string]string
		setup      func(m *mockstore.MockStore)
		wantStatus int
	}{
		{
			name: "success",
			body: map[string]string{"login": "vasya", "password": "correct-pass"},
			setup: func(m *mockstore.MockStore) {
				m.EXPECT().GetAccountByLogin(gomock.Any(), "vasya").Return(account, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: map[string]string{"login": "vasya", "password": "wrong-pass"},
			setup: func(m *mockstore.MockStore) {
				m.EXPECT().GetAccountByLogin(gomock.Any(), "vasya").Return(account, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown login",
			body: map[string]string{"login": "petya", "password": "correct-pass"},
			setup: func(m *mockstore.MockStore) {
				m.EXPECT().GetAccountByLogin(gomock.Any(), "petya").
					Return(model.Account{}, errstore.ErrNotFoundData)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty login",
			body:       map[string]string{"login": "", "password": "correct-pass"},
			setup:      func(m *mockstore.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, storeMock := newTestServer(t)
			tt.setup(storeMock)

			w := doJSON(srv, http.MethodPost, "/api/user/login", tt.body, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Header().Get("Set-Cookie"), "token=")
			}
		})
	}
}

func TestHandlerRegister(t *testing.T) {
	srv, storeMock := newTestServer(t)

	var savedHash string
	storeMock.EXPECT().
		RegisterAccount(gomock.Any(), "vasya", gomock.Any()).
		DoAndReturn(func(ctx any, login, hash string) error {
			savedHash = hash
			return nil
		})
	storeMock.EXPECT().
		GetAccountByLogin(gomock.Any(), "vasya").
		DoAndReturn(func(ctx any, login string) (model.Account, error) {
			return model.Account{ID: 1, Login: login, PasswordHash: savedHash}, nil
		})

	w := doJSON(srv, http.MethodPost, "/api/user/register",
		map[string]string{"login": "vasya", "password": "correct-pass"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "token=")
}

func TestHandlerRegister_DuplicateLogin(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		RegisterAccount(gomock.Any(), "vasya", gomock.Any()).
		Return(errstore.ErrLoginNotUnique)

	w := doJSON(srv, http.MethodPost, "/api/user/register",
		map[string]string{"login": "vasya", "password": "correct-pass"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlerOrders_Unauthorized(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(srv, http.MethodGet, "/api/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandlerCreateOrder(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleUser}, nil)
	storeMock.EXPECT().
		GetServiceByID(gomock.Any(), uint(3)).
		Return(model.Service{ID: 3, Price: decimal.RequireFromString("500.00")}, nil)
	storeMock.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		Return(nil)

	w := doJSON(srv, http.MethodPost, "/api/orders",
		map[string]any{"service_id": 3, "date": "2026-09-01", "time": "10:00"},
		authCookie(t, "1"))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status           string          `json:"status"`
		StatusLabel      string          `json:"status_label"`
		TotalPrice       decimal.Decimal `json:"total_price"`
		PrepaymentAmount decimal.Decimal `json:"prepayment_amount"`
		Number           string          `json:"number"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NEW", resp.Status)
	assert.Equal(t, "New", resp.StatusLabel)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, resp.PrepaymentAmount.Equal(decimal.RequireFromString("50")))
	assert.NotEmpty(t, resp.Number)
}

func TestHandlerCreateOrder_BadDate(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleUser}, nil).
		AnyTimes()

	w := doJSON(srv, http.MethodPost, "/api/orders",
		map[string]any{"service_id": 3, "date": "01.09.2026"},
		authCookie(t, "1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerChangeOrderStatus(t *testing.T) {
	admin := model.Account{ID: 1, Role: model.RoleAdmin}

	tests := []struct {
		name       string
		from       model.OrderStatus
		to         string
		wantStatus int
	}{
		{name: "legal step", from: model.OrderStatusPaid, to: "IN_PROGRESS", wantStatus: http.StatusOK},
		{name: "illegal jump", from: model.OrderStatusNew, to: "DONE", wantStatus: http.StatusConflict},
		{name: "unknown status", from: model.OrderStatusNew, to: "SHIPPED", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, storeMock := newTestServer(t)

			storeMock.EXPECT().
				GetAccountByID(gomock.Any(), uint(1)).
				Return(admin, nil).
				AnyTimes()
			storeMock.EXPECT().
				TransitionOrder(gomock.Any(), uint(10), gomock.Any()).
				DoAndReturn(func(ctx any, orderID uint, apply func(*model.Order) (*model.OrderHistory, error)) (model.Order, error) {
					order := model.Order{ID: 10, AccountID: 4, Status: tt.from}
					if _, err := apply(&order); err != nil {
						return model.Order{}, err
					}
					return order, nil
				}).
				AnyTimes()

			w := doJSON(srv, http.MethodPost, "/api/orders/10/status",
				map[string]string{"status": tt.to}, authCookie(t, "1"))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandlerChangeOrderStatus_UserForbidden(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(4)).
		Return(model.Account{ID: 4, Role: model.RoleUser}, nil)
	storeMock.EXPECT().
		TransitionOrder(gomock.Any(), uint(10), gomock.Any()).
		DoAndReturn(func(ctx any, orderID uint, apply func(*model.Order) (*model.OrderHistory, error)) (model.Order, error) {
			order := model.Order{ID: 10, AccountID: 4, Status: model.OrderStatusNew}
			if _, err := apply(&order); err != nil {
				return model.Order{}, err
			}
			return order, nil
		})

	w := doJSON(srv, http.MethodPost, "/api/orders/10/status",
		map[string]string{"status": "IN_PROGRESS"}, authCookie(t, "4"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandlerEditOrder(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleAdmin}, nil)
	storeMock.EXPECT().
		TransitionOrder(gomock.Any(), uint(10), gomock.Any()).
		DoAndReturn(func(ctx any, orderID uint, apply func(*model.Order) (*model.OrderHistory, error)) (model.Order, error) {
			order := model.Order{ID: 10, AccountID: 4, Status: model.OrderStatusNew}
			if _, err := apply(&order); err != nil {
				return model.Order{}, err
			}
			return order, nil
		})

	w := doJSON(srv, http.MethodPut, "/api/orders/10",
		map[string]any{"comment": "use the back entrance", "status": "WAITING_PAYMENT"},
		authCookie(t, "1"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Comment string `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WAITING_PAYMENT", resp.Status)
	assert.Equal(t, "use the back entrance", resp.Comment)
}

func TestGzipDecompress(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		RegisterAccount(gomock.Any(), "vasya", gomock.Any()).
		Return(errstore.ErrLoginNotUnique)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(`{"login":"vasya","password":"correct-pass"}`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGzipCompress(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleAdmin}, nil)
	storeMock.EXPECT().
		ListOrders(gomock.Any(), gomock.Any()).
		Return([]*model.Order{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req.AddCookie(authCookie(t, "1"))
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestHandlerPayOrder_WrongAccount(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(5)).
		Return(model.Account{ID: 5, Role: model.RoleUser}, nil)
	storeMock.EXPECT().
		TransitionOrder(gomock.Any(), uint(10), gomock.Any()).
		DoAndReturn(func(ctx any, orderID uint, apply func(*model.Order) (*model.OrderHistory, error)) (model.Order, error) {
			order := model.Order{ID: 10, AccountID: 4, Status: model.OrderStatusWaitingPayment}
			if _, err := apply(&order); err != nil {
				return model.Order{}, err
			}
			return order, nil
		})

	w := doJSON(srv, http.MethodPost, "/api/orders/10/pay", nil, authCookie(t, "5"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandlerGetOrder_InvisibleIsNotFound(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(4)).
		Return(model.Account{ID: 4, Role: model.RoleUser}, nil)
	storeMock.EXPECT().
		GetOrderByID(gomock.Any(), uint(10)).
		Return(model.Order{ID: 10, AccountID: 5}, nil)

	w := doJSON(srv, http.MethodGet, "/api/orders/10", nil, authCookie(t, "4"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerOrderHistory(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleAdmin}, nil)
	storeMock.EXPECT().
		GetOrderByID(gomock.Any(), uint(10)).
		Return(model.Order{ID: 10, AccountID: 4}, nil)
	changedBy := uint(1)
	storeMock.EXPECT().
		ListOrderHistory(gomock.Any(), uint(10)).
		Return([]*model.OrderHistory{
			{ID: 2, OrderID: 10, OldStatus: "Waiting payment", NewStatus: "Paid", ChangedByID: &changedBy},
			{ID: 1, OrderID: 10, OldStatus: "New", NewStatus: "Waiting payment"},
		}, nil)

	w := doJSON(srv, http.MethodGet, "/api/orders/10/history", nil, authCookie(t, "1"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp []struct {
		OldStatus string `json:"old_status"`
		NewStatus string `json:"new_status"`
		ChangedBy *uint  `json:"changed_by"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Paid", resp[0].NewStatus)
	require.NotNil(t, resp[0].ChangedBy)
	assert.Equal(t, uint(1), *resp[0].ChangedBy)
	assert.Nil(t, resp[1].ChangedBy)
}

func TestHandlerCreateBuilding_UserForbidden(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(4)).
		Return(model.Account{ID: 4, Role: model.RoleUser}, nil)

	w := doJSON(srv, http.MethodPost, "/api/buildings",
		map[string]string{"name": "Block A", "address": "Main street 1"},
		authCookie(t, "4"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandlerGetBuilding_NotFound(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetBuildingByID(gomock.Any(), uint(7)).
		Return(model.Building{}, errstore.ErrNotFoundData)

	w := doJSON(srv, http.MethodGet, "/api/buildings/7", nil, authCookie(t, "1"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerCreateService_BadPrice(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleAdmin}, nil).
		AnyTimes()

	w := doJSON(srv, http.MethodPost, "/api/services",
		map[string]any{"building_id": 1, "name": "cleaning", "price": "ten"},
		authCookie(t, "1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerCreateClient_PhoneRequired(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(1)).
		Return(model.Account{ID: 1, Role: model.RoleAdmin}, nil).
		AnyTimes()

	w := doJSON(srv, http.MethodPost, "/api/clients",
		map[string]string{"first_name": "Ivan"}, authCookie(t, "1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerCreateServiceReview_RatingOutOfRange(t *testing.T) {
	srv, storeMock := newTestServer(t)

	storeMock.EXPECT().
		GetAccountByID(gomock.Any(), uint(4)).
		Return(model.Account{ID: 4, Role: model.RoleUser}, nil).
		AnyTimes()

	w := doJSON(srv, http.MethodPost, "/api/services/3/reviews",
		map[string]any{"rating": 9, "comment": "great"}, authCookie(t, "4"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
