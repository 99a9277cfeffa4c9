package store

import (
	"context"
	"fmt"

	"github.com/akmatov/servicedesk/internal/adapters/store/database"
	"github.com/akmatov/servicedesk/internal/adapters/store/model"
	"go.uber.org/zap"
)

type Config struct {
	Database *database.Config
}

// TransitionFunc inspects a freshly loaded order, mutates its status and
// returns the matching history row, or nil when nothing has to be recorded.
type TransitionFunc = func(*model.Order) (*model.OrderHistory, error)

type Store interface {
	RegisterAccount(ctx context.Context, login, hashPassword string) error
	GetAccountByLogin(ctx context.Context, login string) (model.Account, error)
	GetAccountByID(ctx context.Context, id uint) (model.Account, error)

	GetServiceByID(ctx context.Context, id uint) (model.Service, error)
	GetBuildingByID(ctx context.Context, id uint) (model.Building, error)

	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint) (model.Order, error)
	ListOrders(ctx context.Context, scope model.OrderScope) ([]*model.Order, error)
	TransitionOrder(ctx context.Context, orderID uint, apply TransitionFunc) (model.Order, error)
	DeleteOrder(ctx context.Context, orderID uint) error
	ListOrderHistory(ctx context.Context, orderID uint) ([]*model.OrderHistory, error)

	ListBuildings(ctx context.Context) ([]*model.Building, error)
	CreateBuilding(ctx context.Context, building *model.Building) error
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	ListServices(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error)
	CreateService(ctx context.Context, service *model.Service) error

	CreateClient(ctx context.Context, client *model.Client) error
	ListClients(ctx context.Context) ([]*model.Client, error)
	GetClientByID(ctx context.Context, id uint) (model.Client, error)
	UpdateClient(ctx context.Context, client *model.Client) error

	CreateReview(ctx context.Context, review *model.Review) error
	ListServiceReviews(ctx context.Context, serviceID uint) ([]*model.Review, error)
}

func New(ctx context.Context, cfg *Config, log *zap.Logger) (Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
