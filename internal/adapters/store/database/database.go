package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/akmatov/servicedesk/internal/adapters/store/errstore"
	"github.com/akmatov/servicedesk/internal/adapters/store/model"
)

type Config struct {
	DSN string `env:"DATABASE_URI"`
}

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithDB substitutes an already opened connection, used by tests to run
// against an in-memory sqlite database instead of postgres.
func WithDB(db *gorm.DB) option {
	return func(s *Store) {
		s.db = db
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	s := &Store{
		log: zap.NewNop(),
	}

	for _, opt := range options {
		opt(s)
	}

	if s.db == nil {
		db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("failed connect to database: %w", err)
		}
		s.db = db
	}
	s.db = s.db.WithContext(ctx)

	err := s.db.AutoMigrate(
		&model.Account{},
		&model.Building{},
		&model.Category{},
		&model.Service{},
		&model.Order{},
		&model.OrderHistory{},
		&model.Client{},
		&model.Review{},
	)
	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqlError *pgconn.PgError
	return errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation
}

func (s *Store) RegisterAccount(ctx context.Context, login, hashPassword string) error {
	account := model.Account{
		Login:        login,
		PasswordHash: hashPassword,
		Role:         model.RoleUser,
	}
	result := s.db.WithContext(ctx).Create(&account)
	if err := result.Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrLoginNotUnique
		}
		return fmt.Errorf("failed save account: %w", err)
	}

	return nil
}

func (s *Store) GetAccountByLogin(ctx context.Context, login string) (model.Account, error) {
	account := model.Account{}
	result := s.db.WithContext(ctx).Where(&model.Account{Login: login}).First(&account)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, errors.Join(errstore.ErrNotFoundData, err)
		}
		return account, fmt.Errorf("error found account: %w", err)
	}

	return account, nil
}

func (s *Store) GetAccountByID(ctx context.Context, id uint) (model.Account, error) {
	account := model.Account{}
	if err := s.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, errstore.ErrNotFoundData
		}
		return account, fmt.Errorf("failed get account: %w", err)
	}

	return account, nil
}

func (s *Store) GetServiceByID(ctx context.Context, id uint) (model.Service, error) {
	service := model.Service{}
	if err := s.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service, errstore.ErrNotFoundData
		}
		return service, fmt.Errorf("failed get service: %w", err)
	}

	return service, nil
}

func (s *Store) GetBuildingByID(ctx context.Context, id uint) (model.Building, error) {
	building := model.Building{}
	if err := s.db.WithContext(ctx).First(&building, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return building, errstore.ErrNotFoundData
		}
		return building, fmt.Errorf("failed get building: %w", err)
	}

	return building, nil
}

func (s *Store) CreateOrder(ctx context.Context, order *model.Order) error {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed create order: %w", err)
	}

	return nil
}

func (s *Store) GetOrderByID(ctx context.Context, id uint) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).
		Preload("Service").Preload("Building").Preload("Account").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, errstore.ErrNotFoundData
		}
		return order, fmt.Errorf("failed get order: %w", err)
	}

	return order, nil
}

func (s *Store) ListOrders(ctx context.Context, scope model.OrderScope) ([]*model.Order, error) {
	orders := []*model.Order{}
	tx := s.db.WithContext(ctx).Preload("Service").Preload("Building").Order("created_at DESC")
	switch {
	case scope.All:
	case scope.BuildingID != nil:
		tx = tx.Where("building_id = ?", *scope.BuildingID)
	case scope.AccountID != nil:
		tx = tx.Where("account_id = ?", *scope.AccountID)
	default:
		return orders, nil
	}
	if err := tx.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed get orders: %w", err)
	}

	return orders, nil
}

// TransitionOrder loads the order, lets apply decide the outcome and then
// persists the edited fields and the status together with the history row in
// one transaction. The update carries the previously observed status in its
// WHERE clause, so a concurrent change makes this one fail with
// ErrOrderConflict instead of overwriting it.
func (s *Store) TransitionOrder(ctx context.Context, orderID uint, apply func(*model.Order) (*model.OrderHistory, error)) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Service").Preload("Building").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select order: %w", err)
		}

		oldStatus := order.Status
		history, err := apply(&order)
		if err != nil {
			return err
		}

		result := tx.Model(&model.Order{}).
			Where("id = ? AND status = ?", order.ID, oldStatus).
			Updates(map[string]any{
				"status":            order.Status,
				"service_id":        order.ServiceID,
				"building_id":       order.BuildingID,
				"scheduled_at":      order.ScheduledAt,
				"comment":           order.Comment,
				"total_price":       order.TotalPrice,
				"prepayment_amount": model.PrepaymentFor(order.TotalPrice),
			})
		if result.Error != nil {
			return fmt.Errorf("failed update order: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errstore.ErrOrderConflict
		}

		if history != nil {
			if err := tx.Create(history).Error; err != nil {
				return fmt.Errorf("failed create history entry: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return order, err
	}

	return order, nil
}

func (s *Store) DeleteOrder(ctx context.Context, orderID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderHistory{}).Error; err != nil {
			return fmt.Errorf("failed delete order history: %w", err)
		}
		result := tx.Delete(&model.Order{}, orderID)
		if result.Error != nil {
			return fmt.Errorf("failed delete order: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errstore.ErrNotFoundData
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed complete transaction: %w", err)
	}

	return nil
}

func (s *Store) ListOrderHistory(ctx context.Context, orderID uint) ([]*model.OrderHistory, error) {
	history := []*model.OrderHistory{}
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed get order history: %w", err)
	}

	return history, nil
}

func (s *Store) ListBuildings(ctx context.Context) ([]*model.Building, error) {
	buildings := []*model.Building{}
	if err := s.db.WithContext(ctx).Order("name").Find(&buildings).Error; err != nil {
		return nil, fmt.Errorf("failed get buildings: %w", err)
	}

	return buildings, nil
}

func (s *Store) CreateBuilding(ctx context.Context, building *model.Building) error {
	if err := s.db.WithContext(ctx).Create(building).Error; err != nil {
		return fmt.Errorf("failed create building: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories := []*model.Category{}
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed get categories: %w", err)
	}

	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrNameNotUnique
		}
		return fmt.Errorf("failed create category: %w", err)
	}

	return nil
}

func (s *Store) ListServices(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	services := []*model.Service{}
	tx := s.db.WithContext(ctx).Preload("Building").Preload("Category")
	if filter.CategoryID != nil {
		tx = tx.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if err := tx.Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed get services: %w", err)
	}

	return services, nil
}

func (s *Store) CreateService(ctx context.Context, service *model.Service) error {
	if err := s.db.WithContext(ctx).Create(service).Error; err != nil {
		return fmt.Errorf("failed create service: %w", err)
	}

	return nil
}

func (s *Store) CreateClient(ctx context.Context, client *model.Client) error {
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return fmt.Errorf("failed create client: %w", err)
	}

	return nil
}

func (s *Store) ListClients(ctx context.Context) ([]*model.Client, error) {
	clients := []*model.Client{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed get clients: %w", err)
	}

	return clients, nil
}

func (s *Store) GetClientByID(ctx context.Context, id uint) (model.Client, error) {
	client := model.Client{}
	if err := s.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client, errstore.ErrNotFoundData
		}
		return client, fmt.Errorf("failed get client: %w", err)
	}

	return client, nil
}

func (s *Store) UpdateClient(ctx context.Context, client *model.Client) error {
	if err := s.db.WithContext(ctx).Save(client).Error; err != nil {
		return fmt.Errorf("failed update client: %w", err)
	}

	return nil
}

func (s *Store) CreateReview(ctx context.Context, review *model.Review) error {
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed create review: %w", err)
	}

	return nil
}

func (s *Store) ListServiceReviews(ctx context.Context, serviceID uint) ([]*model.Review, error) {
	reviews := []*model.Review{}
	err := s.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed get reviews: %w", err)
	}

	return reviews, nil
}
