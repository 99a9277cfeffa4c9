package servicedesk

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/akmatov/servicedesk/internal/adapters/store/errstore"
	"github.com/akmatov/servicedesk/internal/adapters/store/model"
)

type Store interface {
	RegisterAccount(ctx context.Context, login, hashPassword string) error
	GetAccountByLogin(ctx context.Context, login string) (model.Account, error)
	GetAccountByID(ctx context.Context, id uint) (model.Account, error)

	GetServiceByID(ctx context.Context, id uint) (model.Service, error)
	GetBuildingByID(ctx context.Context, id uint) (model.Building, error)

	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint) (model.Order, error)
	ListOrders(ctx context.Context, scope model.OrderScope) ([]*model.Order, error)
	TransitionOrder(ctx context.Context, orderID uint, apply func(*model.Order) (*model.OrderHistory, error)) (model.Order, error)
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

type Servicedesk struct {
	log   *zap.Logger
	store Store
}

type option func(*Servicedesk)

func Logger(log *zap.Logger) option {
	return func(s *Servicedesk) {
		if log != nil {
			s.log = log
		}
	}
}

func New(store Store, options ...option) *Servicedesk {
	s := &Servicedesk{
		log:   zap.NewNop(),
		store: store,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

func (s *Servicedesk) Register(ctx context.Context, login, password string) error {
	if err := validateLogin(login); err != nil {
		return fmt.Errorf("login invalidate: %w", err)
	}
	if err := validatePassword(password); err != nil {
		return fmt.Errorf("password invalidate: %w", err)
	}

	hashPass, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed hash password: %w", err)
	}

	if err := s.store.RegisterAccount(ctx, login, hashPass); err != nil {
		return fmt.Errorf("failed register account: %w", err)
	}

	return nil
}

func (s *Servicedesk) Authorization(ctx context.Context, login, password string) (model.Account, error) {
	var account model.Account
	if err := validateLogin(login); err != nil {
		return account, fmt.Errorf("login invalidate: %w", err)
	}
	if err := validatePassword(password); err != nil {
		return account, fmt.Errorf("password invalidate: %w", err)
	}

	account, err := s.store.GetAccountByLogin(ctx, login)
	if err != nil {
		return account, fmt.Errorf("failed getting account `%s`: %w", login, err)
	}

	if ok := checkPasswordHash(password, account.PasswordHash); !ok {
		return account, ErrPasswordNotEqual
	}

	return account, nil
}

type CreateOrderInput struct {
	ServiceID         uint
	BuildingID        *uint
	ScheduledAt       time.Time
	Comment           string
	RequirePrepayment bool
}

// CreateOrder snapshots the price of the service into the order and derives
// the prepayment from it. The booking flow, which demands a deposit up
// front, starts the order in WAITING_PAYMENT instead of NEW.
func (s *Servicedesk) CreateOrder(ctx context.Context, actorID uint, in CreateOrderInput) (model.Order, error) {
	var order model.Order

	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return order, fmt.Errorf("failed getting actor: %w", err)
	}

	if in.ServiceID == 0 {
		return order, ErrServiceRequired
	}
	service, err := s.store.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return order, fmt.Errorf("failed getting service: %w", err)
	}

	if in.BuildingID != nil {
		if _, err := s.store.GetBuildingByID(ctx, *in.BuildingID); err != nil {
			return order, fmt.Errorf("failed getting building: %w", err)
		}
	}

	scheduledAt := in.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = time.Now()
	}

	status := model.OrderStatusNew
	if in.RequirePrepayment {
		status = model.OrderStatusWaitingPayment
	}

	order = model.Order{
		Number:           uuid.NewString(),
		AccountID:        actor.ID,
		ServiceID:        service.ID,
		BuildingID:       in.BuildingID,
		ScheduledAt:      scheduledAt,
		Status:           status,
		Comment:          in.Comment,
		TotalPrice:       service.Price,
		PrepaymentAmount: model.PrepaymentFor(service.Price),
	}
	if err := s.store.CreateOrder(ctx, &order); err != nil {
		return order, fmt.Errorf("failed create order: %w", err)
	}

	return order, nil
}

func (s *Servicedesk) ListOrders(ctx context.Context, actorID uint) ([]*model.Order, error) {
	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed getting actor: %w", err)
	}

	orders, err := s.store.ListOrders(ctx, scopeFor(actor))
	if err != nil {
		return nil, fmt.Errorf("failed getting orders: %w", err)
	}

	return orders, nil
}

// GetOrder hides orders outside the actor's scope behind not-found, so the
// response does not reveal that the order exists.
func (s *Servicedesk) GetOrder(ctx context.Context, actorID, orderID uint) (model.Order, error) {
	var order model.Order

	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return order, fmt.Errorf("failed getting actor: %w", err)
	}

	order, err = s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return order, fmt.Errorf("failed getting order: %w", err)
	}
	if !visible(&order, actor) {
		return model.Order{}, errstore.ErrNotFoundData
	}

	return order, nil
}

// TransitionOrder is the only entry point that mutates an order's status.
// The status update and the history row are written in one transaction by
// the store, with the observed old status guarding against a concurrent
// change.
func (s *Servicedesk) TransitionOrder(ctx context.Context, actorID, orderID uint, next model.OrderStatus) (model.Order, error) {
	var order model.Order

	if !next.Known() {
		return order, fmt.Errorf("%w: %s", ErrUnknownStatus, next)
	}

	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return order, fmt.Errorf("failed getting actor: %w", err)
	}

	order, err = s.store.TransitionOrder(ctx, orderID, func(o *model.Order) (*model.OrderHistory, error) {
		if !canManage(o, actor) {
			return nil, ErrPermissionDenied
		}
		changedBy := actor.ID
		return applyTransition(o, next, &changedBy)
	})
	if err != nil {
		return order, fmt.Errorf("failed transition order: %w", err)
	}

	s.log.Info("order status changed",
		zap.Uint("orderID", order.ID),
		zap.String("status", string(order.Status)),
		zap.Uint("actorID", actor.ID),
	)

	return order, nil
}

// PayOrder records the prepayment of the ordering account and moves the
// order to PAID through the same transition and label machinery as every
// other status change. There is no real settlement behind it.
func (s *Servicedesk) PayOrder(ctx context.Context, actorID, orderID uint) (model.Order, error) {
	var order model.Order

	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return order, fmt.Errorf("failed getting actor: %w", err)
	}

	order, err = s.store.TransitionOrder(ctx, orderID, func(o *model.Order) (*model.OrderHistory, error) {
		if o.AccountID != actor.ID {
			return nil, ErrPermissionDenied
		}
		changedBy := actor.ID
		return applyTransition(o, model.OrderStatusPaid, &changedBy)
	})
	if err != nil {
		return order, fmt.Errorf("failed pay order: %w", err)
	}

	return order, nil
}

type EditOrderInput struct {
	ServiceID   *uint
	BuildingID  *uint
	ScheduledAt *time.Time
	Comment     *string
	Status      *model.OrderStatus
}

// EditOrder lets admins and building managers reshape an order: swap the
// service (the price snapshot and prepayment follow), move it to another
// building, reschedule, comment, and optionally apply a status transition.
// Everything goes through the same transactional entry point as plain
// transitions, so a label change still yields exactly one history row.
func (s *Servicedesk) EditOrder(ctx context.Context, actorID, orderID uint, in EditOrderInput) (model.Order, error) {
	var order model.Order

	if in.Status != nil && !in.Status.Known() {
		return order, fmt.Errorf("%w: %s", ErrUnknownStatus, *in.Status)
	}

	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return order, fmt.Errorf("failed getting actor: %w", err)
	}

	var service *model.Service
	if in.ServiceID != nil {
		svc, err := s.store.GetServiceByID(ctx, *in.ServiceID)
		if err != nil {
			return order, fmt.Errorf("failed getting service: %w", err)
		}
		service = &svc
	}
	if in.BuildingID != nil {
		if _, err := s.store.GetBuildingByID(ctx, *in.BuildingID); err != nil {
			return order, fmt.Errorf("failed getting building: %w", err)
		}
	}

	order, err = s.store.TransitionOrder(ctx, orderID, func(o *model.Order) (*model.OrderHistory, error) {
		if !canManage(o, actor) {
			return nil, ErrPermissionDenied
		}
		if service != nil {
			o.ServiceID = service.ID
			o.TotalPrice = service.Price
			o.PrepaymentAmount = model.PrepaymentFor(service.Price)
		}
		if in.BuildingID != nil {
			o.BuildingID = in.BuildingID
		}
		if in.ScheduledAt != nil {
			o.ScheduledAt = *in.ScheduledAt
		}
		if in.Comment != nil {
			o.Comment = *in.Comment
		}
		if in.Status != nil {
			changedBy := actor.ID
			return applyTransition(o, *in.Status, &changedBy)
		}
		return nil, nil
	})
	if err != nil {
		return order, fmt.Errorf("failed edit order: %w", err)
	}

	s.log.Info("order edited",
		zap.Uint("orderID", order.ID),
		zap.Uint("actorID", actor.ID),
	)

	return order, nil
}

func (s *Servicedesk) DeleteOrder(ctx context.Context, actorID, orderID uint) error {
	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("failed getting actor: %w", err)
	}

	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed getting order: %w", err)
	}
	if !visible(&order, actor) {
		return errstore.ErrNotFoundData
	}
	if !canManage(&order, actor) {
		return ErrPermissionDenied
	}

	if err := s.store.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed delete order: %w", err)
	}

	return nil
}

func (s *Servicedesk) OrderHistory(ctx context.Context, actorID, orderID uint) ([]*model.OrderHistory, error) {
	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed getting actor: %w", err)
	}

	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed getting order: %w", err)
	}
	if !visible(&order, actor) {
		return nil, errstore.ErrNotFoundData
	}

	history, err := s.store.ListOrderHistory(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed getting order history: %w", err)
	}

	return history, nil
}

func (s *Servicedesk) ListBuildings(ctx context.Context) ([]*model.Building, error) {
	buildings, err := s.store.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting buildings: %w", err)
	}
	return buildings, nil
}

func (s *Servicedesk) CreateBuilding(ctx context.Context, actorID uint, name, address string) (model.Building, error) {
	var building model.Building

	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return building, fmt.Errorf("failed getting actor: %w", err)
	}
	if actor.Role != model.RoleAdmin {
		return building, ErrPermissionDenied
	}
	if name == "" {
		return building, ErrNameRequired
	}

	building = model.Building{Name: name, Address: address}
	if err := s.store.CreateBuilding(ctx, &building); err != nil {
		return building, fmt.Errorf("failed create building: %w", err)
	}

	return building, nil
}

func (s *Servicedesk) GetBuilding(ctx context.Context, buildingID uint) (model.Building, error) {
	building, err := s.store.GetBuildingByID(ctx, buildingID)
	if err != nil {
		return building, fmt.Errorf("failed getting building: %w", err)
	}
	return building, nil
}

func (s *Servicedesk) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting categories: %w", err)
	}
	return categories, nil
}

func (s *Servicedesk) CreateCategory(ctx context.Context, actorID uint, name string) (model.Category, error) {
	var category model.Category

	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return category, fmt.Errorf("failed getting actor: %w", err)
	}
	if actor.Role != model.RoleAdmin {
		return category, ErrPermissionDenied
	}
	if name == "" {
		return category, ErrNameRequired
	}

	category = model.Category{Name: name}
	if err := s.store.CreateCategory(ctx, &category); err != nil {
		return category, fmt.Errorf("failed create category: %w", err)
	}

	return category, nil
}

func (s *Servicedesk) ListServices(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	services, err := s.store.ListServices(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed getting services: %w", err)
	}
	return services, nil
}

type CreateServiceInput struct {
	BuildingID  uint
	CategoryID  *uint
	Name        string
	Description string
	Price       decimal.Decimal
}

func (s *Servicedesk) CreateService(ctx context.Context, actorID uint, in CreateServiceInput) (model.Service, error) {
	var service model.Service

	actor, err := s.store.GetAccountByID(ctx, actorID)
	if err != nil {
		return service, fmt.Errorf("failed getting actor: %w", err)
	}
	managesBuilding := actor.Role == model.RoleManager &&
		actor.ManagedBuildingID != nil && *actor.ManagedBuildingID == in.BuildingID
	if actor.Role != model.RoleAdmin && !managesBuilding {
		return service, ErrPermissionDenied
	}
	if in.Name == "" {
		return service, ErrNameRequired
	}
	if _, err := s.store.GetBuildingByID(ctx, in.BuildingID); err != nil {
		return service, fmt.Errorf("failed getting building: %w", err)
	}

	service = model.Service{
		BuildingID:  in.BuildingID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	}
	if err := s.store.CreateService(ctx, &service); err != nil {
		return service, fmt.Errorf("failed create service: %w", err)
	}

	return service, nil
}

type ClientInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

func (s *Servicedesk) CreateClient(ctx context.Context, in ClientInput) (model.Client, error) {
	var client model.Client
	if in.FirstName == "" {
		return client, ErrNameRequired
	}
	if in.Phone == "" {
		return client, ErrPhoneRequired
	}

	client = model.Client{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Email:     in.Email,
	}
	if err := s.store.CreateClient(ctx, &client); err != nil {
		return client, fmt.Errorf("failed create client: %w", err)
	}

	return client, nil
}

func (s *Servicedesk) ListClients(ctx context.Context) ([]*model.Client, error) {
	clients, err := s.store.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting clients: %w", err)
	}
	return clients, nil
}

func (s *Servicedesk) GetClient(ctx context.Context, clientID uint) (model.Client, error) {
	client, err := s.store.GetClientByID(ctx, clientID)
	if err != nil {
		return client, fmt.Errorf("failed getting client: %w", err)
	}
	return client, nil
}

func (s *Servicedesk) UpdateClient(ctx context.Context, clientID uint, in ClientInput) (model.Client, error) {
	client, err := s.store.GetClientByID(ctx, clientID)
	if err != nil {
		return client, fmt.Errorf("failed getting client: %w", err)
	}
	if in.FirstName == "" {
		return client, ErrNameRequired
	}
	if in.Phone == "" {
		return client, ErrPhoneRequired
	}

	client.FirstName = in.FirstName
	client.LastName = in.LastName
	client.Phone = in.Phone
	client.Email = in.Email
	if err := s.store.UpdateClient(ctx, &client); err != nil {
		return client, fmt.Errorf("failed update client: %w", err)
	}

	return client, nil
}

func (s *Servicedesk) AddReview(ctx context.Context, actorID, serviceID uint, rating int, comment string) (model.Review, error) {
	var review model.Review

	if rating < 1 || rating > 5 {
		return review, ErrRatingOutOfRange
	}
	if _, err := s.store.GetServiceByID(ctx, serviceID); err != nil {
		return review, fmt.Errorf("failed getting service: %w", err)
	}

	review = model.Review{
		ServiceID: serviceID,
		AccountID: actorID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.store.CreateReview(ctx, &review); err != nil {
		return review, fmt.Errorf("failed create review: %w", err)
	}

	return review, nil
}

func (s *Servicedesk) ListServiceReviews(ctx context.Context, serviceID uint) ([]*model.Review, error) {
	reviews, err := s.store.ListServiceReviews(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed getting reviews: %w", err)
	}
	return reviews, nil
}
