package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/akmatov/servicedesk/docs"
	"github.com/akmatov/servicedesk/internal/adapters/store/model"
	"github.com/akmatov/servicedesk/internal/core/servicedesk"
	"github.com/akmatov/servicedesk/pkg/jwt"
)

var (
	cookieName = "token"
	cookieKey  = "AccountID"
)

type serviceI interface {
	Register(ctx context.Context, login, password string) error
	Authorization(ctx context.Context, login, password string) (model.Account, error)

	CreateOrder(ctx context.Context, actorID uint, in servicedesk.CreateOrderInput) (model.Order, error)
	ListOrders(ctx context.Context, actorID uint) ([]*model.Order, error)
	GetOrder(ctx context.Context, actorID, orderID uint) (model.Order, error)
	TransitionOrder(ctx context.Context, actorID, orderID uint, next model.OrderStatus) (model.Order, error)
	EditOrder(ctx context.Context, actorID, orderID uint, in servicedesk.EditOrderInput) (model.Order, error)
	PayOrder(ctx context.Context, actorID, orderID uint) (model.Order, error)
	DeleteOrder(ctx context.Context, actorID, orderID uint) error
	OrderHistory(ctx context.Context, actorID, orderID uint) ([]*model.OrderHistory, error)

	ListBuildings(ctx context.Context) ([]*model.Building, error)
	GetBuilding(ctx context.Context, buildingID uint) (model.Building, error)
	CreateBuilding(ctx context.Context, actorID uint, name, address string) (model.Building, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, actorID uint, name string) (model.Category, error)
	ListServices(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error)
	CreateService(ctx context.Context, actorID uint, in servicedesk.CreateServiceInput) (model.Service, error)

	CreateClient(ctx context.Context, in servicedesk.ClientInput) (model.Client, error)
	ListClients(ctx context.Context) ([]*model.Client, error)
	GetClient(ctx context.Context, clientID uint) (model.Client, error)
	UpdateClient(ctx context.Context, clientID uint, in servicedesk.ClientInput) (model.Client, error)

	AddReview(ctx context.Context, actorID, serviceID uint, rating int, comment string) (model.Review, error)
	ListServiceReviews(ctx context.Context, serviceID uint) ([]*model.Review, error)
}

type Server struct {
	log     *zap.Logger
	engine  *gin.Engine
	service serviceI
	address string
	secret  []byte
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		if cfg.Secret != "" {
			s.secret = []byte(cfg.Secret)
		}
	}
}

func SetSecretKey(key []byte) Option {
	return func(s *Server) {
		s.secret = key
	}
}

//	@title			Building Services Portal
//	@version		1.0
//	@description	Marketplace for building services with an order lifecycle and audit history.
//	@host			localhost:8080
//	@BasePath		/

func New(service serviceI, options ...Option) (*Server, error) {
	s := &Server{
		log:     zap.NewNop(),
		service: service,
	}

	s.engine = gin.New()
	s.engine.Use(
		s.Logger(),
		s.GzipDecompress(),
	)

	apiUser := s.engine.Group("/api/user")
	apiUser.Use(s.GzipCompress())
	{
		apiUser.POST("/register", s.handlerRegister)
		apiUser.POST("/login", s.handlerLogin)
	}

	api := s.engine.Group("/api")
	api.Use(s.GzipCompress(), s.Authentication())
	{
		api.POST("/orders", s.handlerCreateOrder)
		api.GET("/orders", s.handlerListOrders)
		api.GET("/orders/:id", s.handlerGetOrder)
		api.PUT("/orders/:id", s.handlerEditOrder)
		api.DELETE("/orders/:id", s.handlerDeleteOrder)
		api.POST("/orders/:id/status", s.handlerChangeOrderStatus)
		api.POST("/orders/:id/pay", s.handlerPayOrder)
		api.GET("/orders/:id/history", s.handlerOrderHistory)

		api.GET("/buildings", s.handlerListBuildings)
		api.GET("/buildings/:id", s.handlerGetBuilding)
		api.POST("/buildings", s.handlerCreateBuilding)
		api.GET("/categories", s.handlerListCategories)
		api.POST("/categories", s.handlerCreateCategory)
		api.GET("/services", s.handlerListServices)
		api.POST("/services", s.handlerCreateService)
		api.GET("/services/:id/reviews", s.handlerListServiceReviews)
		api.POST("/services/:id/reviews", s.handlerCreateServiceReview)

		api.GET("/clients", s.handlerListClients)
		api.POST("/clients", s.handlerCreateClient)
		api.GET("/clients/:id", s.handlerGetClient)
		api.PUT("/clients/:id", s.handlerUpdateClient)
	}
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	if err := s.engine.Run(s.address); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func (s *Server) checkAuth(c *gin.Context) (accountID uint, err error) {
	cookieAccountID, err := c.Request.Cookie(cookieName)
	if err != nil {
		return 0, fmt.Errorf("failed read account cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	accountIDS, ok, err := jwtRest.Verify(cookieAccountID.Value, cookieKey)
	if err != nil {
		return 0, fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}

	if !ok {
		return 0, fmt.Errorf("unverify account cookie: %w", errUnauthorize)
	}

	accountID64, err := strconv.ParseUint(accountIDS, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("can't convert string accountID to uint: %w", err)
	}

	return uint(accountID64), nil
}

func unauthorize(c *gin.Context) {
	accountCookie := &http.Cookie{
		Name:  cookieName,
		Value: "",
		Path:  "/",
	}
	c.Request.AddCookie(accountCookie)
	http.SetCookie(c.Writer, accountCookie)
}

func (s *Server) authorization(c *gin.Context, login, password string) error {
	ctx := c.Request.Context()
	account, err := s.service.Authorization(ctx, login, password)
	if err != nil {
		return fmt.Errorf("failed authorization: %w", err)
	}

	jwtRest := jwt.New(s.secret)
	signedCookie, err := jwtRest.Create(cookieKey, strconv.Itoa(int(account.ID)))
	if err != nil {
		return fmt.Errorf("can't create cookie data: %w", err)
	}

	accountCookie := &http.Cookie{
		Name:  cookieName,
		Value: signedCookie,
		Path:  "/",
	}
	c.Request.AddCookie(accountCookie)
	http.SetCookie(c.Writer, accountCookie)

	return nil
}

func (s *Server) readBody(c *gin.Context) ([]byte, int) {
	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		return []byte{}, http.StatusInternalServerError
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()
	return bBody, 0
}

func paramID(c *gin.Context, name string) (uint, error) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed parse param %s: %w", name, err)
	}
	return uint(id64), nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed parse price: %w", err)
	}
	return price, nil
}
