package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akmatov/servicedesk/internal/adapters/store/errstore"
	"github.com/akmatov/servicedesk/internal/adapters/store/model"
	"github.com/akmatov/servicedesk/internal/core/servicedesk"
)

var (
	msgErrorCloseBody = "failed close body request"
	msgNotAuthorized  = "not authorized"
	msgNotFound       = "not found"
)

// respondError maps domain failures onto HTTP statuses. Permission and
// not-found failures stay generic and never explain themselves.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, servicedesk.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, tError{Error: msgNotAuthorized})
	case errors.Is(err, errstore.ErrNotFoundData):
		c.JSON(http.StatusNotFound, tError{Error: msgNotFound})
	case errors.Is(err, servicedesk.ErrInvalidTransition),
		errors.Is(err, errstore.ErrOrderConflict),
		errors.Is(err, errstore.ErrLoginNotUnique),
		errors.Is(err, errstore.ErrNameNotUnique):
		c.JSON(http.StatusConflict, tError{Error: err.Error()})
	case errors.Is(err, servicedesk.ErrUnknownStatus),
		errors.Is(err, servicedesk.ErrServiceRequired),
		errors.Is(err, servicedesk.ErrNameRequired),
		errors.Is(err, servicedesk.ErrPhoneRequired),
		errors.Is(err, servicedesk.ErrRatingOutOfRange),
		errors.Is(err, servicedesk.ErrLoginNotValid),
		errors.Is(err, servicedesk.ErrPasswordNotValid):
		c.JSON(http.StatusBadRequest, tError{Error: err.Error()})
	default:
		s.log.Error("request failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
	}
}

//	@Summary	Register account
//	@Schemes
//	@Description	registration
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			registration	body	tRegistration	true	"registration"
//	@Success		200	"account registered and authenticated"
//	@failure		400	"bad request format"
//	@failure		409	"login already taken"
//	@failure		500	"internal error"
//	@Router			/api/user/register [post]
func (s *Server) handlerRegister(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tRegistration{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.Register(ctx, jBody.Login, jBody.Password); err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.authorization(c, jBody.Login, jBody.Password); err != nil {
		s.respondError(c, err)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Login
//	@Schemes
//	@Description	authorization
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			auth	body	tAuthorization	true	"auth"
//	@Success		200	"authenticated"
//	@failure		400	"bad request format"
//	@failure		401	"wrong login/password pair"
//	@failure		500	"internal error"
//	@Router			/api/user/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	unauthorize(c)

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tAuthorization{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.authorization(c, jBody.Login, jBody.Password); err != nil {
		if errors.Is(err, servicedesk.ErrLoginNotValid) || errors.Is(err, servicedesk.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, servicedesk.ErrPasswordNotEqual) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Create order
//	@Schemes
//	@Description	create order for a service, with price snapshot and 10% prepayment
//	@Tags			order
//	@Accept			json
//	@Produce		json
//	@Param			order	body	tCreateOrder	true	"order"
//	@Success		201	{object}	tOrder	"order created"
//	@failure		400	"bad request format"
//	@failure		401	"not authenticated"
//	@failure		404	"service or building not found"
//	@failure		500	"internal error"
//	@Router			/api/orders [post]
func (s *Server) handlerCreateOrder(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tCreateOrder{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	scheduledAt, err := parseSchedule(jBody.Date, jBody.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, tError{Error: "bad date or time format"})
		return
	}

	order, err := s.service.CreateOrder(ctx, accountID, servicedesk.CreateOrderInput{
		ServiceID:         jBody.ServiceID,
		BuildingID:        jBody.BuildingID,
		ScheduledAt:       scheduledAt,
		Comment:           jBody.Comment,
		RequirePrepayment: jBody.RequirePrepayment,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newOrderResponse(&order))
}

func parseSchedule(date, tm string) (time.Time, error) {
	if date == "" {
		return time.Time{}, nil
	}
	if tm == "" {
		return time.Parse("2006-01-02", date)
	}
	return time.Parse("2006-01-02 15:04", date+" "+tm)
}

//	@Summary	List orders
//	@Schemes
//	@Description	orders visible to the requesting account: admins see all, managers their building, users their own
//	@Tags			order
//	@Produce		json
//	@Success		200	{array}	tOrder	"orders"
//	@failure		401	"not authenticated"
//	@failure		500	"internal error"
//	@Router			/api/orders [get]
func (s *Server) handlerListOrders(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orders, err := s.service.ListOrders(ctx, accountID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	response := []tOrder{}
	for _, order := range orders {
		response = append(response, newOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Order details
//	@Schemes
//	@Tags			order
//	@Produce		json
//	@Param			id	path	integer	true	"order id"
//	@Success		200	{object}	tOrder	"order"
//	@failure		401	"not authenticated"
//	@failure		404	"order not found or not visible"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id} [get]
func (s *Server) handlerGetOrder(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := s.service.GetOrder(ctx, accountID, orderID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(&order))
}

//	@Summary	Edit order
//	@Schemes
//	@Description	update order fields, with an optional status transition; omitted fields stay unchanged
//	@Tags			order
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer		true	"order id"
//	@Param			order	body	tEditOrder	true	"fields to change"
//	@Success		200	{object}	tOrder	"order after edit"
//	@failure		400	"bad request format or unknown status"
//	@failure		401	"not authenticated"
//	@failure		403	"not authorized"
//	@failure		404	"order, service or building not found"
//	@failure		409	"transition not allowed or order changed concurrently"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id} [put]
func (s *Server) handlerEditOrder(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tEditOrder{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	in := servicedesk.EditOrderInput{
		ServiceID:  jBody.ServiceID,
		BuildingID: jBody.BuildingID,
		Comment:    jBody.Comment,
	}
	if jBody.Date != "" {
		scheduledAt, err := parseSchedule(jBody.Date, jBody.Time)
		if err != nil {
			c.JSON(http.StatusBadRequest, tError{Error: "bad date or time format"})
			return
		}
		in.ScheduledAt = &scheduledAt
	}
	if jBody.Status != nil {
		next := model.OrderStatus(*jBody.Status)
		in.Status = &next
	}

	order, err := s.service.EditOrder(ctx, accountID, orderID, in)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(&order))
}

//	@Summary	Delete order
//	@Schemes
//	@Description	remove an order together with its history
//	@Tags			order
//	@Param			id	path	integer	true	"order id"
//	@Success		200	"order removed"
//	@failure		401	"not authenticated"
//	@failure		403	"not authorized"
//	@failure		404	"order not found"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id} [delete]
func (s *Server) handlerDeleteOrder(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.service.DeleteOrder(ctx, accountID, orderID); err != nil {
		s.respondError(c, err)
		return
	}

	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Change order status
//	@Schemes
//	@Description	apply one lifecycle transition; illegal jumps are rejected
//	@Tags			order
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer			true	"order id"
//	@Param			status	body	tChangeStatus	true	"new status"
//	@Success		200	{object}	tOrder	"order after transition"
//	@failure		400	"unknown status"
//	@failure		401	"not authenticated"
//	@failure		403	"not authorized"
//	@failure		404	"order not found"
//	@failure		409	"transition not allowed or order changed concurrently"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id}/status [post]
func (s *Server) handlerChangeOrderStatus(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tChangeStatus{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := s.service.TransitionOrder(ctx, accountID, orderID, model.OrderStatus(jBody.Status))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(&order))
}

//	@Summary	Pay order
//	@Schemes
//	@Description	prepayment of the ordering account, moves the order to PAID
//	@Tags			order
//	@Produce		json
//	@Param			id	path	integer	true	"order id"
//	@Success		200	{object}	tOrder	"order after payment"
//	@failure		401	"not authenticated"
//	@failure		403	"not authorized"
//	@failure		404	"order not found"
//	@failure		409	"order is not waiting for payment"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id}/pay [post]
func (s *Server) handlerPayOrder(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := s.service.PayOrder(ctx, accountID, orderID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(&order))
}

//	@Summary	Order history
//	@Schemes
//	@Description	audit trail of status changes, newest first
//	@Tags			order
//	@Produce		json
//	@Param			id	path	integer	true	"order id"
//	@Success		200	{array}	tHistoryEntry	"history entries"
//	@failure		401	"not authenticated"
//	@failure		404	"order not found or not visible"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id}/history [get]
func (s *Server) handlerOrderHistory(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	history, err := s.service.OrderHistory(ctx, accountID, orderID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	response := []tHistoryEntry{}
	for _, entry := range history {
		response = append(response, newHistoryResponse(entry))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	List buildings
//	@Schemes
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	tBuildingResponse	"buildings"
//	@failure		401	"not authenticated"
//	@failure		500	"internal error"
//	@Router			/api/buildings [get]
func (s *Server) handlerListBuildings(c *gin.Context) {
	ctx := c.Request.Context()

	buildings, err := s.service.ListBuildings(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}

	response := []tBuildingResponse{}
	for _, b := range buildings {
		response = append(response, tBuildingResponse{ID: b.ID, Name: b.Name, Address: b.Address})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Building details
//	@Schemes
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path	integer	true	"building id"
//	@Success		200	{object}	tBuildingResponse	"building"
//	@failure		401	"not authenticated"
//	@failure		404	"building not found"
//	@failure		500	"internal error"
//	@Router			/api/buildings/{id} [get]
func (s *Server) handlerGetBuilding(c *gin.Context) {
	ctx := c.Request.Context()

	buildingID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	building, err := s.service.GetBuilding(ctx, buildingID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tBuildingResponse{ID: building.ID, Name: building.Name, Address: building.Address})
}

//	@Summary	Create building
//	@Schemes
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			building	body	tBuilding	true	"building"
//	@Success		201	{object}	tBuildingResponse	"building created"
//	@failure		400	"bad request format"
//	@failure		401	"not authenticated"
//	@failure		403	"admins only"
//	@failure		500	"internal error"
//	@Router			/api/buildings [post]
func (s *Server) handlerCreateBuilding(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tBuilding{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	building, err := s.service.CreateBuilding(ctx, accountID, jBody.Name, jBody.Address)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tBuildingResponse{ID: building.ID, Name: building.Name, Address: building.Address})
}

//	@Summary	List categories
//	@Schemes
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}	tCategoryResponse	"categories"
//	@failure		401	"not authenticated"
//	@failure		500	"internal error"
//	@Router			/api/categories [get]
func (s *Server) handlerListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := s.service.ListCategories(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}

	response := []tCategoryResponse{}
	for _, cat := range categories {
		response = append(response, tCategoryResponse{ID: cat.ID, Name: cat.Name})
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Create category
//	@Schemes
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			category	body	tCategory	true	"category"
//	@Success		201	{object}	tCategoryResponse	"category created"
//	@failure		400	"bad request format"
//	@failure		401	"not authenticated"
//	@failure		403	"admins only"
//	@failure		409	"name already taken"
//	@failure		500	"internal error"
//	@Router			/api/categories [post]
func (s *Server) handlerCreateCategory(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tCategory{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	category, err := s.service.CreateCategory(ctx, accountID, jBody.Name)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tCategoryResponse{ID: category.ID, Name: category.Name})
}

//	@Summary	List services
//	@Schemes
//	@Description	optional filters: category id, name/description search
//	@Tags			catalog
//	@Produce		json
//	@Param			category	query	integer	false	"category id"
//	@Param			search		query	string	false	"substring of name or description"
//	@Success		200	{array}	tService	"services"
//	@failure		401	"not authenticated"
//	@failure		500	"internal error"
//	@Router			/api/services [get]
func (s *Server) handlerListServices(c *gin.Context) {
	ctx := c.Request.Context()

	filter := model.ServiceFilter{Search: c.Query("search")}
	if raw := c.Query("category"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		id := uint(id64)
		filter.CategoryID = &id
	}

	services, err := s.service.ListServices(ctx, filter)
	if err != nil {
		s.respondError(c, err)
		return
	}

	response := []tService{}
	for _, svc := range services {
		response = append(response, newServiceResponse(svc))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Create service
//	@Schemes
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			service	body	tCreateService	true	"service"
//	@Success		201	{object}	tService	"service created"
//	@failure		400	"bad request format"
//	@failure		401	"not authenticated"
//	@failure		403	"admin or manager of the building only"
//	@failure		404	"building not found"
//	@failure		500	"internal error"
//	@Router			/api/services [post]
func (s *Server) handlerCreateService(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tCreateService{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	price, err := parsePrice(jBody.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, tError{Error: "bad price format"})
		return
	}

	service, err := s.service.CreateService(ctx, accountID, servicedesk.CreateServiceInput{
		BuildingID:  jBody.BuildingID,
		CategoryID:  jBody.CategoryID,
		Name:        jBody.Name,
		Description: jBody.Description,
		Price:       price,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newServiceResponse(&service))
}

//	@Summary	Service reviews
//	@Schemes
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path	integer	true	"service id"
//	@Success		200	{array}	tReviewResponse	"reviews, newest first"
//	@failure		401	"not authenticated"
//	@failure		500	"internal error"
//	@Router			/api/services/{id}/reviews [get]
func (s *Server) handlerListServiceReviews(c *gin.Context) {
	ctx := c.Request.Context()

	serviceID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	reviews, err := s.service.ListServiceReviews(ctx, serviceID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	response := []tReviewResponse{}
	for _, review := range reviews {
		response = append(response, newReviewResponse(review))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Review service
//	@Schemes
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer	true	"service id"
//	@Param			review	body	tReview	true	"review"
//	@Success		201	{object}	tReviewResponse	"review created"
//	@failure		400	"rating out of range"
//	@failure		401	"not authenticated"
//	@failure		404	"service not found"
//	@failure		500	"internal error"
//	@Router			/api/services/{id}/reviews [post]
func (s *Server) handlerCreateServiceReview(c *gin.Context) {
	ctx := c.Request.Context()
	accountID, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	serviceID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tReview{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	review, err := s.service.AddReview(ctx, accountID, serviceID, jBody.Rating, jBody.Comment)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newReviewResponse(&review))
}

//	@Summary	List clients
//	@Schemes
//	@Description	walk-in contacts
//	@Tags			client
//	@Produce		json
//	@Success		200	{array}	tClientResponse	"clients"
//	@failure		401	"not authenticated"
//	@failure		500	"internal error"
//	@Router			/api/clients [get]
func (s *Server) handlerListClients(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := s.service.ListClients(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}

	response := []tClientResponse{}
	for _, client := range clients {
		response = append(response, newClientResponse(client))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Create client
//	@Schemes
//	@Tags			client
//	@Accept			json
//	@Produce		json
//	@Param			client	body	tClient	true	"client"
//	@Success		201	{object}	tClientResponse	"client created"
//	@failure		400	"first name or phone missing"
//	@failure		401	"not authenticated"
//	@failure		500	"internal error"
//	@Router			/api/clients [post]
func (s *Server) handlerCreateClient(c *gin.Context) {
	ctx := c.Request.Context()

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tClient{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	client, err := s.service.CreateClient(ctx, servicedesk.ClientInput{
		FirstName: jBody.FirstName,
		LastName:  jBody.LastName,
		Phone:     jBody.Phone,
		Email:     jBody.Email,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newClientResponse(&client))
}

//	@Summary	Client details
//	@Schemes
//	@Tags			client
//	@Produce		json
//	@Param			id	path	integer	true	"client id"
//	@Success		200	{object}	tClientResponse	"client"
//	@failure		401	"not authenticated"
//	@failure		404	"client not found"
//	@failure		500	"internal error"
//	@Router			/api/clients/{id} [get]
func (s *Server) handlerGetClient(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	client, err := s.service.GetClient(ctx, clientID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newClientResponse(&client))
}

//	@Summary	Update client
//	@Schemes
//	@Tags			client
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer	true	"client id"
//	@Param			client	body	tClient	true	"client"
//	@Success		200	{object}	tClientResponse	"client updated"
//	@failure		400	"first name or phone missing"
//	@failure		401	"not authenticated"
//	@failure		404	"client not found"
//	@failure		500	"internal error"
//	@Router			/api/clients/{id} [put]
func (s *Server) handlerUpdateClient(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := paramID(c, "id")
	if err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	bBody, status := s.readBody(c)
	if status != 0 {
		c.Writer.WriteHeader(status)
		return
	}

	jBody := tClient{}
	if err := json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	client, err := s.service.UpdateClient(ctx, clientID, servicedesk.ClientInput{
		FirstName: jBody.FirstName,
		LastName:  jBody.LastName,
		Phone:     jBody.Phone,
		Email:     jBody.Email,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newClientResponse(&client))
}
