package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akmatov/servicedesk/internal/adapters/store/model"
	"github.com/akmatov/servicedesk/internal/core/servicedesk"
)

type tRegistration struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tAuthorization struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tError struct {
	Error string `json:"error"`
}

type tCreateOrder struct {
	ServiceID         uint   `json:"service_id"`
	BuildingID        *uint  `json:"building_id,omitempty"`
	Date              string `json:"date,omitempty"`
	Time              string `json:"time,omitempty"`
	Comment           string `json:"comment,omitempty"`
	RequirePrepayment bool   `json:"require_prepayment,omitempty"`
}

type tChangeStatus struct {
	Status string `json:"status"`
}

type tEditOrder struct {
	ServiceID  *uint   `json:"service_id,omitempty"`
	BuildingID *uint   `json:"building_id,omitempty"`
	Date       string  `json:"date,omitempty"`
	Time       string  `json:"time,omitempty"`
	Comment    *string `json:"comment,omitempty"`
	Status     *string `json:"status,omitempty"`
}

type tOrder struct {
	ID               uint            `json:"id"`
	Number           string          `json:"number"`
	Status           string          `json:"status"`
	StatusLabel      string          `json:"status_label"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	PrepaymentAmount decimal.Decimal `json:"prepayment_amount"`
	ScheduledAt      string          `json:"scheduled_at"`
	Comment          string          `json:"comment,omitempty"`
	CreatedAt        string          `json:"created_at"`
	ServiceID        uint            `json:"service_id"`
	BuildingID       *uint           `json:"building_id,omitempty"`
}

func newOrderResponse(order *model.Order) tOrder {
	return tOrder{
		ID:               order.ID,
		Number:           order.Number,
		Status:           string(order.Status),
		StatusLabel:      servicedesk.StatusLabel(order.Status),
		TotalPrice:       order.TotalPrice,
		PrepaymentAmount: order.PrepaymentAmount,
		ScheduledAt:      order.ScheduledAt.Format(time.RFC3339),
		Comment:          order.Comment,
		CreatedAt:        order.CreatedAt.Format(time.RFC3339),
		ServiceID:        order.ServiceID,
		BuildingID:       order.BuildingID,
	}
}

type tHistoryEntry struct {
	ID          uint   `json:"id"`
	OrderID     uint   `json:"order_id"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
	ChangedBy   *uint  `json:"changed_by,omitempty"`
	ChangeDate  string `json:"change_date"`
}

func newHistoryResponse(entry *model.OrderHistory) tHistoryEntry {
	return tHistoryEntry{
		ID:          entry.ID,
		OrderID:     entry.OrderID,
		OldStatus:   entry.OldStatus,
		NewStatus:   entry.NewStatus,
		ChangedBy:   entry.ChangedByID,
		ChangeDate:  entry.CreatedAt.Format(time.RFC3339),
	}
}

type tBuilding struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type tBuildingResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type tCategory struct {
	Name string `json:"name"`
}

type tCategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type tCreateService struct {
	BuildingID  uint   `json:"building_id"`
	CategoryID  *uint  `json:"category_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
}

type tService struct {
	ID          uint            `json:"id"`
	BuildingID  uint            `json:"building_id"`
	CategoryID  *uint           `json:"category_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

func newServiceResponse(service *model.Service) tService {
	return tService{
		ID:          service.ID,
		BuildingID:  service.BuildingID,
		CategoryID:  service.CategoryID,
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
	}
}

type tClient struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
}

type tClientResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
}

func newClientResponse(client *model.Client) tClientResponse {
	return tClientResponse{
		ID:        client.ID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Phone:     client.Phone,
		Email:     client.Email,
	}
}

type tReview struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type tReviewResponse struct {
	ID        uint   `json:"id"`
	ServiceID uint   `json:"service_id"`
	AccountID uint   `json:"account_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}

func newReviewResponse(review *model.Review) tReviewResponse {
	return tReviewResponse{
		ID:        review.ID,
		ServiceID: review.ServiceID,
		AccountID: review.AccountID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	}
}
