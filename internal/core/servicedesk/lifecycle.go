package servicedesk

import (
	"fmt"

	"github.com/akmatov/servicedesk/internal/adapters/store/model"
)

// statusLabels is the single source of display names for statuses. History
// rows store these labels, both for regular transitions and for the payment
// flow.
var statusLabels = map[model.OrderStatus]string{
	model.OrderStatusNew:            "New",
	model.OrderStatusWaitingPayment: "Waiting payment",
	model.OrderStatusPaid:           "Paid",
	model.OrderStatusInProgress:     "In progress",
	model.OrderStatusDone:           "Done",
	model.OrderStatusCancelled:      "Cancelled",
}

func StatusLabel(status model.OrderStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// nextStatus holds the only forward edge from each status. Cancellation is
// allowed from any non-terminal status and is handled separately.
var nextStatus = map[model.OrderStatus]model.OrderStatus{
	model.OrderStatusNew:            model.OrderStatusWaitingPayment,
	model.OrderStatusWaitingPayment: model.OrderStatusPaid,
	model.OrderStatusPaid:           model.OrderStatusInProgress,
	model.OrderStatusInProgress:     model.OrderStatusDone,
}

func transitionAllowed(from, to model.OrderStatus) bool {
	if to == model.OrderStatusCancelled {
		return !from.Terminal()
	}
	return nextStatus[from] == to
}

// applyTransition moves the order to the next status and returns the audit
// row for it. Setting the current status again is a no-op and returns no
// row, so repeated calls do not pollute the history.
func applyTransition(order *model.Order, next model.OrderStatus, actorID *uint) (*model.OrderHistory, error) {
	if order.Status == next {
		return nil, nil
	}
	if !transitionAllowed(order.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	oldLabel := StatusLabel(order.Status)
	newLabel := StatusLabel(next)
	order.Status = next
	if oldLabel == newLabel {
		return nil, nil
	}

	return &model.OrderHistory{
		OrderID:     order.ID,
		OldStatus:   oldLabel,
		NewStatus:   newLabel,
		ChangedByID: actorID,
	}, nil
}

// visible is the one predicate every order read path goes through.
func visible(order *model.Order, actor model.Account) bool {
	switch actor.Role {
	case model.RoleAdmin:
		return true
	case model.RoleManager:
		return actor.ManagedBuildingID != nil &&
			order.BuildingID != nil &&
			*order.BuildingID == *actor.ManagedBuildingID
	default:
		return order.AccountID == actor.ID
	}
}

// canManage reports whether the actor may change the order's status.
func canManage(order *model.Order, actor model.Account) bool {
	switch actor.Role {
	case model.RoleAdmin:
		return true
	case model.RoleManager:
		return actor.ManagedBuildingID != nil &&
			order.BuildingID != nil &&
			*order.BuildingID == *actor.ManagedBuildingID
	default:
		return false
	}
}

func scopeFor(actor model.Account) model.OrderScope {
	switch actor.Role {
	case model.RoleAdmin:
		return model.OrderScope{All: true}
	case model.RoleManager:
		return model.OrderScope{BuildingID: actor.ManagedBuildingID}
	default:
		id := actor.ID
		return model.OrderScope{AccountID: &id}
	}
}
