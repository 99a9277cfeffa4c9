package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

type Account struct {
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Login             string `gorm:"unique"`
	PasswordHash      string
	Role              Role `gorm:"default:USER"`
	Phone             string
	ManagedBuilding   *Building
	ManagedBuildingID *uint
	ID                uint `gorm:"primarykey"`
}

type Building struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Address   string
	ID        uint `gorm:"primarykey"`
}

type Category struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"unique"`
	ID        uint   `gorm:"primarykey"`
}

type Service struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	Building    Building
	Category    *Category
	ID          uint `gorm:"primarykey"`
	BuildingID  uint `gorm:"index"`
	CategoryID  *uint
}

type OrderStatus string

const (
	OrderStatusNew            OrderStatus = "NEW"
	OrderStatusWaitingPayment OrderStatus = "WAITING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusInProgress     OrderStatus = "IN_PROGRESS"
	OrderStatusDone           OrderStatus = "DONE"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusNew, OrderStatusWaitingPayment, OrderStatusPaid,
		OrderStatusInProgress, OrderStatusDone, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDone || s == OrderStatusCancelled
}

// PrepaymentRate is the deposit share required to activate an order.
var PrepaymentRate = decimal.RequireFromString("0.10")

// PrepaymentFor derives the deposit from the order total.
func PrepaymentFor(total decimal.Decimal) decimal.Decimal {
	return total.Mul(PrepaymentRate).Round(2)
}

type Order struct {
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ScheduledAt      time.Time
	Number           string `gorm:"unique"`
	Status           OrderStatus
	Comment          string
	TotalPrice       decimal.Decimal `gorm:"type:numeric(10,2)"`
	PrepaymentAmount decimal.Decimal `gorm:"type:numeric(10,2)"`
	Account          Account
	Service          Service
	Building         *Building
	ID               uint `gorm:"primarykey"`
	AccountID        uint `gorm:"index"`
	ServiceID        uint `gorm:"index"`
	BuildingID       *uint
}

// BeforeSave keeps the prepayment derived from the total on every write.
// The amount is never settable from the outside.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	o.PrepaymentAmount = PrepaymentFor(o.TotalPrice)
	return nil
}

// OrderHistory is an append-only audit record of one status change. Labels
// are resolved at write time, so rows stay as they were even if the label
// table changes later. Rows are removed only together with the parent order.
type OrderHistory struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	OldStatus   string
	NewStatus   string
	Order       Order `gorm:"constraint:OnDelete:CASCADE"`
	ChangedBy   *Account
	ID          uint `gorm:"primarykey"`
	OrderID     uint `gorm:"index"`
	ChangedByID *uint
}

// Client is a walk-in contact without a login. Orders never reference it.
type Client struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	FirstName string
	LastName  string
	Phone     string
	Email     string
	ID        uint `gorm:"primarykey"`
}

type Review struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Comment   string
	Service   Service
	Account   Account
	Rating    int
	ID        uint `gorm:"primarykey"`
	ServiceID uint `gorm:"index"`
	AccountID uint
}

// OrderScope narrows order reads to what the requesting account may see.
// The zero value matches nothing.
type OrderScope struct {
	All        bool
	BuildingID *uint
	AccountID  *uint
}

type ServiceFilter struct {
	CategoryID *uint
	Search     string
}
