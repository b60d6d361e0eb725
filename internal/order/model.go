package order

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// transitions lists the statuses reachable from each non-terminal status.
var transitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether next is reachable from s. Staying on the
// same status is always allowed.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Item is one frozen cart line stored on the order.
type Item struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url"`
}

func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Items is the JSONB snapshot column.
type Items []Item

func (it Items) Value() (driver.Value, error) {
	if it == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(it)
}

func (it *Items) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*it = Items{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("order items: unsupported source type %T", src)
	}
	return json.Unmarshal(raw, it)
}

// Total sums every line total.
func (it Items) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range it {
		total = total.Add(item.LineTotal())
	}
	return total
}

type Order struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	CustomerPhone   string          `json:"customer_phone"`
	DeliveryAddress string          `json:"delivery_address"`
	Items           Items           `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Validate checks the record invariants enforced before insert.
func (o Order) Validate() error {
	switch {
	case o.CustomerName == "":
		return ErrCustomerNameRequired
	case o.CustomerPhone == "":
		return ErrCustomerPhoneRequired
	case o.DeliveryAddress == "":
		return ErrDeliveryAddressRequired
	case len(o.Items) == 0:
		return ErrNoItems
	case !o.Status.Valid():
		return ErrInvalidStatus
	}
	for _, item := range o.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return ErrInvalidItem
		}
	}
	return nil
}

// Filter holds equality filters on the orders collection.
type Filter struct {
	ID     string
	Status Status
}
