package checkout

import (
	"context"
	"fmt"
	"strings"

	"dalarosa-be/internal/backend"
	"dalarosa-be/internal/cart"
	"dalarosa-be/internal/logger"
	"dalarosa-be/internal/metrics"
	"dalarosa-be/internal/order"
	"dalarosa-be/internal/whatsapp"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Form holds the delivery contact fields typed by the shopper.
type Form struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

func (f Form) normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Address: strings.TrimSpace(f.Address),
		Email:   strings.TrimSpace(f.Email),
	}
}

func (f Form) validate() error {
	switch {
	case f.Name == "":
		return ErrNameRequired
	case f.Phone == "":
		return ErrPhoneRequired
	case f.Address == "":
		return ErrAddressRequired
	}
	return nil
}

// Attempt records one run through the state machine.
type Attempt struct {
	State   State           `json:"state"`
	Path    []State         `json:"path"`
	OrderID string          `json:"order_id,omitempty"`
	Total   decimal.Decimal `json:"total"`
	Message string          `json:"message,omitempty"`
	Link    string          `json:"whatsapp_url,omitempty"`
}

func newAttempt() *Attempt {
	return &Attempt{State: StateEditing, Path: []State{StateEditing}}
}

func (a *Attempt) moveTo(s State) {
	if !a.State.canMoveTo(s) {
		panic(fmt.Errorf("%w: %s -> %s", errIllegalTransition, a.State, s))
	}
	a.State = s
	a.Path = append(a.Path, s)
}

type Flow struct {
	backend  backend.Backend
	composer *whatsapp.Composer
	metrics  *metrics.Checkout
}

func NewFlow(b backend.Backend, composer *whatsapp.Composer, m *metrics.Checkout) *Flow {
	if m == nil {
		m = &metrics.Checkout{}
	}
	return &Flow{backend: b, composer: composer, metrics: m}
}

// Submit validates form, stores one order built from the cart lines and, on
// success, removes the submitted lines from the cart and returns the WhatsApp hand-off link. A failed
// attempt leaves the cart untouched and ends back in Editing.
func (f *Flow) Submit(ctx context.Context, store *cart.Store, form Form) (*Attempt, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitOrder"),
	)

	f.metrics.Attempts.Inc()
	attempt := newAttempt()
	attempt.moveTo(StateValidating)

	form = form.normalize()
	lines := store.Items()

	err := form.validate()
	if err == nil && len(lines) == 0 {
		err = ErrEmptyCart
	}
	if err != nil {
		f.metrics.Rejected.Inc()
		attempt.moveTo(StateEditing)
		log.Info("checkout rejected", zap.Error(err))
		return attempt, err
	}

	items := make(order.Items, 0, len(lines))
	for _, li := range lines {
		items = append(items, order.Item{
			ProductID: li.ID,
			Name:      li.Name,
			Price:     li.Price,
			Quantity:  li.Quantity,
			ImageURL:  li.ImageURL,
		})
	}
	attempt.Total = items.Total()

	attempt.moveTo(StateSubmitting)
	timer := metrics.StartTimer()

	saved, err := f.backend.SaveOrder(ctx, &order.Order{
		CustomerName:    form.Name,
		CustomerEmail:   form.Email,
		CustomerPhone:   form.Phone,
		DeliveryAddress: form.Address,
		Items:           items,
		TotalAmount:     attempt.Total,
		Status:          order.StatusPending,
	})
	if err != nil {
		f.metrics.Failed.Inc()
		attempt.moveTo(StateFailed)
		attempt.moveTo(StateEditing)
		log.Error("order submission failed",
			zap.Duration("duration", timer.Duration()),
			zap.Error(err),
		)
		return attempt, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	attempt.moveTo(StateSucceeded)
	attempt.OrderID = saved.ID
	attempt.Message = f.composer.OrderMessage(*saved)
	attempt.Link = f.composer.Link(attempt.Message)

	store.Subtract(lines)
	f.metrics.Succeeded.Inc()

	log.Info("order submitted",
		zap.String("order_id", saved.ID),
		zap.Int("lines", len(items)),
		zap.String("total", attempt.Total.StringFixed(2)),
		zap.Duration("duration", timer.Duration()),
	)
	return attempt, nil
}

func (f *Flow) Metrics() metrics.CheckoutSnapshot {
	return f.metrics.Snapshot()
}
