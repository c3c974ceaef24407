// internal/domain/checkout/controller.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
)

// FlatShippingCost is the flat shipping charge applied to non-empty carts
const FlatShippingCost = 25.0

// Step identifies the checkout step the controller is in
type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
)

var (
	// ErrEmptyCart is returned when checkout is entered without cart items;
	// callers redirect back to the cart view.
	ErrEmptyCart = errors.New("checkout requires a non-empty cart")

	// ErrWrongStep is returned when a submission does not match the current step
	ErrWrongStep = errors.New("submission does not match the current checkout step")
)

// ValidationError reports a missing required form field. It is handled
// locally by the form and never propagated further.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

// ShippingDetails holds the shipping form fields. All fields are required;
// there is no cross-field validation beyond presence.
type ShippingDetails struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
}

// Validate checks that every shipping field is present
func (d *ShippingDetails) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"first_name", d.FirstName},
		{"last_name", d.LastName},
		{"email", d.Email},
		{"phone", d.Phone},
		{"address", d.Address},
		{"city", d.City},
		{"region", d.Region},
		{"postal_code", d.PostalCode},
	}

	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// PaymentDetails holds the payment form fields
type PaymentDetails struct {
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// Validate checks that every payment field is present
func (d *PaymentDetails) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"card_number", d.CardNumber},
		{"card_holder", d.CardHolder},
		{"expiry_date", d.ExpiryDate},
		{"cvv", d.CVV},
	}

	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// ChargeRequest is what the controller hands to the payment processor
type ChargeRequest struct {
	Amount   float64
	Details  PaymentDetails
	Shipping ShippingDetails
	Items    []cart.Item
}

// Processor executes the payment-processing call. The real gateway is out of
// scope; the default implementation simulates it.
type Processor interface {
	Charge(ctx context.Context, req *ChargeRequest) error
}

// SimulatedProcessor approves every charge after a short delay
type SimulatedProcessor struct {
	Delay time.Duration
}

// Charge implements Processor
func (p *SimulatedProcessor) Charge(ctx context.Context, req *ChargeRequest) error {
	select {
	case <-time.After(p.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OrderConfirmation is handed to the order-confirmation view after a
// successful payment
type OrderConfirmation struct {
	OrderNumber  string          `json:"order_number"`
	Items        []cart.Item     `json:"items"`
	Shipping     ShippingDetails `json:"shipping"`
	Subtotal     float64         `json:"subtotal"`
	ShippingCost float64         `json:"shipping_cost"`
	Total        float64         `json:"total"`
	PlacedAt     time.Time       `json:"placed_at"`
}

// Controller drives the two-step checkout flow: shipping then payment.
// It reads the cart store via snapshots taken at call time, and clears it
// only after a successful payment.
type Controller struct {
	cart      *cart.Store
	processor Processor
	logger    *logrus.Logger

	step     Step
	shipping ShippingDetails
}

// NewController enters the checkout flow. The cart is a prerequisite
// resource: entering with an empty cart fails with ErrEmptyCart so the caller
// can redirect to the cart view.
func NewController(cartStore *cart.Store, processor Processor, logger *logrus.Logger) (*Controller, error) {
	if cartStore.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if processor == nil {
		processor = &SimulatedProcessor{Delay: 1500 * time.Millisecond}
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &Controller{
		cart:      cartStore,
		processor: processor,
		logger:    logger,
		step:      StepShipping,
	}, nil
}

// Step returns the current checkout step
func (c *Controller) Step() Step {
	return c.step
}

// ShippingDetails returns the previously entered shipping data
func (c *Controller) ShippingDetails() ShippingDetails {
	return c.shipping
}

// Subtotal returns the cart total at call time
func (c *Controller) Subtotal() float64 {
	return c.cart.Total()
}

// ShippingCost returns the flat shipping charge for the current cart
func (c *Controller) ShippingCost() float64 {
	if c.cart.IsEmpty() {
		return 0
	}
	return FlatShippingCost
}

// OrderTotal returns subtotal plus shipping
func (c *Controller) OrderTotal() float64 {
	return c.Subtotal() + c.ShippingCost()
}

// SubmitShipping validates the shipping form and advances to the payment step
func (c *Controller) SubmitShipping(details ShippingDetails) error {
	if c.step != StepShipping {
		return ErrWrongStep
	}
	if err := details.Validate(); err != nil {
		return err
	}

	c.shipping = details
	c.step = StepPayment
	return nil
}

// Back returns from payment to shipping, preserving the entered shipping data
func (c *Controller) Back() {
	if c.step == StepPayment {
		c.step = StepShipping
	}
}

// SubmitPayment executes the payment call. On success the cart is cleared
// and the confirmation for the order-confirmation view is returned. On
// failure the controller stays in the payment step and the fault is
// surfaced; retrying is a deliberate user action.
func (c *Controller) SubmitPayment(ctx context.Context, details PaymentDetails) (*OrderConfirmation, error) {
	if c.step != StepPayment {
		return nil, ErrWrongStep
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	items := c.cart.Items()
	subtotal := c.cart.Total()
	shippingCost := c.ShippingCost()
	total := subtotal + shippingCost

	req := &ChargeRequest{
		Amount:   total,
		Details:  details,
		Shipping: c.shipping,
		Items:    items,
	}

	if err := c.processor.Charge(ctx, req); err != nil {
		c.logger.WithError(err).Warn("payment failed")
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	c.cart.Clear()

	confirmation := &OrderConfirmation{
		OrderNumber:  uuid.NewString(),
		Items:        items,
		Shipping:     c.shipping,
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Total:        total,
		PlacedAt:     time.Now().UTC(),
	}

	c.logger.WithFields(logrus.Fields{
		"order_number": confirmation.OrderNumber,
		"total":        confirmation.Total,
	}).Info("order placed")

	return confirmation, nil
}
