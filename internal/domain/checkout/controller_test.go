package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/cart"
)

type fakeProcessor struct {
	err     error
	charges []*ChargeRequest
}

func (p *fakeProcessor) Charge(ctx context.Context, req *ChargeRequest) error {
	p.charges = append(p.charges, req)
	return p.err
}

func filledCart(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore()
	store.AddItem(cart.Item{ID: "1", Name: "iPhone 13", Price: 999.99, Image: "iphone13.jpg"}, 2)
	store.AddItem(cart.Item{ID: "2", Name: "AirPods Pro", Price: 299.99, Image: "airpods.jpg"}, 1)
	return store
}

func validShipping() ShippingDetails {
	return ShippingDetails{
		FirstName:  "Ama",
		LastName:   "Mensah",
		Email:      "ama@example.com",
		Phone:      "0244000000",
		Address:    "12 Ring Road",
		City:       "Accra",
		Region:     "Greater Accra",
		PostalCode: "GA-039",
	}
}

func validPayment() PaymentDetails {
	return PaymentDetails{
		CardNumber: "4242424242424242",
		CardHolder: "Ama Mensah",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func TestEmptyCartRedirects(t *testing.T) {
	_, err := NewController(cart.NewStore(), &fakeProcessor{}, nil)

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestStartsAtShippingStep(t *testing.T) {
	ctrl, err := NewController(filledCart(t), &fakeProcessor{}, nil)
	require.NoError(t, err)

	assert.Equal(t, StepShipping, ctrl.Step())
}

func TestOrderTotals(t *testing.T) {
	ctrl, err := NewController(filledCart(t), &fakeProcessor{}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 2299.97, ctrl.Subtotal(), 0.001)
	assert.InDelta(t, 25.0, ctrl.ShippingCost(), 0.001)
	assert.InDelta(t, 2324.97, ctrl.OrderTotal(), 0.001)
}

func TestSubmitShippingAdvances(t *testing.T) {
	ctrl, err := NewController(filledCart(t), &fakeProcessor{}, nil)
	require.NoError(t, err)

	require.NoError(t, ctrl.SubmitShipping(validShipping()))
	assert.Equal(t, StepPayment, ctrl.Step())
}

func TestSubmitShippingRequiresAllFields(t *testing.T) {
	ctrl, err := NewController(filledCart(t), &fakeProcessor{}, nil)
	require.NoError(t, err)

	details := validShipping()
	details.City = ""

	err = ctrl.SubmitShipping(details)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "city", validationErr.Field)
	assert.Equal(t, StepShipping, ctrl.Step())
}

func TestBackPreservesShippingData(t *testing.T) {
	ctrl, err := NewController(filledCart(t), &fakeProcessor{}, nil)
	require.NoError(t, err)

	details := validShipping()
	require.NoError(t, ctrl.SubmitShipping(details))

	ctrl.Back()

	assert.Equal(t, StepShipping, ctrl.Step())
	assert.Equal(t, details, ctrl.ShippingDetails())
}

func TestSubmitPaymentBeforeShippingFails(t *testing.T) {
	ctrl, err := NewController(filledCart(t), &fakeProcessor{}, nil)
	require.NoError(t, err)

	_, err = ctrl.SubmitPayment(context.Background(), validPayment())
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestSuccessfulPaymentClearsCartAndConfirms(t *testing.T) {
	store := filledCart(t)
	processor := &fakeProcessor{}
	ctrl, err := NewController(store, processor, nil)
	require.NoError(t, err)

	require.NoError(t, ctrl.SubmitShipping(validShipping()))

	confirmation, err := ctrl.SubmitPayment(context.Background(), validPayment())
	require.NoError(t, err)

	assert.True(t, store.IsEmpty())
	assert.NotEmpty(t, confirmation.OrderNumber)
	assert.Len(t, confirmation.Items, 2)
	assert.InDelta(t, 2299.97, confirmation.Subtotal, 0.001)
	assert.InDelta(t, 25.0, confirmation.ShippingCost, 0.001)
	assert.InDelta(t, 2324.97, confirmation.Total, 0.001)

	require.Len(t, processor.charges, 1)
	assert.InDelta(t, 2324.97, processor.charges[0].Amount, 0.001)
}

func TestFailedPaymentKeepsCartAndStep(t *testing.T) {
	store := filledCart(t)
	processor := &fakeProcessor{err: errors.New("card declined")}
	ctrl, err := NewController(store, processor, nil)
	require.NoError(t, err)

	require.NoError(t, ctrl.SubmitShipping(validShipping()))

	confirmation, err := ctrl.SubmitPayment(context.Background(), validPayment())

	require.Error(t, err)
	assert.Nil(t, confirmation)
	assert.Equal(t, StepPayment, ctrl.Step(), "failed payment keeps the user on the payment step")
	assert.Equal(t, 2, store.Len(), "no partial order may be committed")
}

func TestSubmitPaymentRequiresAllFields(t *testing.T) {
	ctrl, err := NewController(filledCart(t), &fakeProcessor{}, nil)
	require.NoError(t, err)
	require.NoError(t, ctrl.SubmitShipping(validShipping()))

	details := validPayment()
	details.CVV = ""

	_, err = ctrl.SubmitPayment(context.Background(), details)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "cvv", validationErr.Field)
}

func TestSimulatedProcessorApproves(t *testing.T) {
	processor := &SimulatedProcessor{}

	err := processor.Charge(context.Background(), &ChargeRequest{Amount: 100})
	assert.NoError(t, err)
}

func TestSimulatedProcessorHonorsCancellation(t *testing.T) {
	processor := &SimulatedProcessor{Delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := processor.Charge(ctx, &ChargeRequest{Amount: 100})
	assert.ErrorIs(t, err, context.Canceled)
}
