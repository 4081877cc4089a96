// Package payment keeps a stylist's payout bookkeeping: payment methods and
// the platform booking fee. Account numbers are masked before they leave
// this package; no card processing happens here.
package payment

import (
	"context"

	"glowdesk/models"

	"go.uber.org/zap"
)

// BackendPayments is the slice of the backend client this service uses.
type BackendPayments interface {
	ListPaymentMethods(ctx context.Context, token string, stylistID models.ID) ([]models.PaymentMethod, error)
	SavePaymentMethod(ctx context.Context, token string, method models.PaymentMethod) (*models.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, token string, id models.ID, methodName, accountNumber string) (*models.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, token string, id models.ID) error
	GetBookingFee(ctx context.Context, token string, stylistID models.ID) (*models.BookingFee, error)
	SaveBookingFee(ctx context.Context, token string, stylistID models.ID, percent *float64) (*models.BookingFee, error)
}

type PaymentService interface {
	Methods(ctx context.Context, token string, stylistID models.ID) ([]models.PaymentMethod, error)
	AddMethod(ctx context.Context, token string, method models.PaymentMethod) (*models.PaymentMethod, error)
	EditMethod(ctx context.Context, token string, id models.ID, methodName, accountNumber string) (*models.PaymentMethod, error)
	RemoveMethod(ctx context.Context, token string, id models.ID) error
	Fee(ctx context.Context, token string, stylistID models.ID) (*models.BookingFee, error)
	SetFee(ctx context.Context, token string, stylistID models.ID, percent *float64) (*models.BookingFee, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Backend BackendPayments
	Logger  *zap.Logger
}

// Methods lists payout methods with account numbers masked for display.
func (s *DefaultPaymentService) Methods(ctx context.Context, token string, stylistID models.ID) ([]models.PaymentMethod, error) {
	methods, err := s.Backend.ListPaymentMethods(ctx, token, stylistID)
	if err != nil {
		return nil, err
	}
	for i := range methods {
		methods[i].AccountNumber = methods[i].MaskedAccount()
	}
	return methods, nil
}

// AddMethod records a new payout method.
func (s *DefaultPaymentService) AddMethod(ctx context.Context, token string, method models.PaymentMethod) (*models.PaymentMethod, error) {
	created, err := s.Backend.SavePaymentMethod(ctx, token, method)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("payment method added", zap.String("stylistId", method.StylistID.String()))
	}
	created.AccountNumber = created.MaskedAccount()
	return created, nil
}

// EditMethod updates an existing payout method.
func (s *DefaultPaymentService) EditMethod(ctx context.Context, token string, id models.ID, methodName, accountNumber string) (*models.PaymentMethod, error) {
	updated, err := s.Backend.UpdatePaymentMethod(ctx, token, id, methodName, accountNumber)
	if err != nil {
		return nil, err
	}
	updated.AccountNumber = updated.MaskedAccount()
	return updated, nil
}

// RemoveMethod deletes a payout method.
func (s *DefaultPaymentService) RemoveMethod(ctx context.Context, token string, id models.ID) error {
	return s.Backend.DeletePaymentMethod(ctx, token, id)
}

// Fee returns the stylist's booking fee; a nil percent means unset.
func (s *DefaultPaymentService) Fee(ctx context.Context, token string, stylistID models.ID) (*models.BookingFee, error) {
	return s.Backend.GetBookingFee(ctx, token, stylistID)
}

// SetFee sets or clears the stylist's booking fee percent.
func (s *DefaultPaymentService) SetFee(ctx context.Context, token string, stylistID models.ID, percent *float64) (*models.BookingFee, error) {
	return s.Backend.SaveBookingFee(ctx, token, stylistID, percent)
}
