package backend

import (
	"context"
	"fmt"

	"glowdesk/models"
)

// ListPaymentMethods returns a stylist's payout methods.
func (c *Client) ListPaymentMethods(ctx context.Context, token string, stylistID models.ID) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := c.get(ctx, fmt.Sprintf("/stylist-payment-method/%s", stylistID), token, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

// SavePaymentMethod records a new payout method.
func (c *Client) SavePaymentMethod(ctx context.Context, token string, method models.PaymentMethod) (*models.PaymentMethod, error) {
	body := map[string]string{
		"stylistId":     method.StylistID.String(),
		"methodName":    method.MethodName,
		"accountNumber": method.AccountNumber,
	}
	var created models.PaymentMethod
	if err := c.post(ctx, "/stylist-payment-method", token, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePaymentMethod edits an existing payout method.
func (c *Client) UpdatePaymentMethod(ctx context.Context, token string, id models.ID, methodName, accountNumber string) (*models.PaymentMethod, error) {
	body := map[string]string{"methodName": methodName, "accountNumber": accountNumber}
	var updated models.PaymentMethod
	if err := c.put(ctx, fmt.Sprintf("/stylist-payment-method/%s", id), token, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePaymentMethod removes a payout method.
func (c *Client) DeletePaymentMethod(ctx context.Context, token string, id models.ID) error {
	return c.delete(ctx, fmt.Sprintf("/stylist-payment-method/%s", id), token, nil)
}

// GetBookingFee returns the stylist's booking fee. A backend 404 means no
// fee has been configured, which is returned as a nil percent, not an error.
func (c *Client) GetBookingFee(ctx context.Context, token string, stylistID models.ID) (*models.BookingFee, error) {
	var fee models.BookingFee
	if err := c.get(ctx, fmt.Sprintf("/stylist-booking-fee/%s", stylistID), token, &fee); err != nil {
		if IsNotFound(err) {
			return &models.BookingFee{StylistID: stylistID}, nil
		}
		return nil, err
	}
	fee.StylistID = stylistID
	return &fee, nil
}

// SaveBookingFee sets or updates the stylist's booking fee percent.
func (c *Client) SaveBookingFee(ctx context.Context, token string, stylistID models.ID, percent *float64) (*models.BookingFee, error) {
	body := map[string]interface{}{
		"stylistId":         stylistID,
		"bookingFeePercent": percent,
	}
	var fee models.BookingFee
	if err := c.put(ctx, "/stylist-booking-fee", token, body, &fee); err != nil {
		return nil, err
	}
	fee.StylistID = stylistID
	return &fee, nil
}
