package models

// PaymentMethod is a stylist payout method kept in the backend's books.
type PaymentMethod struct {
	ID            ID     `json:"id"`
	StylistID     ID     `json:"stylistId"`
	MethodName    string `json:"methodName"`
	AccountNumber string `json:"accountNumber"`
}

// MaskedAccount hides all but the last four digits of the account number.
func (m PaymentMethod) MaskedAccount() string {
	n := len(m.AccountNumber)
	if n <= 4 {
		return m.AccountNumber
	}
	masked := make([]byte, n)
	for i := 0; i < n-4; i++ {
		masked[i] = '*'
	}
	copy(masked[n-4:], m.AccountNumber[n-4:])
	return string(masked)
}

// BookingFee is a stylist's platform booking fee. A nil percent means no fee
// has been configured yet.
type BookingFee struct {
	StylistID         ID       `json:"stylistId"`
	BookingFeePercent *float64 `json:"bookingFeePercent"`
}
