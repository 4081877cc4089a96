package models

import "time"

// Session is the canonical dashboard session for a logged-in stylist. Login
// responses across backend deployments put identity fields in different
// places; the session provider flattens them into this one shape.
type Session struct {
	StylistID    ID        `json:"stylistId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BackendToken string    `json:"backendToken"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is a stylist's own account record.
type Profile struct {
	ID            ID      `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	PhoneNumber   string  `json:"phoneNumber,omitempty"`
	Location      string  `json:"location,omitempty"`
	PriceRangeMin float64 `json:"priceRangeMin,omitempty"`
	PriceRangeMax float64 `json:"priceRangeMax,omitempty"`
}

// RegisterInput is the stylist sign-up payload forwarded to the backend.
type RegisterInput struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	PhoneNumber   string  `json:"phoneNumber"`
	Password      string  `json:"password" binding:"required"`
	Location      string  `json:"location"`
	PriceRangeMin float64 `json:"priceRangeMin"`
	PriceRangeMax float64 `json:"priceRangeMax"`
}
