package models

// Service is a named offering from the global catalog, owned by the backend.
type Service struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Duration    int     `json:"duration,omitempty"`
}

// StylistService binds a catalog service to a stylist with a stylist-specific
// price and duration.
type StylistService struct {
	ID        ID       `json:"id"`
	StylistID ID       `json:"stylistId"`
	ServiceID ID       `json:"serviceId"`
	Price     float64  `json:"price,omitempty"`
	Duration  int      `json:"duration,omitempty"`
	Service   *Service `json:"service,omitempty"`
}
