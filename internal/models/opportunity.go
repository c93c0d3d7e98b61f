package models

import (
	"github.com/google/uuid"
)

// Opportunity is a candidate partnership scenario supplied by the caller.
// It lives only for the duration of one request and is never persisted.
type Opportunity struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Channel          string    `json:"channel"`
	Description      string    `json:"description"`
	Priority         string    `json:"priority"` // high, medium, low
	EstimatedRevenue string    `json:"estimatedRevenue"`
	Timeline         string    `json:"timeline"`
}

// RequestContext carries the optional budget/timeline context the caller
// supplies alongside an opportunity on the playbook endpoints.
type RequestContext struct {
	Budget   string `json:"budget"`
	Timeline string `json:"timeline"`
}
