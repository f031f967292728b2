package entity

import (
	"github.com/google/uuid"
)

// db model. A lead is keyed by (session, intent) so the same conversation
// never produces duplicate records even across client reloads.
type Lead struct {
	Id        uuid.UUID `json:"id" db:"id"`
	SessionId string    `json:"sessionId" db:"session_id"`
	Intent    string    `json:"intent" db:"intent"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Interest  string    `json:"interest" db:"interest"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateLeadInput struct {
	SessionId string
	Intent    string
	Name      string
	Phone     string
	Interest  string
}

// controller model
type LeadOutputModel struct {
	Id        string `json:"id"`
	SessionId string `json:"sessionId"`
	Intent    string `json:"intent"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Interest  string `json:"interest"`
	CreatedAt string `json:"createdAt"`
}
