package entity

import (
	"github.com/google/uuid"
)

// db model
type ContactMessage struct {
	Id        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Content   string    `json:"content" db:"content"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateMessageInput struct {
	Name    string
	Phone   string
	Content string
}

// controller model
type MessageOutputModel struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Content   string `json:"content"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}
