package entity

import (
	"time"
)

// ChatSession is a single recorded chat turn: the user's message and the
// generated reply. Rows are append-only; nothing in the API mutates or
// deletes them.
type ChatSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"createdAt"`
}
