package models

import "strings"

// DefaultClientID is the reserved id of the walk-in client used when a sale
// names no client. The clients id sequence starts above it.
const DefaultClientID int64 = 1

// Client is a customer a sale is attributed to. Owned by the client store;
// the sales core only reads it.
type Client struct {
	ID       int64
	Name     string
	LastName string
	Email    string
}

// FullName returns "Name LastName", trimmed when either part is empty.
func (c Client) FullName() string {
	return strings.TrimSpace(c.Name + " " + c.LastName)
}

// IsDefault reports whether c is the reserved walk-in client.
func (c Client) IsDefault() bool {
	return c.ID == DefaultClientID
}
