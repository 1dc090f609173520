package subs

import "time"

// Subscription is one chat's registration for alert delivery.
type Subscription struct {
	ChatID    string    `json:"chat_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository stores per-chat alert subscriptions. Implementations must be
// safe for concurrent use; the scheduler lists subscribers while the polling
// loop adds and removes them.
type Repository interface {
	Get(chatID string) (Subscription, bool, error)
	Put(sub Subscription) error
	List() ([]Subscription, error)
	Delete(chatID string) error
}
