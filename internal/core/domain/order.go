package domain

import "time"

// OrderStatus represents the lifecycle state of a service order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// validOrderTransitions defines the allowed state machine transitions.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderCompleted, OrderCancelled},
}

// CanTransitionTo reports whether a transition from the current status
// to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceOrder is a hiring engagement between a client and a
// professional.
type ServiceOrder struct {
	ID             string      `json:"id"`
	ClientUsername string      `json:"client_username,omitempty"`
	ProfessionalID string      `json:"professional_id"`
	ServiceID      string      `json:"service_id,omitempty"`
	Description    string      `json:"description,omitempty"`
	Address        string      `json:"address,omitempty"`
	Price          float64     `json:"price,omitempty"`
	Status         OrderStatus `json:"status"`
	ScheduledFor   time.Time   `json:"scheduled_for,omitzero"`
	CreatedAt      time.Time   `json:"created_at,omitzero"`
	UpdatedAt      time.Time   `json:"updated_at,omitzero"`
}

// OrderInput carries the writable fields for creating a service order.
type OrderInput struct {
	ProfessionalID string    `json:"professional_id"`
	ServiceID      string    `json:"service_id,omitempty"`
	Description    string    `json:"description,omitempty"`
	Address        string    `json:"address,omitempty"`
	ScheduledFor   time.Time `json:"scheduled_for,omitzero"`
}

// Message is a single chat entry attached to a service order.
type Message struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Sender    string    `json:"sender,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// MessageInput carries the writable message fields.
type MessageInput struct {
	Content string `json:"content"`
}
