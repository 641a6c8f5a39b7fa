package client

import (
	"context"
	"net/http"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

// CreateOrder opens a hiring engagement with a professional.
func (c *Client) CreateOrder(ctx context.Context, input domain.OrderInput) (*domain.ServiceOrder, error) {
	var out domain.ServiceOrder
	err := c.DoJSON(ctx, "/service-orders", Options{
		Method: http.MethodPost,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrder fetches one service order by identifier.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	var out domain.ServiceOrder
	if err := c.DoJSON(ctx, "/service-orders/"+id, Options{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyOrders fetches the caller's orders as a client.
func (c *Client) MyOrders(ctx context.Context) ([]domain.ServiceOrder, error) {
	var out []domain.ServiceOrder
	if err := c.DoJSON(ctx, "/service-orders/me", Options{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProfessionalOrders fetches the orders assigned to a professional.
func (c *Client) ProfessionalOrders(ctx context.Context, professionalID string) ([]domain.ServiceOrder, error) {
	var out []domain.ServiceOrder
	if err := c.DoJSON(ctx, "/service-orders/professional/"+professionalID, Options{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfirmOrder moves a pending order to confirmed.
func (c *Client) ConfirmOrder(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	return c.orderAction(ctx, id, "confirm")
}

// CompleteOrder moves a confirmed order to completed.
func (c *Client) CompleteOrder(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	return c.orderAction(ctx, id, "complete")
}

// CancelOrder cancels a pending or confirmed order.
func (c *Client) CancelOrder(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	return c.orderAction(ctx, id, "cancel")
}

func (c *Client) orderAction(ctx context.Context, id, action string) (*domain.ServiceOrder, error) {
	var out domain.ServiceOrder
	err := c.DoJSON(ctx, "/service-orders/"+id+"/"+action, Options{
		Method: http.MethodPost,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages fetches the chat history of an order.
func (c *Client) ListMessages(ctx context.Context, orderID string) ([]domain.Message, error) {
	var out []domain.Message
	if err := c.DoJSON(ctx, "/service-orders/"+orderID+"/messages", Options{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage appends a chat message to an order.
func (c *Client) SendMessage(ctx context.Context, orderID string, input domain.MessageInput) (*domain.Message, error) {
	var out domain.Message
	err := c.DoJSON(ctx, "/service-orders/"+orderID+"/messages", Options{
		Method: http.MethodPost,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMessage removes a message the caller sent.
func (c *Client) DeleteMessage(ctx context.Context, orderID, messageID string) error {
	return c.DoJSON(ctx, "/service-orders/"+orderID+"/messages", Options{
		Method: http.MethodDelete,
		Params: Params{"message_id": messageID},
	}, nil)
}

// CreatePayment delegates a payment for an order to the external
// provider and returns the provider's checkout record.
func (c *Client) CreatePayment(ctx context.Context, input domain.PaymentInput) (*domain.Payment, error) {
	var out domain.Payment
	err := c.DoJSON(ctx, "/payments", Options{
		Method: http.MethodPost,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
