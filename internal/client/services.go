package client

import (
	"context"
	"net/http"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

// ProfessionalServices fetches a professional's priced offerings.
func (c *Client) ProfessionalServices(ctx context.Context, professionalID string) ([]domain.PricedService, error) {
	var out []domain.PricedService
	if err := c.DoJSON(ctx, "/professionals/"+professionalID+"/services", Options{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTrades fetches the profession categories.
func (c *Client) ListTrades(ctx context.Context) ([]domain.Trade, error) {
	var out []domain.Trade
	if err := c.DoJSON(ctx, "/trades", Options{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ServicesByTrade fetches the catalogue of offerings under one trade.
func (c *Client) ServicesByTrade(ctx context.Context, trade string) ([]domain.PricedService, error) {
	var out []domain.PricedService
	err := c.DoJSON(ctx, "/services-by-trade", Options{
		Params: Params{"trade": trade},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePricedService adds an offering to the caller's catalogue.
func (c *Client) CreatePricedService(ctx context.Context, input domain.PricedServiceInput) (*domain.PricedService, error) {
	var out domain.PricedService
	err := c.DoJSON(ctx, "/priced-services", Options{
		Method: http.MethodPost,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePricedService edits an offering.
func (c *Client) UpdatePricedService(ctx context.Context, id string, input domain.PricedServiceInput) (*domain.PricedService, error) {
	var out domain.PricedService
	err := c.DoJSON(ctx, "/priced-services/"+id, Options{
		Method: http.MethodPut,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePricedService removes an offering.
func (c *Client) DeletePricedService(ctx context.Context, id string) error {
	return c.DoJSON(ctx, "/priced-services/"+id, Options{Method: http.MethodDelete}, nil)
}
