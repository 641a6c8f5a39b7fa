package client

import (
	"context"
	"net/http"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

// ListProfessionals fetches the paginated professional directory.
func (c *Client) ListProfessionals(ctx context.Context, page, size int) ([]domain.Professional, error) {
	var out []domain.Professional
	err := c.DoJSON(ctx, "/professionals", Options{
		Params: Params{"page": page, "size": size},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SearchProfessionals runs the advanced search endpoint. Unset text
// filters are left out of the query string; page and size always go.
func (c *Client) SearchProfessionals(ctx context.Context, search domain.ProfessionalSearch) ([]domain.Professional, error) {
	params := Params{
		"q":     search.Query,
		"trade": search.Trade,
		"city":  search.City,
		"page":  search.Page,
		"size":  search.Size,
	}
	if len(search.Trades) > 0 {
		params["trades"] = search.Trades
	}
	if search.MinRating > 0 {
		params["min_rating"] = search.MinRating
	}
	if search.MaxRate > 0 {
		params["max_rate"] = search.MaxRate
	}

	var out []domain.Professional
	err := c.DoJSON(ctx, "/professionals/search/advanced", Options{Params: params}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetProfessional fetches one professional by its identifier.
func (c *Client) GetProfessional(ctx context.Context, id string) (*domain.Professional, error) {
	var out domain.Professional
	if err := c.DoJSON(ctx, "/professionals/"+id, Options{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfessionalByUser fetches the professional profile owned by the
// given user account.
func (c *Client) GetProfessionalByUser(ctx context.Context, userID string) (*domain.Professional, error) {
	var out domain.Professional
	if err := c.DoJSON(ctx, "/professionals/by-user/"+userID, Options{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProfessional registers the caller as a professional.
func (c *Client) CreateProfessional(ctx context.Context, input domain.ProfessionalInput) (*domain.Professional, error) {
	var out domain.Professional
	err := c.DoJSON(ctx, "/professionals", Options{
		Method: http.MethodPost,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfessional updates a professional profile.
func (c *Client) UpdateProfessional(ctx context.Context, id string, input domain.ProfessionalInput) (*domain.Professional, error) {
	var out domain.Professional
	err := c.DoJSON(ctx, "/professionals/"+id, Options{
		Method: http.MethodPut,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
