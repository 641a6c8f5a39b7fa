package client

import (
	"context"
	"net/http"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

// ListReviews fetches the reviews for a professional.
func (c *Client) ListReviews(ctx context.Context, professionalID string) ([]domain.Review, error) {
	var out []domain.Review
	err := c.DoJSON(ctx, "/reviews", Options{
		Params: Params{"professional_id": professionalID},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReview posts a new review.
func (c *Client) CreateReview(ctx context.Context, input domain.ReviewInput) (*domain.Review, error) {
	var out domain.Review
	err := c.DoJSON(ctx, "/reviews", Options{
		Method: http.MethodPost,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateReview edits an existing review owned by the caller.
func (c *Client) UpdateReview(ctx context.Context, id string, input domain.ReviewInput) (*domain.Review, error) {
	var out domain.Review
	err := c.DoJSON(ctx, "/reviews/"+id, Options{
		Method: http.MethodPut,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteReview removes a review owned by the caller.
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.DoJSON(ctx, "/reviews/"+id, Options{Method: http.MethodDelete}, nil)
}

// CheckReview asks whether the caller has already reviewed the given
// professional.
func (c *Client) CheckReview(ctx context.Context, professionalID string) (*domain.ReviewCheck, error) {
	var out domain.ReviewCheck
	err := c.DoJSON(ctx, "/reviews/check", Options{
		Params: Params{"professional_id": professionalID},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UserReview fetches the caller's own review of the given professional.
func (c *Client) UserReview(ctx context.Context, professionalID string) (*domain.Review, error) {
	var out domain.Review
	err := c.DoJSON(ctx, "/reviews/user-review", Options{
		Params: Params{"professional_id": professionalID},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReply posts a professional's reply to a review.
func (c *Client) CreateReply(ctx context.Context, input domain.ReplyInput) (*domain.ReviewReply, error) {
	var out domain.ReviewReply
	err := c.DoJSON(ctx, "/review-replies", Options{
		Method: http.MethodPost,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateReply edits an existing reply.
func (c *Client) UpdateReply(ctx context.Context, id string, input domain.ReplyInput) (*domain.ReviewReply, error) {
	var out domain.ReviewReply
	err := c.DoJSON(ctx, "/review-replies/"+id, Options{
		Method: http.MethodPut,
		Body:   input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteReply removes a reply.
func (c *Client) DeleteReply(ctx context.Context, id string) error {
	return c.DoJSON(ctx, "/review-replies/"+id, Options{Method: http.MethodDelete}, nil)
}

// RepliesByReview fetches all replies attached to a review.
func (c *Client) RepliesByReview(ctx context.Context, reviewID string) ([]domain.ReviewReply, error) {
	var out []domain.ReviewReply
	if err := c.DoJSON(ctx, "/review-replies/by-review/"+reviewID, Options{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckReply asks whether the given review already has a reply.
func (c *Client) CheckReply(ctx context.Context, reviewID string) (*domain.ReplyCheck, error) {
	var out domain.ReplyCheck
	if err := c.DoJSON(ctx, "/review-replies/check/"+reviewID, Options{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
