package stubserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

type reviewRequest struct {
	ProfessionalID string `json:"professional_id" validate:"required"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	Comment        string `json:"comment"`
}

func (s *Server) listReviews(c echo.Context) error {
	return c.JSON(http.StatusOK, s.data.reviewsFor(c.QueryParam("professional_id")))
}

func (s *Server) createReview(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, ok := s.data.getProfessional(req.ProfessionalID); !ok {
		return domain.ErrProfessionalNotFound
	}
	if _, exists := s.data.userReview(username, req.ProfessionalID); exists {
		return echo.NewHTTPError(http.StatusConflict, "professional already reviewed")
	}

	now := time.Now().UTC()
	r := &domain.Review{
		ID:             uuid.NewString(),
		ProfessionalID: req.ProfessionalID,
		Username:       username,
		Rating:         req.Rating,
		Comment:        req.Comment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.data.putReview(r)
	return c.JSON(http.StatusCreated, r)
}

func (s *Server) updateReview(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	existing, ok := s.data.getReview(c.Param("id"))
	if !ok {
		return domain.ErrReviewNotFound
	}
	if existing.Username != username {
		return domain.ErrForbidden
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	existing.Rating = req.Rating
	existing.Comment = req.Comment
	existing.UpdatedAt = time.Now().UTC()
	s.data.putReview(existing)
	return c.JSON(http.StatusOK, existing)
}

func (s *Server) deleteReview(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	existing, ok := s.data.getReview(c.Param("id"))
	if !ok {
		return domain.ErrReviewNotFound
	}
	if existing.Username != username {
		return domain.ErrForbidden
	}
	s.data.deleteReview(existing.ID)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) checkReview(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}
	check := domain.ReviewCheck{}
	if r, ok := s.data.userReview(username, c.QueryParam("professional_id")); ok {
		check.Reviewed = true
		check.ReviewID = r.ID
	}
	return c.JSON(http.StatusOK, check)
}

func (s *Server) userReview(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}
	r, ok := s.data.userReview(username, c.QueryParam("professional_id"))
	if !ok {
		return domain.ErrReviewNotFound
	}
	return c.JSON(http.StatusOK, r)
}

type replyRequest struct {
	ReviewID string `json:"review_id" validate:"required"`
	Comment  string `json:"comment" validate:"required"`
}

func (s *Server) createReply(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, ok := s.data.getReview(req.ReviewID); !ok {
		return domain.ErrReviewNotFound
	}
	if existing := s.data.repliesFor(req.ReviewID); len(existing) > 0 {
		return echo.NewHTTPError(http.StatusConflict, "review already replied")
	}

	now := time.Now().UTC()
	r := &domain.ReviewReply{
		ID:        uuid.NewString(),
		ReviewID:  req.ReviewID,
		Username:  username,
		Comment:   req.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.data.putReply(r)
	return c.JSON(http.StatusCreated, r)
}

func (s *Server) updateReply(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	existing, ok := s.data.getReply(c.Param("id"))
	if !ok {
		return domain.ErrReplyNotFound
	}
	if existing.Username != username {
		return domain.ErrForbidden
	}

	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Comment == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "comment is required")
	}

	existing.Comment = req.Comment
	existing.UpdatedAt = time.Now().UTC()
	s.data.putReply(existing)
	return c.JSON(http.StatusOK, existing)
}

func (s *Server) deleteReply(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	existing, ok := s.data.getReply(c.Param("id"))
	if !ok {
		return domain.ErrReplyNotFound
	}
	if existing.Username != username {
		return domain.ErrForbidden
	}
	s.data.deleteReply(existing.ID)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) repliesByReview(c echo.Context) error {
	return c.JSON(http.StatusOK, s.data.repliesFor(c.Param("id")))
}

func (s *Server) checkReply(c echo.Context) error {
	check := domain.ReplyCheck{}
	if replies := s.data.repliesFor(c.Param("id")); len(replies) > 0 {
		check.Replied = true
		check.ReplyID = replies[0].ID
	}
	return c.JSON(http.StatusOK, check)
}
