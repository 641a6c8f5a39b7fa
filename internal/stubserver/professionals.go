package stubserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

func (s *Server) listProfessionals(c echo.Context) error {
	return c.JSON(http.StatusOK, s.data.listProfessionals(searchFromQuery(c)))
}

func (s *Server) searchProfessionals(c echo.Context) error {
	return c.JSON(http.StatusOK, s.data.listProfessionals(searchFromQuery(c)))
}

func searchFromQuery(c echo.Context) domain.ProfessionalSearch {
	q := domain.ProfessionalSearch{
		Query: c.QueryParam("q"),
		Trade: c.QueryParam("trade"),
		City:  c.QueryParam("city"),
	}
	if trades, ok := c.QueryParams()["trades"]; ok {
		q.Trades = trades
	}
	q.Page, _ = strconv.Atoi(c.QueryParam("page"))
	q.Size, _ = strconv.Atoi(c.QueryParam("size"))
	q.MinRating, _ = strconv.ParseFloat(c.QueryParam("min_rating"), 64)
	q.MaxRate, _ = strconv.ParseFloat(c.QueryParam("max_rate"), 64)
	return q
}

func (s *Server) getProfessional(c echo.Context) error {
	p, ok := s.data.getProfessional(c.Param("id"))
	if !ok {
		return domain.ErrProfessionalNotFound
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) getProfessionalByUser(c echo.Context) error {
	p, ok := s.data.professionalByUser(c.Param("userId"))
	if !ok {
		return domain.ErrProfessionalNotFound
	}
	return c.JSON(http.StatusOK, p)
}

type professionalRequest struct {
	Name       string  `json:"name" validate:"required"`
	Trade      string  `json:"trade" validate:"required"`
	Bio        string  `json:"bio"`
	City       string  `json:"city"`
	HourlyRate float64 `json:"hourly_rate" validate:"omitempty,gt=0"`
	Available  *bool   `json:"available"`
}

func (s *Server) createProfessional(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req professionalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, ok := s.data.findUser(username)
	if !ok {
		return domain.ErrUserNotFound
	}

	now := time.Now().UTC()
	p := &domain.Professional{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Username:   username,
		Name:       req.Name,
		Trade:      req.Trade,
		Bio:        req.Bio,
		City:       req.City,
		HourlyRate: req.HourlyRate,
		Available:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Available != nil {
		p.Available = *req.Available
	}
	s.data.putProfessional(p)

	// Creating a profile upgrades the account; the new role shows up
	// in the next issued token.
	s.data.updateUser(username, func(u *userRecord) {
		if !containsFold(u.Roles, domain.RoleProfessional) {
			u.Roles = append(u.Roles, domain.RoleProfessional)
		}
	})

	return c.JSON(http.StatusCreated, p)
}

func (s *Server) updateProfessional(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	existing, ok := s.data.getProfessional(c.Param("id"))
	if !ok {
		return domain.ErrProfessionalNotFound
	}
	if !strings.EqualFold(existing.Username, username) {
		return domain.ErrForbidden
	}

	var req professionalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Trade != "" {
		existing.Trade = req.Trade
	}
	if req.Bio != "" {
		existing.Bio = req.Bio
	}
	if req.City != "" {
		existing.City = req.City
	}
	if req.HourlyRate > 0 {
		existing.HourlyRate = req.HourlyRate
	}
	if req.Available != nil {
		existing.Available = *req.Available
	}
	existing.UpdatedAt = time.Now().UTC()
	s.data.putProfessional(existing)

	return c.JSON(http.StatusOK, existing)
}
