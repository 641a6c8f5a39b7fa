package stubserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

func (s *Server) professionalServices(c echo.Context) error {
	if _, ok := s.data.getProfessional(c.Param("id")); !ok {
		return domain.ErrProfessionalNotFound
	}
	return c.JSON(http.StatusOK, s.data.servicesByProfessional(c.Param("id")))
}

func (s *Server) listTrades(c echo.Context) error {
	return c.JSON(http.StatusOK, s.data.listTrades())
}

func (s *Server) servicesByTrade(c echo.Context) error {
	trade := c.QueryParam("trade")
	if trade == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "trade is required")
	}
	return c.JSON(http.StatusOK, s.data.servicesByTrade(trade))
}

type pricedServiceRequest struct {
	Trade       string  `json:"trade"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	DurationMin int     `json:"duration_min"`
}

// callerProfessional resolves the professional profile owned by the
// authenticated user. Priced-service routes sit behind the
// PROFESSIONAL role guard, but the profile may still be missing.
func (s *Server) callerProfessional(c echo.Context) (*domain.Professional, error) {
	username, err := ctxUsername(c)
	if err != nil {
		return nil, err
	}
	pro, ok := s.data.professionalByUser(username)
	if !ok {
		return nil, domain.ErrProfessionalNotFound
	}
	return pro, nil
}

func (s *Server) createPricedService(c echo.Context) error {
	pro, err := s.callerProfessional(c)
	if err != nil {
		return err
	}

	var req pricedServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trade := req.Trade
	if trade == "" {
		trade = pro.Trade
	}
	now := time.Now().UTC()
	ps := &domain.PricedService{
		ID:             uuid.NewString(),
		ProfessionalID: pro.ID,
		Trade:          trade,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		DurationMin:    req.DurationMin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.data.putService(ps)
	return c.JSON(http.StatusCreated, ps)
}

func (s *Server) updatePricedService(c echo.Context) error {
	pro, err := s.callerProfessional(c)
	if err != nil {
		return err
	}

	existing, ok := s.data.getService(c.Param("id"))
	if !ok {
		return domain.ErrServiceNotFound
	}
	if existing.ProfessionalID != pro.ID {
		return domain.ErrForbidden
	}

	var req pricedServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Trade != "" {
		existing.Trade = req.Trade
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.Price > 0 {
		existing.Price = req.Price
	}
	if req.DurationMin > 0 {
		existing.DurationMin = req.DurationMin
	}
	existing.UpdatedAt = time.Now().UTC()
	s.data.putService(existing)
	return c.JSON(http.StatusOK, existing)
}

func (s *Server) deletePricedService(c echo.Context) error {
	pro, err := s.callerProfessional(c)
	if err != nil {
		return err
	}

	existing, ok := s.data.getService(c.Param("id"))
	if !ok {
		return domain.ErrServiceNotFound
	}
	if existing.ProfessionalID != pro.ID {
		return domain.ErrForbidden
	}
	s.data.deleteService(existing.ID)
	return c.NoContent(http.StatusNoContent)
}
