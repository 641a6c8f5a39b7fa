package stubserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

type orderRequest struct {
	ProfessionalID string    `json:"professional_id" validate:"required"`
	ServiceID      string    `json:"service_id"`
	Description    string    `json:"description"`
	Address        string    `json:"address"`
	ScheduledFor   time.Time `json:"scheduled_for"`
}

func (s *Server) createOrder(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pro, ok := s.data.getProfessional(req.ProfessionalID)
	if !ok {
		return domain.ErrProfessionalNotFound
	}

	price := pro.HourlyRate
	if req.ServiceID != "" {
		svc, ok := s.data.getService(req.ServiceID)
		if !ok {
			return domain.ErrServiceNotFound
		}
		price = svc.Price
	}

	now := time.Now().UTC()
	o := &domain.ServiceOrder{
		ID:             uuid.NewString(),
		ClientUsername: username,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Description:    req.Description,
		Address:        req.Address,
		Price:          price,
		Status:         domain.OrderPending,
		ScheduledFor:   req.ScheduledFor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.data.putOrder(o)
	return c.JSON(http.StatusCreated, o)
}

func (s *Server) getOrder(c echo.Context) error {
	o, ok := s.data.getOrder(c.Param("id"))
	if !ok {
		return domain.ErrOrderNotFound
	}
	return c.JSON(http.StatusOK, o)
}

func (s *Server) myOrders(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.data.ordersByClient(username))
}

func (s *Server) professionalOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, s.data.ordersByProfessional(c.Param("id")))
}

func (s *Server) confirmOrder(c echo.Context) error {
	return s.transitionOrder(c, domain.OrderConfirmed)
}

func (s *Server) completeOrder(c echo.Context) error {
	return s.transitionOrder(c, domain.OrderCompleted)
}

func (s *Server) cancelOrder(c echo.Context) error {
	return s.transitionOrder(c, domain.OrderCancelled)
}

func (s *Server) transitionOrder(c echo.Context, next domain.OrderStatus) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}
	o, err := s.data.updateOrder(c.Param("id"), func(o *domain.ServiceOrder) error {
		if !o.Status.CanTransitionTo(next) {
			return domain.ErrInvalidTransition
		}
		o.Status = next
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

type messageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (s *Server) listMessages(c echo.Context) error {
	if _, ok := s.data.getOrder(c.Param("id")); !ok {
		return domain.ErrOrderNotFound
	}
	return c.JSON(http.StatusOK, s.data.messagesFor(c.Param("id")))
}

func (s *Server) sendMessage(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}
	if _, ok := s.data.getOrder(c.Param("id")); !ok {
		return domain.ErrOrderNotFound
	}

	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m := domain.Message{
		ID:        uuid.NewString(),
		OrderID:   c.Param("id"),
		Sender:    username,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	s.data.appendMessage(c.Param("id"), m)
	return c.JSON(http.StatusCreated, m)
}

func (s *Server) deleteMessage(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}
	messageID := c.QueryParam("message_id")
	if messageID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message_id is required")
	}
	if err := s.data.deleteMessage(c.Param("id"), messageID, username); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type paymentRequest struct {
	OrderID  string  `json:"order_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"`
}

// createPayment fakes the external provider delegation: it records the
// payment and hands back a checkout reference.
func (s *Server) createPayment(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, ok := s.data.getOrder(req.OrderID); !ok {
		return domain.ErrOrderNotFound
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	ref := uuid.NewString()
	p := &domain.Payment{
		ID:          uuid.NewString(),
		OrderID:     req.OrderID,
		Amount:      req.Amount,
		Currency:    currency,
		Status:      "PENDING",
		ProviderRef: ref,
		CheckoutURL: "https://pay.example.com/checkout/" + ref,
		CreatedAt:   time.Now().UTC(),
	}
	s.data.putPayment(p)
	return c.JSON(http.StatusCreated, p)
}
