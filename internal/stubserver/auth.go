package stubserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

type registerRequest struct {
	Username string   `json:"username" validate:"required,min=3"`
	Password string   `json:"password" validate:"required,min=6"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Roles    []string `json:"roles"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authResponse is the minimum contract the SDK relies on: token and
// username always present together, roles possibly empty.
type authResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	roles := req.Roles
	if roles == nil {
		roles = []string{}
	}
	now := time.Now().UTC()
	user := &userRecord{
		Username:     req.Username,
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if !s.data.createUser(user) {
		return domain.ErrUserExists
	}

	token, err := issueToken(s.jwtSecret, user.Username, user.Roles)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{
		Token:    token,
		Username: user.Username,
		Roles:    user.Roles,
	})
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, ok := s.data.findUser(req.Username)
	if !ok {
		return domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return domain.ErrInvalidCredentials
	}

	token, err := issueToken(s.jwtSecret, user.Username, user.Roles)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{
		Token:    token,
		Username: user.Username,
		Roles:    user.Roles,
	})
}

func (s *Server) me(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}
	user, ok := s.data.findUser(username)
	if !ok {
		return domain.ErrUserNotFound
	}
	return c.JSON(http.StatusOK, user.profile())
}

func (s *Server) updateMe(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req domain.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, ok := s.data.updateUser(username, func(u *userRecord) {
		if req.Name != "" {
			u.Name = req.Name
		}
		if req.Email != "" {
			u.Email = req.Email
		}
		if req.Phone != "" {
			u.Phone = req.Phone
		}
		if req.City != "" {
			u.City = req.City
		}
		if req.Password != "" {
			if hash, hashErr := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost); hashErr == nil {
				u.PasswordHash = string(hash)
			}
		}
	})
	if !ok {
		return domain.ErrUserNotFound
	}
	return c.JSON(http.StatusOK, user.profile())
}
