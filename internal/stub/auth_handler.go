package stub

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/sessions-client/internal/core/ports"
)

type AuthHandler struct {
	store  *Store
	tokens *TokenManager
}

func NewAuthHandler(store *Store, tokens *TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// jwtResponse mirrors the login payload of the real service.
type jwtResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates an account and returns a bearer token plus profile.
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	acc, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		LoginsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	token, err := h.tokens.Issue(acc)
	if err != nil {
		return err
	}

	LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, jwtResponse{
		Token:     token,
		Type:      "Bearer",
		ID:        acc.ID,
		Username:  acc.Email,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
		Admin:     acc.Admin,
	})
}

// Register creates a new non-admin account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.store.CreateAccount(req.Email, req.FirstName, req.LastName, req.Password, false); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User registered successfully!"})
}
