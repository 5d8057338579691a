package stub

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/sessions-client/internal/core/domain"
)

type UserHandler struct {
	store *Store
}

func NewUserHandler(store *Store) *UserHandler {
	return &UserHandler{store: store}
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	acc, err := h.store.GetAccount(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, acc.User)
}

// Delete removes an account. Viewers may only delete themselves.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	viewer, err := viewerID(c)
	if err != nil {
		return err
	}
	if viewer != id {
		return fmt.Errorf("%w: cannot delete another account", domain.ErrForbidden)
	}

	if err := h.store.DeleteAccount(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
