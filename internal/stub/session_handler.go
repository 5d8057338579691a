package stub

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/ports"
)

type SessionHandler struct {
	store *Store
}

func NewSessionHandler(store *Store) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListSessions())
}

func (h *SessionHandler) Detail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	session, err := h.store.GetSession(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Create(c echo.Context) error {
	var req ports.SessionInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session := h.store.CreateSession(req)
	SessionsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ports.SessionInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.store.UpdateSession(id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.store.DeleteSession(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (h *SessionHandler) Participate(c echo.Context) error {
	sessionID, userID, err := participationIDs(c)
	if err != nil {
		return err
	}

	if err := h.store.Participate(sessionID, userID); err != nil {
		ParticipationTotal.WithLabelValues("join", participationResult(err)).Inc()
		return err
	}
	ParticipationTotal.WithLabelValues("join", "success").Inc()
	return c.NoContent(http.StatusOK)
}

func (h *SessionHandler) Unparticipate(c echo.Context) error {
	sessionID, userID, err := participationIDs(c)
	if err != nil {
		return err
	}

	if err := h.store.Unparticipate(sessionID, userID); err != nil {
		ParticipationTotal.WithLabelValues("leave", participationResult(err)).Inc()
		return err
	}
	ParticipationTotal.WithLabelValues("leave", "success").Inc()
	return c.NoContent(http.StatusOK)
}

func participationIDs(c echo.Context) (sessionID, userID int64, err error) {
	if sessionID, err = pathID(c, "id"); err != nil {
		return 0, 0, err
	}
	if userID, err = pathID(c, "userId"); err != nil {
		return 0, 0, err
	}
	return sessionID, userID, nil
}

func participationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// pathID parses a numeric path parameter. Non-numeric values get a 400, the
// same as the real service's number parsing.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
