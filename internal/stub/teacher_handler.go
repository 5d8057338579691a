package stub

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type TeacherHandler struct {
	store *Store
}

func NewTeacherHandler(store *Store) *TeacherHandler {
	return &TeacherHandler{store: store}
}

func (h *TeacherHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListTeachers())
}

func (h *TeacherHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	teacher, err := h.store.GetTeacher(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teacher)
}
