package doctor

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthplus/healthplus/internal/model"
	"github.com/healthplus/healthplus/internal/platform/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors", h.ListDoctors)
	api.POST("/doctors", h.CreateDoctor)
	api.GET("/doctors/:id", h.GetDoctor)
	api.PATCH("/doctors/:id", h.UpdateDoctor)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	doctors, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	d, err := h.svc.GetDoctor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) CreateDoctor(c echo.Context) error {
	var d model.Doctor
	if err := c.Bind(&d); err != nil {
		return apperr.Wrap(apperr.Invalid, "Invalid request body", err)
	}
	created, err := h.svc.CreateDoctor(c.Request().Context(), &d)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateDoctor(c echo.Context) error {
	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return apperr.Wrap(apperr.Invalid, "Invalid request body", err)
	}
	updated, err := h.svc.UpdateDoctor(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
