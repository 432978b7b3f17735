package patient

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
	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients/:id", h.GetPatient)
	api.PATCH("/patients/:id", h.UpdatePatient)
	api.GET("/patients/:id/medical-history", h.MedicalHistory)
}

func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p model.Patient
	if err := c.Bind(&p); err != nil {
		return apperr.Wrap(apperr.Invalid, "Invalid request body", err)
	}
	created, err := h.svc.CreatePatient(c.Request().Context(), &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return apperr.Wrap(apperr.Invalid, "Invalid request body", err)
	}
	updated, err := h.svc.UpdatePatient(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) MedicalHistory(c echo.Context) error {
	hist, err := h.svc.MedicalHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hist)
}
