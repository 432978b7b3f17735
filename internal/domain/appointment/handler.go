package appointment

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
	api.GET("/appointments", h.ListAppointments)
	api.POST("/appointments", h.CreateAppointment)
	api.GET("/appointments/:id", h.GetAppointment)
	api.PATCH("/appointments/:id", h.UpdateAppointment)
	api.DELETE("/appointments/:id", h.DeleteAppointment)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	f := ListFilter{
		DoctorID:  c.QueryParam("doctorId"),
		PatientID: c.QueryParam("patientId"),
	}
	appointments, err := h.svc.ListAppointments(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	a, err := h.svc.GetAppointment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var a model.Appointment
	if err := c.Bind(&a); err != nil {
		return apperr.Wrap(apperr.Invalid, "Invalid request body", err)
	}
	created, err := h.svc.CreateAppointment(c.Request().Context(), &a)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return apperr.Wrap(apperr.Invalid, "Invalid request body", err)
	}
	updated, err := h.svc.UpdateAppointment(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	removed, err := h.svc.DeleteAppointment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, removed)
}
