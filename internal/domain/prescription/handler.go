package prescription

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
	api.GET("/prescriptions", h.ListPrescriptions)
	api.POST("/prescriptions", h.CreatePrescription)
	api.GET("/prescriptions/:id", h.GetPrescription)
	api.PATCH("/prescriptions/:id", h.UpdatePrescription)
	api.DELETE("/prescriptions/:id", h.DeletePrescription)
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	f := ListFilter{
		DoctorID:      c.QueryParam("doctorId"),
		PatientID:     c.QueryParam("patientId"),
		AppointmentID: c.QueryParam("appointmentId"),
	}
	prescriptions, err := h.svc.ListPrescriptions(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prescriptions)
}

func (h *Handler) GetPrescription(c echo.Context) error {
	p, err := h.svc.GetPrescription(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePrescription(c echo.Context) error {
	var p model.Prescription
	if err := c.Bind(&p); err != nil {
		return apperr.Wrap(apperr.Invalid, "Invalid request body", err)
	}
	created, err := h.svc.CreatePrescription(c.Request().Context(), &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdatePrescription(c echo.Context) error {
	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return apperr.Wrap(apperr.Invalid, "Invalid request body", err)
	}
	updated, err := h.svc.UpdatePrescription(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeletePrescription(c echo.Context) error {
	removed, err := h.svc.DeletePrescription(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, removed)
}
