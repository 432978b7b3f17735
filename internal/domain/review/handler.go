package review

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
	api.GET("/reviews", h.ListReviews)
	api.POST("/reviews", h.CreateReview)
	api.GET("/reviews/:id", h.GetReview)
	api.PATCH("/reviews/:id", h.UpdateReview)
	api.DELETE("/reviews/:id", h.DeleteReview)
}

func (h *Handler) ListReviews(c echo.Context) error {
	f := ListFilter{
		DoctorID:      c.QueryParam("doctorId"),
		PatientID:     c.QueryParam("patientId"),
		AppointmentID: c.QueryParam("appointmentId"),
	}
	reviews, err := h.svc.ListReviews(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *Handler) GetReview(c echo.Context) error {
	r, err := h.svc.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) CreateReview(c echo.Context) error {
	var r model.Review
	if err := c.Bind(&r); err != nil {
		return apperr.Wrap(apperr.Invalid, "Invalid request body", err)
	}
	created, err := h.svc.CreateReview(c.Request().Context(), &r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateReview(c echo.Context) error {
	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return apperr.Wrap(apperr.Invalid, "Invalid request body", err)
	}
	updated, err := h.svc.UpdateReview(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteReview(c echo.Context) error {
	if err := h.svc.DeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
