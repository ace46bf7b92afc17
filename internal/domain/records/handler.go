package records

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clindash/clindash/internal/platform/auth"
	"github.com/clindash/clindash/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "physician", "nurse", "lab_tech", "auditor"))
	readGroup.GET("/lab-results", h.ListLabRecords)
	readGroup.GET("/lab-results/:id", h.GetLabRecord)
	readGroup.GET("/clinical-records", h.ListClinicalRecords)
	readGroup.GET("/clinical-records/:id", h.GetClinicalRecord)

	writeGroup := api.Group("", auth.RequireRole("admin", "lab_tech"))
	writeGroup.POST("/lab-results", h.CreateLabRecord)
	writeGroup.POST("/clinical-records", h.CreateClinicalRecord)
}

func (h *Handler) CreateLabRecord(c echo.Context) error {
	var lr LabRecord
	if err := c.Bind(&lr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateLabRecord(c.Request().Context(), &lr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, lr)
}

func (h *Handler) GetLabRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	lr, err := h.svc.GetLabRecord(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "lab result not found")
	}
	return c.JSON(http.StatusOK, lr)
}

func (h *Handler) ListLabRecords(c echo.Context) error {
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListLabRecords(c.Request().Context(), c.QueryParam("site"), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) CreateClinicalRecord(c echo.Context) error {
	var cr ClinicalRecord
	if err := c.Bind(&cr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateClinicalRecord(c.Request().Context(), &cr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, cr)
}

func (h *Handler) GetClinicalRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	cr, err := h.svc.GetClinicalRecord(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "clinical record not found")
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *Handler) ListClinicalRecords(c echo.Context) error {
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListClinicalRecords(c.Request().Context(), c.QueryParam("site"), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}
