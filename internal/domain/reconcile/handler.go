package reconcile

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clindash/clindash/internal/domain/records"
	"github.com/clindash/clindash/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "physician", "nurse", "lab_tech", "auditor"))
	readGroup.GET("/reconciliation", h.GetReconciliation)

	exportGroup := api.Group("", auth.RequireRole("admin", "auditor"))
	exportGroup.GET("/reconciliation/export", h.ExportReconciliation)
}

// viewResponse is the dashboard payload: one page of entries plus the
// aggregates and warnings computed over the whole run.
type viewResponse struct {
	Entries       []ComparisonEntry `json:"entries"`
	Aggregate     Aggregate         `json:"aggregate"`
	Warnings      []Warning         `json:"warnings"`
	TotalFiltered int               `json:"total_filtered"`
}

func (h *Handler) GetReconciliation(c echo.Context) error {
	req, err := requestFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var params ViewParams
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.Run(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	h.logWarnings(req, result.Warnings)

	view := View(result.Entries, params)
	return c.JSON(http.StatusOK, viewResponse{
		Entries:       view.Items,
		Aggregate:     result.Aggregate,
		Warnings:      result.Warnings,
		TotalFiltered: view.TotalFiltered,
	})
}

func (h *Handler) ExportReconciliation(c echo.Context) error {
	req, err := requestFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.Run(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	h.logWarnings(req, result.Warnings)

	filename := fmt.Sprintf("reconciliation_%s_%s_%s.csv",
		req.SiteCode, req.Start.Format("20060102"), req.End.Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().WriteHeader(http.StatusOK)
	return WriteCSV(c.Response(), result.Entries)
}

func requestFromContext(c echo.Context) (Request, error) {
	site := c.QueryParam("site")
	if site == "" {
		return Request{}, fmt.Errorf("site is required")
	}
	period, err := records.ParseRange(c.QueryParam("start"), c.QueryParam("end"), c.QueryParam("quarter"))
	if err != nil {
		return Request{}, err
	}
	return Request{SiteCode: site, Start: period.Start, End: period.End}, nil
}

func (h *Handler) logWarnings(req Request, warnings []Warning) {
	for _, w := range warnings {
		h.logger.Warn().
			Str("site", req.SiteCode).
			Str("kind", w.Kind).
			Int("count", w.Count).
			Msg("records dropped during reconciliation")
	}
}
