package patient

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/pkg/pagination"
)

// Handler provides HTTP handlers for the patient domain.
type Handler struct {
	svc    *Service
	record *RecordService
}

// NewHandler creates a new patient domain handler.
func NewHandler(svc *Service, record *RecordService) *Handler {
	return &Handler{svc: svc, record: record}
}

// RegisterRoutes registers all patient domain routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	admin := api.Group("", auth.RequireRole(auth.RoleAdmin))

	admin.GET("/patients", h.ListPatients)
	admin.POST("/patients", h.CreatePatient)
	admin.PUT("/patients/:id", h.UpdatePatient)
	admin.DELETE("/patients/:id", h.DeletePatient)

	// A patient may read their own record; admins may read any.
	api.GET("/patients/:id", h.GetPatient)

	admin.POST("/patients/:id/complaints", h.AddComplaint)
	admin.PUT("/patients/:id/complaints/:entryId", h.EditComplaint)
	admin.DELETE("/patients/:id/complaints/:entryId", h.DeleteComplaint)

	admin.POST("/patients/:id/history/:category", h.AddHistory)
	admin.PUT("/patients/:id/history/:category/:entryId", h.EditHistory)
	admin.DELETE("/patients/:id/history/:category/:entryId", h.DeleteHistory)
}

// httpError maps domain errors to HTTP status codes. Anything unrecognized
// is a 500.
func httpError(err error) error {
	var (
		nf       *NotFoundError
		badCat   *InvalidCategoryError
		badInput *InvalidInputError
		conflict *ConflictError
	)
	switch {
	case errors.As(err, &nf):
		return echo.NewHTTPError(http.StatusNotFound, nf.Error())
	case errors.As(err, &badCat):
		return echo.NewHTTPError(http.StatusBadRequest, badCat.Error())
	case errors.As(err, &badInput):
		return echo.NewHTTPError(http.StatusBadRequest, badInput.Error())
	case errors.As(err, &conflict):
		return echo.NewHTTPError(http.StatusConflict, conflict.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// -- Demographics --

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePatient(c.Request().Context(), &p); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	claims := auth.ClaimsFromContext(c.Request().Context())
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if claims.Role != auth.RoleAdmin && claims.PatientID != id.String() {
		return echo.NewHTTPError(http.StatusForbidden, "not your record")
	}
	p, err := h.svc.GetPatient(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.SearchPatients(c.Request().Context(), c.QueryParam("q"), pg.Limit, pg.Offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = id
	if err := h.svc.UpdatePatient(c.Request().Context(), &p); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeletePatient(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Presenting complaints --

func (h *Handler) AddComplaint(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in ComplaintInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	entry, err := h.record.AddComplaint(c.Request().Context(), id, in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) EditComplaint(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	entryID, err := pathID(c, "entryId")
	if err != nil {
		return err
	}
	var patch ComplaintPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	entry, err := h.record.EditComplaint(c.Request().Context(), id, entryID, patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) DeleteComplaint(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	entryID, err := pathID(c, "entryId")
	if err != nil {
		return err
	}
	if err := h.record.DeleteComplaint(c.Request().Context(), id, entryID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// -- History --

func (h *Handler) AddHistory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var details HistoryDetails
	if err := c.Bind(&details); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	entry, err := h.record.AddHistory(c.Request().Context(), id, c.Param("category"), details)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) EditHistory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	entryID, err := pathID(c, "entryId")
	if err != nil {
		return err
	}
	var details HistoryDetails
	if err := c.Bind(&details); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	entry, err := h.record.EditHistory(c.Request().Context(), id, c.Param("category"), entryID, details)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) DeleteHistory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	entryID, err := pathID(c, "entryId")
	if err != nil {
		return err
	}
	if err := h.record.DeleteHistory(c.Request().Context(), id, c.Param("category"), entryID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
