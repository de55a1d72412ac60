package post

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/pkg/pagination"
)

// Handler provides HTTP handlers for posts.
type Handler struct {
	svc *Service
}

// NewHandler creates a new post handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers post routes. Reads are public; writes are
// admin-only.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/posts", h.ListPosts)
	api.GET("/posts/:id", h.GetPost)

	admin := api.Group("", auth.RequireRole(auth.RoleAdmin))
	admin.POST("/posts", h.CreatePost)
	admin.PUT("/posts/:id", h.UpdatePost)
	admin.DELETE("/posts/:id", h.DeletePost)
}

func (h *Handler) CreatePost(c echo.Context) error {
	var p Post
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if claims := auth.ClaimsFromContext(c.Request().Context()); claims != nil && p.Author == "" {
		p.Author = claims.Subject
	}
	if err := h.svc.CreatePost(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetPost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.GetPost(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}
	if !p.Published {
		claims := auth.ClaimsFromContext(c.Request().Context())
		if claims == nil || claims.Role != auth.RoleAdmin {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPosts(c echo.Context) error {
	pg := pagination.FromContext(c)

	// Drafts are visible to admins only.
	publishedOnly := true
	if claims := auth.ClaimsFromContext(c.Request().Context()); claims != nil && claims.Role == auth.RoleAdmin {
		publishedOnly = false
	}

	items, total, err := h.svc.ListPosts(c.Request().Context(), publishedOnly, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdatePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var p Post
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = id
	if err := h.svc.UpdatePost(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeletePost(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
