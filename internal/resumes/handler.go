package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/model"
)

// Handler wires HTTP routes to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.POST("/resumes", h.create)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to list resumes", "")
		return
	}
	if items == nil {
		items = []model.Resume{}
	}
	respond.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respond.Error(c, http.StatusNotFound, "Resume not found", "")
		return
	}

	resume, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch resume", "")
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", "")
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		var verr model.ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, verr.Message, verr.Field)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to create resume", "")
		return
	}
	respond.Created(c, resume)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respond.Error(c, http.StatusNotFound, "Resume not found", "")
		return
	}

	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", "")
		return
	}

	resume, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		var verr model.ValidationError
		switch {
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, verr.Message, verr.Field)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found", "")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to update resume", "")
		}
		return
	}
	respond.OK(c, resume)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		// A non-numeric id cannot name a record; deleting it is a no-op
		// success just like deleting a missing id.
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to delete resume", "")
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
