package in

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindmate/internal/modules/meditation/dto"
	meditationin "mindmate/internal/modules/meditation/port/in"
	"mindmate/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase meditationin.Usecase
}

func NewHTTPHandler(usecase meditationin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) Register(r gin.IRouter) {
	r.GET("/meditations/catalog", h.catalog)
	r.POST("/meditations", h.create)
	r.GET("/meditations/active", h.active)
	r.POST("/meditations/active", h.start)
	r.POST("/meditations/active/complete", h.complete)
	r.DELETE("/meditations/active", h.abandon)
	r.GET("/users/:id/meditations", h.userSessions)
	r.GET("/users/:id/meditations/stats", h.userStats)
}

func (h *HTTPHandler) catalog(c *gin.Context) {
	httpx.RespondOK(c, h.usecase.Catalog(c.Request.Context()))
}

func (h *HTTPHandler) create(c *gin.Context) {
	var input dto.CreateSessionInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	out, err := h.usecase.CreateSession(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, out)
}

func (h *HTTPHandler) active(c *gin.Context) {
	out, err := h.usecase.GetActive(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) start(c *gin.Context) {
	var input dto.StartInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	out, err := h.usecase.Start(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, out)
}

func (h *HTTPHandler) complete(c *gin.Context) {
	var input dto.CompleteInput
	if c.Request.ContentLength != 0 && !httpx.BindJSON(c, &input) {
		return
	}
	out, err := h.usecase.Complete(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) abandon(c *gin.Context) {
	if err := h.usecase.Abandon(c.Request.Context()); err != nil {
		httpx.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) userSessions(c *gin.Context) {
	limit, ok := httpx.QueryLimit(c)
	if !ok {
		return
	}
	out, err := h.usecase.GetUserSessions(c.Request.Context(), dto.ListInput{UserID: c.Param("id"), Limit: limit})
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) userStats(c *gin.Context) {
	out, err := h.usecase.GetUserStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}
