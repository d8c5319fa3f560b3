package in

import (
	"github.com/gin-gonic/gin"

	"mindmate/internal/modules/stats/dto"
	statsin "mindmate/internal/modules/stats/port/in"
	"mindmate/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase statsin.Usecase
}

func NewHTTPHandler(usecase statsin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) Register(r gin.IRouter) {
	r.GET("/users/:id/stats", h.get)
	r.POST("/users/:id/stats/refresh", h.refresh)
	r.GET("/users/:id/activity", h.activity)
}

func (h *HTTPHandler) get(c *gin.Context) {
	out, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) refresh(c *gin.Context) {
	out, err := h.usecase.Refresh(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) activity(c *gin.Context) {
	limit, ok := httpx.QueryLimit(c)
	if !ok {
		return
	}
	out, err := h.usecase.RecentActivity(c.Request.Context(), dto.ActivityInput{UserID: c.Param("id"), Limit: limit})
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}
