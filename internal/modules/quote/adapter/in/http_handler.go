package in

import (
	"github.com/gin-gonic/gin"

	"mindmate/internal/modules/quote/dto"
	quotein "mindmate/internal/modules/quote/port/in"
	"mindmate/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase quotein.Usecase
}

func NewHTTPHandler(usecase quotein.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) Register(r gin.IRouter) {
	r.GET("/quotes", h.all)
	r.POST("/quotes/:id/views", h.view)
	r.POST("/quotes/:id/like", h.toggleLike)
	r.GET("/users/:id/quote-views", h.userViews)
	r.GET("/users/:id/liked-quotes", h.userLiked)
	r.GET("/users/:id/quote-stats", h.userStats)
}

func (h *HTTPHandler) all(c *gin.Context) {
	out, err := h.usecase.GetAll(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) view(c *gin.Context) {
	var input dto.ViewInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	input.QuoteID = c.Param("id")
	out, err := h.usecase.View(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, out)
}

func (h *HTTPHandler) toggleLike(c *gin.Context) {
	var input dto.ToggleLikeInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	input.QuoteID = c.Param("id")
	out, err := h.usecase.ToggleLike(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) userViews(c *gin.Context) {
	limit, ok := httpx.QueryLimit(c)
	if !ok {
		return
	}
	out, err := h.usecase.GetUserViews(c.Request.Context(), dto.ListInput{UserID: c.Param("id"), Limit: limit})
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) userLiked(c *gin.Context) {
	limit, ok := httpx.QueryLimit(c)
	if !ok {
		return
	}
	out, err := h.usecase.GetUserLikedQuotes(c.Request.Context(), dto.ListInput{UserID: c.Param("id"), Limit: limit})
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) userStats(c *gin.Context) {
	out, err := h.usecase.GetUserQuoteStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}
