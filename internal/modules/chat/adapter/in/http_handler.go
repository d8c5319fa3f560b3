package in

import (
	"github.com/gin-gonic/gin"

	"mindmate/internal/modules/chat/dto"
	chatin "mindmate/internal/modules/chat/port/in"
	"mindmate/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase chatin.Usecase
}

func NewHTTPHandler(usecase chatin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) Register(r gin.IRouter) {
	r.POST("/chat/sessions", h.createSession)
	r.POST("/chat/open", h.open)
	r.POST("/chat/sessions/:id/end", h.endSession)
	r.GET("/chat/sessions/:id/messages", h.messages)
	r.POST("/chat/sessions/:id/messages", h.addMessage)
	r.POST("/chat/sessions/:id/reply", h.reply)
	r.POST("/chat/sessions/:id/export", h.export)
	r.GET("/users/:id/chat-sessions", h.userSessions)
}

func (h *HTTPHandler) createSession(c *gin.Context) {
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

func (h *HTTPHandler) open(c *gin.Context) {
	var input dto.CreateSessionInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	out, err := h.usecase.Open(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, out)
}

func (h *HTTPHandler) endSession(c *gin.Context) {
	out, err := h.usecase.EndSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) messages(c *gin.Context) {
	out, err := h.usecase.GetMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) addMessage(c *gin.Context) {
	var input dto.AddMessageInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	input.SessionID = c.Param("id")
	out, err := h.usecase.AddMessage(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, out)
}

func (h *HTTPHandler) reply(c *gin.Context) {
	var input dto.ReplyInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	input.SessionID = c.Param("id")
	out, err := h.usecase.Reply(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) export(c *gin.Context) {
	out, err := h.usecase.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) userSessions(c *gin.Context) {
	limit, ok := httpx.QueryLimit(c)
	if !ok {
		return
	}
	out, err := h.usecase.GetUserSessions(c.Request.Context(), dto.ListSessionsInput{UserID: c.Param("id"), Limit: limit})
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}
