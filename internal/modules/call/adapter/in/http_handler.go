package in

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"mindmate/internal/modules/call/dto"
	callin "mindmate/internal/modules/call/port/in"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/httpx"
)

const maxAudioBytes = 25 << 20

type HTTPHandler struct {
	usecase callin.Usecase
}

func NewHTTPHandler(usecase callin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) Register(r gin.IRouter) {
	r.POST("/calls", h.create)
	r.POST("/calls/:id/end", h.end)
	r.POST("/calls/:id/converse", h.converse)
	r.GET("/users/:id/calls", h.userCalls)
}

func (h *HTTPHandler) create(c *gin.Context) {
	var input dto.CreateInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	out, err := h.usecase.Create(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, out)
}

func (h *HTTPHandler) end(c *gin.Context) {
	var input dto.EndInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	input.CallID = c.Param("id")
	out, err := h.usecase.End(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

// converse takes a multipart form: "audio" holds the recording and the
// optional "history" field a JSON array of prior turns.
func (h *HTTPHandler) converse(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		httpx.RespondError(c, errors.Join(apperrors.ErrInvalidInput, err))
		return
	}
	defer file.Close()
	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	input := dto.ConverseInput{CallID: c.Param("id"), Audio: audio, Filename: header.Filename}
	if raw := c.Request.FormValue("history"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.History); err != nil {
			httpx.RespondError(c, errors.Join(apperrors.ErrInvalidInput, err))
			return
		}
	}
	out, err := h.usecase.Converse(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) userCalls(c *gin.Context) {
	limit, ok := httpx.QueryLimit(c)
	if !ok {
		return
	}
	out, err := h.usecase.GetUserCalls(c.Request.Context(), dto.ListInput{UserID: c.Param("id"), Limit: limit})
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}
