package in

import (
	"github.com/gin-gonic/gin"

	"mindmate/internal/modules/user/dto"
	userin "mindmate/internal/modules/user/port/in"
	"mindmate/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase userin.Usecase
}

func NewHTTPHandler(usecase userin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) Register(r gin.IRouter) {
	r.POST("/users", h.getOrCreate)
	r.GET("/users", h.getByEmail)
	r.POST("/auth/register", h.register)
	r.POST("/auth/login", h.login)
	r.GET("/users/:id", h.getByID)
	r.PATCH("/users/:id", h.update)
}

func (h *HTTPHandler) getOrCreate(c *gin.Context) {
	var input dto.GetOrCreateInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	out, err := h.usecase.GetOrCreate(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) register(c *gin.Context) {
	var input dto.RegisterInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	out, err := h.usecase.Register(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, out)
}

func (h *HTTPHandler) login(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if !httpx.BindJSON(c, &body) {
		return
	}
	out, err := h.usecase.Login(c.Request.Context(), body.Email)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) getByEmail(c *gin.Context) {
	out, err := h.usecase.GetByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) getByID(c *gin.Context) {
	out, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) update(c *gin.Context) {
	var input dto.UpdateInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	input.ID = c.Param("id")
	out, err := h.usecase.Update(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}
