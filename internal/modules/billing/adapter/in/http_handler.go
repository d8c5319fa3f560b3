package in

import (
	"github.com/gin-gonic/gin"

	"mindmate/internal/modules/billing/dto"
	billingin "mindmate/internal/modules/billing/port/in"
	"mindmate/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase billingin.Usecase
}

func NewHTTPHandler(usecase billingin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) Register(r gin.IRouter) {
	r.POST("/payments", h.create)
	r.POST("/payments/confirm", h.confirm)
	r.GET("/payments/methods", h.methods)
	r.POST("/payments/simulate", h.simulate)
	r.GET("/payments/url", h.url)
}

func (h *HTTPHandler) create(c *gin.Context) {
	var input dto.CreatePaymentInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	out, err := h.usecase.CreatePayment(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, out)
}

func (h *HTTPHandler) confirm(c *gin.Context) {
	var input dto.ProcessInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	out, err := h.usecase.ProcessSuccess(c.Request.Context(), input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, out)
}

func (h *HTTPHandler) methods(c *gin.Context) {
	httpx.RespondOK(c, h.usecase.TestMethods())
}

func (h *HTTPHandler) simulate(c *gin.Context) {
	var input dto.SimulateInput
	if !httpx.BindJSON(c, &input) {
		return
	}
	httpx.RespondOK(c, h.usecase.Simulate(c.Request.Context(), input))
}

func (h *HTTPHandler) url(c *gin.Context) {
	httpx.RespondOK(c, gin.H{"url": h.usecase.PaymentURL(c.Query("paymentId"))})
}
