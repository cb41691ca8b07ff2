package handler

import (
	"net/http"

	"github.com/dayeon/seoulite/internal/api/middleware"
	"github.com/dayeon/seoulite/internal/api/request"
	"github.com/dayeon/seoulite/internal/api/response"
	"github.com/dayeon/seoulite/internal/core"
	"github.com/dayeon/seoulite/internal/payment"
)

type Tip struct {
	tipSvc  *core.TipService
	gateway *payment.Client
	siteURL string
}

func NewTip(tipSvc *core.TipService, gateway *payment.Client, siteURL string) *Tip {
	return &Tip{tipSvc: tipSvc, gateway: gateway, siteURL: siteURL}
}

type checkoutRequest struct {
	Amount      int    `json:"amount" validate:"required,min=1,max=200"`
	Currency    string `json:"currency" validate:"required,len=3"`
	ContextType string `json:"contextType" validate:"required,oneof=board dm"`
	ContextID   string `json:"contextId" validate:"required,uuid"`
}

// Checkout creates a hosted payment page for a thank-you tip and records
// the tip against the content it thanks.
func (h *Tip) Checkout(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req checkoutRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.gateway.CreateCheckoutSession(r.Context(), payment.CheckoutInput{
		AmountMinor: req.Amount * 100,
		Currency:    req.Currency,
		ProductName: "Thank you tip",
		SuccessURL:  h.siteURL + "/tips/success",
		CancelURL:   h.siteURL + "/tips/cancel",
	})
	if err != nil {
		response.WriteError(w, http.StatusBadGateway, "failed to create checkout session")
		return
	}

	if _, err := h.tipSvc.Record(r.Context(), user.ID, req.Amount, req.Currency, req.ContextType, req.ContextID, session.ID); err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to record tip")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{"url": session.URL})
}
