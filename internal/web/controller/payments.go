package controller

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"parttimejobs/internal/dto"
)

func uitoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

type paymentFormView struct {
	ContractID uint
}

// PaymentCreatePage handles GET /contracts/{id}/payments/new for employers.
func (ct *Controller) PaymentCreatePage(w http.ResponseWriter, r *http.Request) {
	contractID, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	ct.render(w, r, "payment_form.html", paymentFormView{ContractID: contractID})
}

// PaymentCreateSubmit handles POST /contracts/{id}/payments
func (ct *Controller) PaymentCreateSubmit(w http.ResponseWriter, r *http.Request) {
	contractID, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	var amount float64
	if v := formFloat(r.FormValue("amount")); v != nil {
		amount = *v
	}

	req := &dto.CreatePaymentRequest{
		ContractID:    contractID,
		Amount:        amount,
		PaymentMethod: formString(r.FormValue("paymentMethod")),
		Description:   formString(r.FormValue("description")),
	}
	if _, err := ct.api.Payments.Create(r.Context(), auth.Token, req); err != nil {
		ct.failAndRedirect(w, r, err, "/contracts/"+uitoa(contractID))
		return
	}
	ct.flashAndRedirect(w, r, "Payment recorded.", "/contracts/"+uitoa(contractID))
}

// MyPayments handles GET /my-payments for students.
func (ct *Controller) MyPayments(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	payments, err := ct.api.Payments.ListByStudent(r.Context(), auth.Token, auth.UserID)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/")
		return
	}
	ct.render(w, r, "payments_list.html", payments)
}

// PaymentStatusSubmit handles POST /payments/{id}/status; the contract
// page posts the new status and returns to itself.
func (ct *Controller) PaymentStatusSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)
	back := r.FormValue("back")
	if back == "" {
		back = "/contracts"
	}

	status := r.FormValue("status")
	req := &dto.UpdatePaymentRequest{Status: &status}
	if _, err := ct.api.Payments.Update(r.Context(), auth.Token, id, req); err != nil {
		ct.failAndRedirect(w, r, err, back)
		return
	}
	ct.flashAndRedirect(w, r, "Payment updated.", back)
}

// PaymentDeleteSubmit handles POST /payments/{id}/delete for admins.
func (ct *Controller) PaymentDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)
	back := r.FormValue("back")
	if back == "" {
		back = "/contracts"
	}

	if err := ct.api.Payments.Delete(r.Context(), auth.Token, id); err != nil {
		ct.failAndRedirect(w, r, err, back)
		return
	}
	ct.flashAndRedirect(w, r, "Payment deleted.", back)
}
