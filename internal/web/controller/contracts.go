package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

// ContractList handles GET /contracts for employers and admins.
func (ct *Controller) ContractList(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	var (
		contracts []dto.ContractResponse
		err       error
	)
	if auth.Role == model.RoleAdmin {
		contracts, err = ct.api.Contracts.List(r.Context(), auth.Token)
	} else {
		contracts, err = ct.api.Contracts.ListByEmployer(r.Context(), auth.Token, auth.UserID)
	}
	if err != nil {
		ct.failAndRedirect(w, r, err, "/")
		return
	}
	ct.render(w, r, "contracts_list.html", contracts)
}

// MyContracts handles GET /my-contracts for students.
func (ct *Controller) MyContracts(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	contracts, err := ct.api.Contracts.ListByStudent(r.Context(), auth.Token, auth.UserID)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/")
		return
	}
	ct.render(w, r, "contracts_list.html", contracts)
}

type contractDetailView struct {
	Contract *dto.ContractResponse
	Payments []dto.PaymentResponse
}

// ContractDetail handles GET /contracts/{id}
func (ct *Controller) ContractDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	contract, err := ct.api.Contracts.Get(r.Context(), auth.Token, id)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/contracts")
		return
	}
	payments, err := ct.api.Payments.ListByContract(r.Context(), auth.Token, id)
	if err != nil {
		payments = nil
	}

	ct.render(w, r, "contract_detail.html", contractDetailView{
		Contract: contract,
		Payments: payments,
	})
}

type contractFormView struct {
	Application *dto.ApplicationResponse
}

// ContractCreatePage handles GET /contracts/create?applicationId=N
func (ct *Controller) ContractCreatePage(w http.ResponseWriter, r *http.Request) {
	applicationID, ok := pathID(r.URL.Query().Get("applicationId"))
	if !ok {
		ct.flashAndRedirect(w, r, "Choose an application to create a contract from.", "/applications")
		return
	}
	auth := ct.sessions.Current(r)

	application, err := ct.api.Applications.Get(r.Context(), auth.Token, applicationID)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/applications")
		return
	}
	ct.render(w, r, "contract_form.html", contractFormView{Application: application})
}

// ContractCreateSubmit handles POST /contracts/create
func (ct *Controller) ContractCreateSubmit(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	applicationID, ok := pathID(r.FormValue("applicationId"))
	if !ok {
		ct.flashAndRedirect(w, r, "Invalid application.", "/applications")
		return
	}

	startDate, err := time.Parse("2006-01-02", strings.TrimSpace(r.FormValue("startDate")))
	if err != nil {
		ct.flashAndRedirect(w, r, "Please provide a valid start date.", "/contracts/create?applicationId="+r.FormValue("applicationId"))
		return
	}
	var endDate *time.Time
	if raw := strings.TrimSpace(r.FormValue("endDate")); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			endDate = &t
		}
	}

	var salary float64
	if v := formFloat(r.FormValue("salaryAgreed")); v != nil {
		salary = *v
	}

	req := &dto.CreateContractRequest{
		ApplicationID: applicationID,
		StartDate:     startDate,
		EndDate:       endDate,
		SalaryAgreed:  salary,
	}
	contract, err := ct.api.Contracts.Create(r.Context(), auth.Token, req)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/applications")
		return
	}
	ct.flashAndRedirect(w, r, "Contract created.", "/contracts/"+uitoa(contract.ContractID))
}

// ContractCompleteSubmit handles POST /contracts/{id}/complete
func (ct *Controller) ContractCompleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	status := model.ContractStatusCompleted
	req := &dto.UpdateContractRequest{Status: &status}
	if _, err := ct.api.Contracts.Update(r.Context(), auth.Token, id, req); err != nil {
		ct.failAndRedirect(w, r, err, "/contracts/"+chi.URLParam(r, "id"))
		return
	}
	ct.flashAndRedirect(w, r, "Contract marked completed.", "/contracts/"+chi.URLParam(r, "id"))
}

// ContractDeleteSubmit handles POST /contracts/{id}/delete for admins.
func (ct *Controller) ContractDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	if err := ct.api.Contracts.Delete(r.Context(), auth.Token, id); err != nil {
		ct.failAndRedirect(w, r, err, "/contracts")
		return
	}
	ct.flashAndRedirect(w, r, "Contract deleted.", "/contracts")
}
