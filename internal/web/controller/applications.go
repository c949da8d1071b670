package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

type applicationListView struct {
	Applications []dto.ApplicationResponse
	JobID        uint
}

// EmployerApplications handles GET /applications for employers: all
// applications across their jobs, or one job's with ?jobId=.
func (ct *Controller) EmployerApplications(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	jobID, _ := pathID(r.URL.Query().Get("jobId"))

	var applications []dto.ApplicationResponse
	if jobID != 0 {
		list, err := ct.api.Applications.ListByJob(r.Context(), auth.Token, jobID)
		if err != nil {
			ct.failAndRedirect(w, r, err, "/my-jobs")
			return
		}
		applications = list
	} else {
		jobs, err := ct.api.Jobs.ListByEmployer(r.Context(), auth.UserID)
		if err != nil {
			ct.failAndRedirect(w, r, err, "/my-jobs")
			return
		}
		for _, job := range jobs {
			list, err := ct.api.Applications.ListByJob(r.Context(), auth.Token, job.JobID)
			if err != nil {
				continue
			}
			applications = append(applications, list...)
		}
	}

	ct.render(w, r, "applications_list.html", applicationListView{
		Applications: applications,
		JobID:        jobID,
	})
}

type applicationDetailView struct {
	Application *dto.ApplicationResponse
	Histories   []dto.ApplicationHistoryResponse
	HasContract bool
}

// ApplicationDetail handles GET /applications/{id}
func (ct *Controller) ApplicationDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	application, err := ct.api.Applications.Get(r.Context(), auth.Token, id)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/applications")
		return
	}

	histories, err := ct.api.Histories.ListByApplication(r.Context(), auth.Token, id)
	if err != nil {
		histories = nil
	}

	ct.render(w, r, "application_detail.html", applicationDetailView{
		Application: application,
		Histories:   histories,
		HasContract: application.Status == model.ApplicationStatusAccepted,
	})
}

// ApplicationAccept handles POST /applications/{id}/accept
func (ct *Controller) ApplicationAccept(w http.ResponseWriter, r *http.Request) {
	ct.setApplicationStatus(w, r, model.ApplicationStatusAccepted, "Application accepted.")
}

// ApplicationReject handles POST /applications/{id}/reject
func (ct *Controller) ApplicationReject(w http.ResponseWriter, r *http.Request) {
	ct.setApplicationStatus(w, r, model.ApplicationStatusRejected, "Application rejected.")
}

func (ct *Controller) setApplicationStatus(w http.ResponseWriter, r *http.Request, status, message string) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	req := &dto.UpdateApplicationStatusRequest{Status: status}
	if _, err := ct.api.Applications.UpdateStatus(r.Context(), auth.Token, id, req); err != nil {
		ct.failAndRedirect(w, r, err, "/applications")
		return
	}

	// Record the decision in the audit table; the API does not do this on
	// its own.
	note := formString(r.FormValue("note"))
	_, _ = ct.api.Histories.Create(r.Context(), auth.Token, &dto.CreateApplicationHistoryRequest{
		ApplicationID: id,
		Status:        status,
		Note:          note,
	})

	ct.flashAndRedirect(w, r, message, "/applications/"+chi.URLParam(r, "id"))
}
