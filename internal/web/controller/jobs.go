package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

type jobListView struct {
	Jobs       []dto.JobResponse
	Categories []dto.JobCategoryResponse
	Search     string
	CategoryID uint
}

// JobList handles GET /jobs. Search and category filtering happen here
// over the fetched list; the API's substring filter covers one field only.
func (ct *Controller) JobList(w http.ResponseWriter, r *http.Request) {
	jobs, err := ct.api.Jobs.ListActive(r.Context())
	if err != nil {
		ct.failAndRedirect(w, r, err, "/")
		return
	}
	categories, err := ct.api.Categories.List(r.Context())
	if err != nil {
		categories = nil
	}

	search := strings.TrimSpace(r.URL.Query().Get("q"))
	categoryID, _ := pathID(r.URL.Query().Get("category"))

	filtered := jobs[:0]
	for _, job := range jobs {
		if categoryID != 0 && (job.CategoryID == nil || *job.CategoryID != categoryID) {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(job.Title + " " + job.Description + " " + job.EmployerName)
			if !strings.Contains(haystack, strings.ToLower(search)) {
				continue
			}
		}
		filtered = append(filtered, job)
	}

	ct.render(w, r, "jobs_list.html", jobListView{
		Jobs:       filtered,
		Categories: categories,
		Search:     search,
		CategoryID: categoryID,
	})
}

type jobDetailView struct {
	Job      *dto.JobResponse
	CanApply bool
}

// JobDetail handles GET /jobs/{id}. Students see the apply form.
func (ct *Controller) JobDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	job, err := ct.api.Jobs.Get(r.Context(), id)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/jobs")
		return
	}

	auth := ct.sessions.Current(r)
	ct.render(w, r, "job_detail.html", jobDetailView{
		Job:      job,
		CanApply: auth.LoggedIn() && auth.Role == model.RoleStudent && job.Status == model.JobStatusOpen,
	})
}

// ApplySubmit handles POST /jobs/{id}/apply. A duplicate application
// surfaces the API's conflict message as a flash.
func (ct *Controller) ApplySubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	req := &dto.CreateApplicationRequest{
		StudentID:   auth.UserID,
		JobID:       id,
		CoverLetter: formString(r.FormValue("coverLetter")),
	}
	if _, err := ct.api.Applications.Create(r.Context(), auth.Token, req); err != nil {
		ct.failAndRedirect(w, r, err, "/jobs/"+chi.URLParam(r, "id"))
		return
	}
	ct.flashAndRedirect(w, r, "Application submitted.", "/my-applications")
}

type myJobsView struct {
	Jobs       []dto.JobResponse
	IsVerified bool
}

// MyJobs handles GET /my-jobs for employers.
func (ct *Controller) MyJobs(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	jobs, err := ct.api.Jobs.ListByEmployer(r.Context(), auth.UserID)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/")
		return
	}

	verified := true
	if employer, err := ct.api.Employers.Get(r.Context(), auth.Token, auth.UserID); err == nil {
		verified = employer.IsVerified
	}
	ct.render(w, r, "my_jobs.html", myJobsView{Jobs: jobs, IsVerified: verified})
}

type jobFormView struct {
	Categories []dto.JobCategoryResponse
	IsVerified bool
}

// JobCreatePage handles GET /jobs/create. Unverified employers get a
// warning banner but may still post.
func (ct *Controller) JobCreatePage(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	categories, err := ct.api.Categories.List(r.Context())
	if err != nil {
		categories = nil
	}
	verified := true
	if employer, err := ct.api.Employers.Get(r.Context(), auth.Token, auth.UserID); err == nil {
		verified = employer.IsVerified
	}
	ct.render(w, r, "job_form.html", jobFormView{Categories: categories, IsVerified: verified})
}

// JobCreateSubmit handles POST /jobs/create
func (ct *Controller) JobCreateSubmit(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	var expiration *time.Time
	if raw := strings.TrimSpace(r.FormValue("expirationDate")); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			expiration = &t
		}
	}

	req := &dto.CreateJobRequest{
		EmployerID:     auth.UserID,
		Title:          r.FormValue("title"),
		Description:    r.FormValue("description"),
		Salary:         formFloat(r.FormValue("salary")),
		Location:       formString(r.FormValue("location")),
		CategoryID:     formUint(r.FormValue("categoryId")),
		ExpirationDate: expiration,
	}
	if _, err := ct.api.Jobs.Create(r.Context(), auth.Token, req); err != nil {
		ct.failAndRedirect(w, r, err, "/jobs/create")
		return
	}
	ct.flashAndRedirect(w, r, "Job posted.", "/my-jobs")
}

// JobDeleteSubmit handles POST /jobs/{id}/delete. The API refuses while
// applications exist; the message lands in a flash.
func (ct *Controller) JobDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	if err := ct.api.Jobs.Delete(r.Context(), auth.Token, id); err != nil {
		ct.failAndRedirect(w, r, err, "/my-jobs")
		return
	}
	ct.flashAndRedirect(w, r, "Job deleted.", "/my-jobs")
}

// MyApplications handles GET /my-applications for students.
func (ct *Controller) MyApplications(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	applications, err := ct.api.Applications.ListByStudent(r.Context(), auth.Token, auth.UserID)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/")
		return
	}
	ct.render(w, r, "my_applications.html", applications)
}

// WithdrawSubmit handles POST /applications/{id}/withdraw for students.
// Withdrawal removes the application; the status route is employer-only.
func (ct *Controller) WithdrawSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	if err := ct.api.Applications.Delete(r.Context(), auth.Token, id); err != nil {
		ct.failAndRedirect(w, r, err, "/my-applications")
		return
	}
	ct.flashAndRedirect(w, r, "Application withdrawn.", "/my-applications")
}
