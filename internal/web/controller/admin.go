package controller

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"parttimejobs/internal/dto"
)

type adminDashboardView struct {
	TotalUsers        int
	TotalJobs         int
	TotalApplications int
	TotalEmployers    int
	TotalCategories   int
}

// AdminDashboard handles GET /admin
func (ct *Controller) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)
	view := adminDashboardView{}

	if users, err := ct.api.Users.List(r.Context(), auth.Token); err == nil {
		view.TotalUsers = len(users)
	}
	if jobs, err := ct.api.Jobs.List(r.Context()); err == nil {
		view.TotalJobs = len(jobs)
	}
	if applications, err := ct.api.Applications.List(r.Context(), auth.Token); err == nil {
		view.TotalApplications = len(applications)
	}
	if employers, err := ct.api.Employers.List(r.Context(), auth.Token); err == nil {
		view.TotalEmployers = len(employers)
	}
	if categories, err := ct.api.Categories.List(r.Context()); err == nil {
		view.TotalCategories = len(categories)
	}

	ct.render(w, r, "admin_dashboard.html", view)
}

type adminUsersView struct {
	Users  []dto.UserResponse
	Search string
	Role   string
}

// AdminUsers handles GET /admin/users with search and role filter.
func (ct *Controller) AdminUsers(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	users, err := ct.api.Users.List(r.Context(), auth.Token)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/admin")
		return
	}

	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	role := r.URL.Query().Get("role")

	filtered := users[:0]
	for _, user := range users {
		if role != "" && user.Role != role {
			continue
		}
		if search != "" {
			name := ""
			if user.FullName != nil {
				name = *user.FullName
			}
			if !strings.Contains(strings.ToLower(user.Email+" "+name), search) {
				continue
			}
		}
		filtered = append(filtered, user)
	}

	ct.render(w, r, "admin_users.html", adminUsersView{Users: filtered, Search: search, Role: role})
}

// AdminUserToggleActive handles POST /admin/users/{id}/toggle-active
func (ct *Controller) AdminUserToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	user, err := ct.api.Users.Get(r.Context(), auth.Token, id)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/admin/users")
		return
	}

	req := &dto.UpdateUserRequest{
		Email:    user.Email,
		FullName: user.FullName,
		Phone:    user.Phone,
		IsActive: !user.IsActive,
	}
	if _, err := ct.api.Users.Update(r.Context(), auth.Token, id, req); err != nil {
		ct.failAndRedirect(w, r, err, "/admin/users")
		return
	}

	message := "User activated."
	if user.IsActive {
		message = "User deactivated."
	}
	ct.flashAndRedirect(w, r, message, "/admin/users")
}

// AdminUserDelete handles POST /admin/users/{id}/delete
func (ct *Controller) AdminUserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	if err := ct.api.Users.Delete(r.Context(), auth.Token, id); err != nil {
		ct.failAndRedirect(w, r, err, "/admin/users")
		return
	}
	ct.flashAndRedirect(w, r, "User deleted.", "/admin/users")
}

type adminJobsView struct {
	Jobs   []dto.JobResponse
	Search string
	Status string
}

// AdminJobs handles GET /admin/jobs with search and status filter.
func (ct *Controller) AdminJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := ct.api.Jobs.List(r.Context())
	if err != nil {
		ct.failAndRedirect(w, r, err, "/admin")
		return
	}

	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	status := r.URL.Query().Get("status")

	filtered := jobs[:0]
	for _, job := range jobs {
		if status != "" && job.Status != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(job.Title+" "+job.EmployerName), search) {
			continue
		}
		filtered = append(filtered, job)
	}

	ct.render(w, r, "admin_jobs.html", adminJobsView{Jobs: filtered, Search: search, Status: status})
}

// AdminJobDelete handles POST /admin/jobs/{id}/delete
func (ct *Controller) AdminJobDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	if err := ct.api.Jobs.Delete(r.Context(), auth.Token, id); err != nil {
		ct.failAndRedirect(w, r, err, "/admin/jobs")
		return
	}
	ct.flashAndRedirect(w, r, "Job deleted.", "/admin/jobs")
}

type adminApplicationsView struct {
	Applications []dto.ApplicationResponse
	Status       string
}

// AdminApplications handles GET /admin/applications with a status filter.
func (ct *Controller) AdminApplications(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	applications, err := ct.api.Applications.List(r.Context(), auth.Token)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/admin")
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" {
		filtered := applications[:0]
		for _, application := range applications {
			if application.Status == status {
				filtered = append(filtered, application)
			}
		}
		applications = filtered
	}

	ct.render(w, r, "admin_applications.html", adminApplicationsView{
		Applications: applications,
		Status:       status,
	})
}

// AdminCategories handles GET /admin/categories
func (ct *Controller) AdminCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := ct.api.Categories.List(r.Context())
	if err != nil {
		ct.failAndRedirect(w, r, err, "/admin")
		return
	}
	ct.render(w, r, "admin_categories.html", categories)
}

// AdminCategoryCreate handles POST /admin/categories
func (ct *Controller) AdminCategoryCreate(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	name := strings.TrimSpace(r.FormValue("categoryName"))
	if name == "" {
		ct.flashAndRedirect(w, r, "Category name is required.", "/admin/categories")
		return
	}

	req := &dto.CreateJobCategoryRequest{CategoryName: name}
	if _, err := ct.api.Categories.Create(r.Context(), auth.Token, req); err != nil {
		ct.failAndRedirect(w, r, err, "/admin/categories")
		return
	}
	ct.flashAndRedirect(w, r, "Category created.", "/admin/categories")
}

// AdminEmployers handles GET /admin/employers
func (ct *Controller) AdminEmployers(w http.ResponseWriter, r *http.Request) {
	auth := ct.sessions.Current(r)

	employers, err := ct.api.Employers.List(r.Context(), auth.Token)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/admin")
		return
	}
	ct.render(w, r, "admin_employers.html", employers)
}

// AdminEmployerToggleVerified handles POST /admin/employers/{id}/verify
func (ct *Controller) AdminEmployerToggleVerified(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	auth := ct.sessions.Current(r)

	employer, err := ct.api.Employers.Get(r.Context(), auth.Token, id)
	if err != nil {
		ct.failAndRedirect(w, r, err, "/admin/employers")
		return
	}

	req := &dto.UpdateEmployerRequest{
		CompanyName: employer.CompanyName,
		ContactName: employer.ContactName,
		PhoneNumber: employer.PhoneNumber,
		Address:     employer.Address,
		TaxCode:     employer.TaxCode,
		IsVerified:  !employer.IsVerified,
	}
	if _, err := ct.api.Employers.Update(r.Context(), auth.Token, id, req); err != nil {
		ct.failAndRedirect(w, r, err, "/admin/employers")
		return
	}

	message := "Employer verified."
	if employer.IsVerified {
		message = "Employer verification removed."
	}
	ct.flashAndRedirect(w, r, message, "/admin/employers")
}
