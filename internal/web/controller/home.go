package controller

import (
	"net/http"

	"parttimejobs/internal/dto"
)

type homeView struct {
	Jobs []dto.JobResponse
}

// Home handles GET /, the landing page with currently open jobs.
func (ct *Controller) Home(w http.ResponseWriter, r *http.Request) {
	jobs, err := ct.api.Jobs.ListActive(r.Context())
	if err != nil {
		// The landing page still renders when the API is down; the flash
		// explains the empty list.
		ct.sessions.Flash(w, r, "Job listings are temporarily unavailable.")
	}
	if len(jobs) > 6 {
		jobs = jobs[:6]
	}
	ct.render(w, r, "home.html", homeView{Jobs: jobs})
}
