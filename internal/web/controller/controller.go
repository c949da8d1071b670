// Package controller renders the server-side pages of the web client. Each
// controller method fetches what it needs through the typed API clients and
// feeds one template; state lives in the server-side session.
package controller

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"parttimejobs/internal/web/client"
	"parttimejobs/internal/web/session"
	"parttimejobs/pkg/logger"
)

type Controller struct {
	api       *client.API
	sessions  *session.Manager
	templates map[string]*template.Template
}

// New parses every page template against the shared layout.
func New(api *client.API, sessions *session.Manager, templateDir string) (*Controller, error) {
	layout := filepath.Join(templateDir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(templateDir, "pages", "*.html"))
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(templateFuncs).ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		templates[filepath.Base(page)] = t
	}

	return &Controller{api: api, sessions: sessions, templates: templates}, nil
}

var templateFuncs = template.FuncMap{
	"lower": strings.ToLower,
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"money": func(v interface{}) string {
		switch x := v.(type) {
		case float64:
			return strconv.FormatFloat(x, 'f', 2, 64)
		case *float64:
			if x == nil {
				return ""
			}
			return strconv.FormatFloat(*x, 'f', 2, 64)
		}
		return ""
	},
}

// viewData is the envelope every template receives.
type viewData struct {
	Auth    *session.Auth
	Flashes []string
	Data    interface{}
}

func (ct *Controller) render(w http.ResponseWriter, r *http.Request, page string, data interface{}) {
	t, ok := ct.templates[page]
	if !ok {
		logger.GetLogger().Error("unknown template", zap.String("page", page))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	vd := viewData{
		Auth:    ct.sessions.Current(r),
		Flashes: ct.sessions.PopFlashes(w, r),
		Data:    data,
	}
	if err := t.ExecuteTemplate(w, "layout.html", vd); err != nil {
		logger.GetLogger().Error("rendering template", zap.String("page", page), zap.Error(err))
	}
}

// flashAndRedirect queues a message and sends the browser elsewhere.
func (ct *Controller) flashAndRedirect(w http.ResponseWriter, r *http.Request, msg, target string) {
	if msg != "" {
		ct.sessions.Flash(w, r, msg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// failAndRedirect flashes the API error's message and redirects.
func (ct *Controller) failAndRedirect(w http.ResponseWriter, r *http.Request, err error, target string) {
	logger.GetLogger().Warn("api call failed", zap.String("path", r.URL.Path), zap.Error(err))
	ct.flashAndRedirect(w, r, client.MessageOf(err), target)
}

// pathID parses a numeric chi URL parameter.
func pathID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// formFloat parses an optional float form value.
func formFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// formString returns nil for blank form values so empty inputs clear to NULL.
func formString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

// formInt parses an optional integer form value.
func formInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// formUint parses an optional id form value, treating 0 as unset.
func formUint(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}
