package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/danielolaszy/issuetable/internal/config"
	"github.com/danielolaszy/issuetable/internal/github"
	"github.com/danielolaszy/issuetable/internal/logging"
	"github.com/danielolaszy/issuetable/internal/table"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the two views. It keeps no per-user state: the table view's
// sort and page live in the query string.
type Handler struct {
	fetcher    table.Fetcher
	repository string
	pageSize   int

	homePage  *template.Template
	tablePage *template.Template
}

// NewHandler parses the view templates and returns a handler that lists
// repository's issues through fetcher.
func NewHandler(fetcher table.Fetcher, repository string, pageSize int) (*Handler, error) {
	homePage, err := parsePage("home.html")
	if err != nil {
		return nil, err
	}
	tablePage, err := parsePage("table.html")
	if err != nil {
		return nil, err
	}

	if pageSize < 1 || pageSize > config.MaxPageSize {
		pageSize = config.DefaultPageSize
	}

	return &Handler{
		fetcher:    fetcher,
		repository: repository,
		pageSize:   pageSize,
		homePage:   homePage,
		tablePage:  tablePage,
	}, nil
}

func parsePage(name string) (*template.Template, error) {
	tmpl, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// Routes mounts the view routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/table", h.Table)
	r.Get("/healthz", h.Health)
}

// Home handles GET / - the landing view.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.homePage, homeView{
		Title:      "Issue table",
		Repository: h.repository,
		TableHref:  "/table",
	})
}

// Table handles GET /table?sort=&order=&page=&size=&total= - fetches one page of
// issues and renders it. A failed fetch renders an empty table.
func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	state, prevTotal := h.parseState(r.URL.Query())

	page := table.Load(r.Context(), h.fetcher, state, prevTotal)
	if page.Err != nil {
		logging.Warn("issue fetch failed",
			"error", page.Err,
			"status_code", github.StatusCode(page.Err),
			"page_index", state.PageIndex)
	}

	h.render(w, h.tablePage, newTableView(h.repository, state, page))
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// parseState reads the table state from the query string. Unknown or malformed
// values fall back to defaults rather than failing the request.
func (h *Handler) parseState(q url.Values) (table.State, int) {
	state := table.NewState(h.pageSize)

	sort := q.Get("sort")
	direction := table.ParseDirection(q.Get("order"))
	if table.IsColumn(sort) {
		state = state.ApplySort(table.SortEvent{Active: sort, Direction: direction})
	}

	index := atoiDefault(q.Get("page"), 0)
	size := atoiDefault(q.Get("size"), h.pageSize)
	if size > config.MaxPageSize {
		size = h.pageSize
	}
	state = state.ApplyPage(table.PageEvent{Index: index, Size: size})

	total := atoiDefault(q.Get("total"), 0)
	if total < 0 {
		total = 0
	}
	return state, total
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.Error("failed to render template", "template", tmpl.Name(), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
