// Package web implements the HTML GUI driving adapter. Pages are rendered
// server-side with html/template; the embedded client script re-computes
// countdowns locally so every viewer sees times in their own timezone.
package web

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	httphandler "github.com/xsukax/sharetimer/internal/adapter/driving/http"
	"github.com/xsukax/sharetimer/internal/application"
	"github.com/xsukax/sharetimer/internal/domain/port/driven"
)

// Handler is the web GUI driving adapter.
type Handler struct {
	timerSvc *application.TimerService
	appTitle string
	logger   *slog.Logger
	home     *template.Template
	timer    *template.Template
}

// NewHandler creates a Handler with all required dependencies. Templates are
// parsed from the embedded filesystem once at construction.
func NewHandler(timerSvc *application.TimerService, appTitle string, logger *slog.Logger) *Handler {
	return &Handler{
		timerSvc: timerSvc,
		appTitle: appTitle,
		logger:   logger,
		home:     template.Must(template.ParseFS(TemplatesFS, "templates/layout.html", "templates/home.html")),
		timer:    template.Must(template.ParseFS(TemplatesFS, "templates/layout.html", "templates/timer.html")),
	}
}

// Home renders the create form and the visitor's recent timers.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	page := HomePage{
		Page: h.newPage(r),
		Form: defaultForm(),
	}
	h.render(w, h.home, page)
}

// CreateTimer handles the create form submission. On success it redirects to
// the new timer's shareable URL; on a validation failure it re-renders the
// form with an inline message and the submitted values, persisting nothing.
func (h *Handler) CreateTimer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := FormView{
		Title:   r.PostFormValue("title"),
		Days:    formInt(r, "days"),
		Hours:   formInt(r, "hours"),
		Minutes: formInt(r, "minutes"),
		Seconds: formInt(r, "seconds"),
	}

	timer, err := h.timerSvc.Create(r.Context(), application.CreateTimerInput{
		Days:      form.Days,
		Hours:     form.Hours,
		Minutes:   form.Minutes,
		Seconds:   form.Seconds,
		Title:     form.Title,
		CreatorIP: httphandler.ClientIP(r),
	})
	if err != nil {
		message := "Unable to create timer. Please try again."
		switch {
		case errors.Is(err, application.ErrInvalidDuration):
			message = "Timer duration must be greater than 0 seconds."
		case errors.Is(err, application.ErrDurationTooLong):
			message = "Maximum timer duration is 365 days."
		default:
			h.logger.Error("failed to create timer", "error", err)
		}

		page := HomePage{
			Page: h.newPage(r),
			Form: form,
		}
		page.Message = message
		page.Error = true
		h.render(w, h.home, page)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/t/%d", timer.ID), http.StatusSeeOther)
}

// ViewTimer renders the countdown view for a shared timer URL. An unknown id
// falls back to the home page with a not-found message.
func (h *Handler) ViewTimer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.renderNotFound(w, r, r.PathValue("id"))
		return
	}

	timer, err := h.timerSvc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, driven.ErrTimerNotFound) {
			h.renderNotFound(w, r, strconv.FormatInt(id, 10))
			return
		}
		h.logger.Error("failed to get timer", "id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page := TimerPage{
		Page:  h.newPage(r),
		Timer: toTimerView(*timer),
	}
	h.render(w, h.timer, page)
}

// newPage builds the shared page state: app title plus the visitor's recent
// timers. A listing failure is non-fatal; the page renders without the list.
func (h *Handler) newPage(r *http.Request) Page {
	page := Page{AppTitle: h.appTitle}

	timers, err := h.timerSvc.ListRecent(r.Context(), httphandler.ClientIP(r))
	if err != nil {
		h.logger.Error("failed to list recent timers", "error", err)
		return page
	}
	page.Recent = toTimerItemViews(timers)

	return page
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request, id string) {
	page := HomePage{
		Page: h.newPage(r),
		Form: defaultForm(),
	}
	page.Message = fmt.Sprintf("Timer #%s not found.", id)
	page.Error = true

	w.WriteHeader(http.StatusNotFound)
	h.render(w, h.home, page)
}

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// formInt parses a form field as an integer, treating absent or malformed
// values as 0. Negative values are clamped later by the service.
func formInt(r *http.Request, field string) int64 {
	v, err := strconv.ParseInt(r.PostFormValue(field), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
