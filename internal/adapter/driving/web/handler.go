// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ericfisherdev/deploydrop/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/deploydrop/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/deploydrop/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/deploydrop/internal/domain/model"
	"github.com/ericfisherdev/deploydrop/internal/domain/port/driven"
)

// maxFormBytes caps the submitted form body.
const maxFormBytes = 1 << 20

// errMissingField is wrapped with the name of the absent form key.
var errMissingField = errors.New("missing form field")

// formFields lists the form keys in display order.
var formFields = []vm.FormField{
	{Name: "github_link", Label: "GitHub Link", Type: "text"},
	{Name: "db_user", Label: "Database User", Type: "text"},
	{Name: "user_pass", Label: "User Password", Type: "password"},
	{Name: "db_name", Label: "Database Name", Type: "text"},
	{Name: "domain", Label: "Domain", Type: "text"},
}

// SubmissionRecorder is the application capability the form handler needs.
type SubmissionRecorder interface {
	Submit(ctx context.Context, in model.SubmissionInput) (*model.Submission, error)
}

// NotificationReader supplies the banner shown above the form.
type NotificationReader interface {
	Current(ctx context.Context) (model.Notification, error)
}

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	submissions   SubmissionRecorder
	notifications NotificationReader
	csrfEnabled   bool
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	submissions SubmissionRecorder,
	notifications NotificationReader,
	csrfEnabled bool,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		submissions:   submissions,
		notifications: notifications,
		csrfEnabled:   csrfEnabled,
		logger:        logger,
	}
}

// Form renders the deployment request page.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	page := vm.FormPageViewModel{Fields: formFields}

	if n, err := h.notifications.Current(r.Context()); err != nil {
		// The form stays usable without the banner.
		h.logger.Warn("failed to read notification for banner", "error", err)
	} else if n.Available {
		page.BannerHTML = RenderMarkdown(n.Message)
	}

	if h.csrfEnabled {
		page.CSRFField = csrfFormField
		page.CSRFToken = csrfToken(w, r)
	}

	layout := templates.Layout("deploydrop", pages.Form(page))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render form page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Submit records one deployment request and redirects back to the form.
// Every field must be present in the body; empty values are accepted.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	if h.csrfEnabled && !validateCSRF(r) {
		h.logger.Warn("rejected submission with invalid csrf token")
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	in, err := readSubmission(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sub, err := h.submissions.Submit(r.Context(), in)
	if err != nil {
		if errors.Is(err, driven.ErrEncryptionKeyNotSet) {
			h.logger.Error("credential sealing unavailable", "error", err)
			http.Error(w, "credential storage unavailable", http.StatusServiceUnavailable)
			return
		}
		h.logger.Error("failed to record submission", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("submission recorded", "id", sub.ID, "domain", sub.Domain)
	http.Redirect(w, r, "/", http.StatusFound)
}

// readSubmission extracts the five form values from the parsed request body.
func readSubmission(r *http.Request) (model.SubmissionInput, error) {
	values := make(map[string]string, len(formFields))
	for _, f := range formFields {
		v, ok := r.PostForm[f.Name]
		if !ok || len(v) == 0 {
			return model.SubmissionInput{}, fmt.Errorf("%w: %s", errMissingField, f.Name)
		}
		values[f.Name] = v[0]
	}

	return model.SubmissionInput{
		GitHubLink: values["github_link"],
		DBUser:     values["db_user"],
		DBPassword: values["user_pass"],
		DBName:     values["db_name"],
		Domain:     values["domain"],
	}, nil
}
