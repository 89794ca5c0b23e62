// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// FormField describes one input of the deployment request form.
type FormField struct {
	Name  string // form key posted to the server
	Label string
	Type  string // HTML input type
}

// FormPageViewModel holds presentation-ready data for the deployment request page.
type FormPageViewModel struct {
	Fields []FormField

	// BannerHTML is sanitized HTML for the current notification; empty hides the banner.
	BannerHTML string

	// CSRFField and CSRFToken are empty when CSRF protection is disabled.
	CSRFField string
	CSRFToken string
}
