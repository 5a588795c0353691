package repcoach

import "embed"

// TemplatesFS holds the embedded HTML templates for the card views.
//
//go:embed web/templates
var TemplatesFS embed.FS
