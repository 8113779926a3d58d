package render

import theme "github.com/goliatone/go-theme"

// DefaultFontFamily is the deterministic font default for Tamil deed output.
// Renderers never depend on list iteration order for font selection; callers
// override via RenderOptions.FontFamily.
const DefaultFontFamily = "Latha"

// DefaultLanguage tags rendered output as Tamil unless overridden.
const DefaultLanguage = "ta"

// RenderOptions describe per-request data that renderers can use to
// customise their output without touching the resolved section pipeline.
type RenderOptions struct {
	// Language is the BCP 47 tag for the document language. Empty means
	// DefaultLanguage.
	Language string
	// FontFamily selects the typeface for targets that carry font
	// information. Empty means DefaultFontFamily.
	FontFamily string
	// FontURL optionally points at a web font the HTML target may embed.
	// The HTML output stays self-contained when it is empty.
	FontURL string
	// Theme carries resolved go-theme tokens and CSS variables for targets
	// with styling chrome.
	Theme *theme.RendererConfig
}

// Font returns the effective font family.
func (o RenderOptions) Font() string {
	if o.FontFamily != "" {
		return o.FontFamily
	}
	return DefaultFontFamily
}

// Lang returns the effective language tag.
func (o RenderOptions) Lang() string {
	if o.Language != "" {
		return o.Language
	}
	return DefaultLanguage
}
