// Package notes renders person notes from Markdown to sanitized HTML.
package notes

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var policy = bluemonday.UGCPolicy()

// Render converts Markdown to HTML with GitHub-style extensions and strips
// anything the UGC policy does not allow. Empty input renders as "".
func Render(md string) template.HTML {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	extensions := blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs | blackfriday.Autolink
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags,
	})
	unsafe := blackfriday.Run([]byte(md), blackfriday.WithRenderer(renderer), blackfriday.WithExtensions(extensions))
	// Notes are user-authored.
	return template.HTML(policy.SanitizeBytes(unsafe))
}
