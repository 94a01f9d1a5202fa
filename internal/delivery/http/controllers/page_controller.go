package controllers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"launchpage/internal/delivery/http/helpers"
	"launchpage/internal/domain"
)

//go:embed web/*.html
var webFS embed.FS

// mdRenderer escapes raw HTML in the site description.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// SiteInfo is the static metadata rendered into the page head and body.
type SiteInfo struct {
	AppName     string
	URL         string
	Description string
}

type pageData struct {
	Site            SiteInfo
	MetaDescription string
	DescriptionHTML template.HTML
	Countdown       domain.CountdownSnapshot
	TimezoneParam   string
}

// PageController serves the countdown landing page and its JSON polling endpoint.
type PageController struct {
	Logger    *slog.Logger
	Countdown domain.CountdownService
	site      SiteInfo
	descHTML  template.HTML
	metaDesc  string
	tmpl      *template.Template
}

// NewPageController parses the embedded page template and renders the site
// description once.
func NewPageController(logger *slog.Logger, countdown domain.CountdownService, site SiteInfo) (*PageController, error) {
	tmpl, err := template.ParseFS(webFS, "web/index.html")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(site.Description), &buf); err != nil {
		return nil, err
	}
	return &PageController{
		Logger:    logger,
		Countdown: countdown,
		site:      site,
		descHTML:  template.HTML(buf.String()),
		metaDesc:  metaDescription(site),
		tmpl:      tmpl,
	}, nil
}

// Page renders the landing page. The optional tz query parameter selects the
// observer timezone for the initial render.
func (c *PageController) Page(w http.ResponseWriter, r *http.Request) {
	tz := r.URL.Query().Get("tz")
	data := pageData{
		Site:            c.site,
		MetaDescription: c.metaDesc,
		DescriptionHTML: c.descHTML,
		Countdown:       c.Countdown.Snapshot(tz),
		TimezoneParam:   tz,
	}
	var buf bytes.Buffer
	if err := c.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		c.Logger.ErrorContext(r.Context(), "render page", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// CountdownJSON godoc
// @Summary Time remaining until release
// @Description Decomposed countdown for the observer timezone. Unknown or missing zones fall back to the release timezone.
// @Tags countdown
// @Produce json
// @Param tz query string false "Observer IANA timezone"
// @Success 200 {object} domain.CountdownSnapshot
// @Router /countdown [get]
func (c *PageController) CountdownJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	helpers.WriteJSON(w, http.StatusOK, c.Countdown.Snapshot(r.URL.Query().Get("tz")))
}

func metaDescription(site SiteInfo) string {
	desc := strings.Join(strings.Fields(site.Description), " ")
	if desc == "" {
		return site.AppName + " is launching soon."
	}
	return desc
}
