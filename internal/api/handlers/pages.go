package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/adstudio/internal/api/middleware"
	"github.com/chynybekuuludastan/adstudio/internal/models"
	"github.com/chynybekuuludastan/adstudio/internal/service/lifecycle"
	"github.com/chynybekuuludastan/adstudio/internal/web/content"
	"github.com/chynybekuuludastan/adstudio/internal/web/ui"
)

// PageHandler serves the display pages
type PageHandler struct {
	Content *content.Content
	Links   ClipLinker
}

// NewPageHandler creates a new page handler
func NewPageHandler(c *content.Content, links ClipLinker) *PageHandler {
	return &PageHandler{
		Content: c,
		Links:   links,
	}
}

// Home renders the landing page
func (h *PageHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", "Home", fiber.Map{
		"Home": h.Content.Home,
	})
}

// Dashboard renders the dashboard with its mock figures
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "dashboard", "Dashboard", fiber.Map{
		"Dashboard": h.Content.Dashboard,
	})
}

// clipView is a highlight ready for display
type clipView struct {
	Text        string
	Start       string
	End         string
	Clock       string
	DownloadURL string
	StreamURL   string
}

func newClipViews(highlights []models.Highlight, links ClipLinker) []clipView {
	clips := make([]clipView, 0, len(highlights))
	for _, hl := range highlights {
		clips = append(clips, clipView{
			Text:        hl.Text,
			Start:       ui.Timestamp(hl.StartTime),
			End:         ui.Timestamp(hl.EndTime),
			Clock:       ui.Clock(hl.Duration()),
			DownloadURL: links.DownloadURL(hl.ClipPath),
			StreamURL:   links.StreamURL(hl.ClipPath),
		})
	}
	return clips
}

type resultsView struct {
	Title   string
	Shorts  []clipView
	Summary []string
}

// Results renders the shorts of the session's latest analysis, or the
// placeholder when nothing has been analyzed yet
func (h *PageHandler) Results(c *fiber.Ctx) error {
	view := resultsView{Summary: h.Content.Results.Placeholder.Summary}

	if w := middleware.Workspace(c); w != nil {
		snap := w.Upload.Snapshot()
		if snap.State == lifecycle.StateSuccess && snap.Result != nil {
			view = newResultsView(snap.Result, h.Links)
		}
	}

	return render(c, "results", "Results", fiber.Map{
		"Results":     view,
		"Placeholder": h.Content.Results.Placeholder,
	})
}

func newResultsView(result *models.AnalysisResult, links ClipLinker) resultsView {
	clips := 0
	for _, hl := range result.Highlights {
		if hl.ClipPath != "" {
			clips++
		}
	}

	return resultsView{
		Title:  result.Title,
		Shorts: newClipViews(result.Highlights, links),
		Summary: []string{
			fmt.Sprintf("%d key moments identified", len(result.Highlights)),
			fmt.Sprintf("%d highlight clips generated", clips),
			fmt.Sprintf("%d keywords extracted", len(result.Keywords)),
		},
	}
}
