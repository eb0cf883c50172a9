package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/adstudio/internal/api/middleware"
	"github.com/chynybekuuludastan/adstudio/internal/models"
	"github.com/chynybekuuludastan/adstudio/internal/session"
)

// AnalysisHandler serves the Upload page, which analyzes a YouTube video
type AnalysisHandler struct {
	Links ClipLinker
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(links ClipLinker) *AnalysisHandler {
	return &AnalysisHandler{Links: links}
}

type analysisView struct {
	VideoID    string
	Title      string
	Summary    string
	Keywords   string
	Highlights []clipView
	Insights   *models.MarketingInsights
}

// ShowUpload renders the Upload page with the state of the session's panel
func (h *AnalysisHandler) ShowUpload(c *fiber.Ctx) error {
	w := middleware.Workspace(c)
	snap := w.Upload.Snapshot()

	input := ""
	if snap.Request != nil {
		input = snap.Request.URL
	}
	pv := newPanelView(snap, input, "/upload/retry")

	data := fiber.Map{"Panel": pv}
	if snap.Result != nil {
		data["Analysis"] = h.newAnalysisView(snap)
	}

	return render(c, "upload", "Upload", liveData(data, pv))
}

func (h *AnalysisHandler) newAnalysisView(snap session.UploadSnapshot) analysisView {
	result := snap.Result
	view := analysisView{
		VideoID:    result.VideoID,
		Title:      result.Title,
		Summary:    result.Summary,
		Keywords:   strings.Join(result.Keywords, ", "),
		Highlights: newClipViews(result.Highlights, h.Links),
	}
	if !result.MarketingInsights.Empty() {
		view.Insights = result.MarketingInsights
	}
	return view
}

// SubmitUpload starts the analysis of the submitted YouTube URL
func (h *AnalysisHandler) SubmitUpload(c *fiber.Ctx) error {
	w := middleware.Workspace(c)
	err := w.Upload.Submit(models.AnalysisRequest{URL: c.FormValue("url")})
	return redirectAfter(c, "/upload", err)
}

// RetryUpload re-sends the last analysis request
func (h *AnalysisHandler) RetryUpload(c *fiber.Ctx) error {
	w := middleware.Workspace(c)
	return redirectAfter(c, "/upload", w.Upload.Retry())
}
