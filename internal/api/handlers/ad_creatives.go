package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/adstudio/internal/api/middleware"
	"github.com/chynybekuuludastan/adstudio/internal/models"
	"github.com/chynybekuuludastan/adstudio/internal/session"
	"github.com/chynybekuuludastan/adstudio/internal/web/content"
	"github.com/chynybekuuludastan/adstudio/internal/web/ui"
)

// adTypeOrder is the display order of known ad formats
var adTypeOrder = []string{"bumper", "non-skippable", "skippable"}

// AdCreativesHandler serves the Ad Creatives page
type AdCreativesHandler struct {
	Content     content.AdCreatives
	Links       ClipLinker
	DefaultPath string
}

// NewAdCreativesHandler creates a new ad creatives handler. A non-empty
// defaultPath is submitted on the first visit of each session.
func NewAdCreativesHandler(c content.AdCreatives, links ClipLinker, defaultPath string) *AdCreativesHandler {
	return &AdCreativesHandler{
		Content:     c,
		Links:       links,
		DefaultPath: defaultPath,
	}
}

type creativeView struct {
	Headline       string
	Description    string
	CallToAction   string
	TargetAudience string
	Seconds        string
	DownloadURL    string
}

type creativeGroup struct {
	AdType        string
	Label         string
	TargetSeconds int
	Creatives     []creativeView
}

type creativesView struct {
	Title    string
	Groups   []creativeGroup
	Strategy *models.AdStrategy
}

// ShowAdCreatives renders the Ad Creatives page
func (h *AdCreativesHandler) ShowAdCreatives(c *fiber.Ctx) error {
	w := middleware.Workspace(c)
	w.AutoSubmit(h.DefaultPath)
	snap := w.AdCreatives.Snapshot()

	input := h.DefaultPath
	if snap.Request != nil {
		input = snap.Request.FilePath
	}
	pv := newPanelView(snap, input, "/ad-creatives/retry")

	sample := h.Content.Sample
	data := fiber.Map{"Panel": pv}
	if snap.Result != nil {
		data["Creatives"] = h.newCreativesView(snap)
		if headlines := snap.Result.Headlines(); len(headlines) > 0 {
			sample.Headlines = headlines
		}
		if descriptions := snap.Result.Descriptions(); len(descriptions) > 0 {
			sample.Descriptions = descriptions
		}
	}
	data["Sample"] = sample

	return render(c, "ad-creatives", "Ad Creatives", liveData(data, pv))
}

func (h *AdCreativesHandler) newCreativesView(snap session.AdCreativesSnapshot) creativesView {
	result := snap.Result
	view := creativesView{Title: result.Title}

	groups := make(map[string]*creativeGroup)
	var order []string
	for _, adType := range adTypeOrder {
		groups[adType] = h.newGroup(adType)
		order = append(order, adType)
	}

	for _, ad := range result.AdCreatives {
		adType := normalizeAdType(ad.AdType)
		g, ok := groups[adType]
		if !ok {
			g = h.newGroup(adType)
			groups[adType] = g
			order = append(order, adType)
		}
		g.Creatives = append(g.Creatives, creativeView{
			Headline:       ad.Headline,
			Description:    ad.Description,
			CallToAction:   ad.CallToAction,
			TargetAudience: ad.TargetAudience,
			Seconds:        ui.Timestamp(ad.Duration()),
			DownloadURL:    h.Links.DownloadURL(ad.ClipPath),
		})
	}

	for _, adType := range order {
		if g := groups[adType]; len(g.Creatives) > 0 {
			view.Groups = append(view.Groups, *g)
		}
	}

	s := result.AdStrategy
	if s.CampaignObjective != "" || s.BiddingStrategy != "" || len(s.AudienceSegments) > 0 {
		view.Strategy = &s
	}
	return view
}

func (h *AdCreativesHandler) newGroup(adType string) *creativeGroup {
	return &creativeGroup{
		AdType:        adType,
		Label:         adTypeLabel(adType),
		TargetSeconds: h.Content.Formats[adType],
	}
}

// normalizeAdType maps "Non_Skippable" and "non skippable" to "non-skippable"
func normalizeAdType(adType string) string {
	adType = strings.ToLower(strings.TrimSpace(adType))
	adType = strings.NewReplacer("_", "-", " ", "-").Replace(adType)
	if adType == "" {
		return "other"
	}
	return adType
}

// adTypeLabel turns "non-skippable" into "Non-Skippable Ads"
func adTypeLabel(adType string) string {
	parts := strings.Split(adType, "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "-") + " Ads"
}

// SubmitAdCreatives starts ad generation for the submitted file path
func (h *AdCreativesHandler) SubmitAdCreatives(c *fiber.Ctx) error {
	w := middleware.Workspace(c)
	err := w.AdCreatives.Submit(models.LocalVideoRequest{FilePath: c.FormValue("file_path")})
	return redirectAfter(c, "/ad-creatives", err)
}

// RetryAdCreatives re-sends the last ad generation request
func (h *AdCreativesHandler) RetryAdCreatives(c *fiber.Ctx) error {
	w := middleware.Workspace(c)
	return redirectAfter(c, "/ad-creatives", w.AdCreatives.Retry())
}
