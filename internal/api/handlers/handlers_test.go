package handlers

import (
	"testing"

	"github.com/chynybekuuludastan/adstudio/internal/models"
	"github.com/chynybekuuludastan/adstudio/internal/service/lifecycle"
	"github.com/chynybekuuludastan/adstudio/internal/session"
	"github.com/chynybekuuludastan/adstudio/internal/web/content"
)

type fakeLinks struct{}

func (fakeLinks) DownloadURL(clipPath string) string {
	if clipPath == "" {
		return ""
	}
	return "dl:" + clipPath
}

func (fakeLinks) StreamURL(clipPath string) string {
	if clipPath == "" {
		return ""
	}
	return "st:" + clipPath
}

func TestBackPath(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/"},
		{"http://localhost:3000/dashboard", "/dashboard"},
		{"http://localhost:3000/upload?notice=busy", "/upload?notice=busy"},
		{"/results", "/results"},
		{"https://evil.example.com", "/"},
		{"http://localhost:3000//evil.example.com", "/"},
		{"https://evil.example.com/%5Cevil.example.com", "/"},
		{"https://evil.example.com/%5C%5Cevil.example.com", "/"},
		{"http://localhost:3000/upload%5C..", "/"},
		{"::not a url", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.referer, func(t *testing.T) {
			if got := backPath(tt.referer); got != tt.want {
				t.Errorf("backPath(%q) = %q, want %q", tt.referer, got, tt.want)
			}
		})
	}
}

func TestAdTypeNames(t *testing.T) {
	tests := []struct {
		in    string
		norm  string
		label string
	}{
		{"bumper", "bumper", "Bumper Ads"},
		{"Non_Skippable", "non-skippable", "Non-Skippable Ads"},
		{" skippable ", "skippable", "Skippable Ads"},
		{"", "other", "Other Ads"},
	}

	for _, tt := range tests {
		norm := normalizeAdType(tt.in)
		if norm != tt.norm {
			t.Errorf("normalizeAdType(%q) = %q, want %q", tt.in, norm, tt.norm)
		}
		if label := adTypeLabel(norm); label != tt.label {
			t.Errorf("adTypeLabel(%q) = %q, want %q", norm, label, tt.label)
		}
	}
}

func TestResultsViewCounts(t *testing.T) {
	result := &models.AnalysisResult{
		Title:    "T",
		Keywords: []string{"a", "b"},
		Highlights: []models.Highlight{
			{Text: "h1", StartTime: 0, EndTime: 5, ClipPath: "/out/h1.mp4"},
			{Text: "h2", StartTime: 10, EndTime: 75.5},
		},
	}

	view := newResultsView(result, fakeLinks{})

	if len(view.Shorts) != len(result.Highlights) {
		t.Fatalf("expected %d shorts, got %d", len(result.Highlights), len(view.Shorts))
	}
	if view.Shorts[0].DownloadURL != "dl:/out/h1.mp4" || view.Shorts[0].StreamURL != "st:/out/h1.mp4" {
		t.Errorf("unexpected links %+v", view.Shorts[0])
	}
	if view.Shorts[1].DownloadURL != "" {
		t.Errorf("a highlight without a clip must have no link")
	}
	if view.Shorts[1].Clock != "1:06" {
		t.Errorf("clock = %s", view.Shorts[1].Clock)
	}

	want := []string{"2 key moments identified", "1 highlight clips generated", "2 keywords extracted"}
	for i, line := range want {
		if view.Summary[i] != line {
			t.Errorf("summary[%d] = %q, want %q", i, view.Summary[i], line)
		}
	}
}

func TestCreativesGroupedByAdType(t *testing.T) {
	h := NewAdCreativesHandler(content.AdCreatives{
		Formats: map[string]int{"bumper": 6, "non-skippable": 15, "skippable": 30},
	}, fakeLinks{}, "")

	snap := session.AdCreativesSnapshot{
		State: lifecycle.StateSuccess,
		Result: &models.AdCreativeResult{
			Title: "Demo",
			AdCreatives: []models.AdCreative{
				{AdType: "skippable", Headline: "S", StartTime: 0, EndTime: 30},
				{AdType: "promo", Headline: "P"},
				{AdType: "bumper", Headline: "B", ClipPath: "/out/b.mp4", StartTime: 1, EndTime: 7},
				{AdType: "Non_Skippable", Headline: "N", EndTime: 15},
			},
			AdStrategy: models.AdStrategy{CampaignObjective: "Brand awareness"},
		},
	}

	view := h.newCreativesView(snap)

	var order []string
	for _, g := range view.Groups {
		order = append(order, g.AdType)
	}
	want := []string{"bumper", "non-skippable", "skippable", "promo"}
	if len(order) != len(want) {
		t.Fatalf("groups = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("groups = %v, want %v", order, want)
		}
	}

	bumper := view.Groups[0]
	if bumper.TargetSeconds != 6 || bumper.Creatives[0].Seconds != "6" || bumper.Creatives[0].DownloadURL != "dl:/out/b.mp4" {
		t.Errorf("unexpected bumper group %+v", bumper)
	}
	if view.Groups[3].TargetSeconds != 0 {
		t.Errorf("unknown formats have no target duration")
	}
	if view.Strategy == nil || view.Strategy.CampaignObjective != "Brand awareness" {
		t.Errorf("unexpected strategy %+v", view.Strategy)
	}
}
