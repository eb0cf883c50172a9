// internal/models/models.go
package models

// AnalysisRequest is the payload of POST /analyze/
type AnalysisRequest struct {
	URL string `json:"url"`
}

// Highlight is a detected time interval of interest within a source video
type Highlight struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	ClipPath  string  `json:"clip_path,omitempty"`
}

// Duration returns the highlight length in seconds
func (h Highlight) Duration() float64 {
	if h.EndTime < h.StartTime {
		return 0
	}
	return h.EndTime - h.StartTime
}

// MarketingInsights accompanies an analysis when the backend produces it
type MarketingInsights struct {
	TargetAudience       string   `json:"target_audience,omitempty"`
	AdCopyThemes         []string `json:"ad_copy_themes,omitempty"`
	ContentOpportunities []string `json:"content_opportunities,omitempty"`
}

// Empty reports whether no insight field is set
func (m *MarketingInsights) Empty() bool {
	return m == nil || (m.TargetAudience == "" && len(m.AdCopyThemes) == 0 && len(m.ContentOpportunities) == 0)
}

// AnalysisResult is the decoded response of POST /analyze/
type AnalysisResult struct {
	VideoID           string             `json:"video_id,omitempty"`
	Title             string             `json:"title"`
	Summary           string             `json:"summary"`
	Keywords          []string           `json:"keywords"`
	Highlights        []Highlight        `json:"highlights"`
	MarketingInsights *MarketingInsights `json:"marketing_insights,omitempty"`
}

// LocalVideoRequest is the payload of POST /process-local-video/
type LocalVideoRequest struct {
	FilePath string `json:"file_path"`
}

// AdCreative is a single generated ad unit
type AdCreative struct {
	AdType         string  `json:"ad_type"` // bumper, non-skippable, skippable
	Headline       string  `json:"headline"`
	Description    string  `json:"description"`
	CallToAction   string  `json:"call_to_action"`
	TargetAudience string  `json:"target_audience"`
	ClipPath       string  `json:"clip_path"`
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
}

// Duration returns the creative clip length in seconds
func (a AdCreative) Duration() float64 {
	if a.EndTime < a.StartTime {
		return 0
	}
	return a.EndTime - a.StartTime
}

// AdStrategy holds campaign-level recommendations for a batch of creatives
type AdStrategy struct {
	CampaignObjective        string   `json:"campaign_objective"`
	AudienceSegments         []string `json:"audience_segments"`
	BiddingStrategy          string   `json:"bidding_strategy"`
	TargetingRecommendations []string `json:"targeting_recommendations"`
	PerformanceMetrics       []string `json:"performance_metrics"`
}

// AdCreativeResult is the decoded response of POST /process-local-video/
type AdCreativeResult struct {
	VideoID     string       `json:"video_id"`
	Title       string       `json:"title"`
	AdCreatives []AdCreative `json:"ad_creatives"`
	AdStrategy  AdStrategy   `json:"ad_strategy"`
}

// Headlines lists the headlines of all creatives in order
func (r *AdCreativeResult) Headlines() []string {
	out := make([]string, 0, len(r.AdCreatives))
	for _, ad := range r.AdCreatives {
		if ad.Headline != "" {
			out = append(out, ad.Headline)
		}
	}
	return out
}

// Descriptions lists the descriptions of all creatives in order
func (r *AdCreativeResult) Descriptions() []string {
	out := make([]string, 0, len(r.AdCreatives))
	for _, ad := range r.AdCreatives {
		if ad.Description != "" {
			out = append(out, ad.Description)
		}
	}
	return out
}
