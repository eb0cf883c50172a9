// Package content loads the static copy and mock figures of the display pages.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Step is one stage of the product workflow
type Step struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Banner is a heading block with a call to action
type Banner struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

type Home struct {
	Hero    Banner `yaml:"hero"`
	Steps   []Step `yaml:"steps"`
	Closing Banner `yaml:"closing"`
}

// Features returns the first three workflow steps
func (h Home) Features() []Step {
	if len(h.Steps) <= 3 {
		return h.Steps
	}
	return h.Steps[:3]
}

type ResultsPlaceholder struct {
	Highlight string   `yaml:"highlight"`
	Duration  string   `yaml:"duration"`
	Summary   []string `yaml:"summary"`
}

type Results struct {
	Placeholder ResultsPlaceholder `yaml:"placeholder"`
}

type SampleCreative struct {
	Headline     string   `yaml:"headline"`
	Description  string   `yaml:"description"`
	Headlines    []string `yaml:"headlines"`
	Descriptions []string `yaml:"descriptions"`
}

type AdCreatives struct {
	Sample SampleCreative `yaml:"sample"`
	// Formats maps ad type to its target duration in seconds
	Formats map[string]int `yaml:"formats"`
}

// Stat is a labelled figure on the dashboard
type Stat struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
	Icon  string `yaml:"icon"`
	Tone  string `yaml:"tone"`
}

// Point is one bar of a chart
type Point struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

type Project struct {
	Title string `yaml:"title"`
	Info  string `yaml:"info"`
}

type Dashboard struct {
	Stats         []Stat    `yaml:"stats"`
	VideoTrend    []Point   `yaml:"video_trend"`
	AdPerformance []Point   `yaml:"ad_performance"`
	Metrics       []Stat    `yaml:"metrics"`
	Projects      []Project `yaml:"projects"`
}

// Max returns the largest value of points
func Max(points []Point) float64 {
	max := 0.0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

// Content is the copy of every display page
type Content struct {
	Home        Home        `yaml:"home"`
	Results     Results     `yaml:"results"`
	AdCreatives AdCreatives `yaml:"ad_creatives"`
	Dashboard   Dashboard   `yaml:"dashboard"`
}

// Load parses the embedded content file
func Load() (*Content, error) {
	return Parse(defaultContent)
}

// Parse decodes content from YAML
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse page content: %w", err)
	}
	if len(c.Home.Steps) == 0 {
		return nil, fmt.Errorf("parse page content: no workflow steps")
	}
	return &c, nil
}
