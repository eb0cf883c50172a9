package content

import "testing"

func TestLoadEmbeddedContent(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(c.Home.Steps); got != 5 {
		t.Errorf("expected 5 workflow steps, got %d", got)
	}
	if got := len(c.Home.Features()); got != 3 {
		t.Errorf("expected 3 features, got %d", got)
	}
	if got := c.AdCreatives.Formats["bumper"]; got != 6 {
		t.Errorf("bumper duration = %d", got)
	}
	if got := Max(c.Dashboard.AdPerformance); got != 55 {
		t.Errorf("max ad performance = %v", got)
	}
	if len(c.Dashboard.Stats) != 3 || len(c.Dashboard.Metrics) != 3 {
		t.Errorf("unexpected dashboard cards: %d stats, %d metrics", len(c.Dashboard.Stats), len(c.Dashboard.Metrics))
	}
}

func TestParseRejectsEmptyContent(t *testing.T) {
	if _, err := Parse([]byte("home: {}\n")); err == nil {
		t.Fatalf("expected error for content without steps")
	}
	if _, err := Parse([]byte("home: [")); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}
