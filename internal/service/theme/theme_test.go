package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParseAndString(t *testing.T) {
	tests := []struct {
		value string
		want  Preference
		class string
	}{
		{"dark", Dark, "dark"},
		{"light", Light, ""},
		{"", Light, ""},
		{"DARK", Light, ""},
	}

	for _, tt := range tests {
		got := Parse(tt.value)
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.value, got, tt.want)
		}
		if got.RootClass() != tt.class {
			t.Errorf("RootClass(%q) = %q", tt.value, got.RootClass())
		}
	}
}

func TestToggleTwiceRoundTrips(t *testing.T) {
	for _, start := range []Preference{Light, Dark} {
		if got := start.Toggle().Toggle(); got != start {
			t.Errorf("toggle twice from %s gave %s", start, got)
		}
	}
}

func TestToggleRequestWritesCookie(t *testing.T) {
	app := fiber.New()
	app.Post("/toggle", func(c *fiber.Ctx) error {
		return c.SendString(ToggleRequest(c, false).String())
	})

	cookie := "light"
	for i, want := range []string{"dark", "light"} {
		req := httptest.NewRequest(http.MethodPost, "/toggle", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}

		var saved string
		for _, c := range resp.Cookies() {
			if c.Name == CookieName {
				saved = c.Value
			}
		}
		if saved != want {
			t.Fatalf("request %d: cookie = %q, want %q", i, saved, want)
		}
		cookie = saved
	}

	if cookie != "light" {
		t.Errorf("round trip should restore the original value, got %q", cookie)
	}
}
