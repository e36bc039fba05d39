package identity

import (
	"math/rand"
	"strings"
	"testing"
)

func TestUserAgent_Families(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		want    string
	}{
		{"chrome", "chrome_120", "Chrome/100"},
		{"safari", "safari_17.0", "Version/15.0 Safari"},
		{"safari_ios", "safari_ios_17.2", "Version/15.0 Safari"},
		{"edge", "edge_122", "Edg/"},
		{"firefox", "firefox_128", "Firefox/"},
		{"unknown_falls_back_to_chrome", "netscape_4", "Chrome/100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserAgent(tt.profile)
			if !strings.Contains(got, tt.want) {
				t.Errorf("UserAgent(%q) = %q, want substring %q", tt.profile, got, tt.want)
			}
		})
	}
}

func TestPick_Deterministic(t *testing.T) {
	a := Pick(rand.New(rand.NewSource(42)))
	b := Pick(rand.New(rand.NewSource(42)))

	if a != b {
		t.Errorf("same seed should pick same profile: %v vs %v", a, b)
	}
	if a.UserAgent == "" {
		t.Error("picked profile must carry a user agent")
	}
}

func TestPick_FromCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		p := Pick(rng)
		found := false
		for _, name := range Profiles {
			if p.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("picked profile %q not in catalog", p.Name)
		}
	}
}
