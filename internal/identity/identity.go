// Package identity selects a browser impersonation profile for a client.
//
// A profile is picked once at client construction and reused for every
// request that client issues; rotating identity requires a new client.
package identity

import (
	"math/rand"
	"strings"
)

// Profiles is the catalog of named browser/version combinations a client
// may impersonate.
var Profiles = []string{
	"chrome_100", "chrome_101", "chrome_104", "chrome_105", "chrome_106", "chrome_107",
	"chrome_108", "chrome_109", "chrome_114", "chrome_116", "chrome_117", "chrome_118",
	"chrome_119", "chrome_120", "chrome_123", "chrome_124", "chrome_126", "chrome_127",
	"chrome_128", "chrome_129", "chrome_130", "chrome_131", "chrome_133",
	"safari_ios_16.5", "safari_ios_17.2", "safari_ios_17.4.1", "safari_ios_18.1.1",
	"safari_15.3", "safari_15.5", "safari_15.6.1", "safari_16", "safari_16.5",
	"safari_17.0", "safari_17.2.1", "safari_17.4.1", "safari_17.5",
	"safari_18", "safari_18.2",
	"safari_ipad_18",
	"edge_101", "edge_122", "edge_127", "edge_131",
	"firefox_109", "firefox_117", "firefox_128", "firefox_133", "firefox_135",
}

// OperatingSystems is the catalog of OS names a profile may claim.
var OperatingSystems = []string{"android", "ios", "linux", "macos", "windows"}

// User-agent strings per browser family. The family is matched by profile
// prefix; unrecognized families fall back to desktop Chrome.
const (
	chromeUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.127 Safari/537.36"
	safariUA  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.0 Safari/605.1.15"
	edgeUA    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36 Edg/122.0.0.0"
	firefoxUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0"
)

// Profile is an impersonation identity fixed for a client's lifetime.
type Profile struct {
	Name      string
	UserAgent string
}

// Pick selects a profile uniformly at random from the catalog.
// The rand source is injectable so selection is deterministic in tests.
func Pick(rng *rand.Rand) Profile {
	name := Profiles[rng.Intn(len(Profiles))]
	return Profile{Name: name, UserAgent: UserAgent(name)}
}

// UserAgent derives the user-agent string for a profile name by its
// browser family prefix.
func UserAgent(profile string) string {
	switch {
	case strings.HasPrefix(profile, "chrome_"):
		return chromeUA
	case strings.HasPrefix(profile, "safari_"):
		return safariUA
	case strings.HasPrefix(profile, "edge_"):
		return edgeUA
	case strings.HasPrefix(profile, "firefox_"):
		return firefoxUA
	default:
		return chromeUA
	}
}
