package geo

import "strings"

// HeaderName is the edge-injected country header set by the CDN.
const HeaderName = "CF-IPCountry"

// Sentinel values the edge network sends when it could not determine a
// location (XX = unknown, T1 = Tor exit node).
const (
	SentinelUnknown = "XX"
	SentinelTor     = "T1"
)

// Config holds the bonus configuration shown for a resolved country.
type Config struct {
	Name  string
	Bonus string
}

// supportedCountries maps ISO-2 country codes to their bonus configuration.
// Loaded once, never mutated at runtime.
var supportedCountries = map[string]Config{
	"FR": {Name: "France", Bonus: "200% up to €500 + 500 Free Spins"},
	"GB": {Name: "United Kingdom", Bonus: "100% up to £500 + 20 Free Spins"},
	"DE": {Name: "Germany", Bonus: "150% up to €1000 + 100 Free Spins"},
	"ES": {Name: "Spain", Bonus: "100% up to €300 + 50 Free Spins"},
	"IT": {Name: "Italy", Bonus: "125% up to €800 + 75 Free Spins"},
}

// DefaultConfig is served when no usable country signal exists or the code
// is not in the supported set.
var DefaultConfig = Config{
	Name:  "International",
	Bonus: "100% up to $200 + 25 Free Spins",
}

func isSentinel(code string) bool {
	return code == SentinelUnknown || code == SentinelTor
}

// Resolve maps the edge header value and the client-supplied fallback
// parameter to a bonus configuration. The header wins when it carries a real
// code; otherwise the fallback is tried. Unknown codes resolve to
// DefaultConfig. Resolve never fails.
func Resolve(header, fallback string) Config {
	code := strings.ToUpper(strings.TrimSpace(header))
	if code == "" || isSentinel(code) {
		code = strings.ToUpper(strings.TrimSpace(fallback))
	}
	if cfg, ok := supportedCountries[code]; ok {
		return cfg
	}
	return DefaultConfig
}

// Usable reports whether the request carries any non-sentinel country
// signal at all. The list endpoint uses this to decide whether the
// placeholder fallback applies.
func Usable(header, fallback string) bool {
	code := strings.ToUpper(strings.TrimSpace(header))
	if code != "" && !isSentinel(code) {
		return true
	}
	return strings.TrimSpace(fallback) != ""
}

// IsSupported reports whether code is in the supported country set.
func IsSupported(code string) bool {
	_, ok := supportedCountries[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}
