package horoscope

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the public horoscope API root. The period is appended as a path segment.
const DefaultBaseURL = "https://horoscope-app-api.vercel.app/api/v1/get-horoscope"

// Request describes one horoscope lookup.
type Request struct {
	Sign   Sign
	Period Period
	// Day is only honoured by the daily endpoint: TODAY, TOMORROW, YESTERDAY or YYYY-MM-DD.
	Day string
}

// URL builds the endpoint URL for r under base. An empty base means DefaultBaseURL.
func (r Request) URL(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	period := r.Period
	if period == "" {
		period = Daily
	}

	q := url.Values{}
	q.Set("sign", string(r.Sign))
	if r.Day != "" && period == Daily {
		q.Set("day", strings.ToUpper(r.Day))
	}

	return strings.TrimRight(base, "/") + "/" + string(period) + "?" + q.Encode()
}
