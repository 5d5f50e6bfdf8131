package render

import (
	"strings"
	"time"
)

// publishedLayouts are the shapes the backend is known to send: RSS
// pubDate strings from Google News, and ISO timestamps.
var publishedLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC822,
	time.RFC822Z,
}

// publishedFormat matches the card meta line, e.g. "Oct 14, 03:15 PM".
const publishedFormat = "Jan 2, 03:04 PM"

// FormatPublished formats a backend timestamp in loc. Anything that does
// not parse is returned unchanged.
func FormatPublished(raw string, loc *time.Location) string {
	s := strings.TrimSpace(raw)
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc).Format(publishedFormat)
		}
	}
	return raw
}
