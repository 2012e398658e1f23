// Package visits keeps the best-effort per-path visit counter.
//
// Counts are kept twice: a per-client record serialized into a cookie, and a
// durable aggregate in SQLite. Both follow the same read, increment, write
// cycle and neither is allowed to fail a page render.
package visits

import (
	"encoding/base64"
	"encoding/json"
	"sort"
	"strings"
)

// Stats maps a page path to the number of recorded visits.
type Stats map[string]int

// Increment adds one visit for path and returns the new count.
func (s Stats) Increment(path string) int {
	s[path]++
	return s[path]
}

// Total sums every path count.
func (s Stats) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// PageCount is one row of a sorted stats listing.
type PageCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Sorted returns the stats ordered by count descending, then path.
func (s Stats) Sorted() []PageCount {
	out := make([]PageCount, 0, len(s))
	for p, n := range s {
		out = append(out, PageCount{Path: p, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// Encode serializes stats for client storage. The JSON is base64url encoded
// so it is a valid cookie value.
func Encode(s Stats) string {
	if s == nil {
		s = Stats{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode parses a stored record. Absent or unparsable input yields empty
// stats; negative counts are dropped.
func Decode(raw string) Stats {
	out := Stats{}
	if raw == "" {
		return out
	}
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return out
	}
	var parsed map[string]int
	if err := json.Unmarshal(b, &parsed); err != nil {
		return out
	}
	for p, n := range parsed {
		if n > 0 {
			out[p] = n
		}
	}
	return out
}

// Key normalizes a request path into the counter key. Trailing slashes are
// dropped except for the root.
func Key(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}

// IsBot checks if the User-Agent is likely a bot/crawler. Bots are not
// counted.
func IsBot(ua string) bool {
	ua = strings.ToLower(ua)
	bots := []string{
		"bot", "crawler", "spider", "crawl", "slurp", "scrape",
		"googlebot", "bingbot", "yandex", "baidu", "duckduckbot",
		"facebookexternalhit", "twitterbot", "linkedinbot",
		"ahrefsbot", "semrushbot", "mj12bot", "dotbot",
	}
	for _, bot := range bots {
		if strings.Contains(ua, bot) {
			return true
		}
	}
	return false
}
