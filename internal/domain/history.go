package domain

import "time"

// HistoryEntry is one recently opened folder.
// Fields are ordered to minimize memory padding.
type HistoryEntry struct {
	Path       string    `json:"path"`
	LastOpened time.Time `json:"lastOpened"`
	Count      int       `json:"count"`
}

// TouchHistory returns entries with path recorded at now: an existing entry
// is refreshed and moved to the front, a new one is prepended, and the
// result is truncated to limit. The input slice is not modified.
func TouchHistory(entries []HistoryEntry, path string, now time.Time, limit int) []HistoryEntry {
	touched := HistoryEntry{Path: path, LastOpened: now, Count: 1}

	rest := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Path == path {
			touched.Count = e.Count + 1
			continue
		}
		rest = append(rest, e)
	}

	out := append([]HistoryEntry{touched}, rest...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
