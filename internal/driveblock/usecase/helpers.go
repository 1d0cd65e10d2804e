package usecase

import (
	"fmt"
	"strings"
	"time"

	"drive-time-planner/internal/model"
)

// summaryPrefix is the human-facing label convention. Ownership is decided
// by the metadata tag, never by this string.
const summaryPrefix = "Drive to "

// equivalenceTolerance absorbs clock and estimate jitter so an unchanged
// meeting does not get patched on every poll.
const equivalenceTolerance = 2 * time.Minute

// isOnlineLocation reports whether the location is a meeting link rather
// than a physical place.
func isOnlineLocation(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// blockSummary renders "Drive to <first comma-segment of location>", with
// the source title appended in parentheses when present.
func blockSummary(location, sourceTitle string) string {
	place := location
	if idx := strings.Index(location, ","); idx >= 0 {
		place = location[:idx]
	}
	place = strings.TrimSpace(place)

	summary := summaryPrefix + place
	if sourceTitle != "" {
		summary += " (" + sourceTitle + ")"
	}
	return summary
}

// blockDescription is informational only and never parsed back.
func blockDescription(ev model.SourceEvent, origin string) string {
	var b strings.Builder
	b.WriteString("Automatically scheduled drive time.\n\n")
	fmt.Fprintf(&b, "Event: %s\n", ev.ID)
	if ev.HTMLLink != "" {
		fmt.Fprintf(&b, "Link: %s\n", ev.HTMLLink)
	}
	fmt.Fprintf(&b, "From: %s\n", origin)
	fmt.Fprintf(&b, "To: %s\n", ev.Location)
	return b.String()
}

// parseCalendarIDs splits the configured comma-separated list, trimming
// whitespace and dropping empty entries.
func parseCalendarIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// withinTolerance reports whether two instants are within the equivalence
// tolerance of each other.
func withinTolerance(a, b time.Time) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= equivalenceTolerance
}

// equivalent reports whether the existing block already matches the desired
// one closely enough that no patch is needed.
func equivalent(existing, desired model.DriveBlock) bool {
	return existing.SourceEventID == desired.SourceEventID &&
		existing.Summary == desired.Summary &&
		withinTolerance(existing.Start, desired.Start) &&
		withinTolerance(existing.End, desired.End)
}
