package domain

import "time"

// Totals are the activity counters cached in a UserStatRecord.
type Totals struct {
	ChatSessions      int
	AudioCalls        int
	MeditationMinutes int
	QuotesViewed      int
}

type MeditationSummary struct {
	TotalSessions int
	TotalMinutes  int
	AvgRating     float64
}

type QuoteSummary struct {
	TotalViewed int
	TotalLiked  int
}

// TotalsFor scans the source tables; it is the only producer of stat values.
func (d Document) TotalsFor(userID string) Totals {
	totals := Totals{}
	for _, session := range d.ChatSessions {
		if session.UserID == userID {
			totals.ChatSessions++
		}
	}
	for _, call := range d.AudioCalls {
		if call.UserID == userID {
			totals.AudioCalls++
		}
	}
	totals.MeditationMinutes = d.MeditationSummaryFor(userID).TotalMinutes
	totals.QuotesViewed = d.QuoteSummaryFor(userID).TotalViewed
	return totals
}

// MeditationSummaryFor averages only rated sessions; unrated ones still count
// toward sessions and minutes.
func (d Document) MeditationSummaryFor(userID string) MeditationSummary {
	summary := MeditationSummary{}
	rated, ratingSum := 0, 0
	for _, session := range d.MeditationSessions {
		if session.UserID != userID {
			continue
		}
		summary.TotalSessions++
		summary.TotalMinutes += session.Duration
		if session.Rating != nil {
			rated++
			ratingSum += *session.Rating
		}
	}
	if rated > 0 {
		summary.AvgRating = float64(ratingSum) / float64(rated)
	}
	return summary
}

// QuoteSummaryFor counts view records, so a quote liked on two views counts twice.
func (d Document) QuoteSummaryFor(userID string) QuoteSummary {
	summary := QuoteSummary{}
	for _, view := range d.QuoteViews {
		if view.UserID != userID {
			continue
		}
		summary.TotalViewed++
		if view.Liked {
			summary.TotalLiked++
		}
	}
	return summary
}

// EnsureStats returns the user's stat row, materializing a zeroed one if needed.
func (d *Document) EnsureStats(userID string, now time.Time, newID func() string) (UserStatRecord, bool) {
	if stats, ok := d.UserStats[userID]; ok {
		return stats, false
	}
	stamp := FormatTime(now)
	stats := UserStatRecord{ID: newID(), UserID: userID, CreatedAt: stamp, UpdatedAt: stamp}
	d.UserStats[userID] = stats
	return stats, true
}

// RefreshStats recomputes the user's counters from the source tables.
func (d *Document) RefreshStats(userID string, now time.Time, newID func() string) UserStatRecord {
	stats, _ := d.EnsureStats(userID, now, newID)
	totals := d.TotalsFor(userID)
	stamp := FormatTime(now)
	stats.TotalChatSessions = totals.ChatSessions
	stats.TotalAudioCalls = totals.AudioCalls
	stats.TotalMeditationMinutes = totals.MeditationMinutes
	stats.TotalQuotesViewed = totals.QuotesViewed
	stats.LastActivity = stamp
	stats.UpdatedAt = stamp
	d.UserStats[userID] = stats
	return stats
}
