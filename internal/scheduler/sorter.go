package scheduler

import (
	"sort"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// ClassificationPriority returns a sort priority (lower = more urgent).
func ClassificationPriority(c domain.Classification) int {
	switch c {
	case domain.ClassStalled:
		return 0
	case domain.ClassAtRisk:
		return 1
	case domain.ClassBehind:
		return 2
	default:
		return 3
	}
}

// SeverityPriority returns a sort priority (lower = more urgent).
func SeverityPriority(s domain.Severity) int {
	switch s {
	case domain.SeverityHigh:
		return 0
	case domain.SeverityMedium:
		return 1
	case domain.SeverityLow:
		return 2
	default:
		return 3
	}
}

// SortSnapshots orders snapshots by the deterministic canonical rules:
// 1. Classification: stalled > at_risk > behind > on_track
// 2. Severity: high > medium > low > none
// 3. Credit gap: larger first
// 4. Student ID: lexical ascending
func SortSnapshots(snaps []domain.ProgressSnapshot) {
	sort.SliceStable(snaps, func(i, j int) bool {
		a, b := snaps[i], snaps[j]

		if pa, pb := ClassificationPriority(a.Classification), ClassificationPriority(b.Classification); pa != pb {
			return pa < pb
		}
		if sa, sb := SeverityPriority(a.Severity), SeverityPriority(b.Severity); sa != sb {
			return sa < sb
		}
		if a.CreditGap != b.CreditGap {
			return a.CreditGap > b.CreditGap
		}
		return a.StudentID < b.StudentID
	})
}

// SortSessions orders sessions by date, start time, venue and group.
func SortSessions(sessions []domain.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		if a.Venue != b.Venue {
			return a.Venue < b.Venue
		}
		return a.GroupID < b.GroupID
	})
}
