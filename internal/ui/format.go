package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/rstracker/fete-cms/internal/domain"
)

// FormatDateTime renders an ISO timestamp as "2006-01-02 15:04". Unparseable
// input is shown verbatim rather than hidden.
func FormatDateTime(ts string) string {
	if ts == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return ts
}

// FormatDate keeps only the date part of an ISO timestamp.
func FormatDate(ts string) string {
	if ts == "" {
		return "-"
	}
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		return ts[:i]
	}
	return ts
}

// FormatTemperature renders a temperature with one decimal, e.g. "36.5°C".
func FormatTemperature(t float64) string {
	return fmt.Sprintf("%.1f°C", t)
}

// Badge variants: which visual flavor a status pill gets.
const (
	BadgeGreen  = "green"
	BadgeBlue   = "blue"
	BadgeYellow = "yellow"
	BadgeRed    = "red"
	BadgeGray   = "gray"
)

func UserStatusBadge(s domain.UserStatus) string {
	switch s {
	case domain.UserActive:
		return BadgeGreen
	case domain.UserSuspended:
		return BadgeRed
	default:
		return BadgeGray
	}
}

func VerificationBadge(s domain.VerificationStatus) string {
	switch s {
	case domain.FullyVerified:
		return BadgeBlue
	case domain.PhoneVerified:
		return BadgeYellow
	default:
		return BadgeGray
	}
}

func MatchingStatusBadge(s domain.MatchingStatus) string {
	switch s {
	case domain.MatchingCompleted:
		return BadgeGreen
	case domain.MatchingEstablished:
		return BadgeBlue
	default:
		return BadgeGray
	}
}

// CategoryLabel gives the human name of a question category.
func CategoryLabel(c domain.QuestionCategory) string {
	switch c {
	case domain.CategoryInitialMatching:
		return "Initial matching"
	case domain.CategoryTemperatureRefine:
		return "Temperature refine"
	default:
		return string(c)
	}
}
