package utils

import (
	"fmt"
	"time"
)

// FormatKoreanDate 한국식 날짜 표기 (2024.05.01)
func FormatKoreanDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006.01.02")
}

// FormatKoreanDateTime 한국식 날짜/시간 표기 (2024.05.01 13:30)
func FormatKoreanDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006.01.02 15:04")
}

// FormatRelativeTime 상대 시간 표기 (방금 전, N분 전, N시간 전, N일 전)
func FormatRelativeTime(t time.Time) string {
	return RelativeTimeSince(t, time.Now())
}

// RelativeTimeSince is FormatRelativeTime with an explicit reference time.
func RelativeTimeSince(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	minutes := int(now.Sub(t).Minutes())
	if minutes < 1 {
		return "방금 전"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d분 전", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d시간 전", hours)
	}

	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%d일 전", days)
	}

	return FormatKoreanDate(t)
}
