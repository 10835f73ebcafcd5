package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatKoreanDate(t *testing.T) {
	at := time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024.05.01", FormatKoreanDate(at))
	assert.Equal(t, "2024.05.01 13:30", FormatKoreanDateTime(at))
	assert.Equal(t, "", FormatKoreanDate(time.Time{}))
}

func TestRelativeTimeSince(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "방금 전", RelativeTimeSince(now.Add(-30*time.Second), now))
	assert.Equal(t, "5분 전", RelativeTimeSince(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3시간 전", RelativeTimeSince(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2일 전", RelativeTimeSince(now.AddDate(0, 0, -2), now))

	// A week or more falls back to the absolute date.
	assert.Equal(t, "2024.04.30", RelativeTimeSince(now.AddDate(0, 0, -10), now))
	assert.Equal(t, "", RelativeTimeSince(time.Time{}, now))
}
