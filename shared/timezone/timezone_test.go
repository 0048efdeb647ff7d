package timezone_test

import (
	"salon/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}
}

func TestToAppTimeKeepsInstant(t *testing.T) {
	utcTime := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Errorf("expected %v to denote the same instant as %v", appTime, utcTime)
	}

	if appTime.Location() != timezone.Now().Location() {
		t.Errorf("expected location %v, got %v", timezone.Now().Location(), appTime.Location())
	}
}
