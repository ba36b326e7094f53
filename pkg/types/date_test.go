package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	original := NewDate(2025, time.March, 14)

	buf, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(buf) != `"2025-03-14"` {
		t.Fatalf("unexpected encoding %s", buf)
	}

	var decoded Date
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(original) {
		t.Fatalf("round trip mismatch: %s != %s", decoded, original)
	}
}

func TestDateOfTruncatesTimeOfDay(t *testing.T) {
	instant := time.Date(2025, time.March, 14, 23, 59, 59, 0, time.UTC)
	d := DateOf(instant)
	if d.String() != "2025-03-14" {
		t.Fatalf("expected truncation to the calendar day, got %s", d)
	}
}

func TestDateDaysSince(t *testing.T) {
	base := NewDate(2025, time.March, 14)
	cases := []struct {
		name  string
		other Date
		want  int
	}{
		{"same day", NewDate(2025, time.March, 14), 0},
		{"next day", NewDate(2025, time.March, 13), 1},
		{"previous day", NewDate(2025, time.March, 15), -1},
		{"across month boundary", NewDate(2025, time.February, 28), 14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.DaysSince(tc.other); got != tc.want {
				t.Fatalf("DaysSince = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDateScanVariants(t *testing.T) {
	var d Date
	if err := d.Scan("2025-03-14"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2025-03-14" {
		t.Fatalf("unexpected date %s", d)
	}

	var fromTime Date
	if err := fromTime.Scan(time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if !fromTime.Equal(d) {
		t.Fatalf("expected %s, got %s", d, fromTime)
	}

	var fromTimestamp Date
	if err := fromTimestamp.Scan("2025-03-14T00:00:00Z"); err != nil {
		t.Fatalf("scan timestamp: %v", err)
	}
	if !fromTimestamp.Equal(d) {
		t.Fatalf("expected %s, got %s", d, fromTimestamp)
	}
}

func TestDateNullHandling(t *testing.T) {
	var d Date
	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Fatal("expected zero date after scanning nil")
	}

	value, err := d.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if value != nil {
		t.Fatalf("expected nil driver value, got %v", value)
	}
}

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"fresh", "tasty"}
	value, err := list.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded StringList
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(decoded) != 2 || decoded[0] != "fresh" || decoded[1] != "tasty" {
		t.Fatalf("unexpected list %v", decoded)
	}
}
