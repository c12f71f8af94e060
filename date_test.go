package cashbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-01-02", want: NewDate(2025, time.January, 2)},
		{in: "2025-1-2", want: NewDate(2025, time.January, 2)},
		{in: "2025/1/2", want: NewDate(2025, time.January, 2)},
		{in: "2.1.2025", want: NewDate(2025, time.January, 2)},
		{in: "02 Jan 2025", want: NewDate(2025, time.January, 2)},
		{in: " 2025-01-02 ", want: NewDate(2025, time.January, 2)},
		{in: "0d", want: Today()},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_Order(t *testing.T) {
	a := NewDate(2025, time.January, 1)
	b := NewDate(2025, time.January, 2)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("want %v before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("want %v after %v", b, a)
	}
	if a.Add(1) != b {
		t.Errorf("%v.Add(1) = %v, want %v", a, a.Add(1), b)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	want := NewDate(2025, time.March, 5)
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2025-03-05"` {
		t.Errorf("Marshal() = %s, want %q", data, "2025-03-05")
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestDate_HumanFormat(t *testing.T) {
	d := NewDate(2025, time.March, 5)
	if got := d.Format(HumanDateFormat); got != "05 Mar 2025" {
		t.Errorf("Format(HumanDateFormat) = %q, want %q", got, "05 Mar 2025")
	}
}
