package timeslot

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"07:00", 420},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := ToMinutes(c.in)
		if err != nil {
			t.Fatalf("ToMinutes(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestToMinutes_Invalid(t *testing.T) {
	for _, in := range []string{"", "9:00", "09:0", "24:00", "12:60", "ab:cd", "12-30", "12:30:00"} {
		if _, err := ToMinutes(in); !errors.Is(err, ErrInvalidTime) {
			t.Errorf("ToMinutes(%q): expected ErrInvalidTime, got %v", in, err)
		}
	}
}

func TestAddDuration(t *testing.T) {
	cases := []struct {
		start string
		hours float64
		want  string
	}{
		{"18:00", 1.0, "19:00"},
		{"18:00", 1.5, "19:30"},
		{"09:30", 2.0, "11:30"},
		{"23:30", 1.0, "00:30"},
		{"22:00", 2.0, "00:00"},
	}
	for _, c := range cases {
		got, err := AddDuration(c.start, c.hours)
		if err != nil {
			t.Fatalf("AddDuration(%q, %v): %v", c.start, c.hours, err)
		}
		if got != c.want {
			t.Errorf("AddDuration(%q, %v) = %q, want %q", c.start, c.hours, got, c.want)
		}
	}
}

func TestAddDuration_Invalid(t *testing.T) {
	if _, err := AddDuration("25:00", 1.0); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
}

func TestOverlaps_Boundaries(t *testing.T) {
	mins := func(s string) int {
		m, err := ToMinutes(s)
		if err != nil {
			t.Fatalf("ToMinutes(%q): %v", s, err)
		}
		return m
	}

	// Touching endpoints do not conflict.
	if Overlaps(mins("09:00"), mins("10:00"), mins("10:00"), mins("11:00")) {
		t.Error("expected 09:00-10:00 and 10:00-11:00 not to overlap")
	}
	if !Overlaps(mins("09:00"), mins("10:00"), mins("09:30"), mins("10:30")) {
		t.Error("expected 09:00-10:00 and 09:30-10:30 to overlap")
	}
	// Containment.
	if !Overlaps(mins("09:00"), mins("12:00"), mins("10:00"), mins("11:00")) {
		t.Error("expected containing intervals to overlap")
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	// Every pairing of hourly intervals must give the same answer in both
	// argument orders.
	for a := 0; a < minutesPerDay; a += 60 {
		for b := 0; b < minutesPerDay; b += 60 {
			ab := Overlaps(a, a+60, b, b+90)
			ba := Overlaps(b, b+90, a, a+60)
			if ab != ba {
				t.Fatalf("overlap not symmetric for a=%d b=%d: %v vs %v", a, b, ab, ba)
			}
		}
	}
}

func TestOverlaps_CrossesMidnight(t *testing.T) {
	// 23:30-00:30 wraps; it conflicts with 23:45-00:15 but not 00:30-01:30.
	late := []int{23*60 + 30, 30}
	if !Overlaps(late[0], late[1], 23*60+45, 15) {
		t.Error("expected overlapping overnight intervals to conflict")
	}
	if Overlaps(late[0], late[1], 30, 90) {
		t.Error("expected touching overnight boundary not to conflict")
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		420:  "07:00",
		1439: "23:59",
		1440: "00:00",
		1470: "00:30",
	}
	for in, want := range cases {
		if got := FormatMinutes(in); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", in, got, want)
		}
	}
}
