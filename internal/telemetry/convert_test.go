package telemetry

import "testing"

func TestAccelMilliG(t *testing.T) {
	cases := []struct {
		raw  int16
		want int32
	}{
		{16384, 1000},
		{-16384, -1000},
		{8192, 500},
		{0, 0},
		{1, 0},   // truncates toward zero
		{-1, 0},  // truncates toward zero, not floor
		{32767, 1999},
		{-32768, -2000},
	}
	for _, c := range cases {
		if got := AccelMilliG(c.raw); got != c.want {
			t.Errorf("AccelMilliG(%d) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestGyroMilliDPS(t *testing.T) {
	cases := []struct {
		raw  int16
		want int32
	}{
		{131, 1000},
		{-131, -1000},
		{262, 2000},
		{130, 992},
		{-130, -992},
		{0, 0},
	}
	for _, c := range cases {
		if got := GyroMilliDPS(c.raw); got != c.want {
			t.Errorf("GyroMilliDPS(%d) = %d, want %d", c.raw, got, c.want)
		}
	}
}

// Truncation error is strictly smaller than one converted unit:
// |raw*1000 - scaled*sensitivity| < sensitivity.
func TestTruncationBound(t *testing.T) {
	check := func(name string, sensitivity int64, scale func(int16) int32) {
		for raw := -32768; raw <= 32767; raw += 7 {
			r := int16(raw)
			scaled := int64(scale(r))
			diff := int64(raw)*1000 - scaled*sensitivity
			if diff < 0 {
				diff = -diff
			}
			if diff >= sensitivity {
				t.Fatalf("%s(%d): residual %d >= sensitivity %d", name, raw, diff, sensitivity)
			}
		}
	}
	check("AccelMilliG", AccelSensitivity, AccelMilliG)
	check("GyroMilliDPS", GyroSensitivity, GyroMilliDPS)
}
