package utils

import "testing"

func TestGenerateRandomStringLength(t *testing.T) {
	for _, n := range []int{8, 16, 32} {
		if got := GenerateRandomString(n); len(got) != n {
			t.Errorf("GenerateRandomString(%d) returned %q (len %d)", n, got, len(got))
		}
	}
}

func TestValidateID(t *testing.T) {
	if !ValidateID(GenerateRandomString(16)) {
		t.Error("generated id should validate")
	}
	for _, bad := range []string{"", "short", "has spaces in it", "semi;colon;inject", "x"} {
		if ValidateID(bad) {
			t.Errorf("ValidateID(%q) should be false", bad)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Apple Watch Series 9":  "apple-watch-series-9",
		"  Spaced   out  ":      "spaced-out",
		"Crème Brûlée!":         "cr-me-br-l-e",
		"already-slugged":       "already-slugged",
		"Symbols & Stuff (New)": "symbols-stuff-new",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{80.0, 80.0},
		{89.991, 89.99},
		{66.667, 66.67},
		{0.0, 0.0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRoundMean(t *testing.T) {
	cases := []struct {
		in   []int
		want int
	}{
		{nil, 0},
		{[]int{5}, 5},
		{[]int{4, 5}, 5},
		{[]int{1, 2}, 2},
		{[]int{1, 1, 2}, 1},
	}
	for _, tc := range cases {
		if got := RoundMean(tc.in); got != tc.want {
			t.Errorf("RoundMean(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
