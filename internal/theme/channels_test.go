package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRGBChannel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"rgb(10,20,30)", "10 20 30", true},
		{"rgb(255,255,255)", "255 255 255", true},
		{"rgb(0,0,0)", "0 0 0", true},
		// Exact form only: no spaces, no percentages, no alpha.
		{"rgb(10, 20, 30)", "", false},
		{"rgba(10,20,30,0.5)", "", false},
		{"rgb(10,20)", "", false},
		{"hsl(210,50%,40%)", "", false},
		{"#ffffff", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := RGBChannel(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestHSLChannel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"hsl(210,50%,40%)", "210 50% 40%", true},
		{"hsl(215.4,16.3%,46.9%)", "215.4 16.3% 46.9%", true},
		{"hsl(0,0%,100%)", "0 0% 100%", true},
		{"hsl(210, 50%, 40%)", "", false},
		{"hsl(210,50,40)", "", false},
		{"rgb(10,20,30)", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := HSLChannel(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

// The percent sign must survive on the trailing two components only.
func TestHSLChannelPercentPlacement(t *testing.T) {
	t.Parallel()

	got, ok := HSLChannel("hsl(210,50%,40%)")
	require.True(t, ok)
	require.NotContains(t, got, "210%")
	require.Contains(t, got, "50%")
	require.Contains(t, got, "40%")
}
