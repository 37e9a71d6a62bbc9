package theme

import "regexp"

// Channel strings are only extracted from the exact forms below. Anything
// else leaves the channel field unset.
var (
	rgbPattern = regexp.MustCompile(`^rgb\((\d+),(\d+),(\d+)\)$`)
	hslPattern = regexp.MustCompile(`^hsl\((\d+(?:\.\d+)?),(\d+(?:\.\d+)?)%,(\d+(?:\.\d+)?)%\)$`)
)

// RGBChannel extracts "r g b" from rgb(<int>,<int>,<int>).
func RGBChannel(s string) (string, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1] + " " + m[2] + " " + m[3], true
}

// HSLChannel extracts "h s% l%" from hsl(<n>,<n>%,<n>%). The percent sign is
// dropped from the leading degree component only.
func HSLChannel(s string) (string, bool) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1] + " " + m[2] + "% " + m[3] + "%", true
}
