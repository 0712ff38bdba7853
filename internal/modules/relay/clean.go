package relay

import "strings"

// CleanFragment removes every Arabic diacritic (Tashkeel, U+064B–U+065F and
// the superscript alef U+0670) and every literal '?' from s. Everything else
// passes through untouched; a fragment with nothing to strip is returned
// byte-identical.
//
// The filter runs per fragment, not on the reassembled response, so a mark
// split across a fragment boundary can survive. Accepted trade-off: cleaning
// the accumulated whole would break the live-typing latency.
func CleanFragment(s string) string {
	if s == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == '?' || r == 0x0670 || (r >= 0x064B && r <= 0x065F) {
			return -1
		}
		return r
	}, s)
}
