package electron

import (
	"regexp"
	"strconv"
	"strings"
)

var superscriptDigits = [10]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

const superscriptMinus = "⁻"

// ToSuperscript renders n using Unicode superscript digits.
func ToSuperscript(n int) string {
	var b strings.Builder
	if n < 0 {
		b.WriteString(superscriptMinus)
	}
	for _, d := range strings.TrimPrefix(strconv.Itoa(n), "-") {
		b.WriteString(superscriptDigits[d-'0'])
	}
	return b.String()
}

// fromSuperscript maps a superscript digit back to its ASCII form.
func fromSuperscript(r rune) (rune, bool) {
	for i, s := range superscriptDigits {
		if []rune(s)[0] == r {
			return rune('0' + i), true
		}
	}
	return 0, false
}

var (
	electronCountPattern    = regexp.MustCompile(`([spdf])(\d+)`)
	superscriptCountPattern = regexp.MustCompile(`([spdf])([⁰¹²³⁴⁵⁶⁷⁸⁹]+)`)
)

// Superscript rewrites every electron count that follows a subshell letter
// into superscript digits. Shell numbers are left in normal script:
// "3d10" becomes "3d¹⁰".
func Superscript(s string) string {
	return electronCountPattern.ReplaceAllStringFunc(s, func(m string) string {
		var b strings.Builder
		b.WriteByte(m[0])
		for _, d := range m[1:] {
			b.WriteString(superscriptDigits[d-'0'])
		}
		return b.String()
	})
}
