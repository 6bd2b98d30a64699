package contentgen

import (
	"regexp"
	"strings"
)

// stripCodeFence removes fenced-code wrappers the model likes to add
// around JSON ("```json ... ```"), returning the inner text.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

var (
	// Control characters that break JSON decoding. Tab, newline and CR
	// survive; everything else in C0/C1 plus DEL goes.
	controlChars = regexp.MustCompile("[\\x00-\\x08\\x0b\\x0c\\x0e-\\x1f\\x7f-\\x{9f}]")

	// A backslash not followed by a legal JSON escape introducer.
	badEscape = regexp.MustCompile(`\\([^"\\/bfnrtu])`)
)

// sanitizeText removes control characters and repairs invalid escape
// sequences so a second strict parse can be attempted.
func sanitizeText(s string) string {
	s = controlChars.ReplaceAllString(s, "")
	s = badEscape.ReplaceAllString(s, `\\$1`)
	return s
}

// printableOnly drops any rune outside printable ASCII plus tab/newline/CR.
// Used when reassembling content from escaped fragments.
func printableOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 0x20 && r < 0x7f) || r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// unescapeFragment reverses the common JSON string escapes in a fragment
// captured by regex (which sees the raw escaped form).
func unescapeFragment(s string) string {
	r := strings.NewReplacer(
		`\"`, `"`,
		`\n`, "\n",
		`\t`, "\t",
		`\r`, "\r",
		`\\`, `\`,
	)
	return printableOnly(r.Replace(s))
}

// splitQuotedList splits the inner text of a JSON array of strings that
// may itself be malformed, returning the cleaned elements.
func splitQuotedList(inner string) []string {
	var out []string
	for _, part := range strings.Split(inner, ",") {
		v := strings.TrimSpace(part)
		v = strings.Trim(v, `"`)
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, unescapeFragment(v))
		}
	}
	return out
}
