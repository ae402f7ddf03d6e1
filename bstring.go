package btypes

import (
	"encoding/base64"
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// BStr is an enhanced string with validation, encoding and
// pattern-matching helpers. The mass-set pattern engine consumes its
// Split/Replace/Trim surface; the rest mirrors the general utility set.
type BStr string

// NewBStr builds a BStr from any printable value.
func NewBStr(v any) BStr { return BStr(fmt.Sprint(v)) }

func (s BStr) String() string { return string(s) }

// Len returns the length in bytes.
func (s BStr) Len() int { return len(s) }

// IsEmpty reports whether the string holds no bytes.
func (s BStr) IsEmpty() bool { return len(s) == 0 }

// Upper returns the string in upper case.
func (s BStr) Upper() BStr { return BStr(strings.ToUpper(string(s))) }

// Lower returns the string in lower case.
func (s BStr) Lower() BStr { return BStr(strings.ToLower(string(s))) }

// Trim returns the string with surrounding whitespace removed.
func (s BStr) Trim() BStr { return BStr(strings.TrimSpace(string(s))) }

// TrimSuffix returns the string without the trailing suffix, if present.
func (s BStr) TrimSuffix(suffix string) BStr {
	return BStr(strings.TrimSuffix(string(s), suffix))
}

// Split slices the string around each instance of sep.
func (s BStr) Split(sep string) []BStr {
	parts := strings.Split(string(s), sep)
	out := make([]BStr, len(parts))
	for i, p := range parts {
		out[i] = BStr(p)
	}
	return out
}

// Replace returns the string with all occurrences of old replaced by new.
func (s BStr) Replace(old, new string) BStr {
	return BStr(strings.ReplaceAll(string(s), old, new))
}

// Repeat returns the string repeated n times. Negative n repeats zero
// times.
func (s BStr) Repeat(n int) BStr {
	if n < 0 {
		n = 0
	}
	return BStr(strings.Repeat(string(s), n))
}

// Contains reports whether substr is within the string.
func (s BStr) Contains(substr string) bool { return strings.Contains(string(s), substr) }

// HasPrefix reports whether the string begins with prefix.
func (s BStr) HasPrefix(prefix string) bool { return strings.HasPrefix(string(s), prefix) }

// HasSuffix reports whether the string ends with suffix.
func (s BStr) HasSuffix(suffix string) bool { return strings.HasSuffix(string(s), suffix) }

// Reverse returns the string with its runes in reverse order.
func (s BStr) Reverse() BStr {
	runes := []rune(string(s))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return BStr(runes)
}

// IsPalindrome reports whether the alphanumeric runes read the same in
// both directions, ignoring case.
func (s BStr) IsPalindrome() bool {
	var runes []rune
	for _, r := range string(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			runes = append(runes, unicode.ToLower(r))
		}
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

func (s BStr) every(pred func(rune) bool) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range string(s) {
		if !pred(r) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether the string is non-empty and all digits.
func (s BStr) IsNumeric() bool { return s.every(unicode.IsDigit) }

// IsAlphabetic reports whether the string is non-empty and all letters.
func (s BStr) IsAlphabetic() bool { return s.every(unicode.IsLetter) }

// IsAlphanumeric reports whether the string is non-empty and all
// letters or digits.
func (s BStr) IsAlphanumeric() bool {
	return s.every(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
}

// IsWhitespace reports whether the string is non-empty and all
// whitespace.
func (s BStr) IsWhitespace() bool { return s.every(unicode.IsSpace) }

// Matches reports whether the string matches the regular expression
// pattern. An invalid pattern matches nothing.
func (s BStr) Matches(pattern string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(string(s))
}

// Match is one pattern hit inside a BStr.
type Match struct {
	Pos  int
	Text string
}

// FindAll returns every match of the regular expression pattern with its
// byte position. An invalid pattern is retried as a literal.
func (s BStr) FindAll(pattern string) []Match {
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = regexp.MustCompile(regexp.QuoteMeta(pattern))
	}
	var out []Match
	for _, loc := range re.FindAllStringIndex(string(s), -1) {
		out = append(out, Match{Pos: loc[0], Text: string(s)[loc[0]:loc[1]]})
	}
	return out
}

// ReplaceAllPattern replaces every match of the regular expression
// pattern with repl. An invalid pattern is retried as a literal.
func (s BStr) ReplaceAllPattern(pattern, repl string) BStr {
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = regexp.MustCompile(regexp.QuoteMeta(pattern))
	}
	return BStr(re.ReplaceAllString(string(s), repl))
}

// CountPattern returns the number of matches of the regular expression
// pattern.
func (s BStr) CountPattern(pattern string) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	return len(re.FindAllStringIndex(string(s), -1)), nil
}

// IsValidEmail reports whether the string parses as a single address.
func (s BStr) IsValidEmail() bool {
	addr, err := mail.ParseAddress(string(s))
	return err == nil && addr.Address == string(s)
}

// IsValidURL reports whether the string parses as an absolute URL.
func (s BStr) IsValidURL() bool {
	u, err := url.Parse(string(s))
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsValidIPv4 reports whether the string is a dotted-quad IPv4 address.
func (s BStr) IsValidIPv4() bool {
	if strings.Count(string(s), ".") != 3 {
		return false
	}
	ip := net.ParseIP(string(s))
	return ip != nil && ip.To4() != nil
}

// ToBase64 returns the standard base64 encoding of the string.
func (s BStr) ToBase64() string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// FromBase64 decodes a standard base64 string.
func FromBase64(encoded string) (BStr, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return BStr(raw), nil
}

// URLEncode returns the query-escaped form of the string.
func (s BStr) URLEncode() string { return url.QueryEscape(string(s)) }

// URLDecode decodes a query-escaped string.
func URLDecode(encoded string) (BStr, error) {
	raw, err := url.QueryUnescape(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return BStr(raw), nil
}

// Substring returns the runes in [start, end).
func (s BStr) Substring(start, end int) (BStr, error) {
	runes := []rune(string(s))
	if start < 0 || end < start || end > len(runes) {
		return "", fmt.Errorf("%w: substring [%d:%d) of %d runes", ErrInvalidOperation, start, end, len(runes))
	}
	return BStr(runes[start:end]), nil
}

// WordCount returns the number of whitespace-separated words.
func (s BStr) WordCount() int { return len(strings.Fields(string(s))) }
