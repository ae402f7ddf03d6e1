package btypes

import (
	"fmt"
	"strconv"
)

const (
	namePlaceholder = "{n}"
	repeatMarker    = "{r}"
)

// massPattern is a pre-parsed MassSet template pair: a name template
// holding the {n} placeholder and the literal boolean values split out
// of the value pattern, with the trailing {r} marker folded into repeat.
type massPattern struct {
	template string
	values   []bool
	repeat   bool
}

// parsePattern validates both templates once per MassSet call.
func parsePattern(count int, namePattern, valuePattern string) (*massPattern, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidPattern, count)
	}
	if !BStr(namePattern).Contains(namePlaceholder) {
		return nil, fmt.Errorf("%w: name pattern must contain %s", ErrInvalidPattern, namePlaceholder)
	}
	trimmed := BStr(valuePattern).Trim()
	if trimmed.IsEmpty() {
		return nil, fmt.Errorf("%w: value pattern cannot be empty", ErrInvalidPattern)
	}
	repeat := trimmed.HasSuffix(repeatMarker)

	parts := trimmed.Split(",")
	values := make([]bool, 0, len(parts))
	for _, part := range parts {
		tok := part.Trim().TrimSuffix(repeatMarker)
		switch tok.Lower() {
		case "true":
			values = append(values, true)
		case "false":
			values = append(values, false)
		default:
			return nil, fmt.Errorf("%w: invalid boolean value %q", ErrInvalidPattern, string(tok))
		}
	}
	if !repeat && len(values) < count {
		return nil, fmt.Errorf("%w: %d values for count %d", ErrPatternExhausted, len(values), count)
	}
	return &massPattern{template: namePattern, values: values, repeat: repeat}, nil
}

// name substitutes the zero-based iteration index into the template.
func (p *massPattern) name(i int) string {
	return string(BStr(p.template).Replace(namePlaceholder, strconv.Itoa(i)))
}

// value returns the i-th value, cycling when the pattern repeats.
func (p *massPattern) value(i int) bool {
	if p.repeat {
		return p.values[i%len(p.values)]
	}
	return p.values[i]
}

// MassSet generates exactly count assignments from a name template and a
// value template and applies them as sequential Set calls.
//
// namePattern must contain {n}, replaced with 0..count-1. valuePattern
// is a comma-separated list of true/false literals; with a trailing {r}
// the list cycles, without it the list must cover count or MassSet fails
// with ErrPatternExhausted before applying anything. A failure partway
// through (a fixed container running out of bits) aborts the call and
// reports the number of assignments already applied via MassSetError;
// applied assignments stay in effect.
func (b *Named[R]) MassSet(count int, namePattern, valuePattern string) error {
	p, err := parsePattern(count, namePattern, valuePattern)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := b.Set(p.name(i), p.value(i)); err != nil {
			return &MassSetError{Applied: i, Count: count, cause: err}
		}
	}
	return nil
}
