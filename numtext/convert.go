// Unexported conversion functions for English number-to-text conversion.
package numtext

import "strings"

const growConvert = 64 // estimated bytes for a full cardinal conversion

// convert converts an int64 to English cardinal text.
// Returns "" if abs(n) exceeds maxAbs.
func convert(n int64) string {
	if n > maxAbs || n < -maxAbs {
		return ""
	}
	if n == 0 {
		return wordZero
	}

	var b strings.Builder
	b.Grow(growConvert)

	if n < 0 {
		b.WriteString(wordNegative)
		n = -n
	}

	for _, mag := range magnitudes {
		count := n / mag.value
		if count == 0 {
			continue
		}
		writeGroup(&b, count)
		b.WriteByte(' ')
		b.WriteString(mag.word)
		n %= mag.value
	}

	if n > 0 {
		writeGroup(&b, n)
	}

	return b.String()
}

// writeGroup writes a number in [1, 999] as English text into b, separated
// from any preceding text by a space.
func writeGroup(b *strings.Builder, n int64) {
	space := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}

	if h := n / hundred; h > 0 {
		space()
		b.WriteString(ones[h])
		b.WriteByte(' ')
		b.WriteString(wordHundred)
	}

	r := n % hundred
	switch {
	case r == 0:
	case r < 20:
		space()
		b.WriteString(ones[r])
	default:
		space()
		b.WriteString(tens[r/10])
		if u := r % 10; u > 0 {
			b.WriteByte(' ')
			b.WriteString(ones[u])
		}
	}
}

// convertOrdinal converts an int64 to English ordinal text by rewriting the
// last word of the cardinal form.
func convertOrdinal(n int64) string {
	cardinal := convert(n)
	if cardinal == "" {
		return ""
	}

	head, last := "", cardinal
	if i := strings.LastIndexByte(cardinal, ' '); i >= 0 {
		head, last = cardinal[:i+1], cardinal[i+1:]
	}

	switch {
	case last == wordZero:
		last = "zeroth"
	case cardinalOrdinals[last] != "":
		last = cardinalOrdinals[last]
	case strings.HasSuffix(last, "y"):
		last = strings.TrimSuffix(last, "y") + "ieth"
	default:
		last += "th"
	}
	return head + last
}
