package verbalize

import (
	"strings"

	"github.com/az-ai-labs/en-itn/tagger"
)

func electronic(e tagger.Electronic) string {
	if e.Kind == tagger.KindEmail {
		return e.Local + "@" + e.Host
	}
	return e.Scheme + e.Host
}

func telephone(t tagger.Telephone) string {
	switch t.Kind {
	case tagger.KindIP:
		return strings.Join(t.Groups, ".")
	case tagger.KindSSN:
		return t.Label + " " + strings.Join(t.Groups, "-")
	}

	var number string
	if len(t.Groups) > 1 {
		number = strings.Join(t.Groups, "-")
	} else {
		number = phoneLayout(t.Digits())
	}
	if t.CountryCode != "" {
		return "+" + t.CountryCode + " " + number
	}
	return number
}

// phoneLayout groups an undivided digit string by its length:
//
//	11  X XXX-XXX-XXXX
//	10  XXX-XXX-XXXX
//	 7  XXX-XXXX
//	 3  XXX
//
// Other lengths split after the first three digits.
func phoneLayout(d string) string {
	switch n := len(d); {
	case n == 11:
		return d[:1] + " " + d[1:4] + "-" + d[4:7] + "-" + d[7:]
	case n == 10:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	case n > 3:
		return d[:3] + "-" + d[3:]
	default:
		return d
	}
}
