// Word tables for English numerals.
package numtext

const (
	maxAbs  int64 = 1_000_000_000_000_000_000
	hundred int64 = 100

	wordNegative = "minus"
	wordHundred  = "hundred"
	wordZero     = "zero"
	wordAnd      = "and"
)

var ones = [20]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

// tens is indexed by tens digit (2–9); indexes 0 and 1 are unused.
var tens = [10]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

type magnitude struct {
	value int64
	word  string
}

// magnitudes lists named powers of ten from largest to smallest.
// hundred is handled within a group and is not listed here.
var magnitudes = []magnitude{
	{value: 1_000_000_000_000_000_000, word: "quintillion"},
	{value: 1_000_000_000_000_000, word: "quadrillion"},
	{value: 1_000_000_000_000, word: "trillion"},
	{value: 1_000_000_000, word: "billion"},
	{value: 1_000_000, word: "million"},
	{value: 1_000, word: "thousand"},
}

// smallValues maps every single-word numeral in 1..90 to its value.
var smallValues = func() map[string]int64 {
	m := make(map[string]int64, 28)
	for i := 1; i < len(ones); i++ {
		m[ones[i]] = int64(i)
	}
	for i := 2; i < len(tens); i++ {
		m[tens[i]] = int64(i * 10)
	}
	return m
}()

// scaleValues maps scale words to their values. Readers accept the Indian
// scales too; Convert never produces them.
var scaleValues = func() map[string]int64 {
	m := map[string]int64{
		"lakh":  100_000,
		"lakhs": 100_000,
		"crore": 10_000_000,
	}
	for _, mag := range magnitudes {
		m[mag.word] = mag.value
	}
	return m
}()

// tooLarge lists scale words beyond the supported range. Their presence makes
// a reading fail rather than be mistaken for an unknown word.
var tooLarge = map[string]bool{
	"sextillion": true,
	"septillion": true,
	"octillion":  true,
}

// digitWords maps the words spoken for single digits.
var digitWords = map[string]byte{
	"zero": '0', "o": '0', "oh": '0',
	"one": '1', "two": '2', "three": '3', "four": '4', "five": '5',
	"six": '6', "seven": '7', "eight": '8', "nine": '9',
}

// ordinalWords maps irregular ordinal words to their cardinal word.
// Regular "-th" forms are derived in ordinalBase.
var ordinalWords = map[string]string{
	"first":   "one",
	"second":  "two",
	"third":   "three",
	"fifth":   "five",
	"eighth":  "eight",
	"ninth":   "nine",
	"twelfth": "twelve",
}

// cardinalOrdinals is the reverse of ordinalWords, used by ConvertOrdinal.
var cardinalOrdinals = func() map[string]string {
	m := make(map[string]string, len(ordinalWords))
	for ord, card := range ordinalWords {
		m[card] = ord
	}
	return m
}()

// decadeWords maps plural tens ("eighties") to their value.
var decadeWords = map[string]int{
	"tens":      10,
	"twenties":  20,
	"thirties":  30,
	"forties":   40,
	"fifties":   50,
	"sixties":   60,
	"seventies": 70,
	"eighties":  80,
	"nineties":  90,
}
