package tagger

import (
	"reflect"
	"testing"
	"time"
)

// taggerCase is one Parse expectation. A nil want means the input is
// rejected.
type taggerCase struct {
	input string
	want  Value
}

func runTaggerCases(t *testing.T, tg Tagger, tests []taggerCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := tg.Parse(words(tt.input))
			if tt.want == nil {
				if ok {
					t.Errorf("Parse(%q) = %#v, want rejection", tt.input, got)
				}
				return
			}
			if !ok {
				t.Fatalf("Parse(%q) rejected, want %#v", tt.input, tt.want)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCardinalTagger(t *testing.T) {
	t.Parallel()
	runTaggerCases(t, cardinalTagger{}, []taggerCase{
		{"twenty one", Cardinal{21}},
		{"Twenty-One", Cardinal{21}},
		{"one hundred and five", Cardinal{105}},
		{"a thousand", Cardinal{1000}},
		{"minus sixty", Cardinal{-60}},
		{"two million three hundred thousand", Cardinal{2_300_000}},
		{"zero", nil},
		{"one two", nil},
		{"hundred and", nil},
		{"apples", nil},
	})
}

func TestOrdinalTagger(t *testing.T) {
	t.Parallel()
	runTaggerCases(t, ordinalTagger{}, []taggerCase{
		{"first", Ordinal{1}},
		{"twenty first", Ordinal{21}},
		{"one hundredth", Ordinal{100}},
		{"twelfth", Ordinal{12}},
		{"twenty", nil},
		{"first second", nil},
	})
}

func TestDecimalTagger(t *testing.T) {
	t.Parallel()
	runTaggerCases(t, decimalTagger{}, []taggerCase{
		{"three point one four", Decimal{Integer: "3", Point: true, Fraction: "14"}},
		{"point five", Decimal{Point: true, Fraction: "5"}},
		{"eighteen point o five", Decimal{Integer: "18", Point: true, Fraction: "05"}},
		{"zero point two five", Decimal{Integer: "0", Point: true, Fraction: "25"}},
		{"minus two point five", Decimal{Negative: true, Integer: "2", Point: true, Fraction: "5"}},
		{"fifty billion", Decimal{Integer: "50", Scale: "billion"}},
		{"one point five Million", Decimal{Integer: "1", Point: true, Fraction: "5", Scale: "Million"}},
		{"twenty one", nil},
		{"one thousand million", nil},
		{"three point", nil},
		{"point", nil},
	})
}

func TestMoneyTagger(t *testing.T) {
	t.Parallel()
	usd := func(integer string, cents int) Money {
		return Money{Currency: "USD", Amount: Decimal{Integer: integer}, Cents: cents}
	}
	runTaggerCases(t, moneyTagger{}, []taggerCase{
		{"five dollars", usd("5", -1)},
		{"one dollar", usd("1", -1)},
		{"a hundred dollars", usd("100", -1)},
		{"five dollars and fifty cents", usd("5", 50)},
		{"five dollars fifty cents", usd("5", 50)},
		{"twenty nine dollars fifty", usd("29", 50)},
		{"fifty cents", usd("0", 50)},
		{"one cent", usd("0", 1)},
		{"one fifty five dollars", usd("155", -1)},
		{"five united states dollars", usd("5", -1)},
		{"one point five billion dollars", Money{Currency: "USD", Amount: Decimal{Integer: "1", Point: true, Fraction: "5", Scale: "billion"}, Cents: -1}},
		{"ten pounds", Money{Currency: "GBP", Amount: Decimal{Integer: "10"}, Cents: -1}},
		{"five euros and twenty cents", Money{Currency: "EUR", Amount: Decimal{Integer: "5"}, Cents: 20}},
		{"three pounds fifty pence", Money{Currency: "GBP", Amount: Decimal{Integer: "3"}, Cents: 50}},
		{"two thousand yen", Money{Currency: "JPY", Amount: Decimal{Integer: "2000"}, Cents: -1}},
		{"one dollars", nil},
		{"five dollars and fifty", nil},
		{"five pounds and twenty cents", nil},
		{"five dollars and one hundred cents", nil},
		{"dollars", nil},
		{"five yen fifty", nil},
	})
}

func TestMeasureTagger(t *testing.T) {
	t.Parallel()
	m := func(integer, unit string) Measure {
		return Measure{Number: Decimal{Integer: integer}, Unit: unit}
	}
	runTaggerCases(t, measureTagger{}, []taggerCase{
		{"five kilometers", m("5", "km")},
		{"one kilogram", m("1", "kg")},
		{"seventy two degrees fahrenheit", m("72", "°F")},
		{"sixty miles per hour", m("60", "mph")},
		{"ten meters per second", m("10", "m/s")},
		{"one hundred gigabits per second", m("100", "Gbps")},
		{"two square feet", m("2", "sq ft")},
		{"three cubic meters", m("3", "m³")},
		{"four meters squared", m("4", "m²")},
		{"ten percent", m("10", "%")},
		{"minus sixty six kilograms", Measure{Number: Decimal{Negative: true, Integer: "66"}, Unit: "kg"}},
		{"two point five liters", Measure{Number: Decimal{Integer: "2", Point: true, Fraction: "5"}, Unit: "l"}},
		{"five pounds", nil},
		{"five seconds", nil},
		{"kilometers", nil},
		{"many kilometers", nil},
	})
}

func TestTimeTagger(t *testing.T) {
	t.Parallel()
	runTaggerCases(t, timeTagger{}, []taggerCase{
		{"two thirty", Time{Hour: 2, Minute: 30}},
		{"eight oh six", Time{Hour: 8, Minute: 6}},
		{"twelve oh five", Time{Hour: 12, Minute: 5}},
		{"three o'clock", Time{Hour: 3}},
		{"three o clock", Time{Hour: 3}},
		{"quarter past one", Time{Hour: 1, Minute: 15}},
		{"half past twelve", Time{Hour: 12, Minute: 30}},
		{"quarter to one", Time{Hour: 12, Minute: 45}},
		{"ten minutes to six", Time{Hour: 5, Minute: 50}},
		{"twenty past six", Time{Hour: 6, Minute: 20}},
		{"seven a m", Time{Hour: 7, Meridiem: "a.m."}},
		{"seven A M", Time{Hour: 7, Meridiem: "A.M."}},
		{"two thirty pm", Time{Hour: 2, Minute: 30, Meridiem: "p.m."}},
		{"nine in the morning", Time{Hour: 9, Meridiem: "a.m."}},
		{"eleven forty five p m", Time{Hour: 11, Minute: 45, Meridiem: "p.m."}},
		{"eight oclock g m t", Time{Hour: 8, Zone: "gmt"}},
		{"seven a m e s t", Time{Hour: 7, Meridiem: "a.m.", Zone: "est"}},
		{"five PST", Time{Hour: 5, Zone: "PST"}},
		{"eleven forty five", nil},
		{"five to ten", nil},
		{"half to three", nil},
		{"two", nil},
		{"seven nine nine", nil},
		{"thirteen thirty", nil},
		{"a m", nil},
	})
}

func TestDateTagger(t *testing.T) {
	t.Parallel()
	runTaggerCases(t, dateTagger{}, []taggerCase{
		{"january fifth", Date{Form: DateMonthDay, Month: time.January, MonthText: "january", Day: 5}},
		{"June thirty", Date{Form: DateMonthDay, Month: time.June, MonthText: "June", Day: 30}},
		{"March the third", Date{Form: DateMonthDay, Month: time.March, MonthText: "March", Day: 3}},
		{"January fifth twenty twenty five", Date{Form: DateMonthDayYear, Month: time.January, MonthText: "January", Day: 5, Year: 2025}},
		{"july twenty fifth two thousand twelve", Date{Form: DateMonthDayYear, Month: time.July, MonthText: "july", Day: 25, Year: 2012}},
		{"the fifteenth of january", Date{Form: DateDayMonth, Month: time.January, MonthText: "january", Day: 15}},
		{"fifteenth of January twenty twenty", Date{Form: DateDayMonthYear, Month: time.January, MonthText: "January", Day: 15, Year: 2020}},
		{"January twenty twenty", Date{Form: DateMonthYear, Month: time.January, MonthText: "January", Year: 2020}},
		{"May one", Date{Form: DateMonthDay, Month: time.May, MonthText: "May", Day: 1}},
		{"may fifth", Date{Form: DateMonthDay, Month: time.May, MonthText: "may", Day: 5}},
		{"second quarter of twenty twenty two", Date{Form: DateQuarter, Quarter: 2, Year: 2022}},
		{"seven fifty b c", Date{Form: DateEra, Year: 750, Era: "BC"}},
		{"twelve thirty four a d", Date{Form: DateEra, Year: 1234, Era: "AD"}},
		{"nineteen eighties", Date{Form: DateDecade, Year: 1980}},
		{"eighties", Date{Form: DateDecade, Year: 80}},
		{"nineteen ninety four", Date{Form: DateYear, Year: 1994}},
		{"twenty twelve", Date{Form: DateYear, Year: 2012}},
		{"nineteen oh five", Date{Form: DateYear, Year: 1905}},
		{"february thirtieth", nil},
		{"may one", nil},
		{"march two thousand", nil},
		{"the fifth", nil},
		{"tens", nil},
		{"ten thirty", nil},
		{"twenty one", nil},
		{"one ad", nil},
		{"january", nil},
	})
}

func TestElectronicTagger(t *testing.T) {
	t.Parallel()
	runTaggerCases(t, electronicTagger{}, []taggerCase{
		{"a at gmail dot com", Electronic{Kind: KindEmail, Local: "a", Host: "gmail.com"}},
		{"J at example dot com", Electronic{Kind: KindEmail, Local: "J", Host: "example.com"}},
		{"John dot Smith at example dot org", Electronic{Kind: KindEmail, Local: "john.smith", Host: "example.org"}},
		{"j underscore doe two at mail dot co dot uk", Electronic{Kind: KindEmail, Local: "j_doe2", Host: "mail.co.uk"}},
		{"nvidia dot com", Electronic{Kind: KindDomain, Host: "nvidia.com"}},
		{"w w w dot example dot com", Electronic{Kind: KindURL, Host: "www.example.com"}},
		{"h t t p s colon slash slash example dot com slash docs", Electronic{Kind: KindURL, Scheme: "https://", Host: "example.com/docs"}},
		{"http colon slash slash localhost dot dev colon eight zero", Electronic{Kind: KindURL, Scheme: "http://", Host: "localhost.dev:80"}},
		{"john smith at gmail dot com", nil},
		{"hello dot world", nil},
		{"meet at noon", nil},
		{"one dot two", nil},
		{"dot com", nil},
		{"a at b", nil},
	})
}

func TestTelephoneTagger(t *testing.T) {
	t.Parallel()
	phone := func(groups ...string) Telephone {
		return Telephone{Kind: KindPhone, Groups: groups}
	}
	runTaggerCases(t, telephoneTagger{}, []taggerCase{
		{"one two three one two three five six seven eight", phone("1231235678")},
		{"double oh three one two three five six seven eight", phone("0031235678")},
		{"seven nine nine", phone("799")},
		{"five five five dash one two one two", phone("555", "1212")},
		{"eight hundred", nil},
		{"triple five one two one two", phone("5551212")},
		{"five five five twelve twelve", phone("5551212")},
		{"plus nine one one two three one two three five six seven eight", Telephone{Kind: KindPhone, CountryCode: "91", Groups: []string{"1231235678"}}},
		{"plus forty four two zero seven nine four six zero nine five eight", Telephone{Kind: KindPhone, CountryCode: "44", Groups: []string{"2079460958"}}},
		{"one two three dot one two three dot o dot four o", Telephone{Kind: KindIP, Groups: []string{"123", "123", "0", "40"}}},
		{"SSN is one two three four five six seven eight nine", Telephone{Kind: KindSSN, Groups: []string{"123", "45", "6789"}, Label: "SSN is"}},
		{"ssn one two three four five six seven eight nine", Telephone{Kind: KindSSN, Groups: []string{"123", "45", "6789"}, Label: "ssn"}},
		{"two five six dot one dot one dot one", nil},
		{"ssn is one two three", nil},
		{"two oh five", nil},
		{"twenty one", nil},
		{"one two", nil},
		{"nine eleven", nil},
		{"two plus five", nil},
		{"plus five", nil},
		{"one two dash", nil},
	})
}

func TestWhitelistTagger(t *testing.T) {
	t.Parallel()
	runTaggerCases(t, whitelistTagger{}, []taggerCase{
		{"r t x", Whitelist{Written: "RTX"}},
		{"S and P five hundred", Whitelist{Written: "S&P 500"}},
		{"Doctor", Whitelist{Written: "dr."}},
		{"for example", Whitelist{Written: "e.g."}},
		{"no one", Whitelist{Verbatim: true}},
		{"formula one", Whitelist{Verbatim: true}},
		{"hello", nil},
		{"doctor who", nil},
	})
}

func TestPunctuationTagger(t *testing.T) {
	t.Parallel()
	runTaggerCases(t, punctuationTagger{}, []taggerCase{
		{"period", Punctuation{Symbol: "."}},
		{"Question Mark", Punctuation{Symbol: "?"}},
		{"open parenthesis", Punctuation{Symbol: "("}},
		{"ellipsis", Punctuation{Symbol: "..."}},
		{"hello", nil},
		{"question mark please", nil},
	})
}

func TestParseWhitelistTable(t *testing.T) {
	t.Parallel()

	table := "# comment\n\nFoo  Bar\tbaz\r\nkeep me\t\nbare\n"
	m, longest := parseWhitelist(table)
	if longest != 2 {
		t.Errorf("longest = %d, want 2", longest)
	}
	want := map[string]Whitelist{
		"foo bar": {Written: "baz"},
		"keep me": {Verbatim: true},
		"bare":    {Verbatim: true},
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("parseWhitelist = %#v, want %#v", m, want)
	}
}
