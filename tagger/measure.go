package tagger

import "strings"

// Measure is a quantity with a written unit symbol ("km", "°F", "m²").
type Measure struct {
	Number Decimal
	Unit   string
}

// Category implements Value.
func (Measure) Category() Category { return CategoryMeasurement }

// unitTable lists unit symbols with their spoken forms, singular and plural.
// Pounds are not listed: "five pounds" is read as money.
var unitTable = []struct {
	symbol string
	spoken []string
}{
	// length
	{"nm", []string{"nanometer", "nanometers", "nanometre", "nanometres"}},
	{"μm", []string{"micrometer", "micrometers", "micron", "microns"}},
	{"mm", []string{"millimeter", "millimeters", "millimetre", "millimetres"}},
	{"cm", []string{"centimeter", "centimeters", "centimetre", "centimetres"}},
	{"m", []string{"meter", "meters", "metre", "metres"}},
	{"km", []string{"kilometer", "kilometers", "kilometre", "kilometres"}},
	{"in", []string{"inch", "inches"}},
	{"ft", []string{"foot", "feet"}},
	{"yd", []string{"yard", "yards"}},
	{"mi", []string{"mile", "miles"}},
	{"au", []string{"astronomical unit", "astronomical units"}},
	// mass
	{"mg", []string{"milligram", "milligrams"}},
	{"g", []string{"gram", "grams"}},
	{"kg", []string{"kilogram", "kilograms", "kilo", "kilos"}},
	{"t", []string{"tonne", "tonnes", "metric ton", "metric tons"}},
	{"oz", []string{"ounce", "ounces"}},
	{"kgf", []string{"kilogram force", "kilograms force"}},
	// volume
	{"ml", []string{"milliliter", "milliliters", "millilitre", "millilitres"}},
	{"l", []string{"liter", "liters", "litre", "litres"}},
	{"kl", []string{"kiloliter", "kiloliters", "kilolitre", "kilolitres"}},
	{"gal", []string{"gallon", "gallons"}},
	{"cc", []string{"c c", "cc"}},
	// area
	{"ha", []string{"hectare", "hectares"}},
	{"ac", []string{"acre", "acres"}},
	// data
	{"B", []string{"byte", "bytes"}},
	{"KB", []string{"kilobyte", "kilobytes"}},
	{"MB", []string{"megabyte", "megabytes"}},
	{"GB", []string{"gigabyte", "gigabytes"}},
	{"TB", []string{"terabyte", "terabytes"}},
	{"PB", []string{"petabyte", "petabytes"}},
	{"b", []string{"bit", "bits"}},
	{"kb", []string{"kilobit", "kilobits"}},
	{"Mb", []string{"megabit", "megabits"}},
	{"Gb", []string{"gigabit", "gigabits"}},
	{"Mbps", []string{"mbps"}},
	{"Gbps", []string{"gbps"}},
	// power and energy
	{"mW", []string{"milliwatt", "milliwatts"}},
	{"W", []string{"watt", "watts"}},
	{"kW", []string{"kilowatt", "kilowatts"}},
	{"MW", []string{"megawatt", "megawatts"}},
	{"GW", []string{"gigawatt", "gigawatts"}},
	{"kWh", []string{"kilowatt hour", "kilowatt hours"}},
	{"hp", []string{"horsepower"}},
	{"lm", []string{"lumen", "lumens"}},
	// frequency
	{"Hz", []string{"hertz"}},
	{"kHz", []string{"kilohertz"}},
	{"MHz", []string{"megahertz"}},
	{"GHz", []string{"gigahertz"}},
	// electrical
	{"mV", []string{"millivolt", "millivolts"}},
	{"V", []string{"volt", "volts"}},
	{"kV", []string{"kilovolt", "kilovolts"}},
	{"mA", []string{"milliamp", "milliamps", "milliampere", "milliamperes"}},
	{"A", []string{"amp", "amps", "ampere", "amperes"}},
	{"Ω", []string{"ohm", "ohms"}},
	// temperature
	{"°F", []string{"degree fahrenheit", "degrees fahrenheit", "fahrenheit"}},
	{"°C", []string{"degree celsius", "degrees celsius", "celsius", "degree centigrade", "degrees centigrade"}},
	{"K", []string{"kelvin", "kelvins"}},
	{"°", []string{"degree", "degrees"}},
	// speed
	{"mph", []string{"mph"}},
	{"kn", []string{"knot", "knots"}},
	// ratio
	{"%", []string{"percent", "per cent"}},
}

// units maps a spoken unit (words joined by single spaces) to its symbol.
var units = func() map[string]string {
	m := make(map[string]string, len(unitTable)*3)
	for _, u := range unitTable {
		for _, s := range u.spoken {
			m[s] = u.symbol
		}
	}
	return m
}()

// imperialUnits take "sq" and "cu" prefixes instead of ² and ³.
var imperialUnits = map[string]bool{"in": true, "ft": true, "yd": true, "mi": true}

// rateUnits are time units read only after "per": "five seconds" is left
// alone, "ten meters per second" is not.
var rateUnits = map[string]string{
	"second": "s",
	"minute": "min",
	"hour":   "h",
	"day":    "d",
}

// compoundAliases rewrites compound symbols to their usual written form.
var compoundAliases = map[string]string{
	"mi/h": "mph",
	"b/s":  "bps",
	"kb/s": "kbps",
	"Mb/s": "Mbps",
	"Gb/s": "Gbps",
}

type measureTagger struct{}

func (measureTagger) Category() Category { return CategoryMeasurement }

// Parse accepts "<number> <unit>" where the unit may be compound
// ("kilometers per hour"), squared or cubed ("square feet", "meters squared").
func (measureTagger) Parse(words []Word) (Value, bool) {
	lw := lowers(words)
	for u := 1; u < len(lw); u++ {
		unit, ok := unitPhrase(lw[u:])
		if !ok {
			continue
		}
		n, ok := parseNumber(words[:u])
		if !ok {
			return nil, false
		}
		return Measure{Number: n, Unit: unit}, true
	}
	return nil, false
}

// unitPhrase reads a whole unit phrase, possibly compound with "per".
func unitPhrase(lw []string) (string, bool) {
	for i, w := range lw {
		if w != "per" || i == 0 || i == len(lw)-1 {
			continue
		}
		num, ok := powerUnit(lw[:i])
		if !ok {
			return "", false
		}
		den, ok := rateUnits[strings.Join(lw[i+1:], " ")]
		if !ok {
			if den, ok = powerUnit(lw[i+1:]); !ok {
				return "", false
			}
		}
		sym := num + "/" + den
		if alias, ok := compoundAliases[sym]; ok {
			sym = alias
		}
		return sym, true
	}
	return powerUnit(lw)
}

// powerUnit reads a simple unit with an optional square or cubic modifier.
func powerUnit(lw []string) (string, bool) {
	if len(lw) == 0 {
		return "", false
	}
	switch {
	case lw[0] == "square":
		return raised(lw[1:], "²", "sq ")
	case lw[0] == "cubic":
		return raised(lw[1:], "³", "cu ")
	case len(lw) > 1 && lw[len(lw)-1] == "squared":
		return raised(lw[:len(lw)-1], "²", "sq ")
	case len(lw) > 1 && lw[len(lw)-1] == "cubed":
		return raised(lw[:len(lw)-1], "³", "cu ")
	}
	sym, ok := units[strings.Join(lw, " ")]
	return sym, ok
}

func raised(lw []string, power, imperialPrefix string) (string, bool) {
	if len(lw) == 0 {
		return "", false
	}
	sym, ok := units[strings.Join(lw, " ")]
	if !ok {
		return "", false
	}
	if imperialUnits[sym] {
		return imperialPrefix + sym, true
	}
	return sym + power, true
}
