// Package numwords converts numeric amounts into natural-language words in
// Tamil (Indian numbering scale) or English (short scale). It exists for the
// "amount in words" clauses of rendered deeds, so outputs are deterministic
// and the functions never panic on numeric input.
package numwords

import (
	"math"
	"strconv"
	"strings"
)

// Language selects the wording scheme used by ToWords.
type Language string

const (
	Tamil   Language = "ta"
	English Language = "en"
)

// Unavailable is returned for input the converter cannot decompose:
// non-finite values and magnitudes at or past the int64 range. A visible
// marker beats a crash mid-render: the document still completes and a
// proofreader sees the gap.
const Unavailable = "—"

const (
	tamilZero     = "பூஜ்ஜியம்"
	tamilMinus    = "கழித்தல்"
	tamilPoint    = "புள்ளி"
	englishZero   = "Zero"
	englishMinus  = "Negative"
	englishPoint  = "Point"
	tamilRupee    = "ரூபாய்"
	tamilOnly     = "மட்டும்"
	englishRupees = "Rupees"
	englishOnly   = "Only"
)

var tamilOnes = []string{
	tamilZero, "ஒன்று", "இரண்டு", "மூன்று", "நான்கு", "ஐந்து", "ஆறு", "ஏழு",
	"எட்டு", "ஒன்பது", "பத்து", "பதினொன்று", "பன்னிரண்டு", "பதின்மூன்று",
	"பதினான்கு", "பதினைந்து", "பதினாறு", "பதினேழு", "பதினெட்டு", "பத்தொன்பது",
}

// Standalone tens and the oblique joining forms used when units follow
// ("இருபது" vs "இருபத்தி ஒன்று").
var tamilTens = []string{"", "", "இருபது", "முப்பது", "நாற்பது", "ஐம்பது", "அறுபது", "எழுபது", "எண்பது", "தொண்ணூறு"}
var tamilTensJoin = []string{"", "", "இருபத்தி", "முப்பத்தி", "நாற்பத்தி", "ஐம்பத்தி", "அறுபத்தி", "எழுபத்தி", "எண்பத்தி", "தொண்ணூற்றி"}

// Scale words carry a standalone form and an oblique form used when a
// remainder follows the scale ("ஒரு லட்சம்" vs "ஒரு லட்சத்து ஐம்பது ஆயிரம்").
type tamilScale struct {
	value      int64
	word       string
	joinWord   string
	bareForOne bool
}

var tamilScales = []tamilScale{
	{10_000_000, "கோடி", "கோடியே", false},
	{100_000, "லட்சம்", "லட்சத்து", false},
	{1_000, "ஆயிரம்", "ஆயிரத்து", true},
	{100, "நூறு", "நூற்று", true},
}

var englishOnes = []string{
	englishZero, "One", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
	"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var englishTens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

type englishScale struct {
	value int64
	word  string
}

var englishScales = []englishScale{
	{1_000_000_000, "Billion"},
	{1_000_000, "Million"},
	{1_000, "Thousand"},
}

// ToWords renders value as words in the requested language. Negative values
// gain a minus prefix, fractional values a point suffix with the fractional
// digits read as an integer. Non-finite input yields Unavailable.
func ToWords(value float64, lang Language) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Unavailable
	}

	negative := math.Signbit(value)
	abs := math.Abs(value)

	// Magnitudes at or past 2^63 cannot be decomposed as int64; converting
	// such floats is undefined and would corrupt the table indexing below.
	if abs >= math.MaxInt64 {
		return Unavailable
	}

	intPart, fracDigits := splitDecimal(abs)

	var out string
	switch lang {
	case English:
		out = englishInteger(intPart)
		if fracDigits > 0 {
			out += " " + englishPoint + " " + englishInteger(fracDigits)
		}
		if negative {
			out = englishMinus + " " + out
		}
	default:
		out = tamilInteger(intPart)
		if fracDigits > 0 {
			out += " " + tamilPoint + " " + tamilInteger(fracDigits)
		}
		if negative {
			out = tamilMinus + " " + out
		}
	}
	return out
}

// Rupees renders a currency amount in the conventional deed phrasing, e.g.
// "ரூபாய் ஐம்பது ஆயிரம் மட்டும்" / "Rupees Fifty Thousand Only".
func Rupees(amount float64, lang Language) string {
	words := ToWords(amount, lang)
	if words == Unavailable {
		return Unavailable
	}
	if lang == English {
		return englishRupees + " " + words + " " + englishOnly
	}
	return tamilRupee + " " + words + " " + tamilOnly
}

// splitDecimal separates a non-negative value into its integer part and its
// fractional digits read as an integer (3.14 -> 3, 14). Formatting with the
// shortest round-trip representation avoids binary-float artifacts for the
// two-decimal currency amounts this feeds.
func splitDecimal(abs float64) (int64, int64) {
	text := strconv.FormatFloat(abs, 'f', -1, 64)
	whole, frac, _ := strings.Cut(text, ".")

	intPart, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// Unreachable for inputs below the int64 guard in ToWords.
		return 0, 0
	}

	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return intPart, 0
	}
	fracDigits, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return intPart, 0
	}
	return intPart, fracDigits
}

func tamilInteger(n int64) string {
	if n < 20 {
		return tamilOnes[n]
	}
	if n < 100 {
		tens := n / 10
		unit := n % 10
		if unit == 0 {
			return tamilTens[tens]
		}
		return tamilTensJoin[tens] + " " + tamilOnes[unit]
	}

	for _, scale := range tamilScales {
		if n < scale.value {
			continue
		}
		quotient := n / scale.value
		remainder := n % scale.value

		word := scale.word
		if remainder > 0 {
			word = scale.joinWord
		}

		var head string
		if quotient == 1 {
			if scale.bareForOne {
				// "நூறு" not "ஒன்று நூறு"; likewise "ஆயிரம்".
				head = word
			} else {
				head = "ஒரு " + word
			}
		} else {
			head = tamilInteger(quotient) + " " + word
		}

		if remainder == 0 {
			return head
		}
		return head + " " + tamilInteger(remainder)
	}
	return tamilOnes[0]
}

func englishInteger(n int64) string {
	if n < 20 {
		return englishOnes[n]
	}
	if n < 100 {
		tens := n / 10
		unit := n % 10
		if unit == 0 {
			return englishTens[tens]
		}
		return englishTens[tens] + " " + englishOnes[unit]
	}
	if n < 1000 {
		head := englishOnes[n/100] + " Hundred"
		remainder := n % 100
		if remainder == 0 {
			return head
		}
		return head + " and " + englishInteger(remainder)
	}

	for _, scale := range englishScales {
		if n < scale.value {
			continue
		}
		head := englishInteger(n/scale.value) + " " + scale.word
		remainder := n % scale.value
		if remainder == 0 {
			return head
		}
		if remainder < 100 {
			return head + " and " + englishInteger(remainder)
		}
		return head + " " + englishInteger(remainder)
	}
	return englishOnes[0]
}
