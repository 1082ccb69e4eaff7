package wuge

import "fmt"

// Fortune classifies a grid number in the 81-entry luck table.
type Fortune string

const (
	FortuneAuspicious   Fortune = "auspicious"
	FortuneMixed        Fortune = "mixed"
	FortuneInauspicious Fortune = "inauspicious"
)

// Entry is one row of the 81-entry luck table.
type Entry struct {
	Number  int     `json:"number"`
	Fortune Fortune `json:"fortune"`
	Meaning string  `json:"meaning"`
}

// Lookup reduces a grid number into the 1-81 domain and returns its luck
// entry.
func Lookup(number int) (Entry, error) {
	reduced := Reduce(number)
	if reduced < 1 || reduced > 81 {
		return Entry{}, fmt.Errorf("%w: grid number %d", ErrInvalidStrokes, number)
	}
	return luckTable[reduced-1], nil
}

// auspiciousNumbers and mixedNumbers partition the 1-81 domain; numbers in
// neither set are inauspicious. The partition is curated reference data.
var auspiciousNumbers = map[int]bool{
	1: true, 3: true, 5: true, 6: true, 7: true, 8: true, 11: true, 13: true,
	15: true, 16: true, 17: true, 18: true, 21: true, 23: true, 24: true,
	25: true, 29: true, 31: true, 32: true, 33: true, 35: true, 37: true,
	39: true, 41: true, 45: true, 47: true, 48: true, 52: true, 57: true,
	61: true, 63: true, 65: true, 67: true, 68: true, 81: true,
}

var mixedNumbers = map[int]bool{
	27: true, 38: true, 40: true, 42: true, 43: true, 50: true, 51: true,
	53: true, 55: true, 58: true, 71: true, 72: true, 73: true, 75: true,
	77: true, 78: true,
}

var luckMeanings = [81]string{
	"origin of all things, wealth and honor",
	"division without strength, drifting",
	"growth into fullness, talent rewarded",
	"ruin and separation, effort scattered",
	"yin and yang in accord, steady success",
	"heaven-sent blessing, family prosperity",
	"firm independence, quiet authority",
	"iron will, obstacles worn down",
	"vigor exhausted, plans undone",
	"emptiness at the end, fading light",
	"spring rain on dry ground, revival",
	"weak reach beyond grasp, strain",
	"wisdom in full measure, wide regard",
	"scattered kin, labor without fruit",
	"rising moon, honor among people",
	"burden carried well, leadership",
	"breakthrough by persistence",
	"command and achievement, firm steps",
	"clever but obstructed, mixed luck",
	"ruin amid motion, unsteady ground",
	"pillar standing alone, slow ascent",
	"autumn grass meeting frost",
	"morning sun over the mountain",
	"bare hands building a household",
	"calm wit and sound judgment",
	"strange talent, uneven road",
	"pride checked midway, partial success",
	"drifting cloud, separation",
	"ambition answered by fortune",
	"gain and loss in equal measure",
	"wisdom, courage, and trust gathered",
	"favorable wind for the household",
	"courage crowned, name made",
	"disaster breeding disaster",
	"peaceful scholar's path",
	"waves against a lone boat",
	"loyal heart, steady reward",
	"art over power, modest fame",
	"clouds parting before the moon",
	"bold venture, knife's edge",
	"virtue gathering weight, acclaim",
	"ten skills and none mastered",
	"outward bloom, inner want",
	"ruin of the unprepared",
	"one sail before a smooth wind",
	"heavy load on a weak cart",
	"flower opening at the right season",
	"counsel of the wise, trusted elder",
	"cleverness serving others' gain",
	"one swing between rise and fall",
	"late bloom after early storm",
	"foresight seizing the moment",
	"outward calm, inward struggle",
	"gain first and lose after",
	"surface glory hiding sorrow",
	"late regret after early waste",
	"carp leaping the dragon gate",
	"storm before a clear evening",
	"trust rebuilt from ruin",
	"fog without direction",
	"name and fortune both complete",
	"defense crumbling from within",
	"rain after long drought",
	"climb interrupted near the summit",
	"all rivers reaching the sea",
	"darkness before the gate",
	"heaven and earth lending strength",
	"steady house on firm ground",
	"talent without its season",
	"float and sink by turns",
	"half light and half shadow",
	"hope carried through hardship",
	"strength in calm endurance",
	"ability short of ambition",
	"quiet gain, modest ease",
	"collapse midway, care needed",
	"light first and dark after",
	"bitter first half, sweet close",
	"reach exceeding fortune",
	"night road without a lantern",
	"return to the origin, fullness",
}

var luckTable = buildLuckTable()

func buildLuckTable() [81]Entry {
	var table [81]Entry
	for number := 1; number <= 81; number++ {
		fortune := FortuneInauspicious
		switch {
		case auspiciousNumbers[number]:
			fortune = FortuneAuspicious
		case mixedNumbers[number]:
			fortune = FortuneMixed
		}
		table[number-1] = Entry{
			Number:  number,
			Fortune: fortune,
			Meaning: luckMeanings[number-1],
		}
	}
	return table
}
