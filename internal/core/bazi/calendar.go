package bazi

import (
	"fmt"
	"time"
)

// Converter resolves a Gregorian birth moment into a four-pillar chart.
// Implementations must be deterministic for a fixed epoch so results can be
// cached per (date, hour) input.
type Converter interface {
	ResolveChart(year, month, day, hour int) (*Chart, error)
}

// SexagenaryConverter is the built-in calendar converter. It derives the
// four pillars from the continuous sexagenary cycle anchored at the
// conventional epoch (1984 = jia-zi year).
type SexagenaryConverter struct{}

// NewConverter returns the default calendar converter.
func NewConverter() *SexagenaryConverter {
	return &SexagenaryConverter{}
}

const (
	minYear = 1600
	maxYear = 2400

	// epochYear is a jia-zi year anchoring the 60-year cycle.
	epochYear = 1984
)

// ResolveChart maps a date and hour to stem/branch pillars. Out-of-range
// input is an error; the engine never retries.
func (c *SexagenaryConverter) ResolveChart(year, month, day, hour int) (*Chart, error) {
	if year < minYear || year > maxYear {
		return nil, fmt.Errorf("year %d out of supported range [%d, %d]", year, minYear, maxYear)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d out of range [1, 12]", month)
	}
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("hour %d out of range [0, 23]", hour)
	}
	if day < 1 || day > daysIn(year, month) {
		return nil, fmt.Errorf("day %d out of range for %d-%02d", day, year, month)
	}

	yearIndex := mod(year-epochYear, 60)
	yearPillar := Pillar{Stem: Stem(yearIndex % 10), Branch: Branch(yearIndex % 12)}

	// Month branch: the first civil month corresponds to the yin branch.
	monthBranch := Branch(mod(month+1, 12))
	// Month stem advances two steps per year stem (five-tigers rule).
	monthStem := Stem(mod(int(yearPillar.Stem)*2+month+1, 10))
	monthPillar := Pillar{Stem: monthStem, Branch: monthBranch}

	dayNumber := julianDayNumber(year, month, day)
	dayIndex := mod(dayNumber+49, 60)
	dayPillar := Pillar{Stem: Stem(dayIndex % 10), Branch: Branch(dayIndex % 12)}

	// Each branch covers a two-hour window starting at 23:00 (zi hour).
	hourBranch := Branch(((hour + 1) / 2) % 12)
	hourStem := Stem(mod(int(dayPillar.Stem)*2+int(hourBranch), 10))
	hourPillar := Pillar{Stem: hourStem, Branch: hourBranch}

	return &Chart{
		Year:  yearPillar,
		Month: monthPillar,
		Day:   dayPillar,
		Hour:  hourPillar,
	}, nil
}

func daysIn(year, month int) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// julianDayNumber converts a Gregorian date to its Julian day number.
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

func mod(value, base int) int {
	result := value % base
	if result < 0 {
		result += base
	}
	return result
}
