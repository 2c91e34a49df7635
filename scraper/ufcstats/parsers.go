package ufcstats

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"fightstats/models"
)

// placeholder is what the stats site shows for an unknown value
const placeholder = "--"

var (
	heightRegex  = regexp.MustCompile(`^(\d+)'\s*(\d+)"`)
	reachRegex   = regexp.MustCompile(`^(\d+)"`)
	percentRegex = regexp.MustCompile(`^(\d+)%`)
	recordRegex  = regexp.MustCompile(`(\d+)-(\d+)-(\d+)`)
	weightRegex  = regexp.MustCompile(`^(\d+)`)
)

// blank trims s and reports whether it carries no value
func blank(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == "" || s == placeholder
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ParseHeightToCm converts `6' 4"` to centimetres, rounded to 0.1
func ParseHeightToCm(s string) models.Opt[float64] {
	s, empty := blank(s)
	if empty {
		return models.None[float64]()
	}
	m := heightRegex.FindStringSubmatch(s)
	if m == nil {
		return models.None[float64]()
	}
	feet, errF := strconv.Atoi(m[1])
	inches, errI := strconv.Atoi(m[2])
	if errF != nil || errI != nil {
		return models.None[float64]()
	}
	return models.Some(round1((float64(feet)*12 + float64(inches)) * 2.54))
}

// ParseReachToCm converts `80"` to centimetres, rounded to 0.1
func ParseReachToCm(s string) models.Opt[float64] {
	s, empty := blank(s)
	if empty {
		return models.None[float64]()
	}
	m := reachRegex.FindStringSubmatch(s)
	if m == nil {
		return models.None[float64]()
	}
	inches, err := strconv.Atoi(m[1])
	if err != nil {
		return models.None[float64]()
	}
	return models.Some(round1(float64(inches) * 2.54))
}

// ParsePercentage converts `48%` to 0.48
func ParsePercentage(s string) models.Opt[float64] {
	s, empty := blank(s)
	if empty {
		return models.None[float64]()
	}
	m := percentRegex.FindStringSubmatch(s)
	if m == nil {
		return models.None[float64]()
	}
	pct, err := strconv.Atoi(m[1])
	if err != nil {
		return models.None[float64]()
	}
	return models.Some(float64(pct) / 100.0)
}

// ParseFloatField parses a plain decimal such as `4.52`
func ParseFloatField(s string) models.Opt[float64] {
	s, empty := blank(s)
	if empty {
		return models.None[float64]()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return models.None[float64]()
	}
	return models.Some(v)
}

// ParseRecord finds a W-L-D triple anywhere in s, e.g. "Record: 24-5-0".
// Either all three values are present or all three are absent.
func ParseRecord(s string) (wins, losses, draws models.Opt[int]) {
	m := recordRegex.FindStringSubmatch(s)
	if m == nil {
		return models.None[int](), models.None[int](), models.None[int]()
	}
	w, errW := strconv.Atoi(m[1])
	l, errL := strconv.Atoi(m[2])
	d, errD := strconv.Atoi(m[3])
	if errW != nil || errL != nil || errD != nil {
		return models.None[int](), models.None[int](), models.None[int]()
	}
	return models.Some(w), models.Some(l), models.Some(d)
}

// ParseWeight reads the leading integer of `185 lbs.`
func ParseWeight(s string) models.Opt[int] {
	s, empty := blank(s)
	if empty {
		return models.None[int]()
	}
	m := weightRegex.FindStringSubmatch(s)
	if m == nil {
		return models.None[int]()
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return models.None[int]()
	}
	return models.Some(v)
}

// parseText keeps a free-text value unless it is the placeholder
func parseText(s string) models.Opt[string] {
	s, empty := blank(s)
	if empty {
		return models.None[string]()
	}
	return models.Some(s)
}
