package geo

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// dmsPattern captures: 1=degrees, 2=minutes, 3=seconds, 4=hemisphere.
var dmsPattern = regexp.MustCompile(
	`^(\d+)[°º\s]\s*` + // degrees followed by a degree sign or a space
		`(\d+)['′]\s?` + // minutes
		`(\d+(?:\.\d+)?)(?:["″]|'')?\s?` + // seconds, closing mark optional
		`([NSEW])$`, // hemisphere
)

// DecimalToDMS converts a decimal pair to degrees-minutes-seconds strings.
// Seconds are rounded to two decimals and carried into minutes and degrees
// so that a component never reads 60.
func DecimalToDMS(lat, lon float64) DMSPoint {
	return DMSPoint{
		Latitude:  formatDMS(lat, Latitude),
		Longitude: formatDMS(lon, Longitude),
	}
}

func formatDMS(coord float64, axis Axis) string {
	pos, neg := axis.hemispheres()
	hemisphere := pos
	if coord < 0 {
		hemisphere = neg
	}

	abs := math.Abs(coord)
	degrees := int(abs)
	minutesFull := (abs - float64(degrees)) * 60
	minutes := int(minutesFull)
	hundredths := int(math.Round((minutesFull - float64(minutes)) * 60 * 100))

	if hundredths >= 6000 {
		hundredths -= 6000
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		degrees++
	}

	return fmt.Sprintf("%d°%02d'%02d.%02d\"%c", degrees, minutes, hundredths/100, hundredths%100, hemisphere)
}

// DMSToDecimal parses a pair of DMS strings into a decimal point rounded to
// six decimal places. The hemisphere letter must match the axis.
func DMSToDecimal(lat, lon string) (DecimalPoint, error) {
	la, err := parseDMS(lat, Latitude)
	if err != nil {
		return DecimalPoint{}, err
	}

	lo, err := parseDMS(lon, Longitude)
	if err != nil {
		return DecimalPoint{}, err
	}

	return DecimalPoint{Latitude: la, Longitude: lo}, nil
}

func parseDMS(s string, axis Axis) (float64, error) {
	input := strings.TrimSpace(s)
	m := dmsPattern.FindStringSubmatch(input)
	if m == nil {
		return 0, &ParseError{Input: s, Reason: "invalid DMS format"}
	}

	// the pattern guarantees digit-only groups
	degrees, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "invalid seconds", Err: err}
	}

	if minutes >= 60 {
		return 0, &ParseError{Input: s, Reason: "minutes must be below 60"}
	}
	if seconds >= 60 {
		return 0, &ParseError{Input: s, Reason: "seconds must be below 60"}
	}

	pos, neg := axis.hemispheres()
	hemisphere := m[4][0]
	if hemisphere != pos && hemisphere != neg {
		return 0, &ParseError{
			Input:  s,
			Reason: fmt.Sprintf("hemisphere %c is not valid for %s, expected %c or %c", hemisphere, axis, pos, neg),
		}
	}

	decimal := float64(degrees) + float64(minutes)/60 + seconds/3600
	if decimal > axis.limit() {
		return 0, &ParseError{Input: s, Reason: fmt.Sprintf("%s exceeds %g degrees", axis, axis.limit())}
	}
	if hemisphere == neg {
		decimal = -decimal
	}

	return Round6(decimal), nil
}

// Round6 rounds a degree value to six decimal places (about 0.11 m).
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
