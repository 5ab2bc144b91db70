package entities

import (
	"fmt"
	"strings"

	"air/atlas/internal/constants"
)

// FlightCode is a parsed commercial flight designator such as BAW123A or BA0001.
type FlightCode struct {
	Airline string // ICAO (3 letters) or IATA (2 characters) designator
	Number  string // 1-4 digits, leading zeros kept
	Suffix  string // optional operational suffix letter
}

// ParseFlightCode validates raw and splits it into its parts. An ICAO airline
// prefix is tried before an IATA one, so "BAW1" is BAW/1 and "BA0001" is BA/0001.
func ParseFlightCode(raw string) (FlightCode, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))

	if code, ok := splitFlightCode(s, 3, isLetter); ok {
		return code, nil
	}
	if code, ok := splitFlightCode(s, 2, isDesignatorChar); ok && hasLetter(code.Airline) {
		return code, nil
	}

	return FlightCode{}, fmt.Errorf("%w: malformed flight code %q", constants.ErrInvalidInput, raw)
}

func splitFlightCode(s string, airlineLen int, airlineChar func(byte) bool) (FlightCode, bool) {
	if len(s) < airlineLen+1 {
		return FlightCode{}, false
	}
	for i := 0; i < airlineLen; i++ {
		if !airlineChar(s[i]) {
			return FlightCode{}, false
		}
	}

	rest := s[airlineLen:]
	digits := 0
	for digits < len(rest) && isDigit(rest[digits]) {
		digits++
	}
	if digits == 0 || digits > 4 {
		return FlightCode{}, false
	}

	suffix := rest[digits:]
	if len(suffix) > 1 || (len(suffix) == 1 && !isLetter(suffix[0])) {
		return FlightCode{}, false
	}

	return FlightCode{
		Airline: s[:airlineLen],
		Number:  rest[:digits],
		Suffix:  suffix,
	}, true
}

// String renders the canonical upper-case form.
func (c FlightCode) String() string {
	return c.Airline + c.Number + c.Suffix
}

func isLetter(b byte) bool { return b >= 'A' && b <= 'Z' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isDesignatorChar(b byte) bool { return isLetter(b) || isDigit(b) }

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		if isLetter(s[i]) {
			return true
		}
	}
	return false
}
