package horoscope

import (
	"fmt"
	"strings"
)

// Sign is a zodiac sign as the horoscope API spells it.
type Sign string

const (
	Aries       Sign = "aries"
	Taurus      Sign = "taurus"
	Gemini      Sign = "gemini"
	Cancer      Sign = "cancer"
	Leo         Sign = "leo"
	Virgo       Sign = "virgo"
	Libra       Sign = "libra"
	Scorpio     Sign = "scorpio"
	Sagittarius Sign = "sagittarius"
	Capricorn   Sign = "capricorn"
	Aquarius    Sign = "aquarius"
	Pisces      Sign = "pisces"
)

// Signs lists the twelve signs in zodiac order.
var Signs = []Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// ParseSign accepts a sign name in any case.
func ParseSign(s string) (Sign, error) {
	name := Sign(strings.ToLower(strings.TrimSpace(s)))
	for _, sign := range Signs {
		if sign == name {
			return sign, nil
		}
	}
	return "", fmt.Errorf("unknown sign %q", s)
}

func (s Sign) String() string {
	return string(s)
}

// Period selects which horoscope endpoint is queried.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

// ParsePeriod accepts daily, weekly or monthly in any case.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case Daily, Weekly, Monthly:
		return p, nil
	case "":
		return Daily, nil
	default:
		return "", fmt.Errorf("unknown period %q (want daily, weekly or monthly)", s)
	}
}
