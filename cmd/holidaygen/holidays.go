package main

import "time"

const dateFormat = "2006-01-02"

// swedishHolidays returns the Swedish public holidays of a year plus the de
// facto full holidays Christmas Eve, Midsummer Eve and New Year's Eve.
func swedishHolidays(year int) map[string]string {
	holidays := map[string]string{
		date(year, time.January, 1).Format(dateFormat):   "New Year's Day",
		date(year, time.January, 6).Format(dateFormat):   "Epiphany",
		date(year, time.May, 1).Format(dateFormat):       "May Day",
		date(year, time.June, 6).Format(dateFormat):      "National Day of Sweden",
		date(year, time.December, 24).Format(dateFormat): "Christmas Eve",
		date(year, time.December, 25).Format(dateFormat): "Christmas Day",
		date(year, time.December, 26).Format(dateFormat): "Boxing Day",
		date(year, time.December, 31).Format(dateFormat): "New Year's Eve",
	}

	easter := easterSunday(year)
	holidays[easter.AddDate(0, 0, -2).Format(dateFormat)] = "Good Friday"
	holidays[easter.AddDate(0, 0, 1).Format(dateFormat)] = "Easter Monday"
	holidays[easter.AddDate(0, 0, 39).Format(dateFormat)] = "Ascension Day"

	// Midsummer Eve floats: the Friday between June 19 and June 25.
	midsummerEve := weekdayOnOrAfter(date(year, time.June, 19), time.Friday)
	holidays[midsummerEve.Format(dateFormat)] = "Midsummer Eve"
	holidays[midsummerEve.AddDate(0, 0, 1).Format(dateFormat)] = "Midsummer Day"

	// All Saints' Day floats: the Saturday between October 31 and November 6.
	allSaints := weekdayOnOrAfter(date(year, time.October, 31), time.Saturday)
	holidays[allSaints.Format(dateFormat)] = "All Saints' Day"

	return holidays
}

// easterSunday computes Easter Sunday with the Meeus/Jones/Butcher algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return date(year, time.Month(month), day)
}

func weekdayOnOrAfter(t time.Time, wd time.Weekday) time.Time {
	return t.AddDate(0, 0, (int(wd)-int(t.Weekday())+7)%7)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
