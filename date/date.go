// Package date provides a calendar date value with day granularity.
//
// Dates are syntactic: Parse accepts any "YYYY-MM-DD" string with a month in
// 01-12 and a day in 01-31, and the value round-trips unchanged. Days are not
// checked against the length of their month.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the string representation of dates, ISO-8601 with day granularity.
const Format = "2006-01-02"

// Date represents a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the Date for the given year, month, and day, as given.
func New(year int, month time.Month, day int) Date {
	return Date{y: year, m: month, d: day}
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date in its standard format.
func (d Date) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.y, int(d.m), d.d) }

// Parse parses a Date from a "YYYY-MM-DD" string. The check is syntactic:
// the month must be in 01-12 and the day in 01-31, nothing more.
func Parse(str string) (Date, error) {
	if len(str) != len(Format) || str[4] != '-' || str[7] != '-' {
		return Date{}, fmt.Errorf("invalid date %q: want format %q", str, Format)
	}
	y, err1 := atoi(str[0:4])
	m, err2 := atoi(str[5:7])
	d, err3 := atoi(str[8:10])
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, fmt.Errorf("invalid date %q: want format %q", str, Format)
	}
	if m < 1 || m > 12 {
		return Date{}, fmt.Errorf("invalid date %q: month %02d out of range 01-12", str, m)
	}
	if d < 1 || d > 31 {
		return Date{}, fmt.Errorf("invalid date %q: day %02d out of range 01-31", str, d)
	}
	return New(y, time.Month(m), d), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// atoi converts a string of decimal digits only. Unlike strconv.Atoi it
// rejects signs and spaces, so "-024" or " 24" are not valid date parts.
func atoi(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a number: %q", s)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
