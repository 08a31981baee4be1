package job

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Location is either free text or a structured address. Exactly one form is
// populated and it is kept as the client sent it.
type Location struct {
	Text string

	Country string
	City    string
	Address string
}

type structuredLocation struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func TextLocation(s string) Location {
	return Location{Text: s}
}

func StructuredLocation(country, city, address string) Location {
	return Location{Country: country, City: city, Address: address}
}

func (l Location) IsStructured() bool {
	return l.Text == "" && (l.Country != "" || l.City != "" || l.Address != "")
}

func (l Location) IsZero() bool {
	return strings.TrimSpace(l.Text) == "" &&
		strings.TrimSpace(l.Country) == "" &&
		strings.TrimSpace(l.City) == "" &&
		strings.TrimSpace(l.Address) == ""
}

// String is the searchable rendering of the location.
func (l Location) String() string {
	if !l.IsStructured() {
		return l.Text
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Address, l.City, l.Country} {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func (l Location) MarshalJSON() ([]byte, error) {
	if l.IsStructured() {
		return json.Marshal(structuredLocation{Country: l.Country, City: l.City, Address: l.Address})
	}
	return json.Marshal(l.Text)
}

func (l *Location) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = Location{}
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = TextLocation(s)
		return nil
	case '{':
		var sl structuredLocation
		if err := json.Unmarshal(b, &sl); err != nil {
			return err
		}
		*l = StructuredLocation(sl.Country, sl.City, sl.Address)
		return nil
	default:
		return errors.New("location must be a string or an object")
	}
}

type SalaryPeriod string

const (
	SalaryPeriodHour  SalaryPeriod = "Hour"
	SalaryPeriodMonth SalaryPeriod = "Month"
	SalaryPeriodYear  SalaryPeriod = "Year"
)

// ParseSalaryPeriod accepts the canonical names as well as the "hourly",
// "monthly" and "yearly" spellings, case-insensitively.
func ParseSalaryPeriod(s string) (SalaryPeriod, error) {
	switch normalizeEnum(s) {
	case "hour", "hourly", "perhour":
		return SalaryPeriodHour, nil
	case "month", "monthly", "permonth":
		return SalaryPeriodMonth, nil
	case "year", "yearly", "annual", "annually", "peryear":
		return SalaryPeriodYear, nil
	default:
		return "", fmt.Errorf("unknown salary period %q", s)
	}
}

func (p SalaryPeriod) Valid() bool {
	switch p {
	case SalaryPeriodHour, SalaryPeriodMonth, SalaryPeriodYear:
		return true
	}
	return false
}

// Type is the employment type of a job.
type Type string

const (
	TypeFullTime   Type = "Full Time"
	TypePartTime   Type = "Part Time"
	TypeInternship Type = "Internship"
	TypeContract   Type = "Contract"
)

func ParseType(s string) (Type, error) {
	switch normalizeEnum(s) {
	case "fulltime":
		return TypeFullTime, nil
	case "parttime":
		return TypePartTime, nil
	case "internship", "intern":
		return TypeInternship, nil
	case "contract", "contractor":
		return TypeContract, nil
	default:
		return "", fmt.Errorf("unknown job type %q", s)
	}
}

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeInternship, TypeContract:
		return true
	}
	return false
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return r.Replace(s)
}
