package user

import (
	"errors"
	"strings"
	"time"
)

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentHR          Department = "HR"
	DepartmentMarketing   Department = "Marketing"
	DepartmentFinance     Department = "Finance"
	DepartmentOperations  Department = "Operations"
	DepartmentSales       Department = "Sales"
)

func (d Department) Valid() bool {
	switch d {
	case DepartmentEngineering, DepartmentHR, DepartmentMarketing,
		DepartmentFinance, DepartmentOperations, DepartmentSales:
		return true
	}
	return false
}

// User is the full stored record. It never leaves the process as-is: use Public.
type User struct {
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth Date
	JobTitle    string
	Department  Department
	Email       string
	CreatedAt   time.Time
}

// Public is the view of a User that crosses the HTTP boundary.
type Public struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth Date       `json:"date_of_birth"`
	JobTitle    string     `json:"job_title"`
	Department  Department `json:"department"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Public drops the email address. This is the only place a User is redacted.
func (u User) Public() Public {
	return Public{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth,
		JobTitle:    u.JobTitle,
		Department:  u.Department,
		CreatedAt:   u.CreatedAt,
	}
}

const dateLayout = "2006-01-02"

// Date is a calendar date without a time of day.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return errors.New("empty date")
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
