package shared

import "errors"

// ErrInvalidAmount is returned when a monetary amount is zero, negative, or
// otherwise unusable.
var ErrInvalidAmount = errors.New("amount must be positive")

// Category classifies which financial loop a bill belongs to
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
)

// Valid reports whether the category is one of the known values
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal:
		return true
	}
	return false
}

// Source classifies where a funding record's money came from
type Source string

const (
	SourceSalary        Source = "salary"
	SourceReimbursement Source = "reimbursement"
	SourceOther         Source = "other"
)

// Valid reports whether the source is one of the known values
func (s Source) Valid() bool {
	switch s {
	case SourceSalary, SourceReimbursement, SourceOther:
		return true
	}
	return false
}
