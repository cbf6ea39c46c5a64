package domain

import "fmt"

type Job string

const (
	JobEmployed   Job = "employed"
	JobUnemployed Job = "unemployed"
	JobRetired    Job = "retired"
)

func (j Job) IsValid() bool {
	switch j {
	case JobEmployed, JobUnemployed, JobRetired:
		return true
	}
	return false
}

func ParseJob(s string) (Job, error) {
	j := Job(s)
	if !j.IsValid() {
		return "", fmt.Errorf("ParseJob: unknown job %q", s)
	}
	return j, nil
}

type AccountType string

const (
	TypeChecking AccountType = "checking"
	TypeSavings  AccountType = "savings"
)

func (t AccountType) IsValid() bool {
	return t == TypeChecking || t == TypeSavings
}

func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("ParseAccountType: unknown account type %q", s)
	}
	return t, nil
}

const (
	MinAge = 18
	MaxAge = 120
)

// Profile carries the non-financial attributes of an account holder.
type Profile struct {
	FirstName string
	LastName  string
	Age       int
	State     string
	Job       Job
	Type      AccountType
}

// Validate checks the whole profile and reports the first malformed field.
func (p Profile) Validate() error {
	if p.FirstName == "" {
		return fmt.Errorf("Validate: first name is required: %w", ErrInvalidProfile)
	}
	if p.LastName == "" {
		return fmt.Errorf("Validate: last name is required: %w", ErrInvalidProfile)
	}
	if !validAge(p.Age) {
		return fmt.Errorf("Validate: age %d outside %d-%d: %w", p.Age, MinAge, MaxAge, ErrInvalidProfile)
	}
	if p.State == "" {
		return fmt.Errorf("Validate: state is required: %w", ErrInvalidProfile)
	}
	if !p.Job.IsValid() {
		return fmt.Errorf("Validate: job %q: %w", p.Job, ErrInvalidProfile)
	}
	if !p.Type.IsValid() {
		return fmt.Errorf("Validate: account type %q: %w", p.Type, ErrInvalidProfile)
	}
	return nil
}

// ProfileUpdate is a patch of profile fields; nil fields are left untouched.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Age       *int
	State     *string
	Job       *Job
	Type      *AccountType
}

func (u ProfileUpdate) validate() error {
	if u.FirstName != nil && *u.FirstName == "" {
		return fmt.Errorf("validate: first name must not be empty: %w", ErrInvalidField)
	}
	if u.LastName != nil && *u.LastName == "" {
		return fmt.Errorf("validate: last name must not be empty: %w", ErrInvalidField)
	}
	if u.Age != nil && !validAge(*u.Age) {
		return fmt.Errorf("validate: age %d outside %d-%d: %w", *u.Age, MinAge, MaxAge, ErrInvalidField)
	}
	if u.State != nil && *u.State == "" {
		return fmt.Errorf("validate: state must not be empty: %w", ErrInvalidField)
	}
	if u.Job != nil && !u.Job.IsValid() {
		return fmt.Errorf("validate: job %q: %w", *u.Job, ErrInvalidField)
	}
	if u.Type != nil && !u.Type.IsValid() {
		return fmt.Errorf("validate: account type %q: %w", *u.Type, ErrInvalidField)
	}
	return nil
}

func validAge(age int) bool {
	return age >= MinAge && age <= MaxAge
}
