package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/match-evaluator/internal/schemas"
)

// newValidator builds a validator that reports JSON field names rather than
// Go struct field names, so violations line up with the wire format.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// asFieldErrors converts validator violations into the structured
// per-field error shape the engine reports.
func asFieldErrors(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &schemas.ValidationError{Errors: make([]schemas.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := fe.Namespace()
		// Drop the leading struct name; callers know which record failed.
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		ve.Errors = append(ve.Errors, schemas.FieldError{
			Field:   field,
			Message: fmt.Sprintf("does not satisfy %q constraint", fe.Tag()),
		})
	}
	return ve
}

// Validate validates the JobSpec using the validator.
func (j *JobSpec) Validate() error {
	return asFieldErrors(newValidator().Struct(j))
}

// Validate validates the CandidateProfile using the validator.
func (c *CandidateProfile) Validate() error {
	return asFieldErrors(newValidator().Struct(c))
}

// Validate validates the CompanyProfile using the validator.
func (c *CompanyProfile) Validate() error {
	return asFieldErrors(newValidator().Struct(c))
}

// Validate validates an assembled ScoreCard using the validator.
func (s *ScoreCard) Validate() error {
	return asFieldErrors(newValidator().Struct(s))
}

// Validate validates the full request, including the salary-range ordering
// checks that sit outside tag reach.
func (r *MatchRequest) Validate() error {
	err := asFieldErrors(newValidator().Struct(r))

	var ve *schemas.ValidationError
	if err != nil {
		if !errors.As(err, &ve) {
			return err
		}
	} else {
		ve = &schemas.ValidationError{}
	}

	ranges := []struct {
		field string
		r     *SalaryRange
	}{
		{"job_spec.salary_range", r.JobSpec.SalaryRange},
		{"candidate_profile.salary_expectation", r.CandidateProfile.SalaryExpectation},
	}
	if company := r.Company(); company != nil {
		ranges = append(ranges, struct {
			field string
			r     *SalaryRange
		}{"company_profile.salary_benchmarks", company.SalaryBenchmarks})
	}
	for _, sr := range ranges {
		if !sr.r.Bounded() {
			ve.Errors = append(ve.Errors, schemas.FieldError{
				Field:   sr.field,
				Message: "min exceeds max",
			})
		}
	}

	if len(ve.Errors) == 0 {
		return nil
	}
	return ve
}
