package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// ValidationError reports the first violated field of a request or content
// payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// Invalid constructs a ValidationError for a field.
func Invalid(field, format string, args ...any) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("%s %s", field, fmt.Sprintf(format, args...))}
}

type personalInfoIn struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	LinkedIn *string `json:"linkedin"`
	Website  *string `json:"website"`
}

type experienceIn struct {
	ID          *string `json:"id"`
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description *string `json:"description"`
}

type educationIn struct {
	ID     *string `json:"id"`
	School *string `json:"school"`
	Degree *string `json:"degree"`
	Year   *string `json:"year"`
}

type contentIn struct {
	PersonalInfo *personalInfoIn `json:"personalInfo"`
	Summary      *string         `json:"summary"`
	Experience   []experienceIn  `json:"experience"`
	Education    []educationIn   `json:"education"`
	Skills       []string        `json:"skills"`
}

// DecodeContent parses and validates a raw content payload. Every top-level
// section is optional, but a present experience or education entry must carry
// all of its fields as strings (empty string passes). Unknown keys are
// dropped, and a present-but-empty collection stays an empty array. The
// returned error is a ValidationError naming the first violated field.
func DecodeContent(raw json.RawMessage) (ResumeContent, error) {
	var in contentIn
	if err := json.Unmarshal(raw, &in); err != nil {
		return ResumeContent{}, contentDecodeError(err)
	}

	out := ResumeContent{}
	if in.PersonalInfo != nil {
		out.PersonalInfo = &PersonalInfo{
			FullName: deref(in.PersonalInfo.FullName),
			Email:    deref(in.PersonalInfo.Email),
			Phone:    deref(in.PersonalInfo.Phone),
			Location: deref(in.PersonalInfo.Location),
			LinkedIn: deref(in.PersonalInfo.LinkedIn),
			Website:  deref(in.PersonalInfo.Website),
		}
	}
	if in.Summary != nil {
		out.Summary = *in.Summary
	}
	if in.Experience != nil {
		out.Experience = make([]ExperienceEntry, 0, len(in.Experience))
		for i, exp := range in.Experience {
			entry, err := exp.validate(i)
			if err != nil {
				return ResumeContent{}, err
			}
			out.Experience = append(out.Experience, entry)
		}
	}
	if in.Education != nil {
		out.Education = make([]EducationEntry, 0, len(in.Education))
		for i, edu := range in.Education {
			entry, err := edu.validate(i)
			if err != nil {
				return ResumeContent{}, err
			}
			out.Education = append(out.Education, entry)
		}
	}
	if in.Skills != nil {
		out.Skills = in.Skills
	}
	return out, nil
}

func (e experienceIn) validate(i int) (ExperienceEntry, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"id", e.ID},
		{"company", e.Company},
		{"position", e.Position},
		{"startDate", e.StartDate},
		{"endDate", e.EndDate},
		{"description", e.Description},
	}
	for _, f := range fields {
		if f.value == nil {
			return ExperienceEntry{}, Invalid(fmt.Sprintf("experience[%d].%s", i, f.name), "is required")
		}
	}
	return ExperienceEntry{
		ID:          *e.ID,
		Company:     *e.Company,
		Position:    *e.Position,
		StartDate:   *e.StartDate,
		EndDate:     *e.EndDate,
		Description: *e.Description,
	}, nil
}

func (e educationIn) validate(i int) (EducationEntry, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"id", e.ID},
		{"school", e.School},
		{"degree", e.Degree},
		{"year", e.Year},
	}
	for _, f := range fields {
		if f.value == nil {
			return EducationEntry{}, Invalid(fmt.Sprintf("education[%d].%s", i, f.name), "is required")
		}
	}
	return EducationEntry{
		ID:     *e.ID,
		School: *e.School,
		Degree: *e.Degree,
		Year:   *e.Year,
	}, nil
}

func contentDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return Invalid(typeErr.Field, "must be %s", expectedType(typeErr))
	}
	return ValidationError{Field: "content", Message: "content must be a JSON object"}
}

func expectedType(typeErr *json.UnmarshalTypeError) string {
	switch typeErr.Type.Kind() {
	case reflect.Slice:
		return "a list"
	case reflect.Struct, reflect.Ptr, reflect.Map:
		return "an object"
	default:
		return "a " + typeErr.Type.Kind().String()
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
