package model

import (
	"encoding/json"
	"time"
)

// Resume is one persisted resume record. ID and CreatedAt are assigned by the
// server and are never client-settable.
type Resume struct {
	ID        int           `json:"id"`
	Title     string        `json:"title"`
	Content   ResumeContent `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ResumeContent is the structured content payload stored in the resume's JSON
// column. Every section is optional; a resume may have zero content. A nil
// collection means the section is absent, while an empty non-nil collection
// is a present empty list and survives storage as [].
type ResumeContent struct {
	PersonalInfo *PersonalInfo     `json:"personalInfo,omitempty"`
	Summary      string            `json:"summary,omitempty"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []string          `json:"skills"`
}

// MarshalJSON omits absent sections but keeps present-but-empty collections
// as empty arrays. omitempty cannot express that distinction for slices, so
// the collections go through pointers here.
func (c ResumeContent) MarshalJSON() ([]byte, error) {
	out := struct {
		PersonalInfo *PersonalInfo      `json:"personalInfo,omitempty"`
		Summary      string             `json:"summary,omitempty"`
		Experience   *[]ExperienceEntry `json:"experience,omitempty"`
		Education    *[]EducationEntry  `json:"education,omitempty"`
		Skills       *[]string          `json:"skills,omitempty"`
	}{
		PersonalInfo: c.PersonalInfo,
		Summary:      c.Summary,
	}
	if c.Experience != nil {
		out.Experience = &c.Experience
	}
	if c.Education != nil {
		out.Education = &c.Education
	}
	if c.Skills != nil {
		out.Skills = &c.Skills
	}
	return json.Marshal(out)
}

// PersonalInfo holds contact details. All fields are optional free text.
type PersonalInfo struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceEntry is one work-history item. The ID is client-generated and
// only serves UI identity; it is never validated against a global namespace.
type ExperienceEntry struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// EducationEntry is one education item.
type EducationEntry struct {
	ID     string `json:"id"`
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}

// Clone returns a deep copy of the content so callers can mutate drafts
// without sharing slices with the source. Empty non-nil collections stay
// non-nil so section presence survives the copy.
func (c ResumeContent) Clone() ResumeContent {
	out := ResumeContent{Summary: c.Summary}
	if c.PersonalInfo != nil {
		info := *c.PersonalInfo
		out.PersonalInfo = &info
	}
	if c.Experience != nil {
		out.Experience = make([]ExperienceEntry, len(c.Experience))
		copy(out.Experience, c.Experience)
	}
	if c.Education != nil {
		out.Education = make([]EducationEntry, len(c.Education))
		copy(out.Education, c.Education)
	}
	if c.Skills != nil {
		out.Skills = make([]string, len(c.Skills))
		copy(out.Skills, c.Skills)
	}
	return out
}
