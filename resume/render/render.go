// Package render produces the read-only preview of a resume. The output is
// deterministic plain text so the editor can re-render it on every draft
// change and tests can compare it byte for byte.
package render

import (
	"strings"

	"resume-builder/resume/model"
)

// Text renders a resume title and content into the preview document.
// Sections appear in a fixed order and absent sections are omitted entirely.
func Text(title string, content model.ResumeContent) string {
	var b strings.Builder

	writeHeader(&b, title, content.PersonalInfo)
	writeSummary(&b, content.Summary)
	writeExperience(&b, content.Experience)
	writeEducation(&b, content.Education)
	writeSkills(&b, content.Skills)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeHeader(b *strings.Builder, title string, info *model.PersonalInfo) {
	name := title
	if info != nil && strings.TrimSpace(info.FullName) != "" {
		name = info.FullName
	}
	b.WriteString(name)
	b.WriteString("\n")

	if info == nil {
		b.WriteString("\n")
		return
	}

	contact := make([]string, 0, 5)
	for _, v := range []string{info.Email, info.Phone, info.Location, info.LinkedIn, info.Website} {
		if strings.TrimSpace(v) != "" {
			contact = append(contact, v)
		}
	}
	if len(contact) > 0 {
		b.WriteString(strings.Join(contact, " | "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeSummary(b *strings.Builder, summary string) {
	if strings.TrimSpace(summary) == "" {
		return
	}
	writeSection(b, "SUMMARY")
	b.WriteString(summary)
	b.WriteString("\n\n")
}

func writeExperience(b *strings.Builder, entries []model.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}
	writeSection(b, "EXPERIENCE")
	for _, e := range entries {
		b.WriteString(e.Position)
		if e.Company != "" {
			b.WriteString(" at ")
			b.WriteString(e.Company)
		}
		b.WriteString("\n")
		if e.StartDate != "" || e.EndDate != "" {
			b.WriteString(e.StartDate)
			b.WriteString(" - ")
			b.WriteString(e.EndDate)
			b.WriteString("\n")
		}
		if e.Description != "" {
			b.WriteString(e.Description)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func writeEducation(b *strings.Builder, entries []model.EducationEntry) {
	if len(entries) == 0 {
		return
	}
	writeSection(b, "EDUCATION")
	for _, e := range entries {
		b.WriteString(e.Degree)
		if e.School != "" {
			b.WriteString(", ")
			b.WriteString(e.School)
		}
		if e.Year != "" {
			b.WriteString(" (")
			b.WriteString(e.Year)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeSkills(b *strings.Builder, skills []string) {
	if len(skills) == 0 {
		return
	}
	writeSection(b, "SKILLS")
	b.WriteString(strings.Join(skills, ", "))
	b.WriteString("\n")
}

func writeSection(b *strings.Builder, heading string) {
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(heading)))
	b.WriteString("\n")
}
