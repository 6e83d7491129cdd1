package resumes

import (
	"context"

	"resume-builder/resume/model"
)

// Seed inserts one illustrative sample resume when the store is empty. It is
// invoked once from the process entry point, never from a request path.
func (s *Service) Seed(ctx context.Context) error {
	existing, err := s.Repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	_, err = s.Repo.Create(ctx, "Software Engineer Sample", sampleContent())
	return err
}

func sampleContent() model.ResumeContent {
	return model.ResumeContent{
		PersonalInfo: &model.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/janedoe",
		},
		Summary: "Passionate Full Stack Developer with 5 years of experience building scalable web applications.",
		Experience: []model.ExperienceEntry{
			{
				ID:          "1",
				Company:     "Tech Corp",
				Position:    "Senior Developer",
				StartDate:   "2020-01",
				EndDate:     "Present",
				Description: "Led a team of 5 engineers. Improved system performance by 30%.",
			},
		},
		Education: []model.EducationEntry{
			{
				ID:     "1",
				School: "University of Tech",
				Degree: "BS Computer Science",
				Year:   "2019",
			},
		},
		Skills: []string{"React", "Node.js", "TypeScript", "PostgreSQL"},
	}
}
