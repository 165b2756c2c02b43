package formatters

import "resume-builder/internal/domain"

const experienceSystem = "You are a professional resume writer. Create impactful bullet points for work experience that show quantifiable achievements and use action verbs. Format as a JSON array of strings."

// ExperiencePrompt asks for 3-5 bullets as a JSON array of strings.
func ExperiencePrompt(exp domain.WorkExperience, jobDescription string) Prompt {
	ctx := contextBlock(
		[2]string{"Job Title", exp.JobTitle},
		[2]string{"Company", exp.Company},
		[2]string{"Current Description", exp.Description},
		[2]string{"Current Achievements", joinNonEmpty(exp.Achievements)},
		[2]string{"Target Job Description", jobDescription},
	)
	return Prompt{
		System: experienceSystem,
		User: "Enhance the following work experience into 3-5 powerful bullet points that demonstrate impact and achievements. " +
			"Use metrics where possible and start with strong action verbs. Return as JSON array only.\n\n" + ctx,
	}
}

func joinNonEmpty(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return mustMarshal(items)
}
