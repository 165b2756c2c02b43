package formatters

import "resume-builder/internal/domain"

const summarySystem = "You are a professional resume writer. Create compelling, ATS-friendly professional summaries that highlight relevant experience and skills."

// SummaryPrompt asks for a 2-3 sentence professional summary.
func SummaryPrompt(info *domain.PersonalInfo, experience []domain.WorkExperience, skills []domain.Skill, jobDescription string) Prompt {
	ctx := contextBlock(
		[2]string{"Personal Info", mustMarshal(info)},
		[2]string{"Work Experience", mustMarshal(experience)},
		[2]string{"Skills", mustMarshal(skills)},
		[2]string{"Target Job", jobDescription},
	)
	return Prompt{
		System: summarySystem,
		User: "Based on the following information, write a professional summary (2-3 sentences) that would be perfect for a resume. " +
			"Focus on key achievements, skills, and career highlights. Make it engaging and professional.\n\n" + ctx,
	}
}
