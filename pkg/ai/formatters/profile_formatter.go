package formatters

import "resume-builder/internal/domain"

const jobMatchSystem = "You are an expert ATS system and recruiter. Analyze resumes against job descriptions and provide detailed matching analysis. Return response as valid JSON only."

// JobMatchPrompt serializes the aggregated profile and asks for a match analysis object.
func JobMatchPrompt(resume *domain.FullResume, jobDescription string) Prompt {
	var profile string
	if resume != nil {
		profile = contextBlock(
			[2]string{"Personal Info", mustMarshal(resume.PersonalInfo)},
			[2]string{"Work Experience", mustMarshal(resume.WorkExperience)},
			[2]string{"Education", mustMarshal(resume.Education)},
			[2]string{"Skills", mustMarshal(resume.Skills)},
		)
	}
	return Prompt{
		System: jobMatchSystem,
		User: `Analyze the following resume against the job description and provide a detailed match analysis. Return a JSON object with:
- matchScore: number (0-100)
- missingSkills: array of skills mentioned in job but missing from resume
- strengths: array of strong matching points
- suggestions: array of improvement suggestions

Resume:
` + profile + `
Job Description: ` + jobDescription,
	}
}
