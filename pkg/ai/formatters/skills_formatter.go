package formatters

import "strings"

const skillsSystem = "You are a career advisor. Suggest relevant skills based on job descriptions that would strengthen a candidate's profile. Return as JSON array of skill names only."

// SkillsPrompt asks for 5-8 skills not already listed.
func SkillsPrompt(currentSkills []string, jobDescription string) Prompt {
	return Prompt{
		System: skillsSystem,
		User: "Current Skills: " + strings.Join(currentSkills, ", ") +
			"\n\nJob Description: " + jobDescription +
			"\n\nSuggest 5-8 additional skills that would be valuable for this role but are not already listed. Return as JSON array of skill names only.",
	}
}
