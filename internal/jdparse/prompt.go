package jdparse

import "fmt"

const extractionSchema = `{
  "job_id": "string or null",
  "role": "string or null",
  "minimum_experience": "string or null",
  "maximum_experience": "string or null",
  "industry": "string or null",
  "notice_period": "string or null",
  "preferred_notice_period": "string or null",
  "city": "string or null",
  "state": "string or null",
  "country": "string or null",
  "remote_option": "string or null",
  "required_skills": ["string"],
  "preferred_skills": ["string"],
  "qualifications": ["string"]
}`

// buildPrompt asks for strict JSON so the response can be unmarshalled
// directly. Omitted slots must come back null, never guessed.
func buildPrompt(jobDescription string) string {
	return fmt.Sprintf(`You are a recruitment data extractor. Read the job description below and return ONLY a JSON object matching this schema exactly, with no markdown fences and no commentary:

%s

Use null for any value the job description does not state. Do not invent values. Experience values are plain numbers of years as strings (e.g. "3"). remote_option is one of "onsite", "remote" or "hybrid" when stated.

Job description:
%s`, extractionSchema, jobDescription)
}
