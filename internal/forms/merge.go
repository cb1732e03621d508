package forms

// Extraction is the flat shape the job-description parser returns. Keys
// map one-to-one onto nested HRRequirements slots; a nil pointer means the
// parser did not extract that slot.
type Extraction struct {
	JobID                 *string  `json:"job_id,omitempty"`
	Role                  *string  `json:"role,omitempty"`
	MinimumExperience     *string  `json:"minimum_experience,omitempty"`
	MaximumExperience     *string  `json:"maximum_experience,omitempty"`
	Industry              *string  `json:"industry,omitempty"`
	NoticePeriod          *string  `json:"notice_period,omitempty"`
	PreferredNoticePeriod *string  `json:"preferred_notice_period,omitempty"`
	City                  *string  `json:"city,omitempty"`
	State                 *string  `json:"state,omitempty"`
	Country               *string  `json:"country,omitempty"`
	RemoteOption          *string  `json:"remote_option,omitempty"`
	RequiredSkills        []string `json:"required_skills,omitempty"`
	PreferredSkills       []string `json:"preferred_skills,omitempty"`
	Qualifications        []string `json:"qualifications,omitempty"`
}

// MergeExtraction overlays an extraction onto existing requirements. Every
// slot keeps its prior value unless the extraction supplies one, so manual
// edits survive a re-parse.
func MergeExtraction(base HRRequirements, ext Extraction) HRRequirements {
	merged := base
	merged.JobID = overlay(base.JobID, ext.JobID)
	merged.Role = overlay(base.Role, ext.Role)
	merged.ExperienceRequired.Minimum = overlay(base.ExperienceRequired.Minimum, ext.MinimumExperience)
	merged.ExperienceRequired.Maximum = overlay(base.ExperienceRequired.Maximum, ext.MaximumExperience)
	merged.ExperienceRequired.PreferredIndustry = overlay(base.ExperienceRequired.PreferredIndustry, ext.Industry)
	merged.NoticePeriod.Required = overlay(base.NoticePeriod.Required, ext.NoticePeriod)
	merged.NoticePeriod.Preferred = overlay(base.NoticePeriod.Preferred, ext.PreferredNoticePeriod)
	merged.Location.City = overlay(base.Location.City, ext.City)
	merged.Location.State = overlay(base.Location.State, ext.State)
	merged.Location.Country = overlay(base.Location.Country, ext.Country)
	merged.Location.RemoteOption = overlay(base.Location.RemoteOption, ext.RemoteOption)
	merged.RequiredSkills = overlayList(base.RequiredSkills, ext.RequiredSkills)
	merged.PreferredSkills = overlayList(base.PreferredSkills, ext.PreferredSkills)
	merged.Qualifications = overlayList(base.Qualifications, ext.Qualifications)
	return merged
}

func overlay(existing string, extracted *string) string {
	if extracted != nil && *extracted != "" {
		return *extracted
	}
	return existing
}

func overlayList(existing, extracted []string) []string {
	if len(extracted) > 0 {
		return extracted
	}
	return existing
}
