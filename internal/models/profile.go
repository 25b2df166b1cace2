package models

// FarmProfile is the structured description of the applicant's operation.
// It is produced and validated by onboarding; the engine reads it as-is.
type FarmProfile struct {
	State         string        `json:"state" yaml:"state"`
	Region        string        `json:"region,omitempty" yaml:"region,omitempty"` // optional sub-region
	OperationType OperationType `json:"operation_type" yaml:"operation_type"`
	LegalForm     LegalForm     `json:"legal_form" yaml:"legal_form"`
	Headcount     int           `json:"headcount" yaml:"headcount"`
	Goals         []PurposeTag  `json:"goals" yaml:"goals"`
}

// ImpliedApplicantTags derives the applicant-type set a program must accept
// for this profile to qualify: the legal form, plus farm/ranch tags inferred
// from the operation type.
func (p FarmProfile) ImpliedApplicantTags() []ApplicantTag {
	var tags []ApplicantTag

	switch p.LegalForm {
	case LegalBusiness:
		tags = append(tags, ApplicantBusiness)
	default:
		tags = append(tags, ApplicantIndividual)
	}

	switch p.OperationType {
	case OperationCrop, OperationSpecialty:
		tags = append(tags, ApplicantFarm)
	case OperationCattle:
		tags = append(tags, ApplicantRanch)
	case OperationMixed:
		tags = append(tags, ApplicantFarm, ApplicantRanch)
	}

	return tags
}

// HasGoal reports whether the profile declared the given funding goal.
func (p FarmProfile) HasGoal(tag PurposeTag) bool {
	for _, g := range p.Goals {
		if g == tag {
			return true
		}
	}
	return false
}
