package models

// PurposeTag is a closed enumeration of funding goals. Catalog records and
// farm profiles draw from the same set, so purpose overlap is a plain set
// intersection.
type PurposeTag string

const (
	PurposeEquipment      PurposeTag = "equipment"
	PurposeIrrigation     PurposeTag = "irrigation"
	PurposeConservation   PurposeTag = "conservation"
	PurposeCattle         PurposeTag = "cattle"
	PurposeCropProduction PurposeTag = "crop_production"
	PurposeOrganic        PurposeTag = "organic"
	PurposeEnergy         PurposeTag = "energy"
	PurposeMarketing      PurposeTag = "marketing"
	PurposeInfrastructure PurposeTag = "infrastructure"
	PurposeEducation      PurposeTag = "education"
)

// KnownPurposeTags lists every valid purpose tag, in display order.
func KnownPurposeTags() []PurposeTag {
	return []PurposeTag{
		PurposeEquipment,
		PurposeIrrigation,
		PurposeConservation,
		PurposeCattle,
		PurposeCropProduction,
		PurposeOrganic,
		PurposeEnergy,
		PurposeMarketing,
		PurposeInfrastructure,
		PurposeEducation,
	}
}

// ApplicantTag describes who a program accepts applications from.
type ApplicantTag string

const (
	ApplicantFarm       ApplicantTag = "farm"
	ApplicantRanch      ApplicantTag = "ranch"
	ApplicantIndividual ApplicantTag = "individual"
	ApplicantBusiness   ApplicantTag = "business"
	ApplicantNonprofit  ApplicantTag = "nonprofit"
	ApplicantUniversity ApplicantTag = "university"
	ApplicantAgency     ApplicantTag = "agency"
	ApplicantTribal     ApplicantTag = "tribal"
)

// GeoScope is the geographic reach of a program.
type GeoScope string

const (
	ScopeNational GeoScope = "national"
	ScopeRegional GeoScope = "regional"
	ScopeState    GeoScope = "state"
	ScopeCounty   GeoScope = "county"
)

// DeadlineType distinguishes fixed submission windows from rolling intake.
type DeadlineType string

const (
	DeadlineFixed   DeadlineType = "fixed"
	DeadlineRolling DeadlineType = "rolling"
)

// Confidence is the catalog curator's stated certainty that the eligibility
// classification of a record is correct.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// TypicalApplicant describes who usually wins a program.
type TypicalApplicant string

const (
	TypicalSmallOperator TypicalApplicant = "small_operator"
	TypicalInstitution   TypicalApplicant = "institution"
	TypicalMixed         TypicalApplicant = "mixed"
)

// OperationType is the declared kind of farm operation.
type OperationType string

const (
	OperationCrop      OperationType = "crop"
	OperationCattle    OperationType = "cattle"
	OperationMixed     OperationType = "mixed"
	OperationSpecialty OperationType = "specialty"
)

// LegalForm is the operator's legal structure.
type LegalForm string

const (
	LegalIndividual LegalForm = "individual"
	LegalBusiness   LegalForm = "business"
)
