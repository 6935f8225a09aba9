package domain

type Classification string

const (
	ClassOnTrack Classification = "ON_TRACK"
	ClassBehind  Classification = "BEHIND"
	ClassAtRisk  Classification = "AT_RISK"
	ClassStalled Classification = "STALLED"
)

type Severity string

const (
	SeverityNone   Severity = ""
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

type AssessmentResult string

const (
	ResultCompetent       AssessmentResult = "COMPETENT"
	ResultNotYetCompetent AssessmentResult = "NOT_YET_COMPETENT"
	ResultAbsent          AssessmentResult = "ABSENT"
)

// ValidAssessmentResults is the canonical set of accepted result strings.
var ValidAssessmentResults = map[string]bool{
	"COMPETENT": true, "NOT_YET_COMPETENT": true, "ABSENT": true,
}

type AssessmentType string

const (
	AssessmentFormative AssessmentType = "FORMATIVE"
	AssessmentSummative AssessmentType = "SUMMATIVE"
	AssessmentWorkplace AssessmentType = "WORKPLACE"
)

var ValidAssessmentTypes = map[string]bool{
	"FORMATIVE": true, "SUMMATIVE": true, "WORKPLACE": true,
}

type ActivityKind string

const (
	ActivityLecture   ActivityKind = "lecture"
	ActivityPractical ActivityKind = "practical"
	ActivityWorkplace ActivityKind = "workplace"
	ActivityAssess    ActivityKind = "assessment"
)

// ValidActivityKinds is the canonical set of accepted template activity strings.
var ValidActivityKinds = map[string]bool{
	"lecture": true, "practical": true, "workplace": true, "assessment": true,
}
