package survey

// Closed option lists for the tracer survey. Values are stored verbatim,
// so they must match what the registration forms send.

// SelfEmployed is the employment-status value that requires the business
// sub-block.
const SelfEmployed = "Self-employed"

var SexValues = []string{
	string(Male),
	string(Female),
}

var CivilStatusValues = []string{
	string(Single),
	string(Married),
	string(SeparatedDivorced),
	string(WidowWidower),
	string(SingleParent),
}

// MinGraduationYear bounds the graduation-year answer; the upper bound is
// the current year at validation time.
const MinGraduationYear = 1950

var CollegeCampuses = []string{
	"Main Campus",
	"Mercedes Campus",
	"Paranas Campus",
	"Basey Campus",
}

var Programs = []string{
	"Bachelor of Science in Information Technology",
	"Bachelor of Science in Civil Engineering",
	"Bachelor of Science in Mechanical Engineering",
	"Bachelor of Science in Electrical Engineering",
	"Bachelor of Science in Agricultural Engineering",
	"Bachelor of Science in Industrial Technology",
	"Bachelor of Science in Nursing",
	"Bachelor of Science in Hospitality Management",
	"Bachelor of Elementary Education",
	"Bachelor of Secondary Education",
	"Bachelor of Science in Fisheries",
	"Bachelor of Arts in Communication",
}

var Majors = []string{
	"English",
	"Filipino",
	"Mathematics",
	"Science",
	"Social Studies",
	"Automotive Technology",
	"Electronics Technology",
	"Food Technology",
	"Drafting Technology",
}

// EarningBrackets are the 8 fixed gross-monthly-earning brackets used for
// both the initial and the recent earning answers.
var EarningBrackets = []string{
	"Below 5,000.00",
	"5,000.00 to less than 10,000.00",
	"10,000.00 to less than 15,000.00",
	"15,000.00 to less than 20,000.00",
	"20,000.00 to less than 25,000.00",
	"25,000.00 to less than 30,000.00",
	"30,000.00 to less than 35,000.00",
	"35,000.00 and above",
}

var AdvancedStudyReasonOptions = []string{
	"For promotion",
	"For professional development",
	"Requirement of current position",
	OtherMarker,
}

var EmploymentStatusOptions = []string{
	"Regular or Permanent",
	"Temporary",
	"Casual",
	"Contractual",
	SelfEmployed,
	OtherMarker,
}

var RecentPositionOptions = []string{
	"Official of Government or Special-Interest Organization",
	"Professional",
	"Technician or Associate Professional",
	"Clerk",
	"Service or Sales Worker",
	"Farmer, Forestry Worker or Fisherman",
	"Trades or Related Worker",
	"Plant or Machine Operator or Assembler",
	"Laborer or Unskilled Worker",
	OtherMarker,
}

var UnemploymentReasonOptions = []string{
	"Advance or further study",
	"Family concern and decided not to find a job",
	"Health-related reasons",
	"Lack of work experience",
	"No job opportunity",
	"Did not look for a job",
	OtherMarker,
}

var StayingReasonOptions = []string{
	"Salaries and benefits",
	"Career challenge",
	"Related to special skills",
	"Proximity to residence",
	"Peer influence",
	"Family influence",
	OtherMarker,
}

var UnrelatedJobReasonOptions = []string{
	"Salaries and benefits",
	"Career challenge",
	"Proximity to residence",
	"Peer influence",
	"Family influence",
	OtherMarker,
}

var JobChangeReasonOptions = []string{
	"Salaries and benefits",
	"Career challenge",
	"Related to special skills",
	"Proximity to residence",
	OtherMarker,
}

var FirstJobDurationOptions = []string{
	"Less than a month",
	"1 to 6 months",
	"7 to 11 months",
	"1 year to less than 2 years",
	"2 years to less than 3 years",
	"3 years to less than 4 years",
	OtherMarker,
}

var JobFindingOptions = []string{
	"Response to an advertisement",
	"As walk-in applicant",
	"Recommended by someone",
	"Information from friends",
	"Arranged by school's job placement officer",
	"Family business",
	"Job fair or Public Employment Service Office",
	OtherMarker,
}

var TimeToLandOptions = []string{
	"Less than a month",
	"1 to 6 months",
	"7 to 11 months",
	"1 year to less than 2 years",
	"2 years to less than 3 years",
	"3 years or more",
	OtherMarker,
}

// MaxActivityImages is a hard upper bound enforced at submission, never
// silently truncated.
const MaxActivityImages = 5

// MaxTrainings caps the independent free-text training titles.
const MaxTrainings = 3

func oneOf(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
