package survey

import (
	"fmt"
	"strings"
)

// OtherMarker is the literal option value that unlocks the free-text
// companion of a multi-select or single-choice field.
const OtherMarker = "Others"

type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

type Sex string

const (
	Male   Sex = "Male"
	Female Sex = "Female"
)

type CivilStatus string

const (
	Single            CivilStatus = "Single"
	Married           CivilStatus = "Married"
	SeparatedDivorced CivilStatus = "Separated/Divorced"
	WidowWidower      CivilStatus = "Widow/Widower"
	SingleParent      CivilStatus = "Single Parent"
)

// MultiSelect is a checkbox list answer. When the selected values include
// the "Others" option, OtherText carries the free-text companion value.
// The same validation rule applies to every MultiSelect field in the survey.
type MultiSelect struct {
	Selected  []string `json:"selected,omitempty"`
	OtherText string   `json:"other_text,omitempty"`
}

func (m MultiSelect) Contains(value string) bool {
	for _, v := range m.Selected {
		if v == value {
			return true
		}
	}
	return false
}

func (m MultiSelect) HasOthers() bool {
	return m.Contains(OtherMarker)
}

func (m MultiSelect) Empty() bool {
	return len(m.Selected) == 0
}

// pruneOther drops companion text left behind after "Others" was
// deselected.
func (m *MultiSelect) pruneOther() {
	if !m.HasOthers() {
		m.OtherText = ""
	}
}

// ChoiceWithOther is a single-choice answer with the same "Others" escape
// hatch as MultiSelect.
type ChoiceWithOther struct {
	Value     string `json:"value,omitempty"`
	OtherText string `json:"other_text,omitempty"`
}

func (c ChoiceWithOther) IsOthers() bool {
	return c.Value == OtherMarker
}

func (c *ChoiceWithOther) pruneOther() {
	if !c.IsOthers() {
		c.OtherText = ""
	}
}

// FileRef points at a stored file (profile picture, activity image).
type FileRef struct {
	URL      string `json:"url"`
	FileName string `json:"file_name,omitempty"`
}

// FieldError reports one invalid or missing field. Validation always
// returns the full batch so a client can surface every problem at once.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError wraps a batch of field errors as a single error value.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// AdvancedStudy is the optional post-graduate studies block.
type AdvancedStudy struct {
	School         string      `json:"school,omitempty"`
	StartDate      string      `json:"start_date,omitempty"`
	UnitsEarned    string      `json:"units_earned,omitempty"`
	GraduationDate string      `json:"graduation_date,omitempty"`
	Reasons        MultiSelect `json:"reasons,omitempty"`
}

// ProfessionalExam is the optional licensure exam block.
type ProfessionalExam struct {
	Name        string `json:"name,omitempty"`
	LicenseDate string `json:"license_date,omitempty"`
	YearTaken   int    `json:"year_taken,omitempty"`
	Rating      string `json:"rating,omitempty"`
}

// Business is the self-employment sub-block. It is required as a whole
// when the employment status set contains "Self-employed".
type Business struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Nature  string `json:"nature,omitempty"`
}

// Employment holds the answers that only apply when ever_employed is Yes.
type Employment struct {
	CompanyName     string      `json:"company_name,omitempty"`
	Nature          string      `json:"nature,omitempty"`
	Email           string      `json:"email,omitempty"`
	Contact         string      `json:"contact,omitempty"`
	Address         string      `json:"address,omitempty"`
	Status          MultiSelect `json:"status,omitempty"`
	RecentPositions MultiSelect `json:"recent_positions,omitempty"`
	CurrentWork     string      `json:"current_work,omitempty"`
	Business        *Business   `json:"business,omitempty"`
}

// FirstJob holds the first-job answers, only meaningful when employed.
type FirstJob struct {
	Related          YesNo           `json:"related,omitempty"`
	UnrelatedReasons MultiSelect     `json:"unrelated_reasons,omitempty"`
	ChangeReasons    MultiSelect     `json:"change_reasons,omitempty"`
	Duration         ChoiceWithOther `json:"duration,omitempty"`
	HowFound         ChoiceWithOther `json:"how_found,omitempty"`
	TimeToLand       ChoiceWithOther `json:"time_to_land,omitempty"`
}

// Answers is the accumulated tracer-survey answer set. Sub-blocks that do
// not apply stay nil instead of being carried as empty strings.
type Answers struct {
	Surname          string      `json:"surname,omitempty"`
	FirstName        string      `json:"first_name,omitempty"`
	MiddleName       string      `json:"middle_name,omitempty"`
	Email            string      `json:"email,omitempty"`
	Phone            string      `json:"phone,omitempty"`
	PermanentAddress string      `json:"permanent_address,omitempty"`
	Sex              Sex         `json:"sex,omitempty"`
	CivilStatus      CivilStatus `json:"civil_status,omitempty"`
	ProfilePicture   *FileRef    `json:"profile_picture,omitempty"`
	ActivityImages   []FileRef   `json:"activity_images,omitempty"`

	Year          int    `json:"year,omitempty"`
	CollegeCampus string `json:"college_campus,omitempty"`
	Program       string `json:"program,omitempty"`
	Major         string `json:"major,omitempty"`
	DepartmentID  uint   `json:"department_id,omitempty"`
	Course        string `json:"course,omitempty"`

	AdvancedStudy    *AdvancedStudy    `json:"advanced_study,omitempty"`
	ProfessionalExam *ProfessionalExam `json:"professional_exam,omitempty"`
	Trainings        []string          `json:"trainings,omitempty"`

	EverEmployed        YesNo       `json:"ever_employed,omitempty"`
	Employment          *Employment `json:"employment,omitempty"`
	UnemploymentReasons MultiSelect `json:"unemployment_reasons,omitempty"`

	ReasonsForStaying MultiSelect `json:"reasons_for_staying,omitempty"`
	FirstJob          *FirstJob   `json:"first_job,omitempty"`

	InitialEarning string `json:"initial_earning,omitempty"`
	RecentEarning  string `json:"recent_earning,omitempty"`
}

// clone returns a deep copy so a submission snapshot cannot be mutated
// through the session afterwards.
func (a Answers) clone() Answers {
	out := a
	if a.ProfilePicture != nil {
		pic := *a.ProfilePicture
		out.ProfilePicture = &pic
	}
	out.ActivityImages = append([]FileRef(nil), a.ActivityImages...)
	out.Trainings = append([]string(nil), a.Trainings...)
	if a.AdvancedStudy != nil {
		as := *a.AdvancedStudy
		as.Reasons.Selected = append([]string(nil), a.AdvancedStudy.Reasons.Selected...)
		out.AdvancedStudy = &as
	}
	if a.ProfessionalExam != nil {
		pe := *a.ProfessionalExam
		out.ProfessionalExam = &pe
	}
	if a.Employment != nil {
		emp := *a.Employment
		emp.Status.Selected = append([]string(nil), a.Employment.Status.Selected...)
		emp.RecentPositions.Selected = append([]string(nil), a.Employment.RecentPositions.Selected...)
		if a.Employment.Business != nil {
			biz := *a.Employment.Business
			emp.Business = &biz
		}
		out.Employment = &emp
	}
	out.UnemploymentReasons.Selected = append([]string(nil), a.UnemploymentReasons.Selected...)
	out.ReasonsForStaying.Selected = append([]string(nil), a.ReasonsForStaying.Selected...)
	if a.FirstJob != nil {
		fj := *a.FirstJob
		fj.UnrelatedReasons.Selected = append([]string(nil), a.FirstJob.UnrelatedReasons.Selected...)
		fj.ChangeReasons.Selected = append([]string(nil), a.FirstJob.ChangeReasons.Selected...)
		out.FirstJob = &fj
	}
	return out
}

// pruneOthers clears every free-text companion whose "Others" option is
// not selected, so a snapshot never carries orphaned companion text.
func (a *Answers) pruneOthers() {
	if a.AdvancedStudy != nil {
		a.AdvancedStudy.Reasons.pruneOther()
	}
	if a.Employment != nil {
		a.Employment.Status.pruneOther()
		a.Employment.RecentPositions.pruneOther()
	}
	a.UnemploymentReasons.pruneOther()
	a.ReasonsForStaying.pruneOther()
	if a.FirstJob != nil {
		a.FirstJob.UnrelatedReasons.pruneOther()
		a.FirstJob.ChangeReasons.pruneOther()
		a.FirstJob.Duration.pruneOther()
		a.FirstJob.HowFound.pruneOther()
		a.FirstJob.TimeToLand.pruneOther()
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
