package dto

import (
	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
)

// AnswersInput is a partial answer update for the current step. Scalar
// fields are pointers so the merge only touches what the request carried;
// sub-blocks replace as a whole, matching how the forms post each section.
type AnswersInput struct {
	Surname          *string `json:"surname"`
	FirstName        *string `json:"first_name"`
	MiddleName       *string `json:"middle_name"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	PermanentAddress *string `json:"permanent_address"`
	Sex              *string `json:"sex"`
	CivilStatus      *string `json:"civil_status"`

	Year          *int    `json:"year"`
	CollegeCampus *string `json:"college_campus"`
	Program       *string `json:"program"`
	Major         *string `json:"major"`
	DepartmentID  *uint   `json:"department_id"`
	Course        *string `json:"course"`

	AdvancedStudy    *AdvancedStudyInput    `json:"advanced_study"`
	ProfessionalExam *ProfessionalExamInput `json:"professional_exam"`
	Trainings        *[]string              `json:"trainings"`

	EverEmployed        *string           `json:"ever_employed"`
	Employment          *EmploymentInput  `json:"employment"`
	UnemploymentReasons *MultiSelectInput `json:"unemployment_reasons"`

	ReasonsForStaying *MultiSelectInput `json:"reasons_for_staying"`
	FirstJob          *FirstJobInput    `json:"first_job"`

	InitialEarning *string `json:"initial_earning"`
	RecentEarning  *string `json:"recent_earning"`
}

type MultiSelectInput struct {
	Selected  []string `json:"selected"`
	OtherText string   `json:"other_text"`
}

func (in MultiSelectInput) toSurvey() survey.MultiSelect {
	return survey.MultiSelect{Selected: in.Selected, OtherText: in.OtherText}
}

type ChoiceInput struct {
	Value     string `json:"value"`
	OtherText string `json:"other_text"`
}

func (in ChoiceInput) toSurvey() survey.ChoiceWithOther {
	return survey.ChoiceWithOther{Value: in.Value, OtherText: in.OtherText}
}

type AdvancedStudyInput struct {
	School         string           `json:"school"`
	StartDate      string           `json:"start_date"`
	UnitsEarned    string           `json:"units_earned"`
	GraduationDate string           `json:"graduation_date"`
	Reasons        MultiSelectInput `json:"reasons"`
}

type ProfessionalExamInput struct {
	Name        string `json:"name"`
	LicenseDate string `json:"license_date"`
	YearTaken   int    `json:"year_taken"`
	Rating      string `json:"rating"`
}

type BusinessInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Nature  string `json:"nature"`
}

type EmploymentInput struct {
	CompanyName     string           `json:"company_name"`
	Nature          string           `json:"nature"`
	Email           string           `json:"email"`
	Contact         string           `json:"contact"`
	Address         string           `json:"address"`
	Status          MultiSelectInput `json:"status"`
	RecentPositions MultiSelectInput `json:"recent_positions"`
	CurrentWork     string           `json:"current_work"`
	Business        *BusinessInput   `json:"business"`
}

type FirstJobInput struct {
	Related          string           `json:"related"`
	UnrelatedReasons MultiSelectInput `json:"unrelated_reasons"`
	ChangeReasons    MultiSelectInput `json:"change_reasons"`
	Duration         ChoiceInput      `json:"duration"`
	HowFound         ChoiceInput      `json:"how_found"`
	TimeToLand       ChoiceInput      `json:"time_to_land"`
}

// Apply merges the input into the accumulated answers.
func (in AnswersInput) Apply(a *survey.Answers) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&a.Surname, in.Surname)
	setString(&a.FirstName, in.FirstName)
	setString(&a.MiddleName, in.MiddleName)
	setString(&a.Email, in.Email)
	setString(&a.Phone, in.Phone)
	setString(&a.PermanentAddress, in.PermanentAddress)
	if in.Sex != nil {
		a.Sex = survey.Sex(*in.Sex)
	}
	if in.CivilStatus != nil {
		a.CivilStatus = survey.CivilStatus(*in.CivilStatus)
	}

	if in.Year != nil {
		a.Year = *in.Year
	}
	setString(&a.CollegeCampus, in.CollegeCampus)
	setString(&a.Program, in.Program)
	setString(&a.Major, in.Major)
	if in.DepartmentID != nil {
		a.DepartmentID = *in.DepartmentID
	}
	setString(&a.Course, in.Course)

	if in.AdvancedStudy != nil {
		a.AdvancedStudy = &survey.AdvancedStudy{
			School:         in.AdvancedStudy.School,
			StartDate:      in.AdvancedStudy.StartDate,
			UnitsEarned:    in.AdvancedStudy.UnitsEarned,
			GraduationDate: in.AdvancedStudy.GraduationDate,
			Reasons:        in.AdvancedStudy.Reasons.toSurvey(),
		}
	}
	if in.ProfessionalExam != nil {
		a.ProfessionalExam = &survey.ProfessionalExam{
			Name:        in.ProfessionalExam.Name,
			LicenseDate: in.ProfessionalExam.LicenseDate,
			YearTaken:   in.ProfessionalExam.YearTaken,
			Rating:      in.ProfessionalExam.Rating,
		}
	}
	if in.Trainings != nil {
		a.Trainings = append([]string(nil), (*in.Trainings)...)
	}

	if in.EverEmployed != nil {
		a.EverEmployed = survey.YesNo(*in.EverEmployed)
	}
	if in.Employment != nil {
		emp := &survey.Employment{
			CompanyName:     in.Employment.CompanyName,
			Nature:          in.Employment.Nature,
			Email:           in.Employment.Email,
			Contact:         in.Employment.Contact,
			Address:         in.Employment.Address,
			Status:          in.Employment.Status.toSurvey(),
			RecentPositions: in.Employment.RecentPositions.toSurvey(),
			CurrentWork:     in.Employment.CurrentWork,
		}
		if in.Employment.Business != nil {
			emp.Business = &survey.Business{
				Name:    in.Employment.Business.Name,
				Address: in.Employment.Business.Address,
				Nature:  in.Employment.Business.Nature,
			}
		}
		a.Employment = emp
	}
	if in.UnemploymentReasons != nil {
		a.UnemploymentReasons = in.UnemploymentReasons.toSurvey()
	}

	if in.ReasonsForStaying != nil {
		a.ReasonsForStaying = in.ReasonsForStaying.toSurvey()
	}
	if in.FirstJob != nil {
		a.FirstJob = &survey.FirstJob{
			Related:          survey.YesNo(in.FirstJob.Related),
			UnrelatedReasons: in.FirstJob.UnrelatedReasons.toSurvey(),
			ChangeReasons:    in.FirstJob.ChangeReasons.toSurvey(),
			Duration:         in.FirstJob.Duration.toSurvey(),
			HowFound:         in.FirstJob.HowFound.toSurvey(),
			TimeToLand:       in.FirstJob.TimeToLand.toSurvey(),
		}
	}

	setString(&a.InitialEarning, in.InitialEarning)
	setString(&a.RecentEarning, in.RecentEarning)
}

// SessionResponse is the client view of an in-progress workflow.
type SessionResponse struct {
	SessionID       string              `json:"session_id"`
	State           survey.State        `json:"state"`
	Step            int                 `json:"step"`
	RequiredFields  []string            `json:"required_fields"`
	VisibleSections []survey.Section    `json:"visible_sections"`
	Answers         survey.Answers      `json:"answers"`
	Errors          []survey.FieldError `json:"errors,omitempty"`
}

// SubmitResponse carries the created profile ID.
type SubmitResponse struct {
	ProfileID string        `json:"profile_id"`
	Status    survey.Status `json:"status"`
}
