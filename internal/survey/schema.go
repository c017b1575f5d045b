package survey

import (
	"fmt"
	"time"
)

// ValidateStructural checks the structural invariants of an answer set:
// enum membership, graduation-year range, department existence, and the
// hard bounds on activity images and trainings. Branch-conditional
// requiredness is the policy's job, not this function's.
//
// deptExists resolves department references; a nil lookup skips the
// existence check (the caller has no catalog, e.g. in pure-core tests).
func ValidateStructural(a *Answers, deptExists func(uint) bool) []FieldError {
	var errs []FieldError
	add := func(field, reason string) {
		errs = append(errs, FieldError{Field: field, Reason: reason})
	}

	if a.Sex != "" && !oneOf(SexValues, string(a.Sex)) {
		add("sex", "must be Male or Female")
	}
	if a.CivilStatus != "" && !oneOf(CivilStatusValues, string(a.CivilStatus)) {
		add("civil_status", "not a recognized civil status")
	}
	if a.EverEmployed != "" && a.EverEmployed != Yes && a.EverEmployed != No {
		add("ever_employed", "must be Yes or No")
	}

	if a.Year != 0 {
		currentYear := time.Now().Year()
		if a.Year < MinGraduationYear || a.Year > currentYear {
			add("year", fmt.Sprintf("must be between %d and %d", MinGraduationYear, currentYear))
		}
	}
	if a.CollegeCampus != "" && !oneOf(CollegeCampuses, a.CollegeCampus) {
		add("college_campus", "not a recognized college or campus")
	}
	if a.Program != "" && !oneOf(Programs, a.Program) {
		add("program", "not a recognized program")
	}
	if a.Major != "" && !oneOf(Majors, a.Major) {
		add("major", "not a recognized major")
	}
	if a.DepartmentID != 0 && deptExists != nil && !deptExists(a.DepartmentID) {
		add("department_id", "department does not exist")
	}

	if len(a.ActivityImages) > MaxActivityImages {
		add("activity_images", fmt.Sprintf("at most %d activity images are allowed", MaxActivityImages))
	}
	if len(a.Trainings) > MaxTrainings {
		add("trainings", fmt.Sprintf("at most %d training titles are allowed", MaxTrainings))
	}

	if a.AdvancedStudy != nil {
		errs = append(errs, checkSelected("advanced_study_reasons", a.AdvancedStudy.Reasons, AdvancedStudyReasonOptions)...)
	}
	if emp := a.Employment; emp != nil {
		errs = append(errs, checkSelected("employment_status", emp.Status, EmploymentStatusOptions)...)
		errs = append(errs, checkSelected("recent_positions", emp.RecentPositions, RecentPositionOptions)...)
	}
	errs = append(errs, checkSelected("unemployment_reasons", a.UnemploymentReasons, UnemploymentReasonOptions)...)
	errs = append(errs, checkSelected("reasons_for_staying", a.ReasonsForStaying, StayingReasonOptions)...)
	if fj := a.FirstJob; fj != nil {
		if fj.Related != "" && fj.Related != Yes && fj.Related != No {
			add("first_job_related", "must be Yes or No")
		}
		errs = append(errs, checkSelected("unrelated_job_reasons", fj.UnrelatedReasons, UnrelatedJobReasonOptions)...)
		errs = append(errs, checkSelected("job_change_reasons", fj.ChangeReasons, JobChangeReasonOptions)...)
		errs = append(errs, checkChoice("first_job_duration", fj.Duration, FirstJobDurationOptions)...)
		errs = append(errs, checkChoice("how_found_first_job", fj.HowFound, JobFindingOptions)...)
		errs = append(errs, checkChoice("time_to_land_job", fj.TimeToLand, TimeToLandOptions)...)
	}

	if a.InitialEarning != "" && !oneOf(EarningBrackets, a.InitialEarning) {
		add("initial_earning", "not a recognized earning bracket")
	}
	if a.RecentEarning != "" && !oneOf(EarningBrackets, a.RecentEarning) {
		add("recent_earning", "not a recognized earning bracket")
	}

	return errs
}

func checkSelected(field string, m MultiSelect, options []string) []FieldError {
	var errs []FieldError
	for _, v := range m.Selected {
		if !oneOf(options, v) {
			errs = append(errs, FieldError{Field: field, Reason: fmt.Sprintf("%q is not a valid option", v)})
		}
	}
	return errs
}

func checkChoice(field string, c ChoiceWithOther, options []string) []FieldError {
	if c.Value != "" && !oneOf(options, c.Value) {
		return []FieldError{{Field: field, Reason: fmt.Sprintf("%q is not a valid option", c.Value)}}
	}
	return nil
}
