package survey

// Conditional field policy. Pure functions of (step, accumulated answers):
// no side effects, no panics, identical output for identical input.
//
// Rule precedence follows the registration forms:
//  1. base-required fields per step,
//  2. ever_employed branch (No hides employment/first-job/salary and
//     requires unemployment reasons; Yes requires company name and
//     current work),
//  3. "Self-employed" in the employment-status set requires the business
//     sub-block,
//  4. first_job_related = No requires the unrelated-job reasons,
//  5. any "Others" selection requires its free-text companion.

const (
	FirstStep = 1
	FinalStep = 5
)

// Section names the conditional blocks of the survey.
type Section string

const (
	SectionIdentity     Section = "identity"
	SectionEducation    Section = "education"
	SectionStudies      Section = "studies_exams_trainings"
	SectionEmployment   Section = "employment"
	SectionBusiness     Section = "business"
	SectionUnemployment Section = "unemployment"
	SectionFirstJob     Section = "first_job"
	SectionStaying      Section = "reasons_for_staying"
	SectionSalary       Section = "salary"
)

type requirement struct {
	field  string
	reason string
}

const (
	reasonRequired   = "this field is required"
	reasonAtLeastOne = "select at least one value"
	reasonOthersText = "specify a value when Others is selected"
)

// VisibleSections returns the sections that currently apply given the
// accumulated answers.
func VisibleSections(a *Answers) []Section {
	sections := []Section{SectionIdentity, SectionEducation, SectionStudies}
	switch a.EverEmployed {
	case Yes:
		sections = append(sections, SectionEmployment)
		if a.Employment != nil && a.Employment.Status.Contains(SelfEmployed) {
			sections = append(sections, SectionBusiness)
		}
		sections = append(sections, SectionStaying, SectionFirstJob, SectionSalary)
	case No:
		sections = append(sections, SectionUnemployment)
	}
	return sections
}

// RequiredFields returns the names of the fields required at the given
// step under the current answers.
func RequiredFields(step int, a *Answers) []string {
	reqs := requirements(step, a)
	fields := make([]string, 0, len(reqs))
	for _, r := range reqs {
		fields = append(fields, r.field)
	}
	return fields
}

// CheckStep validates the given step against the policy and returns every
// violated field. An empty result means the step may be left.
func CheckStep(step int, a *Answers) []FieldError {
	var errs []FieldError
	for _, r := range requirements(step, a) {
		if !present(a, r.field) {
			errs = append(errs, FieldError{Field: r.field, Reason: r.reason})
		}
	}
	return errs
}

// CheckAll re-validates every step. Branch decisions made in earlier steps
// can retroactively change what later steps require, so submission always
// goes through here rather than through the final step alone.
func CheckAll(a *Answers) []FieldError {
	var errs []FieldError
	seen := make(map[string]bool)
	for step := FirstStep; step <= FinalStep; step++ {
		for _, fe := range CheckStep(step, a) {
			if !seen[fe.Field] {
				seen[fe.Field] = true
				errs = append(errs, fe)
			}
		}
	}
	return errs
}

func requirements(step int, a *Answers) []requirement {
	switch step {
	case 1:
		return []requirement{
			{"surname", reasonRequired},
			{"first_name", reasonRequired},
			{"email", reasonRequired},
			{"phone", reasonRequired},
			{"permanent_address", reasonRequired},
			{"sex", reasonRequired},
			{"civil_status", reasonRequired},
			{"activity_images", "attach at least one activity image"},
		}
	case 2:
		return []requirement{
			{"year", reasonRequired},
			{"college_campus", reasonRequired},
			{"program", reasonRequired},
			{"department_id", reasonRequired},
			{"course", reasonRequired},
		}
	case 3:
		var reqs []requirement
		if a.AdvancedStudy != nil && a.AdvancedStudy.Reasons.HasOthers() {
			reqs = append(reqs, requirement{"advanced_study_reasons_other", reasonOthersText})
		}
		return reqs
	case 4:
		reqs := []requirement{{"ever_employed", reasonRequired}}
		switch a.EverEmployed {
		case Yes:
			reqs = append(reqs,
				requirement{"company_name", reasonRequired},
				requirement{"current_work", reasonRequired},
			)
			if emp := a.Employment; emp != nil {
				if emp.Status.HasOthers() {
					reqs = append(reqs, requirement{"employment_status_other", reasonOthersText})
				}
				if emp.RecentPositions.HasOthers() {
					reqs = append(reqs, requirement{"recent_positions_other", reasonOthersText})
				}
				if emp.Status.Contains(SelfEmployed) {
					reqs = append(reqs,
						requirement{"business_name", reasonRequired},
						requirement{"business_address", reasonRequired},
						requirement{"business_nature", reasonRequired},
					)
				}
			}
		case No:
			reqs = append(reqs, requirement{"unemployment_reasons", reasonAtLeastOne})
			if a.UnemploymentReasons.HasOthers() {
				reqs = append(reqs, requirement{"unemployment_reasons_other", reasonOthersText})
			}
		}
		return reqs
	case 5:
		// Unemployed registrants see step 5 as an acknowledgement screen.
		if a.EverEmployed != Yes {
			return nil
		}
		var reqs []requirement
		if a.ReasonsForStaying.HasOthers() {
			reqs = append(reqs, requirement{"reasons_for_staying_other", reasonOthersText})
		}
		if fj := a.FirstJob; fj != nil {
			if fj.Related == No {
				reqs = append(reqs, requirement{"unrelated_job_reasons", reasonAtLeastOne})
			}
			if fj.UnrelatedReasons.HasOthers() {
				reqs = append(reqs, requirement{"unrelated_job_reasons_other", reasonOthersText})
			}
			if fj.ChangeReasons.HasOthers() {
				reqs = append(reqs, requirement{"job_change_reasons_other", reasonOthersText})
			}
			if fj.Duration.IsOthers() {
				reqs = append(reqs, requirement{"first_job_duration_other", reasonOthersText})
			}
			if fj.HowFound.IsOthers() {
				reqs = append(reqs, requirement{"how_found_first_job_other", reasonOthersText})
			}
			if fj.TimeToLand.IsOthers() {
				reqs = append(reqs, requirement{"time_to_land_job_other", reasonOthersText})
			}
		}
		return reqs
	default:
		return nil
	}
}

// present reports whether the named field currently holds a usable value.
func present(a *Answers, field string) bool {
	switch field {
	case "surname":
		return !blank(a.Surname)
	case "first_name":
		return !blank(a.FirstName)
	case "email":
		return !blank(a.Email)
	case "phone":
		return !blank(a.Phone)
	case "permanent_address":
		return !blank(a.PermanentAddress)
	case "sex":
		return a.Sex != ""
	case "civil_status":
		return a.CivilStatus != ""
	case "activity_images":
		return len(a.ActivityImages) > 0
	case "year":
		return a.Year != 0
	case "college_campus":
		return !blank(a.CollegeCampus)
	case "program":
		return !blank(a.Program)
	case "department_id":
		return a.DepartmentID != 0
	case "course":
		return !blank(a.Course)
	case "ever_employed":
		return a.EverEmployed == Yes || a.EverEmployed == No
	case "company_name":
		return a.Employment != nil && !blank(a.Employment.CompanyName)
	case "current_work":
		return a.Employment != nil && !blank(a.Employment.CurrentWork)
	case "business_name":
		return a.Employment != nil && a.Employment.Business != nil && !blank(a.Employment.Business.Name)
	case "business_address":
		return a.Employment != nil && a.Employment.Business != nil && !blank(a.Employment.Business.Address)
	case "business_nature":
		return a.Employment != nil && a.Employment.Business != nil && !blank(a.Employment.Business.Nature)
	case "unemployment_reasons":
		return !a.UnemploymentReasons.Empty()
	case "unrelated_job_reasons":
		return a.FirstJob != nil && !a.FirstJob.UnrelatedReasons.Empty()
	case "advanced_study_reasons_other":
		return a.AdvancedStudy != nil && !blank(a.AdvancedStudy.Reasons.OtherText)
	case "employment_status_other":
		return a.Employment != nil && !blank(a.Employment.Status.OtherText)
	case "recent_positions_other":
		return a.Employment != nil && !blank(a.Employment.RecentPositions.OtherText)
	case "unemployment_reasons_other":
		return !blank(a.UnemploymentReasons.OtherText)
	case "reasons_for_staying_other":
		return !blank(a.ReasonsForStaying.OtherText)
	case "unrelated_job_reasons_other":
		return a.FirstJob != nil && !blank(a.FirstJob.UnrelatedReasons.OtherText)
	case "job_change_reasons_other":
		return a.FirstJob != nil && !blank(a.FirstJob.ChangeReasons.OtherText)
	case "first_job_duration_other":
		return a.FirstJob != nil && !blank(a.FirstJob.Duration.OtherText)
	case "how_found_first_job_other":
		return a.FirstJob != nil && !blank(a.FirstJob.HowFound.OtherText)
	case "time_to_land_job_other":
		return a.FirstJob != nil && !blank(a.FirstJob.TimeToLand.OtherText)
	default:
		return false
	}
}
