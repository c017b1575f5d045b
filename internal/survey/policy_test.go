package survey

import (
	"reflect"
	"testing"
)

// employedAnswers returns a complete answer set for a graduate who has
// been employed. Tests knock individual fields out of it.
func employedAnswers() Answers {
	return Answers{
		Surname:          "Dela Cruz",
		FirstName:        "Juan",
		Email:            "juan.delacruz@example.com",
		Phone:            "09171234567",
		PermanentAddress: "Catbalogan City, Samar",
		Sex:              Male,
		CivilStatus:      Single,
		ActivityImages:   []FileRef{{URL: "https://cdn.example.com/a.webp"}},

		Year:          2020,
		CollegeCampus: "Main Campus",
		Program:       "Bachelor of Science in Information Technology",
		DepartmentID:  1,
		Course:        "BSIT",

		EverEmployed: Yes,
		Employment: &Employment{
			CompanyName: "Acme Corp",
			CurrentWork: "Software Developer",
			Status:      MultiSelect{Selected: []string{"Regular or Permanent"}},
		},
	}
}

func unemployedAnswers() Answers {
	a := employedAnswers()
	a.EverEmployed = No
	a.Employment = nil
	a.UnemploymentReasons = MultiSelect{Selected: []string{"No job opportunity"}}
	return a
}

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func containsField(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestCheckStepCompleteAnswers(t *testing.T) {
	a := employedAnswers()
	for step := FirstStep; step <= FinalStep; step++ {
		if errs := CheckStep(step, &a); len(errs) > 0 {
			t.Errorf("step %d: unexpected errors %v", step, fieldNames(errs))
		}
	}
}

func TestCheckStepBaseFields(t *testing.T) {
	tests := []struct {
		name   string
		step   int
		mutate func(*Answers)
		want   string
	}{
		{"missing surname", 1, func(a *Answers) { a.Surname = "" }, "surname"},
		{"whitespace first name", 1, func(a *Answers) { a.FirstName = "   " }, "first_name"},
		{"missing email", 1, func(a *Answers) { a.Email = "" }, "email"},
		{"missing phone", 1, func(a *Answers) { a.Phone = "" }, "phone"},
		{"missing address", 1, func(a *Answers) { a.PermanentAddress = "" }, "permanent_address"},
		{"missing sex", 1, func(a *Answers) { a.Sex = "" }, "sex"},
		{"missing civil status", 1, func(a *Answers) { a.CivilStatus = "" }, "civil_status"},
		{"no activity images", 1, func(a *Answers) { a.ActivityImages = nil }, "activity_images"},
		{"missing year", 2, func(a *Answers) { a.Year = 0 }, "year"},
		{"missing campus", 2, func(a *Answers) { a.CollegeCampus = "" }, "college_campus"},
		{"missing program", 2, func(a *Answers) { a.Program = "" }, "program"},
		{"missing department", 2, func(a *Answers) { a.DepartmentID = 0 }, "department_id"},
		{"missing course", 2, func(a *Answers) { a.Course = "" }, "course"},
		{"missing ever employed", 4, func(a *Answers) { a.EverEmployed = "" }, "ever_employed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := employedAnswers()
			tt.mutate(&a)
			errs := CheckStep(tt.step, &a)
			if !containsField(errs, tt.want) {
				t.Errorf("CheckStep(%d) = %v, want violation on %q", tt.step, fieldNames(errs), tt.want)
			}
		})
	}
}

func TestCheckStepIsPure(t *testing.T) {
	a := employedAnswers()
	a.Surname = ""
	before := a

	first := CheckStep(1, &a)
	second := CheckStep(1, &a)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated CheckStep diverged: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(a, before) {
		t.Error("CheckStep mutated the answers")
	}
}

func TestRequiredFieldsMatchCheckStep(t *testing.T) {
	// Every field RequiredFields reports must be exactly the set CheckStep
	// complains about when the answers are empty.
	for _, a := range []Answers{{}, employedAnswers(), unemployedAnswers()} {
		for step := FirstStep; step <= FinalStep; step++ {
			required := RequiredFields(step, &a)
			violated := fieldNames(CheckStep(step, &a))

			for _, f := range violated {
				found := false
				for _, r := range required {
					if r == f {
						found = true
					}
				}
				if !found {
					t.Errorf("step %d: CheckStep flagged %q which RequiredFields omits", step, f)
				}
			}
		}
	}
}

func TestEmploymentBranch(t *testing.T) {
	t.Run("yes requires company and current work", func(t *testing.T) {
		a := employedAnswers()
		a.Employment = nil
		errs := CheckStep(4, &a)
		for _, want := range []string{"company_name", "current_work"} {
			if !containsField(errs, want) {
				t.Errorf("missing violation on %q, got %v", want, fieldNames(errs))
			}
		}
	})

	t.Run("no requires unemployment reasons", func(t *testing.T) {
		a := unemployedAnswers()
		a.UnemploymentReasons = MultiSelect{}
		errs := CheckStep(4, &a)
		if !containsField(errs, "unemployment_reasons") {
			t.Errorf("missing violation on unemployment_reasons, got %v", fieldNames(errs))
		}
		if containsField(errs, "company_name") || containsField(errs, "current_work") {
			t.Errorf("employment fields demanded of an unemployed registrant: %v", fieldNames(errs))
		}
	})

	t.Run("no hides step 5 entirely", func(t *testing.T) {
		a := unemployedAnswers()
		a.ReasonsForStaying = MultiSelect{Selected: []string{OtherMarker}}
		if errs := CheckStep(5, &a); len(errs) > 0 {
			t.Errorf("step 5 should be empty for unemployed registrants, got %v", fieldNames(errs))
		}
	})

	t.Run("undecided branch demands neither side", func(t *testing.T) {
		a := employedAnswers()
		a.EverEmployed = ""
		a.Employment = nil
		errs := CheckStep(4, &a)
		if got := fieldNames(errs); len(got) != 1 || got[0] != "ever_employed" {
			t.Errorf("CheckStep(4) = %v, want only ever_employed", got)
		}
	})
}

func TestSelfEmploymentRequiresBusiness(t *testing.T) {
	tests := []struct {
		name     string
		business *Business
		want     []string
	}{
		{"no business block", nil, []string{"business_name", "business_address", "business_nature"}},
		{"partial business", &Business{Name: "Sari-sari Store"}, []string{"business_address", "business_nature"}},
		{"complete business", &Business{Name: "Sari-sari Store", Address: "Catbalogan", Nature: "Retail"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := employedAnswers()
			a.Employment.Status = MultiSelect{Selected: []string{SelfEmployed}}
			a.Employment.Business = tt.business
			errs := CheckStep(4, &a)
			for _, want := range tt.want {
				if !containsField(errs, want) {
					t.Errorf("missing violation on %q, got %v", want, fieldNames(errs))
				}
			}
			if tt.want == nil && len(errs) > 0 {
				t.Errorf("unexpected errors %v", fieldNames(errs))
			}
		})
	}

	t.Run("not self employed skips business", func(t *testing.T) {
		a := employedAnswers()
		if errs := CheckStep(4, &a); containsField(errs, "business_name") {
			t.Errorf("business demanded without Self-employed status: %v", fieldNames(errs))
		}
	})
}

func TestOthersRequiresText(t *testing.T) {
	tests := []struct {
		name   string
		step   int
		mutate func(*Answers)
		field  string
	}{
		{
			"advanced study reasons", 3,
			func(a *Answers) {
				a.AdvancedStudy = &AdvancedStudy{Reasons: MultiSelect{Selected: []string{OtherMarker}}}
			},
			"advanced_study_reasons_other",
		},
		{
			"employment status", 4,
			func(a *Answers) { a.Employment.Status.Selected = append(a.Employment.Status.Selected, OtherMarker) },
			"employment_status_other",
		},
		{
			"recent positions", 4,
			func(a *Answers) { a.Employment.RecentPositions = MultiSelect{Selected: []string{OtherMarker}} },
			"recent_positions_other",
		},
		{
			"reasons for staying", 5,
			func(a *Answers) { a.ReasonsForStaying = MultiSelect{Selected: []string{OtherMarker}} },
			"reasons_for_staying_other",
		},
		{
			"unrelated job reasons", 5,
			func(a *Answers) {
				a.FirstJob = &FirstJob{UnrelatedReasons: MultiSelect{Selected: []string{OtherMarker}}}
			},
			"unrelated_job_reasons_other",
		},
		{
			"job change reasons", 5,
			func(a *Answers) {
				a.FirstJob = &FirstJob{ChangeReasons: MultiSelect{Selected: []string{OtherMarker}}}
			},
			"job_change_reasons_other",
		},
		{
			"first job duration", 5,
			func(a *Answers) { a.FirstJob = &FirstJob{Duration: ChoiceWithOther{Value: OtherMarker}} },
			"first_job_duration_other",
		},
		{
			"how found first job", 5,
			func(a *Answers) { a.FirstJob = &FirstJob{HowFound: ChoiceWithOther{Value: OtherMarker}} },
			"how_found_first_job_other",
		},
		{
			"time to land job", 5,
			func(a *Answers) { a.FirstJob = &FirstJob{TimeToLand: ChoiceWithOther{Value: OtherMarker}} },
			"time_to_land_job_other",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := employedAnswers()
			tt.mutate(&a)
			if errs := CheckStep(tt.step, &a); !containsField(errs, tt.field) {
				t.Errorf("missing violation on %q, got %v", tt.field, fieldNames(CheckStep(tt.step, &a)))
			}
		})
	}
}

func TestOthersTextSatisfies(t *testing.T) {
	a := employedAnswers()
	a.Employment.Status.Selected = append(a.Employment.Status.Selected, OtherMarker)
	a.Employment.Status.OtherText = "Freelance"
	if errs := CheckStep(4, &a); containsField(errs, "employment_status_other") {
		t.Errorf("other text present but still flagged: %v", fieldNames(errs))
	}
}

func TestUnemploymentOthersText(t *testing.T) {
	a := unemployedAnswers()
	a.UnemploymentReasons.Selected = append(a.UnemploymentReasons.Selected, OtherMarker)
	if errs := CheckStep(4, &a); !containsField(errs, "unemployment_reasons_other") {
		t.Errorf("missing violation on unemployment_reasons_other, got %v", fieldNames(errs))
	}
}

func TestFirstJobUnrelatedReasons(t *testing.T) {
	a := employedAnswers()
	a.FirstJob = &FirstJob{Related: No}
	errs := CheckStep(5, &a)
	if !containsField(errs, "unrelated_job_reasons") {
		t.Errorf("first job unrelated but reasons not demanded: %v", fieldNames(errs))
	}

	a.FirstJob.Related = Yes
	if errs := CheckStep(5, &a); containsField(errs, "unrelated_job_reasons") {
		t.Errorf("first job related but reasons demanded: %v", fieldNames(errs))
	}
}

func TestCheckAllDeduplicates(t *testing.T) {
	a := Answers{}
	errs := CheckAll(&a)
	seen := make(map[string]bool)
	for _, e := range errs {
		if seen[e.Field] {
			t.Errorf("field %q reported twice", e.Field)
		}
		seen[e.Field] = true
	}
	if !seen["surname"] || !seen["year"] || !seen["ever_employed"] {
		t.Errorf("CheckAll missed base fields: %v", fieldNames(errs))
	}
}

func TestVisibleSections(t *testing.T) {
	tests := []struct {
		name string
		a    Answers
		want []Section
	}{
		{
			"undecided",
			Answers{},
			[]Section{SectionIdentity, SectionEducation, SectionStudies},
		},
		{
			"unemployed",
			unemployedAnswers(),
			[]Section{SectionIdentity, SectionEducation, SectionStudies, SectionUnemployment},
		},
		{
			"employed",
			employedAnswers(),
			[]Section{SectionIdentity, SectionEducation, SectionStudies, SectionEmployment, SectionStaying, SectionFirstJob, SectionSalary},
		},
		{
			"self employed",
			func() Answers {
				a := employedAnswers()
				a.Employment.Status = MultiSelect{Selected: []string{SelfEmployed}}
				return a
			}(),
			[]Section{SectionIdentity, SectionEducation, SectionStudies, SectionEmployment, SectionBusiness, SectionStaying, SectionFirstJob, SectionSalary},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleSections(&tt.a); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("VisibleSections() = %v, want %v", got, tt.want)
			}
		})
	}
}
