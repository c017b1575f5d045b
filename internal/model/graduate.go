package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
)

// GraduateProfile is the persisted tracer-survey record for one alumnus.
// Identity and education answers are flat columns; the branching blocks
// (employment, first job, reason sets) are stored as JSON so a block that
// does not apply is simply absent instead of a spread of empty strings.
type GraduateProfile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Surname          string `gorm:"size:100;not null" json:"surname"`
	FirstName        string `gorm:"size:100;not null" json:"first_name"`
	MiddleName       string `gorm:"size:100" json:"middle_name"`
	Email            string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone            string `gorm:"size:50" json:"phone"`
	PermanentAddress string `gorm:"type:text" json:"permanent_address"`
	Sex              string `gorm:"size:10" json:"sex"`
	CivilStatus      string `gorm:"size:30" json:"civil_status"`

	Year          int        `json:"year"`
	CollegeCampus string     `gorm:"size:150" json:"college_campus"`
	Program       string     `gorm:"size:150" json:"program"`
	Major         string     `gorm:"size:150" json:"major"`
	Course        string     `gorm:"size:150" json:"course"`
	DepartmentID  uint       `gorm:"not null" json:"department_id"`
	Department    Department `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"department"`

	AdvancedStudy    datatypes.JSON `json:"advanced_study,omitempty"`
	ProfessionalExam datatypes.JSON `json:"professional_exam,omitempty"`
	Trainings        datatypes.JSON `json:"trainings,omitempty"`

	EverEmployed        string         `gorm:"size:5;not null" json:"ever_employed"`
	Employment          datatypes.JSON `json:"employment,omitempty"`
	UnemploymentReasons datatypes.JSON `json:"unemployment_reasons,omitempty"`
	ReasonsForStaying   datatypes.JSON `json:"reasons_for_staying,omitempty"`
	FirstJob            datatypes.JSON `json:"first_job,omitempty"`

	InitialEarning string `gorm:"size:50" json:"initial_earning"`
	RecentEarning  string `gorm:"size:50" json:"recent_earning"`

	ProfilePictureURL *string         `gorm:"type:text" json:"profile_picture_url,omitempty"`
	ActivityImages    []GraduateImage `gorm:"foreignKey:GraduateID" json:"activity_images,omitempty"`

	Status    survey.Status `gorm:"size:20;not null;default:pending;index" json:"status"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g *GraduateProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID, err = uuid.NewV7()
	}
	return
}

// GraduateImage is one stored activity image of a graduate profile.
type GraduateImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GraduateID uuid.UUID `gorm:"type:uuid;index;not null" json:"graduate_id"`
	FileURL    string    `gorm:"type:text;not null" json:"file_url"`
	FileName   string    `gorm:"size:255" json:"file_name"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
