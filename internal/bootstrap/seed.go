package bootstrap

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Role{},
		&model.UserAccount{},
		&model.Department{},
		&model.GraduateProfile{},
		&model.GraduateImage{},
		&model.Notification{},
	)
}

func SeedRoles(db *gorm.DB) error {
	defaultRoles := []model.Role{
		{Name: "admin", Description: "Super administrator"},
		{Name: "alumni", Description: "Graduate account"},
	}

	for _, role := range defaultRoles {
		var count int64
		if err := db.Model(&model.Role{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func SeedDepartments(db *gorm.DB) error {
	defaultDepartments := []model.Department{
		{Name: "Information Technology", College: "College of Engineering and Technology"},
		{Name: "Civil Engineering", College: "College of Engineering and Technology"},
		{Name: "Mechanical Engineering", College: "College of Engineering and Technology"},
		{Name: "Electrical Engineering", College: "College of Engineering and Technology"},
		{Name: "Agricultural Engineering", College: "College of Agriculture"},
		{Name: "Industrial Technology", College: "College of Industrial Technology"},
		{Name: "Nursing", College: "College of Nursing and Health Sciences"},
		{Name: "Hospitality Management", College: "College of Business and Management"},
		{Name: "Elementary Education", College: "College of Education"},
		{Name: "Secondary Education", College: "College of Education"},
		{Name: "Fisheries", College: "College of Fisheries and Marine Sciences"},
		{Name: "Communication", College: "College of Arts and Sciences"},
	}

	for _, dept := range defaultDepartments {
		var count int64
		if err := db.Model(&model.Department{}).
			Where("name = ?", dept.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&dept).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func SeedAdminUser(db *gorm.DB) error {
	var adminRole model.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.UserAccount{}).
		Where("email = ?", "admin@ssu.edu.ph").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.UserAccount{
		Username:     "admin",
		Email:        "admin@ssu.edu.ph",
		PasswordHash: string(hashedPasswordBytes),
		RoleID:       &adminRole.ID,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user seeded successfully")
	log.Println("   Email: admin@ssu.edu.ph")
	log.Println("   Password: admin123")

	return nil
}
