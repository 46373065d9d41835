package postgres

import (
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/database"
)

// Every table and column the engine writes to is declared here. Request
// input never reaches an identifier.
var (
	usersEntity     = database.MustEntity("users", "id")
	companiesEntity = database.MustEntity("companies", "id")
	vacanciesEntity = database.MustEntity("vacancies", "id")

	jobApplicationsEntity = database.MustEntity("job_applications", "id")
	interviewNotesEntity  = database.MustEntity("job_interview_notes", "id")

	userContactLinksTable    = database.MustTable("user_contact_links", "user_id", "platform", "link")
	experienceRecordsTable   = database.MustTable("experience_records", "user_id", "position", "company", "start_date", "end_date", "description")
	userSkillsTable          = database.MustTable("user_skills", "user_id", "skill_name")
	educationRecordsTable    = database.MustTable("education_records", "user_id", "title", "organization", "start_date", "end_date", "description")
	companyContactLinksTable = database.MustTable("company_contact_links", "company_id", "platform", "link")
	vacancySkillsTable       = database.MustTable("vacancy_skills", "vacancy_id", "skill_name")
	employeesTable           = database.MustTable("employees", "company_id", "user_id", "hire_date", "position")

	userProfileColumns      = usersEntity.Columns("profile_picture", "description")
	userDescriptionColumns  = usersEntity.Columns("description")
	userRegistrationColumns = usersEntity.Columns("full_name", "email", "hashed_password", "country", "description", "profile_picture")

	companyProfileColumns      = companiesEntity.Columns("profile_picture", "description", "mission", "vision", "address", "last_update_date")
	companyDetailColumns       = companiesEntity.Columns("description", "mission", "vision", "address", "last_update_date")
	companyRegistrationColumns = companiesEntity.Columns(
		"name", "admin_email", "hashed_admin_password", "profile_picture", "type", "commercial_sector",
		"employee_count", "address", "description", "mission", "vision", "creation_date", "last_update_date",
	)

	vacancyDraftColumns  = vacanciesEntity.Columns("position", "office_address", "work_modality", "work_days", "daily_schedule", "description")
	vacancyInsertColumns = vacanciesEntity.Columns(
		"company_id", "position", "office_address", "work_modality", "work_days", "daily_schedule",
		"description", "creation_date", "accepts_applications",
	)

	jobApplicationColumns = jobApplicationsEntity.Columns(
		"contact_email", "phone_number", "highest_education_level", "experience", "hard_skills",
		"soft_skills", "application_reason", "portfolio_link", "creation_date", "vacancy_id", "user_id",
	)
	interviewInsertColumns = interviewNotesEntity.Columns("notes", "job_application_id")
	interviewNotesColumns  = interviewNotesEntity.Columns("notes")
)

// assetColumns maps each entity kind to its primary table and asset column.
// An empty column means the kind holds no asset.
var assetColumns = map[domain.EntityKind]struct {
	entity database.Entity
	column string
}{
	domain.EntityUser:    {usersEntity, "profile_picture"},
	domain.EntityCompany: {companiesEntity, "profile_picture"},
	domain.EntityVacancy: {vacanciesEntity, ""},
}

func extractContactLink(l domain.ContactLink) []any {
	return []any{l.Platform, l.Link}
}

func extractExperience(r domain.ExperienceRecord) []any {
	return []any{r.Position, r.Company, r.StartDate, nullableDate(r.EndDate), r.Description}
}

func extractEducation(r domain.EducationRecord) []any {
	return []any{r.Title, r.Organization, r.StartDate, nullableDate(r.EndDate), r.Description}
}

func extractSkill(s string) []any {
	return []any{s}
}

// nullableDate stores an open-ended date as NULL.
func nullableDate(d string) any {
	if d == "" {
		return nil
	}
	return d
}

// nullableRef stores "no asset" as NULL.
func nullableRef(ref string) any {
	if ref == "" {
		return nil
	}
	return ref
}
