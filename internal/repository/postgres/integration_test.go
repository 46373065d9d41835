//go:build integration

package postgres_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/repository/postgres"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/auth"
	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/metrics"
	"go-talent-backend/pkg/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

// setupTestDB starts PostgreSQL in a container and applies schema.sql.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		tcpostgres.WithDatabase("talent_test"),
		tcpostgres.WithUsername("talent"),
		tcpostgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPostgresConnection(ctx, dsn, database.DefaultPoolOptions(), nil)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("schema.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)
	return pool
}

type app struct {
	users      domain.UserUsecase
	companies  domain.CompanyUsecase
	vacancies  domain.VacancyUsecase
	apps       domain.ApplicationUsecase
	auth       domain.AuthUsecase
	userDir    string
	companyDir string
}

func newApp(t *testing.T, pool *pgxpool.Pool) *app {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	userDir := filepath.Join(t.TempDir(), "user_pfp")
	companyDir := filepath.Join(t.TempDir(), "company_pfp")
	userStore, err := storage.NewLocalStore(userDir)
	require.NoError(t, err)
	companyStore, err := storage.NewLocalStore(companyDir)
	require.NoError(t, err)

	executor := database.NewExecutor(database.PoolFrom(pool), log)
	sync := usecase.NewProfileSynchronizer(
		postgres.NewAssetRepository(pool),
		executor,
		map[domain.EntityKind]usecase.AssetStager{
			domain.EntityUser:    storage.NewStager(userStore, log),
			domain.EntityCompany: storage.NewStager(companyStore, log),
		},
		metrics.NewSyncMetrics(prometheus.NewRegistry()),
		log,
	)
	hasher := auth.BcryptHasher{Cost: bcrypt.MinCost}
	userLocator := storage.NewPathLocator("/v1/pictures/user/")
	companyLocator := storage.NewPathLocator("/v1/pictures/company/")

	return &app{
		users:      usecase.NewUserUsecase(postgres.NewUserRepository(pool, nil), sync, hasher, userLocator, nil),
		companies:  usecase.NewCompanyUsecase(postgres.NewCompanyRepository(pool, nil), sync, hasher, companyLocator, nil),
		vacancies:  usecase.NewVacancyUsecase(postgres.NewVacancyRepository(pool, nil), sync, companyLocator, nil),
		apps:       usecase.NewApplicationUsecase(postgres.NewApplicationRepository(pool, nil), executor, userLocator, nil),
		auth:       usecase.NewAuthUsecase(postgres.NewCredentialsRepository(pool), hasher, auth.NewTokenIssuer("integration", time.Hour)),
		userDir:    userDir,
		companyDir: companyDir,
	}
}

func picture(t *testing.T) *storage.Payload {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return &storage.Payload{Filename: "pic.png", ContentType: "image/png", Data: buf.Bytes()}
}

func files(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func statusOf(err error) int {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}

func TestIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	ctx := context.Background()
	pool := setupTestDB(t)
	a := newApp(t, pool)

	var userID string
	t.Run("User registers and replaces the profile", func(t *testing.T) {
		var err error
		userID, err = a.users.Register(ctx, &domain.UserRegistration{
			FullName: "Ada Lovelace", Email: "ada@example.com", Country: "UK", Password: "engine-123",
		})
		require.NoError(t, err)

		err = a.users.UpdateProfile(ctx, userID, picture(t), &domain.UserProfileForm{
			Description:  "Analyst",
			ContactLinks: `[{"platform":"GitHub","link":"https://github.com/ada"}]`,
			Experience:   `[{"position":"Analyst","company":"Engines Ltd","start_date":"1842-01-01","end_date":"1843-06-30","description":"Notes"}]`,
			Skills:       `["math","poetry"]`,
			Education:    `[]`,
		})
		require.NoError(t, err)

		profile, err := a.users.GetProfile(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Analyst", profile.Description)
		assert.Equal(t, []string{"math", "poetry"}, profile.Skills)
		require.Len(t, profile.Experience, 1)
		assert.Equal(t, "1843-06-30", profile.Experience[0].EndDate)
		assert.Empty(t, profile.Education)
		require.Len(t, files(t, a.userDir), 1)
		assert.Equal(t, "/v1/pictures/user/"+files(t, a.userDir)[0], profile.ProfilePicture)
	})

	t.Run("A second picture replaces the first on disk", func(t *testing.T) {
		before := files(t, a.userDir)

		err := a.users.UpdateProfile(ctx, userID, picture(t), &domain.UserProfileForm{
			ContactLinks: `[]`, Experience: `[]`, Skills: `[]`, Education: `[]`,
		})
		require.NoError(t, err)

		after := files(t, a.userDir)
		require.Len(t, after, 1)
		assert.NotEqual(t, before, after)

		profile, err := a.users.GetProfile(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, profile.Skills)
		assert.Empty(t, profile.ContactLinks)
	})

	t.Run("Duplicate email is a conflict", func(t *testing.T) {
		_, err := a.users.Register(ctx, &domain.UserRegistration{
			FullName: "Ada Again", Email: "ada@example.com", Country: "UK", Password: "engine-123",
		})
		assert.Equal(t, http.StatusConflict, statusOf(err))
	})

	t.Run("Login", func(t *testing.T) {
		result, err := a.auth.Login(ctx, &domain.LoginRequest{Email: "ada@example.com", Password: "engine-123"})
		require.NoError(t, err)
		assert.Equal(t, userID, result.ID)
		assert.Equal(t, auth.SubjectUser, result.Type)

		_, err = a.auth.Login(ctx, &domain.LoginRequest{Email: "ada@example.com", Password: "wrong-pass"})
		assert.Equal(t, http.StatusUnauthorized, statusOf(err))
	})

	t.Run("Malformed and unknown ids are not found", func(t *testing.T) {
		_, err := a.users.GetProfile(ctx, "not-a-uuid")
		assert.Equal(t, http.StatusNotFound, statusOf(err))

		err = a.users.UpdateProfile(ctx, "00000000-0000-0000-0000-000000000000", nil, &domain.UserProfileForm{
			ContactLinks: `[]`, Experience: `[]`, Skills: `[]`, Education: `[]`,
		})
		assert.Equal(t, http.StatusNotFound, statusOf(err))
	})

	var companyID string
	reg := &domain.CompanyRegistration{
		Name: "Acme", AdminEmail: "admin@acme.io", AdminPassword: "password-1",
		Type: "Startup", CommercialSector: "Software", EmployeeCount: 12,
	}
	t.Run("Company registers with its picture", func(t *testing.T) {
		var err error
		companyID, err = a.companies.Register(ctx, picture(t), reg)
		require.NoError(t, err)

		profile, err := a.companies.GetProfile(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", profile.Name)
		assert.NotEmpty(t, profile.ProfilePicture)
	})

	t.Run("Rejected company registration discards its picture", func(t *testing.T) {
		_, err := a.companies.Register(ctx, picture(t), reg)

		assert.Equal(t, http.StatusConflict, statusOf(err))
		assert.Len(t, files(t, a.companyDir), 1)
	})

	t.Run("Vacancy lifecycle", func(t *testing.T) {
		draft := &domain.VacancyDraft{
			Position: "Backend Engineer", OfficeAddress: "Main St 1", WorkModality: "Remote",
			WorkDays: "Mon-Fri", DailySchedule: "9-17", Description: "Build APIs",
			Skills: []string{"Go", "go", "SQL"},
		}
		vacancyID, err := a.vacancies.Post(ctx, companyID, draft)
		require.NoError(t, err)

		details, err := a.vacancies.Details(ctx, vacancyID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "SQL"}, details.Skills)
		assert.Equal(t, "Acme", details.CompanyName)
		assert.True(t, details.AcceptsApplications)

		draft.Skills = []string{"Rust"}
		require.NoError(t, a.vacancies.Update(ctx, companyID, vacancyID, draft))
		details, err = a.vacancies.Details(ctx, vacancyID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Rust"}, details.Skills)

		found, total, err := a.vacancies.Search(ctx, &domain.VacancySearch{Position: "backend"}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, found, 1)
		assert.Equal(t, 0, found[0].DaysAgo)

		require.NoError(t, a.vacancies.Close(ctx, companyID, vacancyID))
		_, total, err = a.vacancies.Search(ctx, &domain.VacancySearch{}, 1, 10)
		require.NoError(t, err)
		assert.Zero(t, total)

		own, total, err := a.vacancies.CompanyVacancies(ctx, companyID, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, own, 1)
	})
	t.Run("Applications, interviews and hiring", func(t *testing.T) {
		vacancyID, err := a.vacancies.Post(ctx, companyID, &domain.VacancyDraft{
			Position: "Data Engineer", OfficeAddress: "Main St 1", WorkModality: "Hybrid",
			WorkDays: "Mon-Fri", DailySchedule: "9-17", Description: "Pipelines",
		})
		require.NoError(t, err)

		form := &domain.ApplicationForm{
			ContactEmail: "ada@example.com", PhoneNumber: "+441234567890", HighestEducationLevel: "Self-taught",
			Experience: "Analytical engine", HardSkills: "Math", SoftSkills: "Writing",
			ApplicationReason: "Engines", PortfolioLink: "https://ada.dev",
		}
		applicationID, err := a.apps.Apply(ctx, userID, vacancyID, form)
		require.NoError(t, err)

		_, err = a.apps.Apply(ctx, userID, vacancyID, form)
		assert.Equal(t, http.StatusConflict, statusOf(err))

		applicants, err := a.apps.Applicants(ctx, companyID, vacancyID)
		require.NoError(t, err)
		require.Len(t, applicants, 1)
		assert.Equal(t, applicationID, applicants[0].ApplicationID)
		assert.Equal(t, "Ada Lovelace", applicants[0].Name)
		assert.Equal(t, "/v1/pictures/user/"+files(t, a.userDir)[0], applicants[0].ProfilePicture)

		answers, err := a.apps.FormAnswers(ctx, companyID, applicationID)
		require.NoError(t, err)
		assert.Equal(t, form, answers)

		notesID, err := a.apps.ScheduleInterview(ctx, companyID, applicationID)
		require.NoError(t, err)
		_, err = a.apps.ScheduleInterview(ctx, companyID, applicationID)
		assert.Equal(t, http.StatusConflict, statusOf(err))

		require.NoError(t, a.apps.UpdateInterviewNotes(ctx, companyID, notesID, "Hire"))
		notes, err := a.apps.InterviewNotes(ctx, companyID, notesID)
		require.NoError(t, err)
		assert.Equal(t, "Hire", notes.Notes)

		contacted, err := a.apps.ContactedApplicants(ctx, companyID, vacancyID)
		require.NoError(t, err)
		require.Len(t, contacted, 1)
		assert.Equal(t, notesID, contacted[0].InterviewNotesID)

		unknown := "00000000-0000-0000-0000-000000000000"
		rejections, err := a.apps.RegisterNewHires(ctx, companyID, vacancyID, []string{userID, unknown})
		require.NoError(t, err)
		assert.Equal(t, []domain.HireRejection{{UserID: unknown, Reason: domain.HireRejectedNotFound}}, rejections)

		var hired int
		require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE user_id = $1`, userID).Scan(&hired))
		assert.Zero(t, hired, "a rejected request hires nobody")

		rejections, err = a.apps.RegisterNewHires(ctx, companyID, vacancyID, []string{userID})
		require.NoError(t, err)
		assert.Empty(t, rejections)

		var position string
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT position FROM employees WHERE user_id = $1 AND company_id = $2 AND is_active`, userID, companyID,
		).Scan(&position))
		assert.Equal(t, "Data Engineer", position)

		rejections, err = a.apps.RegisterNewHires(ctx, companyID, vacancyID, []string{userID})
		require.NoError(t, err)
		assert.Equal(t, []domain.HireRejection{{UserID: userID, Reason: domain.HireRejectedAlreadyHired}}, rejections)
	})
}
