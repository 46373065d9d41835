package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"strings"
	"testing"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/repository/postgres"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/auth"
	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/metrics"
	"go-talent-backend/pkg/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// harness wires the real synchronizer, executor, batch builders and local
// blob stores around an in-memory database.
type harness struct {
	db        *memDB
	userStore *storage.LocalStore
	compStore *storage.LocalStore
	sync      *usecase.ProfileSynchronizer
	users     domain.UserUsecase
	companies domain.CompanyUsecase
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	userStore, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	compStore, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	db := newMemDB()
	sync := usecase.NewProfileSynchronizer(db, database.NewExecutor(db, nil),
		map[domain.EntityKind]usecase.AssetStager{
			domain.EntityUser:    storage.NewStager(userStore, nil),
			domain.EntityCompany: storage.NewStager(compStore, nil),
		},
		metrics.NewSyncMetrics(prometheus.NewRegistry()), nil)

	hasher := auth.BcryptHasher{Cost: bcrypt.MinCost}
	return &harness{
		db:        db,
		userStore: userStore,
		compStore: compStore,
		sync:      sync,
		users: usecase.NewUserUsecase(postgres.NewUserRepository(nil, nil), sync, hasher,
			storage.NewPathLocator("/v1/pictures/user"), nil),
		companies: usecase.NewCompanyUsecase(postgres.NewCompanyRepository(nil, nil), sync, hasher,
			storage.NewPathLocator("/v1/pictures/company"), nil),
	}
}

func pngPayload(t *testing.T) *storage.Payload {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return &storage.Payload{Filename: "avatar.png", ContentType: "image/png", Data: buf.Bytes()}
}

func storedFiles(t *testing.T, store *storage.LocalStore) []string {
	t.Helper()
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// seedUser stores user E1 with a picture, one experience record and two skills.
func seedUser(t *testing.T, h *harness) string {
	t.Helper()
	a0, err := h.userStore.Put(context.Background(), *pngPayload(t))
	require.NoError(t, err)

	h.db.seed("users", row{"id": "E1", "full_name": "Ada", "profile_picture": a0, "description": "before"})
	h.db.seed("experience_records", row{
		"id": "x-1", "position": "Intern", "company": "Old Co", "start_date": "2018-01-01",
		"end_date": "2018-06-01", "description": "", "user_id": "E1",
	})
	h.db.seed("user_skills",
		row{"id": "s-1", "skill_name": "Go", "user_id": "E1"},
		row{"id": "s-2", "skill_name": "SQL", "user_id": "E1"},
	)
	return a0
}

func scenarioForm() *domain.UserProfileForm {
	return &domain.UserProfileForm{
		Description:  "after",
		ContactLinks: `[]`,
		Experience: `[
			{"position": "Engineer", "company": "Acme", "start_date": "2020-01-01", "end_date": "2021-01-01"},
			{"position": "Lead", "company": "Acme", "start_date": "2021-01-02"}
		]`,
		Skills:    `[]`,
		Education: `[]`,
	}
}

func TestUserProfileSynchronization(t *testing.T) {
	ctx := context.Background()

	t.Run("New picture and collections commit together", func(t *testing.T) {
		h := newHarness(t)
		a0 := seedUser(t, h)

		err := h.users.UpdateProfile(ctx, "E1", pngPayload(t), scenarioForm())
		require.NoError(t, err)

		a1, err := h.db.CurrentAsset(ctx, domain.EntityUser, "E1")
		require.NoError(t, err)
		assert.NotEqual(t, a0, a1)
		assert.Equal(t, []string{a1}, storedFiles(t, h.userStore))

		experience := h.db.rowsOf("experience_records", "user_id", "E1")
		require.Len(t, experience, 2)
		assert.ElementsMatch(t, []any{"Engineer", "Lead"}, []any{experience[0]["position"], experience[1]["position"]})
		assert.Nil(t, h.db.rowsOf("experience_records", "position", "Lead")[0]["end_date"])
		assert.Empty(t, h.db.rowsOf("user_skills", "user_id", "E1"))

		for _, q := range h.db.executed {
			assert.False(t, strings.HasPrefix(q, `INSERT INTO "user_skills"`), "empty collection must not insert")
		}
		assert.Equal(t, "after", h.db.rowsOf("users", "id", "E1")[0]["description"])
	})

	t.Run("Failed insertion leaves everything as it was", func(t *testing.T) {
		h := newHarness(t)
		a0 := seedUser(t, h)
		before := h.db.snapshot()
		h.db.failWhen = func(query string) error {
			if strings.HasPrefix(query, `INSERT INTO "experience_records"`) {
				return errors.New("check constraint violated")
			}
			return nil
		}

		err := h.users.UpdateProfile(ctx, "E1", pngPayload(t), scenarioForm())

		var txErr *apperror.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.Equal(t, before, h.db.snapshot())

		ref, err := h.db.CurrentAsset(ctx, domain.EntityUser, "E1")
		require.NoError(t, err)
		assert.Equal(t, a0, ref)
		assert.Equal(t, []string{a0}, storedFiles(t, h.userStore), "staged picture must be discarded")
	})

	t.Run("Failed commit compensates the same way", func(t *testing.T) {
		h := newHarness(t)
		a0 := seedUser(t, h)
		h.db.failCommit = errors.New("serialization failure")

		err := h.users.UpdateProfile(ctx, "E1", pngPayload(t), scenarioForm())

		var txErr *apperror.TransactionError
		require.ErrorAs(t, err, &txErr)
		assert.Equal(t, -1, txErr.Statement)
		assert.Equal(t, []string{a0}, storedFiles(t, h.userStore))
		assert.Len(t, h.db.rowsOf("experience_records", "user_id", "E1"), 1)
	})

	t.Run("Any failing statement rolls back every collection", func(t *testing.T) {
		counting := newHarness(t)
		seedUser(t, counting)
		require.NoError(t, counting.users.UpdateProfile(ctx, "E1", nil, fullForm()))
		statements := len(counting.db.executed)
		require.Greater(t, statements, 5)

		for failAt := 0; failAt < statements; failAt++ {
			h := newHarness(t)
			seedUser(t, h)
			before := h.db.snapshot()

			n := 0
			h.db.failWhen = func(string) error {
				defer func() { n++ }()
				if n == failAt {
					return errors.New("injected")
				}
				return nil
			}

			err := h.users.UpdateProfile(ctx, "E1", pngPayload(t), fullForm())

			var txErr *apperror.TransactionError
			require.ErrorAs(t, err, &txErr, "statement %d", failAt)
			assert.Equal(t, failAt, txErr.Statement)
			assert.Equal(t, before, h.db.snapshot(), "statement %d", failAt)
			assert.Len(t, storedFiles(t, h.userStore), 1, "statement %d", failAt)
		}
	})

	t.Run("Without a picture the stored reference is kept", func(t *testing.T) {
		h := newHarness(t)
		a0 := seedUser(t, h)

		require.NoError(t, h.users.UpdateProfile(ctx, "E1", nil, scenarioForm()))

		ref, err := h.db.CurrentAsset(ctx, domain.EntityUser, "E1")
		require.NoError(t, err)
		assert.Equal(t, a0, ref)
		assert.Equal(t, []string{a0}, storedFiles(t, h.userStore))
	})

	t.Run("Text-only update keeps a picture committed concurrently", func(t *testing.T) {
		h := newHarness(t)
		a0 := seedUser(t, h)
		repo := postgres.NewUserRepository(nil, nil)

		// The picture swap commits after the text-only write has read a0
		// and before its own batch runs.
		err := h.sync.SynchronizeProfile(ctx, usecase.SyncRequest{
			Kind:     domain.EntityUser,
			EntityID: "E1",
			Build: func(pictureRef string) database.Batch {
				require.NoError(t, h.users.UpdateProfile(ctx, "E1", pngPayload(t), scenarioForm()))
				return repo.ProfileBatch("E1", pictureRef, &domain.UserProfileUpdate{Description: "text only"})
			},
		})
		require.NoError(t, err)

		ref, err := h.db.CurrentAsset(ctx, domain.EntityUser, "E1")
		require.NoError(t, err)
		assert.NotEqual(t, a0, ref)
		assert.Equal(t, []string{ref}, storedFiles(t, h.userStore))
		assert.Equal(t, "text only", h.db.rowsOf("users", "id", "E1")[0]["description"])
	})

	t.Run("Unknown user is not found and nothing is staged", func(t *testing.T) {
		h := newHarness(t)

		err := h.users.UpdateProfile(ctx, "nobody", pngPayload(t), scenarioForm())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		assert.Empty(t, storedFiles(t, h.userStore))
	})
}

func fullForm() *domain.UserProfileForm {
	return &domain.UserProfileForm{
		Description:  "full",
		ContactLinks: `[{"platform": "GitHub", "link": "https://github.com/ada"}]`,
		Experience:   `[{"position": "Engineer", "company": "Acme", "start_date": "2020-01-01"}]`,
		Skills:       `["Go", "PostgreSQL"]`,
		Education:    `[{"title": "BSc", "organization": "Uni", "start_date": "2014-09-01", "end_date": "2018-06-30"}]`,
	}
}

func TestUserProfileValidation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		mutate   func(f *domain.UserProfileForm)
		field    string
		index    int
		subfield string
	}{
		{"missing collection", func(f *domain.UserProfileForm) { f.Skills = "" }, "skills", -1, ""},
		{"not an array", func(f *domain.UserProfileForm) { f.Experience = `{"position": "x"}` }, "experience", -1, ""},
		{"bad date", func(f *domain.UserProfileForm) {
			f.Education = `[{"title": "BSc", "organization": "Uni", "start_date": "2018-02-30"}]`
		}, "education", 0, "start_date"},
		{"end before start", func(f *domain.UserProfileForm) {
			f.Experience = `[{"position": "A", "company": "B", "start_date": "2020-01-01"},
				{"position": "A", "company": "B", "start_date": "2020-01-01", "end_date": "2019-01-01"}]`
		}, "experience", 1, "end_date"},
		{"missing attribute", func(f *domain.UserProfileForm) { f.ContactLinks = `[{"platform": "GitHub"}]` }, "contact_links", 0, "link"},
		{"unknown attribute", func(f *domain.UserProfileForm) {
			f.ContactLinks = `[{"platform": "GitHub", "link": "https://x.io", "extra": 1}]`
		}, "contact_links", 0, ""},
		{"blank skill", func(f *domain.UserProfileForm) { f.Skills = `["Go", " "]` }, "skills", 1, ""},
		{"too many records", func(f *domain.UserProfileForm) {
			f.Skills = "[" + strings.Repeat(`"Go",`, usecase.MaxCollectionRecords) + `"Go"]`
		}, "skills", -1, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			seedUser(t, h)
			before := h.db.snapshot()
			form := fullForm()
			tc.mutate(form)

			err := h.users.UpdateProfile(ctx, "E1", pngPayload(t), form)

			var validationErr *apperror.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
			assert.Equal(t, tc.index, validationErr.Index)
			assert.Equal(t, tc.subfield, validationErr.Subfield)

			assert.Empty(t, h.db.executed)
			assert.Equal(t, before, h.db.snapshot())
			assert.Len(t, storedFiles(t, h.userStore), 1)
		})
	}

	t.Run("Invalid picture is rejected before staging", func(t *testing.T) {
		h := newHarness(t)
		seedUser(t, h)

		err := h.users.UpdateProfile(ctx, "E1", &storage.Payload{Filename: "a.png", Data: []byte("not a png")}, fullForm())

		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "profile_picture", validationErr.Field)
		assert.Len(t, storedFiles(t, h.userStore), 1)
	})
}

func TestUserRegister(t *testing.T) {
	ctx := context.Background()
	reg := &domain.UserRegistration{FullName: "Ada Lovelace", Email: "ada@example.com", Country: "UK", Password: "s3cret-pass"}

	t.Run("Inserts the user with a hashed password", func(t *testing.T) {
		h := newHarness(t)

		id, err := h.users.Register(ctx, reg)
		require.NoError(t, err)

		rows := h.db.rowsOf("users", "id", id)
		require.Len(t, rows, 1)
		assert.Equal(t, "ada@example.com", rows[0]["email"])
		hash, _ := rows[0]["hashed_password"].(string)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")))
		assert.Nil(t, rows[0]["profile_picture"])
	})

	t.Run("Duplicate email is a conflict", func(t *testing.T) {
		h := newHarness(t)
		h.db.failWhen = func(string) error { return uniqueViolation() }

		_, err := h.users.Register(ctx, reg)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})
}

type userRepoStub struct {
	domain.UserRepository
	profile *domain.UserProfile
	err     error
}

func (s userRepoStub) GetProfile(context.Context, string) (*domain.UserProfile, error) {
	return s.profile, s.err
}

func TestUserGetProfile(t *testing.T) {
	ctx := context.Background()
	locator := storage.NewPathLocator("/v1/pictures/user")

	t.Run("Renders the picture as a URL", func(t *testing.T) {
		repo := userRepoStub{profile: &domain.UserProfile{ID: "E1", ProfilePicture: "a.png"}}
		uc := usecase.NewUserUsecase(repo, nil, nil, locator, nil)

		profile, err := uc.GetProfile(ctx, "E1")

		require.NoError(t, err)
		assert.Equal(t, "/v1/pictures/user/a.png", profile.ProfilePicture)
	})

	t.Run("Missing picture stays empty", func(t *testing.T) {
		repo := userRepoStub{profile: &domain.UserProfile{ID: "E1"}}
		uc := usecase.NewUserUsecase(repo, nil, nil, locator, nil)

		profile, err := uc.GetProfile(ctx, "E1")

		require.NoError(t, err)
		assert.Empty(t, profile.ProfilePicture)
	})

	t.Run("Unknown user", func(t *testing.T) {
		uc := usecase.NewUserUsecase(userRepoStub{err: domain.ErrNotFound}, nil, nil, locator, nil)

		_, err := uc.GetProfile(ctx, "nobody")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
