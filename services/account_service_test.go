package services

import (
	"testing"

	"checkitoff/apperrors"
	"checkitoff/global"
	"checkitoff/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func register(t *testing.T, email string) UserSummary {
	t.Helper()
	user, err := Register(RegisterRequest{
		Name:     "Anan",
		Surname:  "Chai",
		Email:    email,
		Password: "s3cret-pw",
	}, DefaultPolicy())
	require.NoError(t, err)
	return user
}

func TestRegisterAssignsRoleByEmailDomain(t *testing.T) {
	setupTestDB(t)

	admin := register(t, "x@admin.ornor")
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "ROLE_ADMIN", admin.Access)

	reader := register(t, "x@gmail.com")
	assert.Equal(t, models.RoleReader, reader.Role)
}

func TestRegisterValidation(t *testing.T) {
	setupTestDB(t)

	reqs := []RegisterRequest{
		{Surname: "s", Email: "e@x.com", Password: "p"},
		{Name: "n", Email: "e@x.com", Password: "p"},
		{Name: "n", Surname: "s", Password: "p"},
		{Name: "n", Surname: "s", Email: "e@x.com"},
	}
	for _, req := range reqs {
		_, err := Register(req, DefaultPolicy())
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	setupTestDB(t)
	register(t, "dup@example.com")

	_, err := Register(RegisterRequest{
		Name:     "Other",
		Surname:  "Person",
		Email:    "DUP@Example.COM",
		Password: "another-pw",
	}, DefaultPolicy())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestPasswordStoredHashed(t *testing.T) {
	setupTestDB(t)
	register(t, "hash@example.com")

	var user models.User
	require.NoError(t, global.Db.Where("email = ?", "hash@example.com").First(&user).Error)
	assert.NotEqual(t, "s3cret-pw", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pw")))
}

func TestLoginRoundTrip(t *testing.T) {
	setupTestDB(t)
	created := register(t, "round@trip.com")

	user, err := Authenticate("round@trip.com", "s3cret-pw", DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, created.Name, user.Name)
	assert.Equal(t, created.Surname, user.Surname)
	assert.Equal(t, created.Email, user.Email)

	// Email lookup is tolerant of case and whitespace.
	user, err = Authenticate("  Round@Trip.COM ", "s3cret-pw", DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestLoginGenericFailure(t *testing.T) {
	setupTestDB(t)
	register(t, "known@example.com")

	_, wrongPw := Authenticate("known@example.com", "not-the-password", DefaultPolicy())
	require.Error(t, wrongPw)

	_, noAccount := Authenticate("ghost@example.com", "whatever", DefaultPolicy())
	require.Error(t, noAccount)

	// Both failure modes must be indistinguishable to the caller.
	assert.True(t, apperrors.Is(wrongPw, apperrors.KindAuth))
	assert.True(t, apperrors.Is(noAccount, apperrors.KindAuth))
	assert.Equal(t, wrongPw.Error(), noAccount.Error())
}

func TestLoginPromotesActiveVoterToMember(t *testing.T) {
	setupTestDB(t)
	news := createTestNews(t, "Promotion test")
	register(t, "busy@example.com")

	// Four recorded votes pushes the account over the default threshold of 3.
	for i := 0; i < 4; i++ {
		mustVote(t, news.ID, "busy@example.com", models.StanceUp)
	}

	user, err := Authenticate("busy@example.com", "s3cret-pw", DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, user.Role)

	var stored models.User
	require.NoError(t, global.Db.Where("email = ?", "busy@example.com").First(&stored).Error)
	assert.Equal(t, models.RoleMember, stored.Role, "promotion is persisted")
}

func TestLoginBelowThresholdStaysReader(t *testing.T) {
	setupTestDB(t)
	news := createTestNews(t, "Threshold test")
	register(t, "casual@example.com")

	for i := 0; i < 3; i++ {
		mustVote(t, news.ID, "casual@example.com", models.StanceUp)
	}

	user, err := Authenticate("casual@example.com", "s3cret-pw", DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, models.RoleReader, user.Role, "threshold is strictly greater than")
}

func TestHiddenAccountCannotLogin(t *testing.T) {
	setupTestDB(t)
	created := register(t, "hidden@example.com")
	require.NoError(t, SetUserVisibility(created.ID, false))

	_, err := Authenticate("hidden@example.com", "s3cret-pw", DefaultPolicy())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindAuth))
}

func TestGetUserByEmail(t *testing.T) {
	setupTestDB(t)
	register(t, "lookup@example.com")

	user, err := GetUserByEmail("lookup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Anan", user.Name)
	assert.Equal(t, "Chai", user.Surname)
	assert.Equal(t, "ROLE_READER", user.Access)

	_, err = GetUserByEmail("missing@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestUpdateUserRole(t *testing.T) {
	setupTestDB(t)
	created := register(t, "role@example.com")

	user, err := UpdateUserRole(created.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	_, err = UpdateUserRole(created.ID, "owner")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = UpdateUserRole(9999, "reader")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestRoleRule(t *testing.T) {
	rule := NewRoleRule("admin.ornor", 3)

	assert.Equal(t, models.RoleAdmin, rule("boss@admin.ornor", 0))
	assert.Equal(t, models.RoleAdmin, rule("BOSS@ADMIN.ORNOR", 0))
	assert.Equal(t, models.RoleReader, rule("user@gmail.com", 3))
	assert.Equal(t, models.RoleMember, rule("user@gmail.com", 4))
	assert.Equal(t, models.RoleReader, rule("fake-admin.ornor@gmail.com", 0))
}
