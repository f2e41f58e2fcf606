package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tduyile04/document-management-api/internal/models"
	"github.com/tduyile04/document-management-api/internal/pagination"
)

func TestSignUpReportsEveryBadField(t *testing.T) {
	users, _, db := testServices(t)

	res := users.SignUp(context.Background(), SignUpInput{Name: "", Email: "", Password: ""})

	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.ElementsMatch(t, []string{
		"Name field cannot be empty",
		"Email cannot be empty",
		"Password cannot be empty",
	}, messageOf(t, res))
	assert.Zero(t, userCount(t, db))
}

func TestSignUpRejectsInvalidEmail(t *testing.T) {
	users, _, db := testServices(t)

	res := users.SignUp(context.Background(), SignUpInput{
		Name: "random user", Email: "not-an-email", Password: "randomuser",
	})

	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, []string{"Email is invalid"}, messageOf(t, res))
	assert.Zero(t, userCount(t, db))
}

func TestSignUpCreatesUserWithToken(t *testing.T) {
	users, _, db := testServices(t)

	res := users.SignUp(context.Background(), SignUpInput{
		Name: "random user", Email: "randomuser@random.com", Password: "randomuser",
	})

	require.Equal(t, http.StatusCreated, res.Status)
	body := res.Body.(map[string]any)
	assert.NotEmpty(t, body["token"])

	profile := body["user"].(models.Profile)
	assert.Equal(t, "random user", profile.Name)
	assert.Equal(t, models.Regular, profile.RoleID)
	assert.Equal(t, int64(1), userCount(t, db))

	// The stored password is a hash, not the plaintext
	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "randomuser@random.com").Error)
	assert.NotEqual(t, "randomuser", stored.Password)
}

func TestSignUpDuplicateEmailConflicts(t *testing.T) {
	users, _, db := testServices(t)
	ctx := context.Background()

	first := users.SignUp(ctx, SignUpInput{Name: "random user", Email: "randomuser@random.com", Password: "randomuser"})
	require.Equal(t, http.StatusCreated, first.Status)

	second := users.SignUp(ctx, SignUpInput{Name: "someone else", Email: "randomuser@random.com", Password: "other"})
	assert.Equal(t, http.StatusConflict, second.Status)
	assert.Equal(t, "Email already exists", messageOf(t, second))
	assert.Equal(t, int64(1), userCount(t, db))
}

func TestSignUpHonoursRequestedRole(t *testing.T) {
	users, _, _ := testServices(t)

	res := users.SignUp(context.Background(), SignUpInput{
		Name: "superadmin", Email: "superadmin@random.com", Password: "superadmin", RoleID: models.SuperAdmin,
	})

	require.Equal(t, http.StatusCreated, res.Status)
	profile := res.Body.(map[string]any)["user"].(models.Profile)
	assert.Equal(t, models.SuperAdmin, profile.RoleID)
}

func TestLogInValidation(t *testing.T) {
	users, _, _ := testServices(t)

	res := users.LogIn(context.Background(), LogInInput{Email: "", Password: ""})

	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.ElementsMatch(t, []string{
		"Email cannot be empty",
		"Password cannot be empty",
	}, messageOf(t, res))
}

func TestLogInUnknownEmail(t *testing.T) {
	users, _, _ := testServices(t)

	res := users.LogIn(context.Background(), LogInInput{Email: "nobody@random.com", Password: "whatever"})

	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, "Problems with either the email or password, Try again", messageOf(t, res))
}

func TestLogInWrongPassword(t *testing.T) {
	users, _, db := testServices(t)
	seedAccount(t, db, "random user", "randomuser@random.com", "randomuser", models.Regular)

	res := users.LogIn(context.Background(), LogInInput{Email: "randomuser@random.com", Password: "halleluyah"})

	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "Invalid Password", messageOf(t, res))
}

func TestLogInSucceeds(t *testing.T) {
	users, _, db := testServices(t)
	seedAccount(t, db, "random user", "randomuser@random.com", "randomuser", models.Regular)

	res := users.LogIn(context.Background(), LogInInput{Email: "randomuser@random.com", Password: "randomuser"})

	require.Equal(t, http.StatusOK, res.Status)
	body := res.Body.(map[string]any)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "random user", body["user"].(models.Profile).Name)
}

func TestListUsersRequiresAdmin(t *testing.T) {
	users, _, db := testServices(t)
	regular := seedAccount(t, db, "random user", "randomuser@random.com", "randomuser", models.Regular)

	res := users.List(context.Background(), regular.Identity(), 10, 0)

	assert.Equal(t, http.StatusForbidden, res.Status)
	assert.Equal(t, "You do not have the permission to perform this action", messageOf(t, res))
}

func TestListUsersPaginates(t *testing.T) {
	users, _, db := testServices(t)
	admin := seedAccount(t, db, "admin", "admin@random.com", "admin", models.Admin)
	seedAccount(t, db, "a user", "a@random.com", "pw", models.Regular)
	seedAccount(t, db, "b user", "b@random.com", "pw", models.Regular)

	res := users.List(context.Background(), admin.Identity(), 2, 2)

	require.Equal(t, http.StatusOK, res.Status)
	body := res.Body.(map[string]any)
	profiles := body["users"].([]models.Profile)
	assert.Len(t, profiles, 1)

	details := body["pageDetails"].(pagination.PageDetails)
	assert.Equal(t, int64(3), details.TotalDataCount)
	assert.Equal(t, 2, details.PageSize)
	assert.Equal(t, 2, details.PageCount)
	assert.Equal(t, 2, details.CurrentPage)
}

func TestGetUser(t *testing.T) {
	users, _, db := testServices(t)
	regular := seedAccount(t, db, "random user", "randomuser@random.com", "pw", models.Regular)
	other := seedAccount(t, db, "other", "other@random.com", "pw", models.Regular)
	admin := seedAccount(t, db, "admin", "admin@random.com", "pw", models.Admin)
	ctx := context.Background()

	res := users.Get(ctx, regular.Identity(), regular.ID)
	require.Equal(t, http.StatusOK, res.Status)
	profile := res.Body.(models.Profile)
	assert.Equal(t, regular.ID, profile.ID)
	assert.Equal(t, regular.Email, profile.Email)

	res = users.Get(ctx, regular.Identity(), other.ID)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = users.Get(ctx, admin.Identity(), regular.ID)
	assert.Equal(t, http.StatusOK, res.Status)

	res = users.Get(ctx, admin.Identity(), 9999)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "User does not exist in the database", messageOf(t, res))
}

func TestUpdateOwnProfile(t *testing.T) {
	users, _, db := testServices(t)
	regular := seedAccount(t, db, "random user", "randomuser@random.com", "pw", models.Regular)

	res := users.Update(context.Background(), regular.Identity(), regular.ID, UpdateUserInput{
		Name: "renamed user", Email: "renamed@random.com", Password: "newpassword",
	})

	require.Equal(t, http.StatusOK, res.Status)
	profile := res.Body.(models.Profile)
	assert.Equal(t, "renamed user", profile.Name)
	assert.Equal(t, "renamed@random.com", profile.Email)
}

func TestUpdateOwnProfileRejectsEmptyFields(t *testing.T) {
	users, _, db := testServices(t)
	regular := seedAccount(t, db, "random user", "randomuser@random.com", "pw", models.Regular)

	res := users.Update(context.Background(), regular.Identity(), regular.ID, UpdateUserInput{
		Name: "", Email: "renamed@random.com", Password: "pw",
	})

	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "Empty fields not allowed, fill them", messageOf(t, res))
}

func TestRegularCannotChangeOwnRole(t *testing.T) {
	users, _, db := testServices(t)
	regular := seedAccount(t, db, "random user", "randomuser@random.com", "pw", models.Regular)

	role := models.Admin
	res := users.Update(context.Background(), regular.Identity(), regular.ID, UpdateUserInput{
		Name: "random user", Email: "randomuser@random.com", Password: "pw", RoleID: &role,
	})

	assert.Equal(t, http.StatusForbidden, res.Status)
	assert.Equal(t, "Only a superadmin can change user roles", messageOf(t, res))

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", regular.ID).Error)
	assert.Equal(t, models.Regular, stored.RoleID)
}

func TestSuperAdminReassignsRole(t *testing.T) {
	users, _, db := testServices(t)
	super := seedAccount(t, db, "superadmin", "superadmin@random.com", "pw", models.SuperAdmin)
	regular := seedAccount(t, db, "random user", "randomuser@random.com", "pw", models.Regular)

	role := models.Admin
	res := users.Update(context.Background(), super.Identity(), regular.ID, UpdateUserInput{RoleID: &role})

	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, models.Admin, res.Body.(models.Profile).RoleID)
}

func TestRoleChangeRejectsProfileFields(t *testing.T) {
	users, _, db := testServices(t)
	super := seedAccount(t, db, "superadmin", "superadmin@random.com", "pw", models.SuperAdmin)
	regular := seedAccount(t, db, "random user", "randomuser@random.com", "pw", models.Regular)

	role := models.Admin
	res := users.Update(context.Background(), super.Identity(), regular.ID, UpdateUserInput{
		Name: "hijacked", RoleID: &role,
	})

	assert.Equal(t, http.StatusForbidden, res.Status)
	assert.Equal(t, "Editing another user information is only done by the user", messageOf(t, res))
}

func TestRoleChangeOnMissingUser(t *testing.T) {
	users, _, db := testServices(t)
	super := seedAccount(t, db, "superadmin", "superadmin@random.com", "pw", models.SuperAdmin)

	role := models.Admin
	res := users.Update(context.Background(), super.Identity(), 9999, UpdateUserInput{RoleID: &role})

	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "No matching user was found in the database, No updates made", messageOf(t, res))
}

func TestRegularCannotEditAnotherUser(t *testing.T) {
	users, _, db := testServices(t)
	regular := seedAccount(t, db, "random user", "randomuser@random.com", "pw", models.Regular)
	other := seedAccount(t, db, "other", "other@random.com", "pw", models.Regular)

	res := users.Update(context.Background(), regular.Identity(), other.ID, UpdateUserInput{
		Name: "hijacked", Email: "other@random.com", Password: "pw",
	})

	assert.Equal(t, http.StatusForbidden, res.Status)
	assert.Equal(t, "You cannot edit another user's details", messageOf(t, res))
}

func TestDeleteUserRequiresSuperAdmin(t *testing.T) {
	users, _, db := testServices(t)
	admin := seedAccount(t, db, "admin", "admin@random.com", "pw", models.Admin)
	victim := seedAccount(t, db, "victim", "victim@random.com", "pw", models.Regular)

	res := users.Delete(context.Background(), admin.Identity(), victim.ID)

	assert.Equal(t, http.StatusForbidden, res.Status)
	assert.Equal(t, int64(2), userCount(t, db))
}

func TestDeleteUser(t *testing.T) {
	users, _, db := testServices(t)
	super := seedAccount(t, db, "superadmin", "superadmin@random.com", "pw", models.SuperAdmin)
	victim := seedAccount(t, db, "victim", "victim@random.com", "pw", models.Regular)
	ctx := context.Background()

	res := users.Delete(ctx, super.Identity(), victim.ID)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "User has been removed from the database successfully", messageOf(t, res))
	assert.Equal(t, int64(1), userCount(t, db))

	res = users.Delete(ctx, super.Identity(), victim.ID)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "No matching user was found in the database", messageOf(t, res))
	assert.Equal(t, int64(1), userCount(t, db))
}

func TestSearchUsers(t *testing.T) {
	users, _, db := testServices(t)
	admin := seedAccount(t, db, "admin", "admin@random.com", "pw", models.Admin)
	regular := seedAccount(t, db, "random user", "randomuser@random.com", "pw", models.Regular)
	ctx := context.Background()

	res := users.Search(ctx, regular.Identity(), "random")
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = users.Search(ctx, admin.Identity(), "random user")
	require.Equal(t, http.StatusOK, res.Status)
	profiles := res.Body.([]models.Profile)
	require.Len(t, profiles, 1)
	assert.Equal(t, regular.ID, profiles[0].ID)

	res = users.Search(ctx, admin.Identity(), "no such person")
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "No match found for the search query", messageOf(t, res))
}

func TestDocumentsOf(t *testing.T) {
	users, _, db := testServices(t)
	owner := seedAccount(t, db, "author", "author@random.com", "pw", models.Regular)
	peer := seedAccount(t, db, "peer", "peer@random.com", "pw", models.Regular)
	admin := seedAccount(t, db, "admin", "admin@random.com", "pw", models.Admin)
	seedDocument(t, db, "The new red book", models.AccessPrivate, owner)
	ctx := context.Background()

	res := users.DocumentsOf(ctx, owner.Identity(), owner.ID)
	require.Equal(t, http.StatusOK, res.Status)
	listed := res.Body.([]models.ProfileWithDocuments)
	require.Len(t, listed, 1)
	assert.Len(t, listed[0].Documents, 1)

	res = users.DocumentsOf(ctx, peer.Identity(), owner.ID)
	assert.Equal(t, http.StatusForbidden, res.Status)
	assert.Equal(t, "Requires admin access to view this user document", messageOf(t, res))

	res = users.DocumentsOf(ctx, admin.Identity(), owner.ID)
	assert.Equal(t, http.StatusOK, res.Status)

	res = users.DocumentsOf(ctx, admin.Identity(), 9999)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "The user does not exist in the database", messageOf(t, res))
}
