package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/tduyile04/document-management-api/internal/auth"
	"github.com/tduyile04/document-management-api/internal/models"
	"github.com/tduyile04/document-management-api/internal/pagination"
	"github.com/tduyile04/document-management-api/internal/policy"
	"github.com/tduyile04/document-management-api/internal/store"
)

// UserService handles sign-up, log-in and user account management.
type UserService struct {
	users  *store.UserStore
	tokens *auth.Tokens
	hasher auth.Hasher
}

func NewUserService(users *store.UserStore, tokens *auth.Tokens, hasher auth.Hasher) *UserService {
	return &UserService{users: users, tokens: tokens, hasher: hasher}
}

// SignUpInput carries the sign-up request fields. RoleID is optional and
// defaults to regular.
type SignUpInput struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	RoleID   models.RoleID `json:"roleId"`
}

type LogInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserInput carries a profile update or, for superadmins targeting
// another account, a role reassignment. RoleID is a pointer so an absent
// field can be told apart from role zero.
type UpdateUserInput struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	RoleID   *models.RoleID `json:"roleId"`
}

// SignUp validates the input, hashes the password and creates the account
// unless the email is taken. On success it answers with the profile and a
// fresh token.
func (s *UserService) SignUp(ctx context.Context, in SignUpInput) Result {
	if issues := signUpIssues(in.Name, in.Email, in.Password); len(issues) > 0 {
		return message(http.StatusBadRequest, issues)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return message(http.StatusInternalServerError, "Error signing up user, check if invalid role value")
	}

	role := in.RoleID
	if role == 0 {
		role = models.Regular
	}
	user := models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: hash,
		RoleID:   role,
	}

	saved, wasCreated, err := s.users.CreateIfAbsent(ctx, user)
	if err != nil {
		return message(http.StatusInternalServerError, "Error signing up user, check if invalid role value")
	}
	if !wasCreated {
		return message(http.StatusConflict, "Email already exists")
	}

	token, err := s.tokens.Issue(*saved)
	if err != nil {
		return message(http.StatusInternalServerError, "Error signing up user, check if invalid role value")
	}
	return created(map[string]any{"user": saved.Profile(), "token": token})
}

// LogIn checks the credentials against the stored hash and issues a token.
// An unknown email answers with the generic retry message, which is
// deliberately distinct from the invalid-password response.
func (s *UserService) LogIn(ctx context.Context, in LogInInput) Result {
	if issues := logInIssues(in.Email, in.Password); len(issues) > 0 {
		return message(http.StatusBadRequest, issues)
	}

	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil || user == nil {
		return message(http.StatusInternalServerError, "Problems with either the email or password, Try again")
	}
	if !s.hasher.Verify(in.Password, user.Password) {
		return message(http.StatusBadRequest, "Invalid Password")
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return message(http.StatusInternalServerError, "Problems with either the email or password, Try again")
	}
	return ok(map[string]any{"user": user.Profile(), "token": token})
}

// List returns one page of user profiles inside the list envelope.
// Admin-only.
func (s *UserService) List(ctx context.Context, who models.Identity, limit, offset int) Result {
	if !policy.CanListUsers(who) {
		return message(http.StatusForbidden, permissionDenied)
	}

	users, total, err := s.users.List(ctx, pagination.PageSize(limit), pagination.Offset(offset))
	if err != nil {
		return message(http.StatusInternalServerError, "Problems retrieving the user lists, Try again")
	}
	return ok(pagination.ListEnvelope("users", models.Profiles(users), total, limit, offset))
}

// Get returns one user profile. Admins may fetch anyone; everyone else only
// themselves.
func (s *UserService) Get(ctx context.Context, who models.Identity, id uint) Result {
	if !policy.CanViewUser(who, id) {
		return message(http.StatusForbidden, permissionDenied)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return message(http.StatusInternalServerError, "Error occurred while retrieving the data")
	}
	if user == nil {
		return message(http.StatusNotFound, "User does not exist in the database")
	}
	return ok(user.Profile())
}

// Update handles the two mutation paths: a user editing their own profile,
// and a superadmin reassigning another user's role. Mixing the two in one
// request is rejected.
func (s *UserService) Update(ctx context.Context, who models.Identity, id uint, in UpdateUserInput) Result {
	if who.UserID == id {
		return s.updateOwnProfile(ctx, who, id, in)
	}
	if policy.CanChangeRole(who) {
		return s.updateRole(ctx, id, in)
	}
	return message(http.StatusForbidden, "You cannot edit another user's details")
}

func (s *UserService) updateOwnProfile(ctx context.Context, who models.Identity, id uint, in UpdateUserInput) Result {
	if in.RoleID != nil && !policy.CanChangeRole(who) {
		return message(http.StatusForbidden, "Only a superadmin can change user roles")
	}
	if isEmpty(in.Name) || !isEmail(in.Email) || isEmpty(in.Password) {
		return message(http.StatusBadRequest, "Empty fields not allowed, fill them")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return message(http.StatusInternalServerError, "Error encountered while updating, Please try again")
	}
	fields := map[string]any{
		"name":     strings.TrimSpace(in.Name),
		"email":    strings.TrimSpace(in.Email),
		"password": hash,
	}

	rows, err := s.users.UpdateByID(ctx, id, fields)
	if err != nil {
		return message(http.StatusInternalServerError, "Error encountered while updating, Please try again")
	}
	if rows == 0 {
		return message(http.StatusNotFound, "No matching user was found in the database, No updates made")
	}
	return s.refetch(ctx, id)
}

func (s *UserService) updateRole(ctx context.Context, id uint, in UpdateUserInput) Result {
	// A role-change request must carry only the role field
	if in.Name != "" || in.Email != "" || in.Password != "" {
		return message(http.StatusForbidden, "Editing another user information is only done by the user")
	}
	if in.RoleID == nil {
		return message(http.StatusBadRequest, "Empty fields not allowed, fill them")
	}

	rows, err := s.users.UpdateByID(ctx, id, map[string]any{"role_id": *in.RoleID})
	if err != nil {
		return message(http.StatusInternalServerError, "Error encountered while updating, Please try again")
	}
	if rows == 0 {
		return message(http.StatusNotFound, "No matching user was found in the database, No updates made")
	}
	return s.refetch(ctx, id)
}

func (s *UserService) refetch(ctx context.Context, id uint) Result {
	user, err := s.users.FindByID(ctx, id)
	if err != nil || user == nil {
		return message(http.StatusInternalServerError, "Error encountered while updating, Please try again")
	}
	return ok(user.Profile())
}

// Delete removes a user account. Superadmin-only.
func (s *UserService) Delete(ctx context.Context, who models.Identity, id uint) Result {
	if !policy.CanDeleteUser(who) {
		return message(http.StatusForbidden, permissionDenied)
	}

	rows, err := s.users.DeleteByID(ctx, id)
	if err != nil {
		return message(http.StatusInternalServerError, "Error encountered while trying to delete user, Please try again")
	}
	if rows == 0 {
		return message(http.StatusNotFound, "No matching user was found in the database")
	}
	return message(http.StatusOK, "User has been removed from the database successfully")
}

// Search matches the query against names and emails. Admin-only.
func (s *UserService) Search(ctx context.Context, who models.Identity, query string) Result {
	if !policy.CanListUsers(who) {
		return message(http.StatusForbidden, permissionDenied)
	}

	users, err := s.users.Search(ctx, cleanText(query))
	if err != nil {
		return message(http.StatusInternalServerError, "Error occurred while searching. Do try again!")
	}
	if len(users) == 0 {
		return message(http.StatusNotFound, "No match found for the search query")
	}
	return ok(models.Profiles(users))
}

// DocumentsOf returns a user's profile together with their documents, for
// the owner themselves or an admin.
func (s *UserService) DocumentsOf(ctx context.Context, who models.Identity, id uint) Result {
	owner, err := s.users.FindByID(ctx, id)
	if err != nil {
		return message(http.StatusInternalServerError, "Error while getting data from the database")
	}
	if owner == nil {
		return message(http.StatusNotFound, "The user does not exist in the database")
	}
	if !policy.CanViewUserDocuments(who, *owner) {
		return message(http.StatusForbidden, "Requires admin access to view this user document")
	}

	full, err := s.users.FindWithDocuments(ctx, id)
	if err != nil || full == nil {
		return message(http.StatusInternalServerError, "Error while getting data from the database")
	}
	return ok([]models.ProfileWithDocuments{full.ProfileWithDocuments()})
}
