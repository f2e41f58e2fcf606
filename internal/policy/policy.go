// Package policy holds the pure access-control decisions for documents and
// user accounts. Every function is stateless and safe for concurrent use;
// callers map a false result to a 403 response.
package policy

import "github.com/tduyile04/document-management-api/internal/models"

// IsAdmin reports whether the role carries admin-level privilege.
func IsAdmin(role models.RoleID) bool {
	return role == models.Admin || role == models.SuperAdmin
}

// CanViewDocument decides direct single-document reads. Admins and
// superadmins see every document; everyone else is subject to the
// document's access level.
func CanViewDocument(who models.Identity, doc models.Document) bool {
	if IsAdmin(who.UserRole) {
		return true
	}
	switch doc.Access {
	case models.AccessPublic:
		return true
	case models.AccessRole:
		return doc.UserRoleID == who.UserRole
	case models.AccessPrivate:
		return doc.UserID == who.UserID
	}
	return false
}

// DocumentFilter is the visibility predicate a list or search query applies
// for a caller. Unrestricted callers see every document.
type DocumentFilter struct {
	Unrestricted bool
	Role         models.RoleID
	UserID       uint
}

// DocumentListFilter computes the visibility filter for list queries:
// public documents, role documents matching the caller's role, and the
// caller's own private documents.
func DocumentListFilter(who models.Identity) DocumentFilter {
	if IsAdmin(who.UserRole) {
		return DocumentFilter{Unrestricted: true}
	}
	return DocumentFilter{Role: who.UserRole, UserID: who.UserID}
}

// CanUpdateDocument allows only the creator to change a document. Matching
// the owner's role is not enough.
func CanUpdateDocument(who models.Identity, doc models.Document) bool {
	return who.UserID == doc.UserID
}

// CanDeleteDocument allows the creator or a superadmin to delete a document.
func CanDeleteDocument(who models.Identity, doc models.Document) bool {
	return who.UserID == doc.UserID || who.UserRole == models.SuperAdmin
}

// CanListUsers guards listing and searching user accounts.
func CanListUsers(who models.Identity) bool {
	return IsAdmin(who.UserRole)
}

// CanViewUser allows admins and the user themselves to read an account.
func CanViewUser(who models.Identity, targetID uint) bool {
	return IsAdmin(who.UserRole) || who.UserID == targetID
}

// CanDeleteUser restricts account deletion to superadmins.
func CanDeleteUser(who models.Identity) bool {
	return who.UserRole == models.SuperAdmin
}

// CanChangeRole restricts role reassignment to superadmins.
func CanChangeRole(who models.Identity) bool {
	return who.UserRole == models.SuperAdmin
}

// CanViewUserDocuments decides who may list the documents belonging to
// owner: the owner themselves (by id or email) or an admin.
func CanViewUserDocuments(who models.Identity, owner models.User) bool {
	return who.UserID == owner.ID ||
		IsAdmin(who.UserRole) ||
		who.UserEmail == owner.Email
}
