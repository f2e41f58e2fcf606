package service

import (
	"context"
	"net/http"

	"github.com/tduyile04/document-management-api/internal/models"
	"github.com/tduyile04/document-management-api/internal/pagination"
	"github.com/tduyile04/document-management-api/internal/policy"
	"github.com/tduyile04/document-management-api/internal/store"
)

// DocumentService handles document creation, retrieval, mutation and search.
type DocumentService struct {
	docs  *store.DocumentStore
	users *store.UserStore
}

func NewDocumentService(docs *store.DocumentStore, users *store.UserStore) *DocumentService {
	return &DocumentService{docs: docs, users: users}
}

// DocumentInput carries the client-supplied document fields. Owner and
// owner role are always stamped from the identity claim, never from here.
type DocumentInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Access  string `json:"access"`
}

// Create validates the fields and creates the document unless the title is
// already taken.
func (s *DocumentService) Create(ctx context.Context, who models.Identity, in DocumentInput) Result {
	title := cleanText(in.Title)
	content := cleanText(in.Content)
	if issues := documentIssues(title, content); len(issues) > 0 {
		return message(http.StatusBadRequest, issues)
	}

	access := in.Access
	if access == "" {
		access = models.AccessPrivate
	}
	if !models.ValidAccess(access) {
		return message(http.StatusBadRequest, "Access field must be public, private or role")
	}

	doc := models.Document{
		Title:      title,
		Content:    content,
		Access:     access,
		UserID:     who.UserID,
		UserRoleID: who.UserRole,
	}

	saved, wasCreated, err := s.docs.CreateIfAbsent(ctx, doc)
	if err != nil {
		return message(http.StatusInternalServerError, "Error encountered while creating the documents")
	}
	if !wasCreated {
		return message(http.StatusConflict, "Document with the same title already exists")
	}
	return created(saved)
}

// List returns one page of documents visible to the caller inside the list
// envelope. Admins see everything; other callers see public documents,
// role documents matching their role and their own private documents.
func (s *DocumentService) List(ctx context.Context, who models.Identity, limit, offset int) Result {
	filter := policy.DocumentListFilter(who)
	docs, total, err := s.docs.List(ctx, filter, pagination.PageSize(limit), pagination.Offset(offset))
	if err != nil {
		return message(http.StatusInternalServerError, "Error encountered retrieving all documents")
	}
	return ok(pagination.ListEnvelope("documents", docs, total, limit, offset))
}

// Get returns one document if the caller may view it.
func (s *DocumentService) Get(ctx context.Context, who models.Identity, id uint) Result {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return message(http.StatusInternalServerError, "Error occurred while retrieving the data")
	}
	if doc == nil {
		return message(http.StatusNotFound, "Document does not exist in the database")
	}
	if !policy.CanViewDocument(who, *doc) {
		return message(http.StatusForbidden, "Document requires admin privileges")
	}
	return ok(doc)
}

// Update rewrites a document's fields. Only the creator may update; the
// updated record is re-fetched and returned.
func (s *DocumentService) Update(ctx context.Context, who models.Identity, id uint, in DocumentInput) Result {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return message(http.StatusInternalServerError, "Error occurred while retrieving the data")
	}
	if doc == nil {
		return message(http.StatusNotFound, "Document does not exist in the database")
	}
	if !policy.CanUpdateDocument(who, *doc) {
		return message(http.StatusForbidden, "You cannot update another user's document")
	}

	title := cleanText(in.Title)
	content := cleanText(in.Content)
	if title == "" || content == "" || !models.ValidAccess(in.Access) {
		return message(http.StatusBadRequest, "Empty fields not allowed, check and fill them")
	}

	fields := map[string]any{
		"title":   title,
		"content": content,
		"access":  in.Access,
	}
	rows, err := s.docs.UpdateByID(ctx, id, fields)
	if err != nil {
		return message(http.StatusInternalServerError, "Error encountered while updating, Please try again")
	}
	if rows == 0 {
		return message(http.StatusNotFound, "No matching document was found in the database")
	}

	updated, err := s.docs.FindByID(ctx, id)
	if err != nil || updated == nil {
		return message(http.StatusInternalServerError, "Error encountered while updating, Please try again")
	}
	return ok(updated)
}

// Delete removes a document. Allowed for the creator or a superadmin; the
// affected row count decides between success and not-found.
func (s *DocumentService) Delete(ctx context.Context, who models.Identity, id uint) Result {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return message(http.StatusInternalServerError, "Error occurred while retrieving the data")
	}
	if doc == nil {
		return message(http.StatusNotFound, "No matching document was found in the database")
	}
	if !policy.CanDeleteDocument(who, *doc) {
		return message(http.StatusForbidden, "You cannot delete another user's document")
	}

	rows, err := s.docs.DeleteByID(ctx, id)
	if err != nil {
		return message(http.StatusInternalServerError, "Error encountered while trying to delete document, Please try again")
	}
	if rows == 0 {
		return message(http.StatusNotFound, "No matching document was found in the database")
	}
	return message(http.StatusOK, "Document has been removed from the database successfully")
}

// Search matches the query against titles. Regular callers only see their
// own documents in the results.
func (s *DocumentService) Search(ctx context.Context, who models.Identity, query string) Result {
	docs, err := s.docs.Search(ctx, cleanText(query))
	if err != nil {
		return message(http.StatusInternalServerError, "Error occurred while searching. Do try again!")
	}

	if !policy.IsAdmin(who.UserRole) {
		owned := docs[:0]
		for _, doc := range docs {
			if doc.UserID == who.UserID {
				owned = append(owned, doc)
			}
		}
		docs = owned
	}
	if len(docs) == 0 {
		return message(http.StatusNotFound, "No match found for the search query")
	}
	return ok(docs)
}

// OwnedBy returns the bare list of documents created by one user, for the
// owner themselves or an admin.
func (s *DocumentService) OwnedBy(ctx context.Context, who models.Identity, ownerID uint) Result {
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return message(http.StatusInternalServerError, "Error encountered while retrieving the user's document")
	}
	if owner == nil {
		return message(http.StatusNotFound, "The user does not exist in the database")
	}
	if !policy.CanViewUserDocuments(who, *owner) {
		return message(http.StatusForbidden, "Requires admin access to view this user document")
	}

	docs, err := s.docs.ListByOwner(ctx, ownerID)
	if err != nil {
		return message(http.StatusInternalServerError, "Error encountered while retrieving the user's document")
	}
	if len(docs) == 0 {
		return message(http.StatusNotFound, "No document found created by this user")
	}
	return ok(docs)
}
