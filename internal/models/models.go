package models

import "time"

// RoleID is the privilege tier of a user, ordered by increasing privilege.
type RoleID int

const (
	Regular RoleID = iota + 1
	Admin
	SuperAdmin
)

// Document access levels.
const (
	AccessPrivate = "private"
	AccessPublic  = "public"
	AccessRole    = "role"
)

// ValidAccess reports whether access is one of the known access levels.
func ValidAccess(access string) bool {
	switch access {
	case AccessPrivate, AccessPublic, AccessRole:
		return true
	}
	return false
}

// Identity is the verified claim attached to an authenticated request.
// It is the only caller information the policy and service layers trust;
// nothing is ever read from client-supplied ids or roles.
type Identity struct {
	UserID    uint
	UserEmail string
	UserRole  RoleID
}

type Role struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RoleType string `gorm:"not null;unique" json:"roleType"`
}

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"not null;uniqueIndex" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	RoleID    RoleID     `gorm:"not null;default:1" json:"roleId"`
	Role      *Role      `gorm:"foreignKey:RoleID" json:"-"`
	Documents []Document `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Document struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null;uniqueIndex" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Access     string    `gorm:"not null;default:private" json:"access"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	UserRoleID RoleID    `gorm:"not null" json:"userRoleId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Profile is the outward representation of a user. The password hash never
// leaves the service layer.
type Profile struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RoleID    RoleID    `json:"roleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileWithDocuments is a Profile together with the user's documents.
type ProfileWithDocuments struct {
	Profile
	Documents []Document `json:"documents"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u User) ProfileWithDocuments() ProfileWithDocuments {
	docs := u.Documents
	if docs == nil {
		docs = []Document{}
	}
	return ProfileWithDocuments{Profile: u.Profile(), Documents: docs}
}

// Identity builds the identity claim a logged-in user carries.
func (u User) Identity() Identity {
	return Identity{UserID: u.ID, UserEmail: u.Email, UserRole: u.RoleID}
}

// Profiles maps users to their outward representation.
func Profiles(users []User) []Profile {
	out := make([]Profile, 0, len(users))
	for _, u := range users {
		out = append(out, u.Profile())
	}
	return out
}
