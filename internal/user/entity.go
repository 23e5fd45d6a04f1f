package user

import "github.com/bilumvv/bilum/internal/permission"

// User is the public shape of an account. Credential fields never appear
// here; they live on StoredUser and are stripped at the repository boundary.
type User struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     permission.Role `json:"role"`
	IsActive bool            `json:"is_active"`
	GroupIDs []string        `json:"group_ids"`

	// EffectivePermissions is derived from role and group membership. It is
	// cached on the record and must be recomputed whenever either changes.
	EffectivePermissions []permission.Permission `json:"effective_permissions,omitempty"`
}

// StoredUser is the persisted shape. IsActive is a pointer so records written
// before the field existed default to active on read.
type StoredUser struct {
	ID                   string                  `json:"id"`
	Name                 string                  `json:"name"`
	Email                string                  `json:"email"`
	Role                 permission.Role         `json:"role"`
	IsActive             *bool                   `json:"is_active,omitempty"`
	GroupIDs             []string                `json:"group_ids,omitempty"`
	EffectivePermissions []permission.Permission `json:"effective_permissions,omitempty"`
	PasswordHash         string                  `json:"password_hash,omitempty"`
	Verified             bool                    `json:"verified,omitempty"`
	VerificationToken    string                  `json:"verification_token,omitempty"`
}

// Public converts a stored record to the public shape, applying defaults and
// dropping credentials.
func (su *StoredUser) Public() User {
	u := User{
		ID:                   su.ID,
		Name:                 su.Name,
		Email:                su.Email,
		Role:                 su.Role,
		IsActive:             true,
		GroupIDs:             su.GroupIDs,
		EffectivePermissions: su.EffectivePermissions,
	}
	if su.IsActive != nil {
		u.IsActive = *su.IsActive
	}
	if u.GroupIDs == nil {
		u.GroupIDs = []string{}
	}
	return u
}
