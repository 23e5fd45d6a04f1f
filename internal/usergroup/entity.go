package usergroup

import "github.com/bilumvv/bilum/internal/permission"

// UserGroup is a named bundle of permissions users can be assigned to on top
// of their role.
type UserGroup struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Permissions []permission.Permission `json:"permissions"`
}

// DefaultGroups are seeded on first read so a fresh deployment has a working
// group structure before an admin edits anything.
func DefaultGroups() []UserGroup {
	return []UserGroup{
		{ID: "g-admin", Name: "Administrators", Description: "Full Access", Permissions: []permission.Permission{permission.Wildcard}},
		{ID: "g-review", Name: "Reviewers", Description: "Moderators", Permissions: []permission.Permission{permission.TranslationReview, permission.TranslationApprove}},
		{ID: "g-trans", Name: "Translators", Description: "Contributors", Permissions: []permission.Permission{permission.TranslationCreate}},
	}
}
