package permission

// Permission is a single grant token in resource.action form, or the
// wildcard. The resolver treats tokens as opaque beyond equality.
type Permission string

// Wildcard grants every permission, including tokens introduced later.
const Wildcard Permission = "*"

const (
	UserRead          Permission = "user.read"
	UserCreate        Permission = "user.create"
	UserEdit          Permission = "user.edit"
	GroupRead         Permission = "group.read"
	ProjectRead       Permission = "project.read"
	ProjectCreate     Permission = "project.create"
	DataImport        Permission = "data.import"
	DataExport        Permission = "data.export"
	AuditView         Permission = "audit.view"
	CommunityManage   Permission = "community.manage"
	TranslationCreate Permission = "translation.create"
	TranslationEdit   Permission = "translation.edit"
	TranslationReview Permission = "translation.review"
	TranslationApprove Permission = "translation.approve"
	TranslationDelete Permission = "translation.delete"
	DictionaryManage  Permission = "dictionary.manage"
	SystemManage      Permission = "system.manage"
)

func (p Permission) String() string {
	return string(p)
}

// Has reports whether the resolved set grants perm. An empty set grants
// nothing; the wildcard grants everything. Matching is exact, no hierarchy.
func Has(set []Permission, perm Permission) bool {
	for _, p := range set {
		if p == Wildcard || p == perm {
			return true
		}
	}
	return false
}
