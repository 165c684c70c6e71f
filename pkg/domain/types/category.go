package types

// Category represents a compliance category used to tag violations,
// recommendations and compliance-matrix entries
type Category string

const (
	CategoryDPO           Category = "dpo"
	CategoryRegistration  Category = "registration"
	CategorySecurity      Category = "security"
	CategoryRights        Category = "rights"
	CategoryDocumentation Category = "documentation"
	CategoryConsent       Category = "consent"
	CategoryTransparency  Category = "transparency"
	CategoryCookies       Category = "cookies"
	CategoryPrivacyPolicy Category = "privacy_policy"
	CategoryGeneral       Category = "general"
)

// MatrixCategories returns the fixed set of categories summarized by the
// compliance matrix, in display order
func MatrixCategories() []Category {
	return []Category{
		CategoryDPO,
		CategoryRegistration,
		CategorySecurity,
		CategoryRights,
		CategoryDocumentation,
		CategoryConsent,
	}
}

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryDPO,
		CategoryRegistration,
		CategorySecurity,
		CategoryRights,
		CategoryDocumentation,
		CategoryConsent,
		CategoryTransparency,
		CategoryCookies,
		CategoryPrivacyPolicy,
		CategoryGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}
