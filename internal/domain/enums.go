package domain

// NumberClass tags a grammatical-number term with its semantic meaning.
// Plural-form fields on a word apply only when the selected number term is singular.
type NumberClass string

const (
	NumberClassNone     NumberClass = ""
	NumberClassSingular NumberClass = "singular"
	NumberClassPlural   NumberClass = "plural"
)

func (c NumberClass) String() string { return string(c) }

func (c NumberClass) IsValid() bool {
	switch c {
	case NumberClassNone, NumberClassSingular, NumberClassPlural:
		return true
	}
	return false
}

// WordStatus reports whether a word entry has all recommended sections filled.
type WordStatus string

const (
	WordStatusComplete   WordStatus = "complete"
	WordStatusIncomplete WordStatus = "incomplete"
)

func (s WordStatus) String() string { return string(s) }

func (s WordStatus) IsValid() bool {
	switch s {
	case WordStatusComplete, WordStatusIncomplete:
		return true
	}
	return false
}

// ViewMode selects which label track the browsing view renders.
type ViewMode string

const (
	ViewModeNative    ViewMode = "native"
	ViewModeBilingual ViewMode = "bilingual"
)

func (m ViewMode) String() string { return string(m) }

func (m ViewMode) IsValid() bool {
	switch m {
	case ViewModeNative, ViewModeBilingual:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleSuperAdmin UserRole = "super-admin"
	UserRoleAdmin      UserRole = "admin"
	UserRolePublic     UserRole = "public"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleSuperAdmin, UserRoleAdmin, UserRolePublic:
		return true
	}
	return false
}

// IsAdmin reports whether the role may manage dictionaries and words.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeDictionary EntityType = "DICTIONARY"
	EntityTypeWord       EntityType = "WORD"
	EntityTypeAudio      EntityType = "AUDIO"
	EntityTypeUser       EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeDictionary, EntityTypeWord, EntityTypeAudio, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
