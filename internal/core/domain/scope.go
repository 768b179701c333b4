package domain

// ScopeKind discriminates the three visibility outcomes of the access rule.
type ScopeKind int

const (
	// ScopeNone matches no records. Produced for an identity whose
	// department is empty or unset: the rule is deny-all rather than the
	// accidental empty-string match of earlier revisions.
	ScopeNone ScopeKind = iota
	// ScopeAll matches every record (department "all").
	ScopeAll
	// ScopeDepartment matches records whose selectedDepartment equals
	// the identity's department.
	ScopeDepartment
)

// Scope is the data-visibility predicate derived from an Identity. The
// same value scopes both the list and the export operations, so an export
// can never contain rows the list view would not show.
type Scope struct {
	Kind       ScopeKind
	Department string
}

// ScopeFor computes the visibility scope for an identity.
func ScopeFor(id Identity) Scope {
	switch id.Department {
	case DepartmentAll:
		return Scope{Kind: ScopeAll}
	case "":
		return Scope{Kind: ScopeNone}
	default:
		return Scope{Kind: ScopeDepartment, Department: id.Department}
	}
}

// Matches reports whether a registrant falls inside the scope.
func (s Scope) Matches(r Registrant) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeDepartment:
		return r.SelectedDepartment == s.Department
	default:
		return false
	}
}
