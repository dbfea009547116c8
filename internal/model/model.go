package model

import (
	"fmt"
	"strings"
	"time"
)

// Gender of a person as recorded on their profile.
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderOther   Gender = "OTHER"
	GenderUnknown Gender = "UNKNOWN"
)

// IsValid reports whether g is one of the known genders.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return true
	default:
		return false
	}
}

// ParseGender normalises s and returns GenderUnknown for anything unrecognised.
func ParseGender(s string) Gender {
	g := Gender(strings.ToUpper(strings.TrimSpace(s)))
	if !g.IsValid() {
		return GenderUnknown
	}
	return g
}

// Role of the parent on a parent-child edge.
type Role string

const (
	RoleMother Role = "MOTHER"
	RoleFather Role = "FATHER"
	RoleParent Role = "PARENT"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleMother, RoleFather, RoleParent:
		return true
	default:
		return false
	}
}

// ParseRole normalises s. The result may be invalid; callers check IsValid.
func ParseRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

// EdgeKind distinguishes biological from whāngai (customary) parent-child links.
type EdgeKind string

const (
	KindBiological EdgeKind = "BIOLOGICAL"
	KindWhangai    EdgeKind = "WHANGAI"
)

// IsValid reports whether k is one of the known edge kinds.
func (k EdgeKind) IsValid() bool {
	return k == KindBiological || k == KindWhangai
}

// ParseEdgeKind normalises s. The result may be invalid; callers check IsValid.
func ParseEdgeKind(s string) EdgeKind {
	return EdgeKind(strings.ToUpper(strings.TrimSpace(s)))
}

// Person is a member of the family tree.
type Person struct {
	ID          string
	FirstName   string
	LastName    string
	DisplayName string
	Gender      Gender
	BirthDate   *time.Time
	DeathDate   *time.Time
	Notes       string
	ImageURL    string
	Locked      bool // only admins may edit a locked person
	CreatedByID string
	DeletedAt   *time.Time
}

// Name returns the display name, falling back to first and last name.
func (p *Person) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// IsDeleted reports whether the person carries a soft-delete marker.
func (p *Person) IsDeleted() bool {
	return p.DeletedAt != nil
}

// ParentChildEdge is a directed parent → child link.
type ParentChildEdge struct {
	ID          string
	ParentID    string
	ChildID     string
	Role        Role
	Kind        EdgeKind
	CreatedByID string
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// IsDeleted reports whether the edge carries a soft-delete marker.
func (e *ParentChildEdge) IsDeleted() bool {
	return e.DeletedAt != nil
}

// PairKey returns the directed pair key for the edge.
func (e ParentChildEdge) PairKey() string {
	return PairKey(e.ParentID, e.ChildID)
}

// PairKey builds the directed "parent>child" key used by tree views.
func PairKey(parentID, childID string) string {
	return parentID + ">" + childID
}

// ValidateRoleForGender checks that a MOTHER edge points from a FEMALE parent
// and a FATHER edge from a MALE parent. PARENT accepts any gender.
func ValidateRoleForGender(role Role, gender Gender) error {
	switch role {
	case RoleMother:
		if gender != GenderFemale {
			return fmt.Errorf("role %s requires gender %s, got %s", role, GenderFemale, gender)
		}
	case RoleFather:
		if gender != GenderMale {
			return fmt.Errorf("role %s requires gender %s, got %s", role, GenderMale, gender)
		}
	case RoleParent:
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	return nil
}
