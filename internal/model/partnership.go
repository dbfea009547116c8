package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PartnershipKind describes the form of a partnership.
type PartnershipKind string

const (
	PartnershipMarried    PartnershipKind = "MARRIED"
	PartnershipPartner    PartnershipKind = "PARTNER"
	PartnershipCivilUnion PartnershipKind = "CIVIL_UNION"
	PartnershipDeFacto    PartnershipKind = "DE_FACTO"
	PartnershipOther      PartnershipKind = "OTHER"
)

// IsValid reports whether k is one of the known partnership kinds.
func (k PartnershipKind) IsValid() bool {
	switch k {
	case PartnershipMarried, PartnershipPartner, PartnershipCivilUnion, PartnershipDeFacto, PartnershipOther:
		return true
	default:
		return false
	}
}

// PartnershipStatus is the current state of a partnership.
type PartnershipStatus string

const (
	PartnershipActive    PartnershipStatus = "ACTIVE"
	PartnershipSeparated PartnershipStatus = "SEPARATED"
	PartnershipDivorced  PartnershipStatus = "DIVORCED"
	PartnershipWidowed   PartnershipStatus = "WIDOWED"
	PartnershipEnded     PartnershipStatus = "ENDED"
)

// IsValid reports whether s is one of the known partnership statuses.
func (s PartnershipStatus) IsValid() bool {
	switch s {
	case PartnershipActive, PartnershipSeparated, PartnershipDivorced, PartnershipWidowed, PartnershipEnded:
		return true
	default:
		return false
	}
}

// Partnership is an unordered pair of people. AID < BID always holds so the
// store can enforce a symmetric uniqueness constraint on (AID, BID).
type Partnership struct {
	ID          string
	AID         string
	BID         string
	Kind        PartnershipKind
	Status      PartnershipStatus
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedByID string
}

// NewPartnership validates the pair and orders it canonically.
// Empty kind and status default to PARTNER and ACTIVE.
func NewPartnership(a, b string, kind PartnershipKind, status PartnershipStatus) (*Partnership, error) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return nil, errors.New("both partners are required")
	}
	if a == b {
		return nil, errors.New("a person cannot partner with themselves")
	}
	if kind == "" {
		kind = PartnershipPartner
	}
	if status == "" {
		status = PartnershipActive
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown partnership kind %q", kind)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown partnership status %q", status)
	}
	if b < a {
		a, b = b, a
	}
	return &Partnership{AID: a, BID: b, Kind: kind, Status: status}, nil
}

// Involves reports whether id is one side of the partnership.
func (p *Partnership) Involves(id string) bool {
	return p.AID == id || p.BID == id
}
