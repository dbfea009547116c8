package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// RequestKind is the mutation a relationship request proposes.
type RequestKind string

const (
	RequestParentChild RequestKind = "PARENT_CHILD"
	RequestPartnership RequestKind = "PARTNERSHIP"
)

// RequestStatus is the approval state of a relationship request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
	RequestCanceled RequestStatus = "CANCELED"
)

// IsTerminal reports whether the status can no longer change.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestRejected || s == RequestCanceled
}

// RelationshipRequest records a proposed edge or partnership between people
// owned by different accounts, waiting for the other owner's decision.
type RelationshipRequest struct {
	ID              string
	Kind            RequestKind
	FromPersonID    string // parent for PARENT_CHILD
	ToPersonID      string // child for PARENT_CHILD
	Role            Role
	PCKind          EdgeKind
	PartnershipKind PartnershipKind
	RequesterID     string
	ApproverID      string
	Status          RequestStatus
	DedupeKey       string
	CreatedAt       time.Time
	DecidedAt       *time.Time
}

// ComputeDedupeKey returns a stable hash over the fields that identify a
// request, so the same proposal to the same approver is stored once.
func ComputeDedupeKey(kind RequestKind, from, to string, role Role, pcKind EdgeKind, approverID string) string {
	parts := []string{string(kind), from, to, string(role), string(pcKind), approverID}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// Transition moves the request out of PENDING. Any other transition fails.
func (r *RelationshipRequest) Transition(to RequestStatus, at time.Time) error {
	if r.Status != RequestPending {
		return fmt.Errorf("request %s is already %s", r.ID, r.Status)
	}
	if !to.IsTerminal() {
		return fmt.Errorf("invalid target status %q", to)
	}
	r.Status = to
	r.DecidedAt = &at
	return nil
}
