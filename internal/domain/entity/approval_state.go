package entity

import (
	"fmt"
)

// ApprovalState is the derived moderation label of a doctor. It is never stored.
type ApprovalState string

const (
	ApprovalStatePending                    ApprovalState = "pending"
	ApprovalStateApproved                   ApprovalState = "approved"
	ApprovalStateApprovedWithPendingChanges ApprovalState = "approved_with_pending_changes"
)

// ParseApprovalState converts a query value into an ApprovalState
func ParseApprovalState(s string) (ApprovalState, error) {
	switch st := ApprovalState(s); st {
	case ApprovalStatePending, ApprovalStateApproved, ApprovalStateApprovedWithPendingChanges:
		return st, nil
	}
	return "", fmt.Errorf("unknown approval state %q", s)
}

// PendingReason names one condition that keeps an approved doctor in review
type PendingReason string

const (
	PendingReasonLicenseRenewal     PendingReason = "license_renewal"
	PendingReasonSpecialtyClaim     PendingReason = "specialty_claim"
	PendingReasonSubspecialtyClaim  PendingReason = "subspecialty_claim"
	PendingReasonOtherTrainingClaim PendingReason = "other_training_claim"
)

// ResolveApprovalState derives the state of d from its flags and the loaded claim
// collections. An unapproved doctor is Pending whatever its claims look like.
func ResolveApprovalState(d *Doctor) ApprovalState {
	if !d.Approved {
		return ApprovalStatePending
	}
	if len(PendingReasons(d)) > 0 {
		return ApprovalStateApprovedWithPendingChanges
	}
	return ApprovalStateApproved
}

// PendingReasons lists the pending-change conditions that hold for an approved doctor.
// It returns nil for unapproved doctors.
func PendingReasons(d *Doctor) []PendingReason {
	if !d.Approved {
		return nil
	}

	var reasons []PendingReason
	if HasPendingLicenseRenewal(d) {
		reasons = append(reasons, PendingReasonLicenseRenewal)
	}
	for _, c := range d.Specialties {
		if !c.Approved {
			reasons = append(reasons, PendingReasonSpecialtyClaim)
			break
		}
	}
	for _, c := range d.Subspecialties {
		if !c.Approved {
			reasons = append(reasons, PendingReasonSubspecialtyClaim)
			break
		}
	}
	for _, c := range d.OtherTrainings {
		if !c.Approved {
			reasons = append(reasons, PendingReasonOtherTrainingClaim)
			break
		}
	}
	return reasons
}

// HasPendingLicenseRenewal reports whether a re-submitted license code awaits review.
// Only NULL and the empty string count as absent.
func HasPendingLicenseRenewal(d *Doctor) bool {
	return d.PendingLicenseRenewal != nil && *d.PendingLicenseRenewal != ""
}
