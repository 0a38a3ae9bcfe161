package models

// GateDecision is the batch admission decision of the quality gate
type GateDecision string

const (
	GateAccepted GateDecision = "accepted"
	GateRejected GateDecision = "rejected"
)

// GateOutcome pairs the admission decision with the report it was derived from
type GateOutcome struct {
	Decision GateDecision
	Report   QualityReport
}

// Accepted builds an outcome that admits the batch
func Accepted(report QualityReport) GateOutcome {
	return GateOutcome{Decision: GateAccepted, Report: report}
}

// Rejected builds an outcome that rejects the batch
func Rejected(report QualityReport) GateOutcome {
	return GateOutcome{Decision: GateRejected, Report: report}
}

// IsAccepted returns true if the batch may proceed to cleaning and loading
func (o GateOutcome) IsAccepted() bool {
	return o.Decision == GateAccepted
}
