package models

import "time"

// Audit event kinds. Fail-soft paths in the reconciliation core record one of
// these instead of surfacing an error to the stylist.
const (
	AuditReferenceMiss        = "reference_miss"
	AuditSlotMarkFailed       = "slot_mark_failed"
	AuditCancelFallbackDelete = "cancel_fallback_delete"
	AuditBackendError         = "backend_error"
)

// AuditEvent is a structured diagnostic record of a swallowed failure or a
// degraded code path, kept so elevated miss rates are observable even though
// the dashboard itself degrades gracefully.
type AuditEvent struct {
	ID        string    `bson:"id" json:"id"`
	Kind      string    `bson:"kind" json:"kind"`
	StylistID ID        `bson:"stylistId" json:"stylistId"`
	SubjectID ID        `bson:"subjectId,omitempty" json:"subjectId,omitempty"`
	Detail    string    `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
