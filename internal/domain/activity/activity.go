package activity

import (
	"time"

	"github.com/google/uuid"
)

// Action tags recorded in the activity log.
const (
	ActionDeleteMember  = "delete_member"
	ActionCreateMember  = "create_member"
	ActionUpdateMember  = "update_member"
	ActionRecordPayment = "record_payment"
	ActionCreateUser    = "create_user"
	ActionLogin         = "login"
)

// Entry is a single activity-log record. Writes are best-effort: a failed
// append is logged and swallowed, never surfaced to the triggering operation.
type Entry struct {
	ID          string
	ActorID     string
	Action      string
	Description string
	SourceAddr  string
	Timestamp   time.Time
}

// NewEntry creates an activity entry with the current timestamp.
// PRE: actorID and action are non-empty
// POST: Returns an Entry with a generated ID and the provided fields
func NewEntry(actorID, action string) Entry {
	return Entry{
		ID:        uuid.New().String(),
		ActorID:   actorID,
		Action:    action,
		Timestamp: time.Now(),
	}
}

// WithDescription sets the free-text description.
// PRE: desc is non-empty
// POST: Entry description is set
func (e Entry) WithDescription(desc string) Entry {
	e.Description = desc
	return e
}

// WithSource sets the source network address.
// PRE: addr is non-empty
// POST: Entry source address is set
func (e Entry) WithSource(addr string) Entry {
	e.SourceAddr = addr
	return e
}
