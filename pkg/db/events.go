package db

// ChangeKind describes what happened to a row
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// Table names observers can subscribe to
const (
	TableCamps       = "camps"
	TableSelections  = "camp_selections"
	TableAssignments = "volunteer_assignments"
)

// ChangeEvent notifies observers that a row in Table changed after a
// committed write. Delivery is at-least-once and unordered across rows;
// observers converge by re-fetching current state rather than applying
// the event payload.
type ChangeEvent struct {
	Table string
	Kind  ChangeKind
	RowID string
}

// ChangeHandler receives change events for a subscribed table.
// Handlers must be quick; dispatch is cooperative and a slow handler
// delays delivery to later subscribers.
type ChangeHandler func(ChangeEvent)
