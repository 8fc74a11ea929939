package db

import "time"

// Role identifies what a user is allowed to do
type Role string

const (
	RoleRefugee   Role = "refugee"
	RoleVolunteer Role = "volunteer"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleRefugee || r == RoleVolunteer
}

// SelectionStatus is the lifecycle state of a camp selection.
// The only transition is active -> cancelled; cancelled is terminal.
type SelectionStatus string

const (
	SelectionActive    SelectionStatus = "active"
	SelectionCancelled SelectionStatus = "cancelled"
)

// CampType distinguishes seeded camps from camps registered by volunteers
type CampType string

const (
	CampTypeDefault        CampType = "default"
	CampTypeVolunteerAdded CampType = "volunteer-added"
)

// User represents a registered refugee or volunteer.
// Role is fixed at registration; no role-change operation exists.
type User struct {
	ID        string
	Name      string
	Role      Role
	Contact   string
	CreatedAt time.Time
}

// Camp represents a shelter location with a bounded bed capacity.
// Beds is the currently available capacity; OriginalBeds the capacity
// at creation. 0 <= Beds <= OriginalBeds holds at all times.
type Camp struct {
	ID           string
	Name         string
	Beds         int
	OriginalBeds int
	Resources    []string
	Contact      string
	Ambulance    bool
	Type         CampType
	AddedBy      string // volunteer user ID, empty for seeded camps
	CreatedAt    time.Time
}

// Occupied returns the number of beds currently held by active selections
func (c *Camp) Occupied() int {
	return c.OriginalBeds - c.Beds
}

// CampSelection records a refugee holding (or having held) a bed in a camp.
// At most one selection per user has status active at any time; history
// is preserved by the status transition, rows are never deleted on cancel.
type CampSelection struct {
	ID          string
	UserID      string
	CampID      string
	Status      SelectionStatus
	SelectedAt  time.Time
	CancelledAt *time.Time
}

// VolunteerAssignment is an append-only log entry recording that a
// volunteer has worked a camp. The same pair may appear multiple times.
type VolunteerAssignment struct {
	ID          string
	VolunteerID string
	CampID      string
	CreatedAt   time.Time
}

// CampDetails carries the volunteer-editable camp metadata.
// Bed counts are deliberately absent: available beds change only
// through selection and cancellation, capacity through SetCampCapacity.
type CampDetails struct {
	Name      string
	Resources []string
	Contact   string
	Ambulance bool
}
