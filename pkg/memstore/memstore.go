// Package memstore provides an in-memory implementation of db.Database.
// It backs tests and local development; the semantics match the
// postgres backend, including the single-active-selection constraint
// and the bed count bounds.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shelterops/campledger/pkg/db"
)

// Store is an in-memory db.Database. A single mutex guards all state,
// so every store operation is one atomic section; this is the in-memory
// equivalent of the postgres backend's per-operation transaction.
type Store struct {
	mu          sync.Mutex
	users       map[string]db.User
	camps       map[string]db.Camp
	selections  map[string]db.CampSelection
	assignments []db.VolunteerAssignment

	subMu       sync.Mutex
	subscribers map[string][]db.ChangeHandler
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{
		users:       make(map[string]db.User),
		camps:       make(map[string]db.Camp),
		selections:  make(map[string]db.CampSelection),
		subscribers: make(map[string][]db.ChangeHandler),
	}
}

// Subscribe registers a handler for change events on the named table
func (s *Store) Subscribe(table string, handler db.ChangeHandler) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers[table] = append(s.subscribers[table], handler)
}

// notify dispatches an event to subscribers after the mutating section
// has released the state mutex, so handlers may call back into the store.
func (s *Store) notify(table string, kind db.ChangeKind, rowID string) {
	s.subMu.Lock()
	handlers := append([]db.ChangeHandler(nil), s.subscribers[table]...)
	s.subMu.Unlock()

	event := db.ChangeEvent{Table: table, Kind: kind, RowID: rowID}
	for _, h := range handlers {
		h(event)
	}
}

// CreateUser stores a new user record
func (s *Store) CreateUser(ctx context.Context, user *db.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return fmt.Errorf("user %s: %w", user.ID, db.ErrConstraintViolation)
	}
	s.users[user.ID] = *user
	return nil
}

// GetUser retrieves a user by ID
func (s *Store) GetUser(ctx context.Context, id string) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, db.ErrUserNotFound)
	}
	return &user, nil
}

// CreateCamp stores a new camp record
func (s *Store) CreateCamp(ctx context.Context, camp *db.Camp) error {
	s.mu.Lock()

	if _, exists := s.camps[camp.ID]; exists {
		s.mu.Unlock()
		return fmt.Errorf("camp %s: %w", camp.ID, db.ErrConstraintViolation)
	}
	if camp.Beds < 0 || camp.Beds > camp.OriginalBeds {
		s.mu.Unlock()
		return fmt.Errorf("camp %s beds out of range: %w", camp.ID, db.ErrConstraintViolation)
	}
	s.camps[camp.ID] = cloneCamp(*camp)
	s.mu.Unlock()

	s.notify(db.TableCamps, db.ChangeInsert, camp.ID)
	return nil
}

// GetCamp retrieves a camp by ID
func (s *Store) GetCamp(ctx context.Context, id string) (*db.Camp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	camp, ok := s.camps[id]
	if !ok {
		return nil, fmt.Errorf("camp %s: %w", id, db.ErrCampNotFound)
	}
	c := cloneCamp(camp)
	return &c, nil
}

// ListCamps returns all camps, newest first
func (s *Store) ListCamps(ctx context.Context) ([]db.Camp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	camps := make([]db.Camp, 0, len(s.camps))
	for _, c := range s.camps {
		camps = append(camps, cloneCamp(c))
	}
	sort.Slice(camps, func(i, j int) bool {
		if !camps[i].CreatedAt.Equal(camps[j].CreatedAt) {
			return camps[i].CreatedAt.After(camps[j].CreatedAt)
		}
		return camps[i].ID > camps[j].ID
	})
	return camps, nil
}

// UpdateCampDetails updates the volunteer-editable camp metadata
func (s *Store) UpdateCampDetails(ctx context.Context, id string, details db.CampDetails) (*db.Camp, error) {
	s.mu.Lock()

	camp, ok := s.camps[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("camp %s: %w", id, db.ErrCampNotFound)
	}
	camp.Name = details.Name
	camp.Resources = append([]string(nil), details.Resources...)
	camp.Contact = details.Contact
	camp.Ambulance = details.Ambulance
	s.camps[id] = camp
	result := cloneCamp(camp)
	s.mu.Unlock()

	s.notify(db.TableCamps, db.ChangeUpdate, id)
	return &result, nil
}

// UpdateCampBeds conditionally sets the available bed count
func (s *Store) UpdateCampBeds(ctx context.Context, id string, newBeds, expectedBeds int) (*db.Camp, error) {
	s.mu.Lock()

	camp, ok := s.camps[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("camp %s: %w", id, db.ErrCampNotFound)
	}
	if camp.Beds != expectedBeds {
		s.mu.Unlock()
		return nil, fmt.Errorf("camp %s beds=%d, expected %d: %w", id, camp.Beds, expectedBeds, db.ErrConflict)
	}
	if newBeds < 0 || newBeds > camp.OriginalBeds {
		s.mu.Unlock()
		return nil, fmt.Errorf("camp %s beds %d out of range 0..%d: %w", id, newBeds, camp.OriginalBeds, db.ErrConstraintViolation)
	}
	camp.Beds = newBeds
	s.camps[id] = camp
	result := cloneCamp(camp)
	s.mu.Unlock()

	s.notify(db.TableCamps, db.ChangeUpdate, id)
	return &result, nil
}

// SetCampCapacity changes total capacity, shifting available beds by the same delta
func (s *Store) SetCampCapacity(ctx context.Context, id string, newOriginal int) (*db.Camp, error) {
	s.mu.Lock()

	camp, ok := s.camps[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("camp %s: %w", id, db.ErrCampNotFound)
	}
	occupied := camp.Occupied()
	if newOriginal < occupied {
		s.mu.Unlock()
		return nil, fmt.Errorf("camp %s has %d occupied beds, capacity %d too small: %w",
			id, occupied, newOriginal, db.ErrConstraintViolation)
	}
	camp.OriginalBeds = newOriginal
	camp.Beds = newOriginal - occupied
	s.camps[id] = camp
	result := cloneCamp(camp)
	s.mu.Unlock()

	s.notify(db.TableCamps, db.ChangeUpdate, id)
	return &result, nil
}

// DeleteCamp removes a camp and cascades its history, unless an active
// selection still points at it
func (s *Store) DeleteCamp(ctx context.Context, id string) error {
	s.mu.Lock()

	if _, ok := s.camps[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("camp %s: %w", id, db.ErrCampNotFound)
	}
	for _, sel := range s.selections {
		if sel.CampID == id && sel.Status == db.SelectionActive {
			s.mu.Unlock()
			return fmt.Errorf("camp %s has active selections: %w", id, db.ErrConstraintViolation)
		}
	}

	delete(s.camps, id)
	var removedSelections []string
	for selID, sel := range s.selections {
		if sel.CampID == id {
			delete(s.selections, selID)
			removedSelections = append(removedSelections, selID)
		}
	}
	kept := s.assignments[:0]
	for _, a := range s.assignments {
		if a.CampID != id {
			kept = append(kept, a)
		}
	}
	s.assignments = kept
	s.mu.Unlock()

	s.notify(db.TableCamps, db.ChangeDelete, id)
	for _, selID := range removedSelections {
		s.notify(db.TableSelections, db.ChangeDelete, selID)
	}
	return nil
}

// GetActiveSelection returns the user's active selection, or nil
func (s *Store) GetActiveSelection(ctx context.Context, userID string) (*db.CampSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sel := s.activeSelectionLocked(userID); sel != nil {
		c := *sel
		return &c, nil
	}
	return nil, nil
}

// InsertSelection stores a new selection row. Inserting an active row
// for a user who already holds one fails with ErrConstraintViolation,
// mirroring the partial unique index in the postgres schema.
func (s *Store) InsertSelection(ctx context.Context, sel *db.CampSelection) error {
	s.mu.Lock()

	if _, exists := s.selections[sel.ID]; exists {
		s.mu.Unlock()
		return fmt.Errorf("selection %s: %w", sel.ID, db.ErrConstraintViolation)
	}
	if sel.Status == db.SelectionActive && s.activeSelectionLocked(sel.UserID) != nil {
		s.mu.Unlock()
		return fmt.Errorf("user %s already has an active selection: %w", sel.UserID, db.ErrConstraintViolation)
	}
	if _, ok := s.camps[sel.CampID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("camp %s: %w", sel.CampID, db.ErrCampNotFound)
	}
	s.selections[sel.ID] = *sel
	s.mu.Unlock()

	s.notify(db.TableSelections, db.ChangeInsert, sel.ID)
	return nil
}

// UpdateSelectionStatus flips an active selection to the given status.
// Cancelled is terminal, so a row that is no longer active reports
// ErrNoActiveSelection.
func (s *Store) UpdateSelectionStatus(ctx context.Context, id string, status db.SelectionStatus, at time.Time) (*db.CampSelection, error) {
	s.mu.Lock()

	sel, ok := s.selections[id]
	if !ok || sel.Status != db.SelectionActive {
		s.mu.Unlock()
		return nil, fmt.Errorf("selection %s: %w", id, db.ErrNoActiveSelection)
	}
	sel.Status = status
	if status == db.SelectionCancelled {
		t := at
		sel.CancelledAt = &t
	}
	s.selections[id] = sel
	result := sel
	s.mu.Unlock()

	s.notify(db.TableSelections, db.ChangeUpdate, id)
	return &result, nil
}

// SelectCamp atomically creates an active selection and takes one bed
func (s *Store) SelectCamp(ctx context.Context, userID, campID string) (*db.CampSelection, *db.Camp, error) {
	s.mu.Lock()

	if s.activeSelectionLocked(userID) != nil {
		s.mu.Unlock()
		return nil, nil, fmt.Errorf("user %s: %w", userID, db.ErrAlreadySelected)
	}
	camp, ok := s.camps[campID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, fmt.Errorf("camp %s: %w", campID, db.ErrCampNotFound)
	}
	if camp.Beds <= 0 {
		s.mu.Unlock()
		return nil, nil, fmt.Errorf("camp %s: %w", campID, db.ErrCampFull)
	}

	camp.Beds--
	s.camps[campID] = camp
	sel := db.CampSelection{
		ID:         newID(),
		UserID:     userID,
		CampID:     campID,
		Status:     db.SelectionActive,
		SelectedAt: time.Now().UTC(),
	}
	s.selections[sel.ID] = sel
	campCopy := cloneCamp(camp)
	s.mu.Unlock()

	s.notify(db.TableSelections, db.ChangeInsert, sel.ID)
	s.notify(db.TableCamps, db.ChangeUpdate, campID)
	return &sel, &campCopy, nil
}

// CancelSelection atomically cancels the user's active selection and
// returns the bed, capped at the camp's original capacity
func (s *Store) CancelSelection(ctx context.Context, userID string) (*db.CampSelection, *db.Camp, error) {
	s.mu.Lock()

	sel := s.activeSelectionLocked(userID)
	if sel == nil {
		s.mu.Unlock()
		return nil, nil, fmt.Errorf("user %s: %w", userID, db.ErrNoActiveSelection)
	}

	now := time.Now().UTC()
	cancelled := *sel
	cancelled.Status = db.SelectionCancelled
	cancelled.CancelledAt = &now
	s.selections[cancelled.ID] = cancelled

	camp, ok := s.camps[cancelled.CampID]
	var campCopy db.Camp
	if ok {
		if camp.Beds < camp.OriginalBeds {
			camp.Beds++
		}
		s.camps[cancelled.CampID] = camp
		campCopy = cloneCamp(camp)
	}
	s.mu.Unlock()

	s.notify(db.TableSelections, db.ChangeUpdate, cancelled.ID)
	if ok {
		s.notify(db.TableCamps, db.ChangeUpdate, cancelled.CampID)
		return &cancelled, &campCopy, nil
	}
	return &cancelled, nil, nil
}

// InsertAssignment appends a volunteer assignment log entry
func (s *Store) InsertAssignment(ctx context.Context, a *db.VolunteerAssignment) error {
	s.mu.Lock()

	if _, ok := s.camps[a.CampID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("camp %s: %w", a.CampID, db.ErrCampNotFound)
	}
	s.assignments = append(s.assignments, *a)
	s.mu.Unlock()

	s.notify(db.TableAssignments, db.ChangeInsert, a.ID)
	return nil
}

// GetAssignments returns the assignment log for a camp, oldest first
func (s *Store) GetAssignments(ctx context.Context, campID string) ([]db.VolunteerAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []db.VolunteerAssignment
	for _, a := range s.assignments {
		if a.CampID == campID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (s *Store) activeSelectionLocked(userID string) *db.CampSelection {
	for _, sel := range s.selections {
		if sel.UserID == userID && sel.Status == db.SelectionActive {
			c := sel
			return &c
		}
	}
	return nil
}

func newID() string {
	return uuid.New().String()
}

func cloneCamp(c db.Camp) db.Camp {
	c.Resources = append([]string(nil), c.Resources...)
	return c
}
