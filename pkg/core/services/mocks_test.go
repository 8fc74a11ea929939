package services

import (
	"context"
	"time"

	"github.com/shelterops/campledger/pkg/clients/authclient"
	"github.com/shelterops/campledger/pkg/db"
)

// Function-backed mocks for the store interfaces. Tests set only the
// functions their scenario touches; calling an unset function panics,
// which points straight at the unexpected store call.

type mockSelectionStore struct {
	getActiveFn    func(ctx context.Context, userID string) (*db.CampSelection, error)
	insertFn       func(ctx context.Context, sel *db.CampSelection) error
	updateStatusFn func(ctx context.Context, id string, status db.SelectionStatus, at time.Time) (*db.CampSelection, error)
	selectFn       func(ctx context.Context, userID, campID string) (*db.CampSelection, *db.Camp, error)
	cancelFn       func(ctx context.Context, userID string) (*db.CampSelection, *db.Camp, error)
}

func (m *mockSelectionStore) GetActiveSelection(ctx context.Context, userID string) (*db.CampSelection, error) {
	return m.getActiveFn(ctx, userID)
}

func (m *mockSelectionStore) InsertSelection(ctx context.Context, sel *db.CampSelection) error {
	return m.insertFn(ctx, sel)
}

func (m *mockSelectionStore) UpdateSelectionStatus(ctx context.Context, id string, status db.SelectionStatus, at time.Time) (*db.CampSelection, error) {
	return m.updateStatusFn(ctx, id, status, at)
}

func (m *mockSelectionStore) SelectCamp(ctx context.Context, userID, campID string) (*db.CampSelection, *db.Camp, error) {
	return m.selectFn(ctx, userID, campID)
}

func (m *mockSelectionStore) CancelSelection(ctx context.Context, userID string) (*db.CampSelection, *db.Camp, error) {
	return m.cancelFn(ctx, userID)
}

type mockCampStore struct {
	createFn        func(ctx context.Context, camp *db.Camp) error
	getFn           func(ctx context.Context, id string) (*db.Camp, error)
	listFn          func(ctx context.Context) ([]db.Camp, error)
	updateDetailsFn func(ctx context.Context, id string, details db.CampDetails) (*db.Camp, error)
	updateBedsFn    func(ctx context.Context, id string, newBeds, expectedBeds int) (*db.Camp, error)
	setCapacityFn   func(ctx context.Context, id string, newOriginal int) (*db.Camp, error)
	deleteFn        func(ctx context.Context, id string) error
}

func (m *mockCampStore) CreateCamp(ctx context.Context, camp *db.Camp) error {
	return m.createFn(ctx, camp)
}

func (m *mockCampStore) GetCamp(ctx context.Context, id string) (*db.Camp, error) {
	return m.getFn(ctx, id)
}

func (m *mockCampStore) ListCamps(ctx context.Context) ([]db.Camp, error) {
	return m.listFn(ctx)
}

func (m *mockCampStore) UpdateCampDetails(ctx context.Context, id string, details db.CampDetails) (*db.Camp, error) {
	return m.updateDetailsFn(ctx, id, details)
}

func (m *mockCampStore) UpdateCampBeds(ctx context.Context, id string, newBeds, expectedBeds int) (*db.Camp, error) {
	return m.updateBedsFn(ctx, id, newBeds, expectedBeds)
}

func (m *mockCampStore) SetCampCapacity(ctx context.Context, id string, newOriginal int) (*db.Camp, error) {
	return m.setCapacityFn(ctx, id, newOriginal)
}

func (m *mockCampStore) DeleteCamp(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockUserStore struct {
	createFn func(ctx context.Context, user *db.User) error
	getFn    func(ctx context.Context, id string) (*db.User, error)
}

func (m *mockUserStore) CreateUser(ctx context.Context, user *db.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserStore) GetUser(ctx context.Context, id string) (*db.User, error) {
	return m.getFn(ctx, id)
}

type mockAssignmentStore struct {
	insertFn func(ctx context.Context, a *db.VolunteerAssignment) error
	getFn    func(ctx context.Context, campID string) ([]db.VolunteerAssignment, error)
}

func (m *mockAssignmentStore) InsertAssignment(ctx context.Context, a *db.VolunteerAssignment) error {
	return m.insertFn(ctx, a)
}

func (m *mockAssignmentStore) GetAssignments(ctx context.Context, campID string) ([]db.VolunteerAssignment, error) {
	return m.getFn(ctx, campID)
}

type mockVerifier struct {
	identity *authclient.Identity
	err      error
}

func (m *mockVerifier) Verify(token string) (*authclient.Identity, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.identity, nil
}

type mockIssuer struct {
	token string
	err   error
}

func (m *mockIssuer) IssueToken(userID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func refugee(id string) *db.User {
	return &db.User{ID: id, Name: "Test Refugee", Role: db.RoleRefugee}
}

func volunteer(id string) *db.User {
	return &db.User{ID: id, Name: "Test Volunteer", Role: db.RoleVolunteer}
}
