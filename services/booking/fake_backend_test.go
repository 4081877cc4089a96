package booking

import (
	"context"
	"errors"
	"sync"

	"glowdesk/models"
)

var errNotFound = errors.New("not found")

// fakeBackend is an in-memory BackendAPI that counts every call so tests can
// assert on fetch behavior, not just results.
type fakeBackend struct {
	mu sync.Mutex

	list     []models.Booking
	services map[models.ID]models.Service
	slots    map[models.ID]models.Slot

	serviceErr  map[models.ID]error
	slotErr     map[models.ID]error
	statusErr   error
	deleteErr   error
	slotMarkErr error

	listCalls    int
	getCalls     int
	serviceCalls int
	slotCalls    int

	statusUpdates []statusUpdate
	reschedules   []rescheduleCall
	deletes       []models.ID
	slotMarks     []slotMark
}

type statusUpdate struct {
	ID     models.ID
	Status string
}

type rescheduleCall struct {
	ID           models.ID
	StylistID    models.ID
	NewStartTime string
	Status       string
}

type slotMark struct {
	ID     models.ID
	Booked bool
}

func (f *fakeBackend) ListBookingsByStylist(ctx context.Context, token string, stylistID models.ID) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := make([]models.Booking, len(f.list))
	copy(out, f.list)
	return out, nil
}

func (f *fakeBackend) GetBooking(ctx context.Context, token string, id models.ID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	for _, b := range f.list {
		if b.ID == id {
			copied := b
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeBackend) GetService(ctx context.Context, token string, id models.ID) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.serviceCalls++
	if err, ok := f.serviceErr[id]; ok {
		return nil, err
	}
	if svc, ok := f.services[id]; ok {
		return &svc, nil
	}
	return nil, errNotFound
}

func (f *fakeBackend) GetSlot(ctx context.Context, token string, id models.ID) (*models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slotCalls++
	if err, ok := f.slotErr[id]; ok {
		return nil, err
	}
	if slot, ok := f.slots[id]; ok {
		return &slot, nil
	}
	return nil, errNotFound
}

func (f *fakeBackend) UpdateBookingStatus(ctx context.Context, token string, id models.ID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusUpdates = append(f.statusUpdates, statusUpdate{ID: id, Status: status})
	for i := range f.list {
		if f.list[i].ID == id {
			f.list[i].Status = status
		}
	}
	return nil
}

func (f *fakeBackend) RescheduleBooking(ctx context.Context, token string, id, stylistID models.ID, newStartTime, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reschedules = append(f.reschedules, rescheduleCall{
		ID:           id,
		StylistID:    stylistID,
		NewStartTime: newStartTime,
		Status:       status,
	})
	for i := range f.list {
		if f.list[i].ID == id {
			f.list[i].Status = status
			f.list[i].BookedAt = newStartTime
		}
	}
	return nil
}

func (f *fakeBackend) DeleteBooking(ctx context.Context, token string, id models.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, id)
	kept := f.list[:0]
	for _, b := range f.list {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	f.list = kept
	return nil
}

func (f *fakeBackend) UpdateSlotBookedStatus(ctx context.Context, token string, id models.ID, booked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.slotMarkErr != nil {
		return f.slotMarkErr
	}
	f.slotMarks = append(f.slotMarks, slotMark{ID: id, Booked: booked})
	return nil
}

// fakeAuditor collects events on a channel so tests can wait for the async
// record goroutine without sleeping.
type fakeAuditor struct {
	events chan models.AuditEvent
}

func newFakeAuditor() *fakeAuditor {
	return &fakeAuditor{events: make(chan models.AuditEvent, 16)}
}

func (a *fakeAuditor) Record(ctx context.Context, event models.AuditEvent) (string, error) {
	a.events <- event
	return "evt-1", nil
}
