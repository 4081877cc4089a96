package cron

import (
	"testing"
	"time"

	"glowdesk/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	calls *[]string
	err   error
	task  *asynq.Task
	opts  []asynq.Option
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	taskID := ""
	for _, opt := range opts {
		if opt.Type() == asynq.TaskIDOpt {
			taskID = opt.Value().(string)
		}
	}
	*f.calls = append(*f.calls, "enqueue "+taskID)
	f.task = task
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	return &asynq.TaskInfo{}, nil
}

func (f *fakeEnqueuer) Close() error { return nil }

type fakeRemover struct {
	calls *[]string
	err   error
}

func (f *fakeRemover) DeleteTask(queue, id string) error {
	*f.calls = append(*f.calls, "delete "+queue+" "+id)
	return f.err
}

func (f *fakeRemover) Close() error { return nil }

func newTestScheduler(horizon time.Duration) (*ReminderScheduler, *fakeEnqueuer, *fakeRemover) {
	calls := []string{}
	enq := &fakeEnqueuer{calls: &calls}
	rem := &fakeRemover{calls: &calls}
	return &ReminderScheduler{tasks: enq, inspector: rem, horizon: horizon}, enq, rem
}

func optionValue(opts []asynq.Option, kind asynq.OptionType) (interface{}, bool) {
	for _, opt := range opts {
		if opt.Type() == kind {
			return opt.Value(), true
		}
	}
	return nil, false
}

func TestScheduleForBookingReplacesPendingReminder(t *testing.T) {
	sched, enq, _ := newTestScheduler(time.Hour)
	startAt := time.Now().UTC().Add(6 * time.Hour)

	err := sched.ScheduleForBooking("sty1", models.DisplayBooking{ID: "b1", StartAt: startAt})
	require.NoError(t, err)

	// The pending task is removed before the replacement is enqueued, so a
	// reschedule never leaves the old fire time in the queue.
	require.Equal(t, []string{
		"delete default reminder:b1",
		"enqueue reminder:b1",
	}, *enq.calls)

	id, ok := optionValue(enq.opts, asynq.TaskIDOpt)
	require.True(t, ok)
	assert.Equal(t, "reminder:b1", id)

	at, ok := optionValue(enq.opts, asynq.ProcessAtOpt)
	require.True(t, ok)
	assert.Equal(t, startAt.Add(-time.Hour), at)
}

func TestScheduleForBookingPastFireTimeRunsImmediately(t *testing.T) {
	sched, enq, _ := newTestScheduler(time.Hour)

	err := sched.ScheduleForBooking("sty1", models.DisplayBooking{
		ID:      "b2",
		StartAt: time.Now().UTC().Add(10 * time.Minute),
	})
	require.NoError(t, err)

	_, ok := optionValue(enq.opts, asynq.ProcessAtOpt)
	assert.False(t, ok, "past fire time should not carry a ProcessAt option")
}

func TestScheduleForBookingSkipsTimelessBooking(t *testing.T) {
	sched, enq, _ := newTestScheduler(time.Hour)

	err := sched.ScheduleForBooking("sty1", models.DisplayBooking{ID: "b3"})
	require.NoError(t, err)
	assert.Empty(t, *enq.calls)
}

func TestScheduleForBookingToleratesIDConflict(t *testing.T) {
	sched, enq, rem := newTestScheduler(time.Hour)
	enq.err = asynq.ErrTaskIDConflict
	rem.err = asynq.ErrTaskNotFound

	// A task mid-delivery cannot be deleted and re-enqueueing under its ID
	// conflicts; neither is an error for the caller.
	err := sched.ScheduleForBooking("sty1", models.DisplayBooking{
		ID:      "b4",
		StartAt: time.Now().UTC().Add(6 * time.Hour),
	})
	assert.NoError(t, err)
}
