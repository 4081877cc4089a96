package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"glowdesk/config"
	"glowdesk/models"
	"glowdesk/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload is the task body for one scheduled booking reminder. It
// snapshots the display fields at schedule time so the worker needs no
// backend token to deliver it.
type ReminderPayload struct {
	StylistID models.ID             `json:"stylistId"`
	Booking   models.DisplayBooking `json:"booking"`
}

func reminderRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

const reminderQueue = "default"

// taskEnqueuer is the slice of *asynq.Client the scheduler uses.
type taskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// taskRemover is the slice of *asynq.Inspector the scheduler uses.
type taskRemover interface {
	DeleteTask(queue, id string) error
	Close() error
}

// ReminderScheduler enqueues reminder tasks timed against booking start.
type ReminderScheduler struct {
	tasks     taskEnqueuer
	inspector taskRemover
	horizon   time.Duration
}

// NewReminderScheduler returns a scheduler that fires each reminder `horizon`
// before the booking's start time.
func NewReminderScheduler(horizon time.Duration) *ReminderScheduler {
	return &ReminderScheduler{
		tasks:     asynq.NewClient(reminderRedisOpts()),
		inspector: asynq.NewInspector(reminderRedisOpts()),
		horizon:   horizon,
	}
}

// ScheduleForBooking enqueues one reminder for a confirmed or rescheduled
// booking. Bookings with no resolvable start time are skipped; reminders
// whose fire time already passed fire immediately. Rescheduling the same
// booking replaces any pending reminder with the new fire time.
func (s *ReminderScheduler) ScheduleForBooking(stylistID models.ID, booking models.DisplayBooking) error {
	if booking.StartAt.IsZero() {
		return nil
	}
	payload, err := json.Marshal(ReminderPayload{StylistID: stylistID, Booking: booking})
	if err != nil {
		return err
	}

	fireAt := booking.StartAt.Add(-s.horizon)
	taskID := "reminder:" + booking.ID.String()
	opts := []asynq.Option{
		asynq.TaskID(taskID),
		asynq.MaxRetry(3),
	}
	if fireAt.After(time.Now().UTC()) {
		opts = append(opts, asynq.ProcessAt(fireAt))
	}

	// Drop any pending reminder for this booking so a reschedule picks up
	// the new fire time. A task mid-delivery cannot be deleted; the enqueue
	// below tolerates the resulting ID conflict.
	_ = s.inspector.DeleteTask(reminderQueue, taskID)

	_, err = s.tasks.Enqueue(asynq.NewTask(TypeReminderSend, payload), opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

// Close releases the underlying asynq client and inspector.
func (s *ReminderScheduler) Close() error {
	inspErr := s.inspector.Close()
	if err := s.tasks.Close(); err != nil {
		return err
	}
	return inspErr
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		reminderRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				reminderQueue: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		if err := notifSvc.SendBookingReminder(ctx, p.StylistID, p.Booking); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for booking %s: %v", p.Booking.ID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
