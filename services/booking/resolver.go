package booking

import (
	"context"
	"sync"
	"time"

	"glowdesk/models"

	"go.uber.org/zap"
)

// ResolveServiceNames resolves service ids to display names. Ids already in
// the supplied cache are not fetched again; the remaining ids are fetched in
// parallel, one request per distinct id. The caller's cache is never mutated;
// the returned map is a superset of it. Ids whose fetch fails are omitted so
// one bad reference never blocks the rest of the batch.
func (s *DefaultBookingService) ResolveServiceNames(ctx context.Context, token string, stylistID models.ID, ids []models.ID, cache map[models.ID]string) map[models.ID]string {
	return s.resolve(ctx, ids, cache, func(id models.ID) (string, error) {
		svc, err := s.Backend.GetService(ctx, token, id)
		if err != nil {
			s.recordMiss(stylistID, id, "service", err)
			return "", err
		}
		return svc.Name, nil
	})
}

// ResolveSlotTimes resolves slot ids to their start-time strings, tolerating
// the field-name variants older backends use.
func (s *DefaultBookingService) ResolveSlotTimes(ctx context.Context, token string, stylistID models.ID, ids []models.ID, cache map[models.ID]string) map[models.ID]string {
	return s.resolve(ctx, ids, cache, func(id models.ID) (string, error) {
		slot, err := s.Backend.GetSlot(ctx, token, id)
		if err != nil {
			s.recordMiss(stylistID, id, "slot", err)
			return "", err
		}
		return slot.Start(), nil
	})
}

func (s *DefaultBookingService) resolve(ctx context.Context, ids []models.ID, cache map[models.ID]string, fetch func(models.ID) (string, error)) map[models.ID]string {
	merged := make(map[models.ID]string, len(cache))
	for k, v := range cache {
		merged[k] = v
	}

	var missing []models.ID
	seen := make(map[models.ID]bool, len(ids))
	for _, id := range ids {
		if id.IsZero() || seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := merged[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return merged
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, id := range missing {
		wg.Add(1)
		go func(id models.ID) {
			defer wg.Done()
			value, err := fetch(id)
			if err != nil || value == "" {
				return
			}
			mu.Lock()
			merged[id] = value
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return merged
}

// recordMiss logs a swallowed reference failure and files it as an audit
// event off the request path.
func (s *DefaultBookingService) recordMiss(stylistID, subjectID models.ID, refKind string, cause error) {
	if s.Logger != nil {
		s.Logger.Warn("reference lookup failed",
			zap.String("kind", refKind),
			zap.String("id", subjectID.String()),
			zap.Error(cause))
	}
	if s.Audit == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		event := models.AuditEvent{
			Kind:      models.AuditReferenceMiss,
			StylistID: stylistID,
			SubjectID: subjectID,
			Detail:    refKind + ": " + cause.Error(),
		}
		if _, err := s.Audit.Record(ctx, event); err != nil && s.Logger != nil {
			s.Logger.Warn("failed to record audit event", zap.Error(err))
		}
	}()
}
