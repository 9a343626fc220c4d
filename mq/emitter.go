package mq

import (
	"context"
	"encoding/json"
	"log"

	"github.com/rudraprotapchakraborty/hotel-management-server/models"
	"github.com/rudraprotapchakraborty/hotel-management-server/rdx"
)

const channel = "hotel-events"

// Emitter publishes audit events for successful mutations over redis
// pub/sub. A nil Emitter (or one built from a nil cache) drops events
// silently.
type Emitter struct {
	cache *rdx.Cache
}

func NewEmitter(cache *rdx.Cache) *Emitter {
	if cache == nil {
		return nil
	}
	return &Emitter{cache: cache}
}

// Emit publishes the event. Failures are logged, never surfaced to the
// request path.
func (e *Emitter) Emit(ctx context.Context, eventName string, content models.Index) {
	if e == nil {
		return
	}

	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] failed to marshal %s event: %v", eventName, err)
		return
	}

	if err := e.cache.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish %s event: %v", eventName, err)
	}
}

// StartAuditWorker subscribes to the event channel and logs everything
// that comes through. Runs until the context is cancelled.
func (e *Emitter) StartAuditWorker(ctx context.Context) {
	if e == nil {
		return
	}

	sub := e.cache.Conn.Subscribe(ctx, channel)
	defer sub.Close()
	ch := sub.Channel()

	log.Println("[AuditWorker] listening for events...")
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event models.Index
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("[AuditWorker] failed to parse event: %v", err)
				continue
			}
			log.Printf("[AuditWorker] %s %s %s", event.Method, event.EntityType, event.EntityId)
		}
	}
}
