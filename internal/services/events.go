package services

import "log"

// EventPublisher publishes entity mutation events to the message broker.
// A nil publisher disables messaging entirely.
type EventPublisher interface {
	PublishEntityEvent(event string, payload map[string]interface{}) error
}

// publishEvent is fire-and-forget: a broker failure is logged and never
// fails the request that triggered it.
func publishEvent(pub EventPublisher, event string, payload map[string]interface{}) {
	if pub == nil {
		return
	}
	if err := pub.PublishEntityEvent(event, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", event, err)
	}
}
