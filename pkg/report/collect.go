package report

// Collector records every event in emission order. It is intended for
// tests that assert the event contract; sessions are single-threaded so no
// locking is needed.
type Collector struct {
	events []Event
}

// Emit implements Sink.
func (c *Collector) Emit(e Event) {
	c.events = append(c.events, e)
}

// Events returns the recorded events in order.
func (c *Collector) Events() []Event {
	return c.events
}

// Kinds returns the Kind labels of the recorded events, in order.
func (c *Collector) Kinds() []string {
	kinds := make([]string, len(c.events))
	for i, e := range c.events {
		kinds[i] = e.Kind()
	}
	return kinds
}
