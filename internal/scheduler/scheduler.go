package scheduler

import (
	"fmt"
	"strings"
)

// Scheduler is a simple event scheduler that can be used to schedule events
// to be executed at a specific cycle.
//
// The scheduler is a linked list of events, sorted by the cycle at which
// they should be executed. When an event is scheduled, it is inserted into
// the list after every event due at or before the same cycle, and when the
// scheduler is ticked, every event that has become due is removed from the
// list and executed, in order.
type Scheduler struct {
	cycles uint64
	root   *Event

	eventHandlers [eventTypes]func()
	events        [eventTypes]Event // only one event of each type can be scheduled at a time
}

// NewScheduler returns an empty scheduler at cycle 0.
func NewScheduler() *Scheduler {
	s := &Scheduler{}
	for i := range s.events {
		s.events[i].eventType = EventType(i)
	}
	return s
}

// Cycle returns the number of cycles the scheduler has been ticked.
func (s *Scheduler) Cycle() uint64 {
	return s.cycles
}

// RegisterEvent registers the function called when an event of the
// given type is executed.
func (s *Scheduler) RegisterEvent(eventType EventType, fn func()) {
	s.eventHandlers[eventType] = fn
}

// Tick advances the scheduler by the given number of cycles, executing
// every event that becomes due. While a handler runs, Cycle reports the
// cycle the event was due at, so a handler that reschedules itself does
// not drift.
func (s *Scheduler) Tick(c uint64) {
	target := s.cycles + c
	for s.root != nil && s.root.cycle <= target {
		event := s.root
		s.root = event.next
		event.next = nil
		event.scheduled = false

		s.cycles = event.cycle
		if fn := s.eventHandlers[event.eventType]; fn != nil {
			fn()
		}
	}
	s.cycles = target
}

// ScheduleEvent schedules an event to be executed the given number of
// cycles from now. An event of the same type that is already scheduled
// is replaced.
func (s *Scheduler) ScheduleEvent(eventType EventType, cycles uint64) {
	s.DescheduleEvent(eventType)

	this := &s.events[eventType]
	this.cycle = s.cycles + cycles
	this.scheduled = true

	if s.root == nil || this.cycle < s.root.cycle {
		this.next = s.root
		s.root = this
		return
	}

	event := s.root
	for event.next != nil && event.next.cycle <= this.cycle {
		event = event.next
	}
	this.next = event.next
	event.next = this
}

// DescheduleEvent removes the event of the given type, if scheduled.
func (s *Scheduler) DescheduleEvent(eventType EventType) {
	var prev *Event
	for event := s.root; event != nil; event = event.next {
		if event.eventType == eventType {
			if prev == nil {
				s.root = event.next
			} else {
				prev.next = event.next
			}
			event.next = nil
			event.scheduled = false
			return
		}
		prev = event
	}
}

// Until returns the number of cycles until the event of the given type
// is due, and false if it is not scheduled.
func (s *Scheduler) Until(eventType EventType) (uint64, bool) {
	event := &s.events[eventType]
	if !event.scheduled {
		return 0, false
	}
	return event.cycle - s.cycles, true
}

func (s *Scheduler) String() string {
	var b strings.Builder
	for event := s.root; event != nil; event = event.next {
		fmt.Fprintf(&b, "%s:%d->", event.eventType, event.cycle)
	}
	return b.String()
}
