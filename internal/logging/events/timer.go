package events

import "github.com/atomicstack/pomotree/internal/logging"

type TimerTracer struct{}

var Timer = TimerTracer{}

func (TimerTracer) Add(id, name string, minutes int) {
	logging.Trace("timer.add", map[string]interface{}{"id": id, "name": name, "minutes": minutes})
}

func (TimerTracer) Remove(name string, removed bool) {
	logging.Trace("timer.remove", map[string]interface{}{"name": name, "removed": removed})
}

func (TimerTracer) Nuke(count int) {
	logging.Trace("timer.nuke", map[string]interface{}{"count": count})
}

func (TimerTracer) Start(name string, minutes int) {
	logging.Trace("timer.start", map[string]interface{}{"name": name, "minutes": minutes})
}

func (TimerTracer) Finish(name string, completed bool) {
	logging.Trace("timer.finish", map[string]interface{}{"name": name, "completed": completed})
}
