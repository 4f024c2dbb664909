package driver

import "time"

// Status captures the progress state of one file.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued  Status = "queued"
	StatusWorking Status = "fixing"
	// StatusChanged: the fixers changed the file (written unless dry-run).
	StatusChanged Status = "changed"
	StatusClean   Status = "clean"
	StatusCached  Status = "cached"
	StatusError   Status = "error"
)

// Finished reports whether s is a terminal state.
func (s Status) Finished() bool {
	switch s {
	case StatusChanged, StatusClean, StatusCached, StatusError:
		return true
	}
	return false
}

// Event reports progress for a file.
type Event struct {
	File    string
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. OnEvent is called from worker
// goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}

func resultStatus(r FixResult) Status {
	switch {
	case r.Err != nil:
		return StatusError
	case r.Cached:
		return StatusCached
	case r.Changed:
		return StatusChanged
	default:
		return StatusClean
	}
}
