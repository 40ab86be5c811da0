// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/rs01/internal/poller"
	"github.com/tamzrod/rs01/internal/status"
)

type multi struct {
	sinks []Sink
}

// Multi fans out to every sink. A failing sink does not stop the others.
func Multi(sinks ...Sink) Sink {
	return &multi{sinks: sinks}
}

func (m *multi) Write(res poller.PollResult) error {
	var errs []string
	for i, s := range m.sinks {
		if err := s.Write(res); err != nil {
			errs = append(errs, fmt.Sprintf("writer: sink=%d err=%v", i, err))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, " | "))
	}
	return nil
}

func (m *multi) WriteStatus(st status.Snapshot) error {
	var errs []string
	for i, s := range m.sinks {
		if err := s.WriteStatus(st); err != nil {
			errs = append(errs, fmt.Sprintf("writer: sink=%d status err=%v", i, err))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, " | "))
	}
	return nil
}
