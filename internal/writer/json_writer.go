// internal/writer/json_writer.go
package writer

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/tamzrod/rs01/internal/poller"
	"github.com/tamzrod/rs01/internal/rs01"
	"github.com/tamzrod/rs01/internal/status"
)

// record is one NDJSON line. Exactly one of Data / Status is set.
type record struct {
	At     time.Time        `json:"at"`
	Kind   string           `json:"kind"` // "measurement", "error", "status"
	Data   *measurementJSON `json:"data,omitempty"`
	Error  *errorJSON       `json:"error,omitempty"`
	Status *statusJSON      `json:"status,omitempty"`
}

type measurementJSON struct {
	Count   uint16        `json:"count"`
	Targets []rs01.Target `json:"targets"`
}

type errorJSON struct {
	Code    uint16 `json:"code"`
	Message string `json:"message"`
}

type statusJSON struct {
	Health         uint16 `json:"health"`
	LastErrorCode  uint16 `json:"last_error_code"`
	SecondsInError uint16 `json:"seconds_in_error"`
}

type jsonWriter struct {
	enc *json.Encoder
	now func() time.Time
}

// NewJSON writes one JSON object per line to w.
func NewJSON(w io.Writer) Sink {
	return &jsonWriter{enc: json.NewEncoder(w), now: time.Now}
}

func (j *jsonWriter) Write(res poller.PollResult) error {
	if j == nil || j.enc == nil {
		return errors.New("json writer: disabled")
	}

	rec := record{At: res.At}
	if res.Err != nil {
		rec.Kind = "error"
		rec.Error = &errorJSON{Code: status.Code(res.Err), Message: res.Err.Error()}
	} else {
		rec.Kind = "measurement"
		rec.Data = &measurementJSON{Count: res.Data.Count, Targets: res.Data.Detected()}
	}

	return j.enc.Encode(rec)
}

func (j *jsonWriter) WriteStatus(s status.Snapshot) error {
	if j == nil || j.enc == nil {
		return errors.New("json writer: disabled")
	}

	return j.enc.Encode(record{
		At:   j.now(),
		Kind: "status",
		Status: &statusJSON{
			Health:         s.Health,
			LastErrorCode:  s.LastErrorCode,
			SecondsInError: s.SecondsInError,
		},
	})
}
