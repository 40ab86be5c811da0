// internal/writer/writer_test.go
package writer

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tamzrod/rs01/internal/poller"
	"github.com/tamzrod/rs01/internal/rs01"
	"github.com/tamzrod/rs01/internal/status"
)

// ---- fake sink ----

type fakeSink struct {
	fail     error
	results  []poller.PollResult
	statuses []status.Snapshot
}

func (f *fakeSink) Write(res poller.PollResult) error {
	f.results = append(f.results, res)
	return f.fail
}

func (f *fakeSink) WriteStatus(s status.Snapshot) error {
	f.statuses = append(f.statuses, s)
	return f.fail
}

// ---- tests ----

func TestMulti_FailingSinkDoesNotBlockOthers(t *testing.T) {
	bad := &fakeSink{fail: errors.New("disk full")}
	good := &fakeSink{}

	m := Multi(bad, good)

	err := m.Write(poller.PollResult{})
	if err == nil {
		t.Fatalf("expected error from failing sink")
	}
	if !strings.Contains(err.Error(), "sink=0") {
		t.Fatalf("error should name the failing sink: %v", err)
	}
	if len(good.results) != 1 {
		t.Fatalf("healthy sink not written: got %d results", len(good.results))
	}

	if err := m.WriteStatus(status.Snapshot{Health: status.HealthOK}); err == nil {
		t.Fatalf("expected status error from failing sink")
	}
	if len(good.statuses) != 1 {
		t.Fatalf("healthy sink not written: got %d statuses", len(good.statuses))
	}
}

func TestJSON_Measurement(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSON(&buf)

	data := rs01.MeasurementData{Count: 2}
	data.Targets[0] = rs01.Target{Distance: 1000, Intensity: 50}
	data.Targets[1] = rs01.Target{Distance: 2000, Intensity: 60}
	data.Targets[2] = rs01.Target{Distance: 9999, Intensity: 1} // stale, beyond count

	if err := w.Write(poller.PollResult{At: time.Unix(0, 0).UTC(), Data: data}); err != nil {
		t.Fatalf("Write() err=%v", err)
	}

	var got struct {
		Kind string `json:"kind"`
		Data struct {
			Count   uint16        `json:"count"`
			Targets []rs01.Target `json:"targets"`
		} `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if got.Kind != "measurement" {
		t.Fatalf("kind: got=%q want=measurement", got.Kind)
	}
	if len(got.Data.Targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(got.Data.Targets))
	}
	if got.Data.Targets[1].Distance != 2000 {
		t.Fatalf("target 2 distance: got=%d want=2000", got.Data.Targets[1].Distance)
	}
}

func TestJSON_ErrorCarriesCode(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSON(&buf)

	res := poller.PollResult{Err: status.New(status.CRCError, nil)}
	if err := w.Write(res); err != nil {
		t.Fatalf("Write() err=%v", err)
	}

	var got struct {
		Kind  string `json:"kind"`
		Error struct {
			Code uint16 `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Kind != "error" || got.Error.Code != status.CRCError {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestJSON_StatusOneLinePerWrite(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSON(&buf)

	_ = w.WriteStatus(status.Snapshot{Health: status.HealthError, LastErrorCode: status.RecvError})
	_ = w.WriteStatus(status.Snapshot{Health: status.HealthOK})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"last_error_code":9`) {
		t.Fatalf("status line missing code: %s", lines[0])
	}
}

func pollResultForTest() poller.PollResult {
	return poller.PollResult{At: time.Now(), Data: rs01.MeasurementData{Count: 1}}
}
