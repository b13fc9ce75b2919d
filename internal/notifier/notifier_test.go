package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"HarvestGuard/internal/advisory"
	"HarvestGuard/internal/model"
)

func init() {
	Backoff = func(int) time.Duration { return time.Millisecond }
}

func TestTelegramNotifier_Send(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botTOKEN/sendMessage" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tn := NewTelegramNotifier("TOKEN", "42", "")
	tn.BaseURL = server.URL
	if err := tn.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got["chat_id"] != "42" || got["text"] != "hello" || got["parse_mode"] != "HTML" {
		t.Errorf("payload = %v", got)
	}
}

func TestTelegramNotifier_SendWithRetry(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tn := NewTelegramNotifier("TOKEN", "42", "")
	tn.BaseURL = server.URL
	if err := tn.SendWithRetry(context.Background(), "hi", 3); err != nil {
		t.Fatalf("SendWithRetry() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}

	calls = -10
	if err := tn.SendWithRetry(context.Background(), "hi", 1); err == nil {
		t.Error("expected retries to be exhausted")
	}
}

func TestTelegramNotifier_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found","parameters":{"retry_after":2}}`))
	}))
	defer server.Close()

	tn := NewTelegramNotifier("TOKEN", "42", "")
	tn.BaseURL = server.URL
	err := tn.Send(context.Background(), "hello")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Description != "Bad Request: chat not found" || apiErr.RetryAfter != 2*time.Second {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestTelegramNotifier_Poll(t *testing.T) {
	var sent []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			w.Write([]byte(`{"ok":true,"result":[{"update_id":7,"message":{"text":" /alerts "}},{"update_id":8}]}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var p map[string]string
			json.NewDecoder(r.Body).Decode(&p)
			sent = append(sent, p["text"])
		}
	}))
	defer server.Close()

	tn := NewTelegramNotifier("TOKEN", "42", "")
	tn.BaseURL = server.URL
	next, err := tn.poll(context.Background(), server.Client(), 0, func(cmd string) string {
		return "reply to " + cmd
	})
	if err != nil {
		t.Fatalf("poll() error = %v", err)
	}
	if next != 9 {
		t.Errorf("next offset = %d, want 9", next)
	}
	if len(sent) != 1 || sent[0] != "reply to /alerts" {
		t.Errorf("sent = %v", sent)
	}
}

type recordingNotifier struct {
	texts []string
	fail  bool
}

func (r *recordingNotifier) SendWithRetry(_ context.Context, text string, _ int) error {
	if r.fail {
		return errors.New("network down")
	}
	r.texts = append(r.texts, text)
	return nil
}

func TestDispatcher_SendsNewCriticalOnce(t *testing.T) {
	tmpl, _ := advisory.TemplatesFor(advisory.LocaleBangla)
	rn := &recordingNotifier{}
	d := NewDispatcher(rn, tmpl)

	ts := time.Now()
	alerts := []model.SmartAlert{
		{CropType: "ধান", RiskLevel: model.RiskCritical, Message: "বৃষ্টি", ActionRequired: true, Timestamp: ts},
		{CropType: "আলু", RiskLevel: model.RiskHigh, ActionRequired: true, Timestamp: ts},
		{CropType: "পাট", RiskLevel: model.RiskCritical, ActionRequired: true, Timestamp: ts},
	}
	if n := d.Dispatch(context.Background(), alerts); n != 2 {
		t.Errorf("first dispatch sent %d, want 2", n)
	}
	if n := d.Dispatch(context.Background(), alerts); n != 0 {
		t.Errorf("repeat dispatch sent %d, want 0", n)
	}

	later := alerts[0]
	later.Timestamp = ts.Add(time.Minute)
	if n := d.Dispatch(context.Background(), []model.SmartAlert{later}); n != 1 {
		t.Errorf("new timestamp dispatch sent %d, want 1", n)
	}
	if !strings.Contains(rn.texts[0], "বৃষ্টি") || !strings.Contains(rn.texts[0], "সমালোচনামূলক") {
		t.Errorf("sms text = %q", rn.texts[0])
	}
}

func TestDispatcher_FailedSendIsRetriedLater(t *testing.T) {
	tmpl, _ := advisory.TemplatesFor(advisory.LocaleEnglish)
	rn := &recordingNotifier{fail: true}
	d := NewDispatcher(rn, tmpl)
	alerts := []model.SmartAlert{{CropType: "ধান", RiskLevel: model.RiskCritical, Timestamp: time.Now()}}

	if n := d.Dispatch(context.Background(), alerts); n != 0 {
		t.Errorf("sent %d while failing", n)
	}
	rn.fail = false
	if n := d.Dispatch(context.Background(), alerts); n != 1 {
		t.Errorf("sent %d after recovery, want 1", n)
	}
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	c := &ConsoleNotifier{Out: &buf}
	if err := c.SendWithRetry(context.Background(), "<b>Risk</b> high", 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "SMS NOTIFICATION") || !strings.Contains(out, "Risk high") || strings.Contains(out, "<b>") {
		t.Errorf("console output = %q", out)
	}
}

func TestFormatDigest(t *testing.T) {
	tmpl, _ := advisory.TemplatesFor(advisory.LocaleEnglish)
	w := model.WeatherObservation{Location: "Dhaka, BD", TemperatureC: 31, HumidityPercent: 78, RainProbabilityPercent: 40}
	alerts := []model.SmartAlert{
		{CropType: "আলু", RiskLevel: model.RiskLow, Message: "fine"},
		{CropType: "ধান", RiskLevel: model.RiskCritical, Message: "storm & damp", Score: 100},
	}
	out := FormatDigest(w, alerts, tmpl)
	if !strings.Contains(out, "1 Critical") {
		t.Errorf("digest missing critical count: %q", out)
	}
	if strings.Index(out, "ধান") > strings.Index(out, "আলু") {
		t.Error("critical alert should be listed first")
	}
	if !strings.Contains(out, "storm &amp; damp") {
		t.Error("message should be HTML escaped")
	}
	if got := FormatDigest(w, nil, tmpl); !strings.HasSuffix(got, "No active batches.") {
		t.Errorf("empty digest = %q", got)
	}
}
