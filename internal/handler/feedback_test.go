package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestFeedbackSubmit_JSON(t *testing.T) {
	srv, _ := testApp(t)

	payload := []byte(`{"rating":5,"comment":"Wonderful mezze"}`)
	resp, err := http.Post(srv.URL+"/m/bayt-al-sufra/feedback", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}

	var got struct {
		ID      string `json:"id"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.ID == "" {
		t.Error("response has no id")
	}
	if got.Rating != 5 || got.Comment != "Wonderful mezze" {
		t.Errorf("response = %+v", got)
	}
}

func TestFeedbackSubmit_InvalidRating(t *testing.T) {
	srv, _ := testApp(t)

	for _, payload := range []string{`{"rating":0}`, `{"rating":6}`, `{}`} {
		resp, err := http.Post(srv.URL+"/m/bayt-al-sufra/feedback", "application/json", strings.NewReader(payload))
		if err != nil {
			t.Fatalf("POST failed: %v", err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("payload %s: status = %d, want 400", payload, resp.StatusCode)
		}
	}
}

func TestFeedbackSubmit_UnknownMenu(t *testing.T) {
	srv, _ := testApp(t)

	resp, err := http.Post(srv.URL+"/m/no-such-menu/feedback", "application/json", strings.NewReader(`{"rating":5}`))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestFeedbackSubmit_Form(t *testing.T) {
	srv, _ := testApp(t)
	client := clientWithJar(t)

	form := strings.NewReader("rating=4&comment=Lovely")
	resp, err := client.Post(srv.URL+"/m/bayt-al-sufra/feedback", "application/x-www-form-urlencoded", form)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/m/bayt-al-sufra" {
		t.Errorf("redirect target = %q", loc)
	}
}

func TestFeedbackSummary_JSON(t *testing.T) {
	srv, _ := testApp(t)

	// Seed two entries through the public endpoint
	for _, payload := range []string{`{"rating":5}`, `{"rating":3}`} {
		resp, err := http.Post(srv.URL+"/m/bayt-al-sufra/feedback", "application/json", strings.NewReader(payload))
		if err != nil {
			t.Fatalf("POST failed: %v", err)
		}
		_ = resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/m/bayt-al-sufra/feedback")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got struct {
		Feedback      []json.RawMessage `json:"feedback"`
		AverageRating float64           `json:"averageRating"`
		Total         int64             `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.Total != 2 {
		t.Errorf("total = %d, want 2", got.Total)
	}
	if got.AverageRating != 4 {
		t.Errorf("averageRating = %v, want 4", got.AverageRating)
	}
	if len(got.Feedback) != 2 {
		t.Errorf("listed %d entries, want 2", len(got.Feedback))
	}
}
