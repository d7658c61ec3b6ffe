package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStatusIsLive(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "normal", status: StatusNormal, want: true},
		{name: "deleted", status: StatusDeleted, want: false},
		{name: "draft", status: StatusDraft, want: false},
		{name: "unknown", status: Status(7), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsLive(); got != tt.want {
				t.Errorf("Status(%d).IsLive() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatusValidFor(t *testing.T) {
	tests := []struct {
		status Status
		kind   Kind
		want   bool
	}{
		{StatusNormal, KindCategory, true},
		{StatusDeleted, KindCategory, true},
		{StatusDraft, KindCategory, false},
		{StatusDraft, KindTag, false},
		{StatusDraft, KindPost, true},
		{StatusDeleted, KindPost, true},
		{Status(3), KindPost, false},
		{StatusNormal, Kind("user"), false},
	}

	for _, tt := range tests {
		if got := tt.status.ValidFor(tt.kind); got != tt.want {
			t.Errorf("%s.ValidFor(%s) = %v, want %v", tt.status, tt.kind, got, tt.want)
		}
	}
}

// TestStatusLegacyEncoding pins the stored integers; existing rows depend on them.
func TestStatusLegacyEncoding(t *testing.T) {
	if StatusDeleted != 0 || StatusNormal != 1 || StatusDraft != 2 {
		t.Fatalf("status encoding changed: deleted=%d normal=%d draft=%d",
			StatusDeleted, StatusNormal, StatusDraft)
	}
}

func TestStatusScan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    Status
		wantErr bool
	}{
		{name: "int64", src: int64(1), want: StatusNormal},
		{name: "int32", src: int32(2), want: StatusDraft},
		{name: "bytes", src: []byte("0"), want: StatusDeleted},
		{name: "string", src: "2", want: StatusDraft},
		{name: "out of range", src: int64(9), wantErr: true},
		{name: "garbage", src: []byte("x"), wantErr: true},
		{name: "nil", src: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Status
			err := s.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got status %v", s)
				}
				return
			}
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if s != tt.want {
				t.Errorf("status: got %v, want %v", s, tt.want)
			}
		})
	}
}

func TestStatusValueRejectsUnknown(t *testing.T) {
	if _, err := Status(5).Value(); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Value() error: got %v, want ErrInvalidStatus", err)
	}

	v, err := StatusDraft.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != int64(2) {
		t.Errorf("Value: got %v, want 2", v)
	}
}

func TestStatusJSON(t *testing.T) {
	b, err := json.Marshal(Post{Title: "Intro", Status: StatusDraft})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Status != "draft" {
		t.Errorf("status: got %q, want %q", got.Status, "draft")
	}

	var p Post
	if err := json.Unmarshal([]byte(`{"status":"archived"}`), &p); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("unmarshal unknown status: got %v, want ErrInvalidStatus", err)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{StatusNormal, StatusDeleted, StatusDraft} {
		got, err := ParseStatus(s.String())
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseStatus(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if _, err := ParseStatus("Normal"); err == nil {
		t.Error("expected error for mixed-case status")
	}
}
