package domain

import (
	"errors"
	"testing"
)

func TestParseEntityID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: " 7 ", want: 7},
		{raw: "0", want: 0},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "4x2", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "1.5", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseEntityID(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("ParseEntityID(%q): expected ErrNotFound, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseEntityID(%q) = %d, %v; want %d", tc.raw, got, err, tc.want)
		}
	}
}

func TestEntityKind_SegmentsAndParse(t *testing.T) {
	if KindReview.Segment() != "review" || KindReport.Segment() != "report" {
		t.Fatalf("unexpected segments")
	}
	if KindReport.Title() != "Report" {
		t.Fatalf("unexpected title: %q", KindReport.Title())
	}
	k, err := ParseKind("Reports")
	if err != nil || k != KindReport {
		t.Fatalf("ParseKind(Reports) = %v, %v", k, err)
	}
	if _, err := ParseKind("school"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestEntityDraft_IsEdit(t *testing.T) {
	if (EntityDraft{Content: "x"}).IsEdit() {
		t.Fatalf("draft without id must be a create")
	}
	if !(EntityDraft{ID: 3}).IsEdit() {
		t.Fatalf("draft with id must be an edit")
	}
}
