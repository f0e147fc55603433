package domain

import "testing"

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{name: "received to validated", from: StatusReceived, to: StatusValidated, want: true},
		{name: "validated to generating", from: StatusValidated, to: StatusGenerating, want: true},
		{name: "generating to parsing", from: StatusGenerating, to: StatusParsing, want: true},
		{name: "parsing to mapping", from: StatusParsing, to: StatusMapping, want: true},
		{name: "mapping to submitting", from: StatusMapping, to: StatusSubmitting, want: true},
		{name: "submitting to done", from: StatusSubmitting, to: StatusDone, want: true},
		{name: "no skipping states", from: StatusReceived, to: StatusGenerating, want: false},
		{name: "no moving backwards", from: StatusParsing, to: StatusGenerating, want: false},
		{name: "failure from received", from: StatusReceived, to: StatusFailed, want: true},
		{name: "failure from submitting", from: StatusSubmitting, to: StatusFailed, want: true},
		{name: "done is terminal", from: StatusDone, to: StatusFailed, want: false},
		{name: "failed is terminal", from: StatusFailed, to: StatusReceived, want: false},
		{name: "no retry transition", from: StatusFailed, to: StatusGenerating, want: false},
		{name: "unknown status transitions nowhere", from: "ARCHIVED", to: StatusValidated, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	for _, s := range []RequestStatus{StatusReceived, StatusValidated, StatusGenerating, StatusParsing, StatusMapping, StatusSubmitting} {
		if s.IsTerminal() {
			t.Errorf("%s reported terminal", s)
		}
	}
	if !StatusDone.IsTerminal() || !StatusFailed.IsTerminal() {
		t.Error("DONE and FAILED must be terminal")
	}
}

func TestRequestStatus_IsValid(t *testing.T) {
	for _, s := range []RequestStatus{StatusReceived, StatusValidated, StatusGenerating, StatusParsing, StatusMapping, StatusSubmitting, StatusDone, StatusFailed} {
		if !s.IsValid() {
			t.Errorf("%s reported invalid", s)
		}
	}
	if RequestStatus("PENDING").IsValid() {
		t.Error("unknown status reported valid")
	}
}
