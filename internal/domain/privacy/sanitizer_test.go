package privacy

import (
	"strings"
	"testing"
)

func TestSanitize_Phone(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "bare mobile", input: "Call me at 09171234567 please"},
		{name: "prefixed mobile", input: "my number is +639171234567"},
		{name: "spaced mobile", input: "txt 0917 123 4567"},
		{name: "dashed mobile", input: "txt 0917-123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if !strings.Contains(got, TokenPhone) {
				t.Errorf("Sanitize(%q) = %q, want phone placeholder", tt.input, got)
			}
			if strings.Contains(got, "0917") {
				t.Errorf("Sanitize(%q) = %q, original digits leaked", tt.input, got)
			}
		})
	}
}

func TestSanitize_PhoneAndEmail(t *testing.T) {
	input := "Call me at 09171234567 or email me at a@b.com"
	got := Sanitize(input)

	if !strings.Contains(got, TokenPhone) {
		t.Errorf("Sanitize(%q) = %q, missing %s", input, got, TokenPhone)
	}
	if !strings.Contains(got, TokenEmail) {
		t.Errorf("Sanitize(%q) = %q, missing %s", input, got, TokenEmail)
	}
	if strings.Contains(got, "09171234567") || strings.Contains(got, "a@b.com") {
		t.Errorf("Sanitize(%q) = %q, original PII leaked", input, got)
	}
}

func TestSanitize_Dates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "us style", input: "born on 01/15/1990", want: "born on " + TokenDate},
		{name: "iso style", input: "born on 1990-01-15", want: "born on " + TokenDate},
		{name: "dotted", input: "since 1.1.2020 here", want: "since " + TokenDate + " here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize_Names(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantToken bool
	}{
		{name: "self introduction english", input: "Hi, my name is Juan Dela Cruz", wantToken: true},
		{name: "self introduction tagalog", input: "ako si Maria Santos po", wantToken: true},
		{name: "generic capitalized pair", input: "si Pedro Penduko daw", wantToken: true},
		{name: "exempt institution", input: "where is the Barangay Hall", wantToken: false},
		{name: "exempt greeting", input: "Good Morning everyone", wantToken: false},
		{name: "exempt document", input: "requirements for Barangay Clearance", wantToken: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if tt.wantToken != strings.Contains(got, TokenName) {
				t.Errorf("Sanitize(%q) = %q, wantToken=%v", tt.input, got, tt.wantToken)
			}
		})
	}
}

func TestSanitize_SelfIntroKeepsLeadIn(t *testing.T) {
	got := Sanitize("my name is Juan Dela Cruz")
	want := "my name is " + TokenName
	if got != want {
		t.Errorf("Sanitize() = %q, want %q", got, want)
	}
}

func TestSanitize_IDAndNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string
	}{
		{name: "philsys style", input: "my id is 1234-5678-9012-3456", token: TokenID},
		{name: "sss style", input: "sss 12-3456789-0", token: TokenID},
		{name: "generic long number", input: "tracking 123456789", token: TokenNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if !strings.Contains(got, tt.token) {
				t.Errorf("Sanitize(%q) = %q, want %s", tt.input, got, tt.token)
			}
		})
	}
}

func TestSanitize_Address(t *testing.T) {
	tests := []string{
		"I live at 123 Mabini Street",
		"dito sa Purok 3 kami",
		"Blk 5 Lot 12 yung bahay",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			got := Sanitize(input)
			if !strings.Contains(got, TokenAddress) {
				t.Errorf("Sanitize(%q) = %q, want address placeholder", input, got)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"Call me at 09171234567 or email me at a@b.com",
		"my name is Juan Dela Cruz, born 01/15/1990, id 1234-5678-9012-3456",
		"I live at 123 Mabini Street, Purok 3",
		"plain question about barangay clearance fees",
		"",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSanitizeOutbound_Honorific(t *testing.T) {
	got := SanitizeOutbound("Please coordinate with Mr. Reyes at the hall")
	if !strings.Contains(got, TokenName) {
		t.Errorf("SanitizeOutbound() = %q, want honorific name redacted", got)
	}
	if strings.Contains(got, "Reyes") {
		t.Errorf("SanitizeOutbound() = %q, name leaked", got)
	}
}

func TestSanitizeOutbound_Idempotent(t *testing.T) {
	input := "Mrs. Santos lives at 45 Rizal Avenue, contact 09181234567"
	once := SanitizeOutbound(input)
	twice := SanitizeOutbound(once)
	if once != twice {
		t.Errorf("SanitizeOutbound not idempotent: first %q, second %q", once, twice)
	}
}
