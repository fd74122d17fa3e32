package contractgen

import (
	"path/filepath"
	"regexp"
	"testing"
	"time"
)

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "jane-doe"},
		{"O'Brien, Jr.", "o-brien-jr-"},
		{"  Padded  ", "-padded-"},
		{"ALL CAPS 42", "all-caps-42"},
		{"José Müller", "jos-m-ller"},
		{"../../etc/passwd", "-etc-passwd"},
		{"", ""},
	}

	safe := regexp.MustCompile(`^[a-z0-9-]*$`)

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := SanitizeName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !safe.MatchString(got) {
				t.Errorf("SanitizeName(%q) = %q contains characters outside [a-z0-9-]", tt.input, got)
			}
		})
	}
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	// 20:00 in UTC-5 is already the next day in UTC.
	now := time.Date(2025, 1, 14, 20, 0, 0, 0, time.FixedZone("EST", -5*3600))

	tests := []struct {
		name    string
		product string
		partner string
		want    string
	}{
		{"default product", "", "Jane Doe", "kauntor-partnership-jane-doe-2025-01-15"},
		{"custom product", "Acme", "O'Brien, Jr.", "acme-partnership-o-brien-jr--2025-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := OutputName(tt.product, tt.partner, now); got != tt.want {
				t.Errorf("OutputName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArtifactPaths(t *testing.T) {
	t.Parallel()

	got := ArtifactPaths("output", "kauntor-partnership-jane-2025-01-15")
	base := filepath.Join("output", "kauntor-partnership-jane-2025-01-15")

	if got.Markdown != base+".md" || got.HTML != base+".html" || got.PDF != base+".pdf" {
		t.Errorf("ArtifactPaths() = %+v", got)
	}
}
