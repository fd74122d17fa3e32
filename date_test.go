package contractgen

import (
	"errors"
	"testing"
	"time"
)

func TestParseContractDates(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name      string
		start     string
		end       string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
		wantField string
	}{
		{
			name:      "end defaults to one year later",
			start:     "2025-01-15",
			wantStart: day(2025, 1, 15),
			wantEnd:   day(2026, 1, 15),
		},
		{
			name:      "leap day clamps",
			start:     "2024-02-29",
			wantStart: day(2024, 2, 29),
			wantEnd:   day(2025, 2, 28),
		},
		{
			name:      "today uses clock",
			start:     "today",
			wantStart: day(2025, 6, 1),
			wantEnd:   day(2026, 6, 1),
		},
		{
			name:      "explicit end date",
			start:     "2025-01-15",
			end:       "2025-07-15",
			wantStart: day(2025, 1, 15),
			wantEnd:   day(2025, 7, 15),
		},
		{
			name:      "invalid start",
			start:     "2025-13-40",
			wantErr:   ErrInvalidDate,
			wantField: FieldStartDate,
		},
		{
			name:      "non-ISO start",
			start:     "January 15, 2025",
			wantErr:   ErrInvalidDate,
			wantField: FieldStartDate,
		},
		{
			name:      "invalid end",
			start:     "2025-01-15",
			end:       "soon",
			wantErr:   ErrInvalidDate,
			wantField: FieldEndDate,
		},
		{
			name:      "end before start",
			start:     "2025-01-15",
			end:       "2024-12-31",
			wantErr:   ErrEndBeforeStart,
			wantField: FieldEndDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewFields()
			f.Set(FieldStartDate, tt.start)
			if tt.end != "" {
				f.Set(FieldEndDate, tt.end)
			}

			got, err := ParseContractDates(f, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				var fe *FieldError
				if !errors.As(err, &fe) || fe.Field != tt.wantField {
					t.Errorf("error should name field %s, got %v", tt.wantField, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Start.Equal(tt.wantStart) || !got.End.Equal(tt.wantEnd) {
				t.Errorf("got %v..%v, want %v..%v", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestApplyDates(t *testing.T) {
	t.Parallel()

	dates := ContractDates{
		Start: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		format    string
		wantStart string
		wantEnd   string
	}{
		{"", "January 15, 2025", "January 15, 2026"},
		{"long", "January 15, 2025", "January 15, 2026"},
		{"iso", "2025-01-15", "2026-01-15"},
		{"D MMMM YYYY", "15 January 2025", "15 January 2026"},
	}

	for _, tt := range tests {
		t.Run("format="+tt.format, func(t *testing.T) {
			t.Parallel()

			in := NewFields()
			in.Set(FieldStartDate, "2025-01-15")

			got, err := ApplyDates(in, dates, tt.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Value(FieldStartDate) != tt.wantStart {
				t.Errorf("START_DATE = %q, want %q", got.Value(FieldStartDate), tt.wantStart)
			}
			if got.Value(FieldEndDate) != tt.wantEnd {
				t.Errorf("END_DATE = %q, want %q", got.Value(FieldEndDate), tt.wantEnd)
			}
			if got.Value(FieldStartDateISO) != "2025-01-15" || got.Value(FieldEndDateISO) != "2026-01-15" {
				t.Errorf("ISO fields = %q, %q", got.Value(FieldStartDateISO), got.Value(FieldEndDateISO))
			}
			if in.Value(FieldStartDate) != "2025-01-15" {
				t.Error("input fields were modified")
			}
		})
	}
}

func TestApplyDates_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := ApplyDates(NewFields(), ContractDates{}, "[unclosed")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
