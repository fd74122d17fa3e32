package contractgen

import (
	"fmt"
	"time"

	"github.com/alnah/go-contractgen/internal/dateutil"
)

// ContractTermYears is the default length of an agreement.
const ContractTermYears = 1

// ContractDates holds the resolved term of an agreement as calendar dates.
type ContractDates struct {
	Start time.Time
	End   time.Time
}

// ParseContractDates reads START_DATE and the optional END_DATE.
// "today" and "auto" as a start date select the current UTC date.
// A missing END_DATE defaults to ContractTermYears after the start, with
// February 29 clamped to February 28.
func ParseContractDates(f *Fields, now time.Time) (ContractDates, error) {
	startRaw := dateutil.ResolveToday(f.Value(FieldStartDate), now)
	start, err := dateutil.ParseCalendarDate(startRaw)
	if err != nil {
		return ContractDates{}, &FieldError{Field: FieldStartDate, Err: fmt.Errorf("%w: %v", ErrInvalidDate, err)}
	}

	end := dateutil.AddYears(start, ContractTermYears)
	if endRaw, ok := f.Get(FieldEndDate); ok && endRaw != "" {
		end, err = dateutil.ParseCalendarDate(endRaw)
		if err != nil {
			return ContractDates{}, &FieldError{Field: FieldEndDate, Err: fmt.Errorf("%w: %v", ErrInvalidDate, err)}
		}
		if end.Before(start) {
			return ContractDates{}, &FieldError{
				Field: FieldEndDate,
				Err: fmt.Errorf("%w: %s < %s", ErrEndBeforeStart,
					end.Format(time.DateOnly), start.Format(time.DateOnly)),
			}
		}
	}

	return ContractDates{Start: start, End: end}, nil
}

// ApplyDates returns a copy of f with START_DATE and END_DATE in display
// form and START_DATE_ISO / END_DATE_ISO in YYYY-MM-DD form.
func ApplyDates(f *Fields, dates ContractDates, displayFormat string) (*Fields, error) {
	startDisplay, err := dateutil.Format(dates.Start, displayFormat)
	if err != nil {
		return nil, err
	}
	endDisplay, err := dateutil.Format(dates.End, displayFormat)
	if err != nil {
		return nil, err
	}

	out := f.Clone()
	out.Set(FieldStartDate, startDisplay)
	out.Set(FieldEndDate, endDisplay)
	out.Set(FieldStartDateISO, dates.Start.Format(time.DateOnly))
	out.Set(FieldEndDateISO, dates.End.Format(time.DateOnly))
	return out, nil
}
