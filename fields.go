package contractgen

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-contractgen/internal/fileutil"
	"github.com/alnah/go-contractgen/internal/yamlutil"
)

// Field names with special meaning. Every other field is plain text.
const (
	FieldPartnerName  = "PARTNER_NAME"
	FieldStartDate    = "START_DATE"
	FieldEndDate      = "END_DATE"
	FieldPromoCode    = "PROMO_CODE"
	FieldIsMinor      = "IS_MINOR"
	FieldGuardianName = "GUARDIAN_NAME"
	FieldStartDateISO = "START_DATE_ISO"
	FieldEndDateISO   = "END_DATE_ISO"
)

// MaxFieldLength limits a single field value.
const MaxFieldLength = 2000

// RequiredFields must be present and non-empty before rendering, checked in this order.
var RequiredFields = []string{FieldPartnerName, FieldStartDate, FieldPromoCode}

// ContractFileExtensions are recognized for the optional first argument.
var ContractFileExtensions = []string{".json", ".yaml", ".yml"}

// defaultFieldValues are the commercial terms used when nothing overrides them.
var defaultFieldValues = []struct{ key, value string }{
	{"GOVERNING_LAW", "Ontario, Canada"},
	{"REVENUE_SHARE", "40"},
	{"PERFORMANCE_BOOST", "5"},
	{"PERFORMANCE_THRESHOLD", "100"},
	{"PAYMENT_FREQUENCY", "monthly"},
	{"PAYMENT_METHOD", "Zelle, PayPal, Revolut, Interac, or Bitcoin"},
	{"MINIMUM_PAYOUT", "50"},
	{"DISCOUNT", "25"},
}

// Fields is an ordered mapping of field name to value.
// A key keeps the position of its first insertion; later Sets replace the value.
// The zero value is ready to use.
type Fields struct {
	keys   []string
	values map[string]string
}

// NewFields creates an empty Fields.
func NewFields() *Fields {
	return &Fields{values: make(map[string]string)}
}

// DefaultFields returns the built-in default values.
func DefaultFields() *Fields {
	f := NewFields()
	for _, d := range defaultFieldValues {
		f.Set(d.key, d.value)
	}
	return f
}

// Set stores value under key.
func (f *Fields) Set(key, value string) {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Get returns the value for key and whether it is present.
func (f *Fields) Get(key string) (string, bool) {
	if f == nil {
		return "", false
	}
	v, ok := f.values[key]
	return v, ok
}

// Value returns the value for key, or "" when absent.
func (f *Fields) Value(key string) string {
	v, _ := f.Get(key)
	return v
}

// Keys returns field names in insertion order.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.keys...)
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Clone returns an independent copy.
func (f *Fields) Clone() *Fields {
	c := NewFields()
	if f == nil {
		return c
	}
	for _, k := range f.keys {
		c.Set(k, f.values[k])
	}
	return c
}

// Merge copies every field of other over f, in other's order.
func (f *Fields) Merge(other *Fields) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		f.Set(k, other.values[k])
	}
}

// FieldName converts a command-line flag ("--partner-name") to its
// field name ("PARTNER_NAME").
func FieldName(flag string) string {
	name := strings.TrimPrefix(flag, "--")
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// FlagName converts a field name ("PARTNER_NAME") to its command-line
// flag ("--partner-name").
func FlagName(field string) string {
	return "--" + strings.ToLower(strings.ReplaceAll(field, "_", "-"))
}

// IsTruthy reports whether v reads as an affirmative flag value.
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "1", "y", "on":
		return true
	default:
		return false
	}
}

// IsContractFile reports whether arg names a contract file by extension.
func IsContractFile(arg string) bool {
	return fileutil.HasExtension(arg, ContractFileExtensions...)
}

// LoadFieldsFile reads a flat JSON or YAML object of field values.
// Keys are used as written; values are converted to their plain string form.
func LoadFieldsFile(path string) (*Fields, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	pairs, err := yamlutil.UnmarshalFlat(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigFileParse, path, err)
	}

	f := NewFields()
	for _, p := range pairs {
		f.Set(p.Key, p.Value)
	}
	return f, nil
}

// ParseOverrides reads "--kebab-case value" pairs into fields.
// A flag followed by nothing, or by another flag, is recorded as "true".
// Tokens that are neither a flag nor a flag's value are returned as ignored.
func ParseOverrides(args []string) (*Fields, []string) {
	f := NewFields()
	var ignored []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") || arg == "--" {
			ignored = append(ignored, arg)
			continue
		}

		key := FieldName(arg)
		value := "true"
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			value = args[i+1]
			i++
		}
		f.Set(key, value)
	}

	return f, ignored
}

// ResolveFields merges defaults, an optional contract file given as the
// first argument, and flag overrides, later sources winning per key.
// Returns the tokens ParseOverrides ignored.
func ResolveFields(defaults *Fields, args []string) (*Fields, []string, error) {
	fields := defaults.Clone()

	if len(args) > 0 && IsContractFile(args[0]) {
		fromFile, err := LoadFieldsFile(args[0])
		if err != nil {
			return nil, nil, err
		}
		fields.Merge(fromFile)
		args = args[1:]
	}

	overrides, ignored := ParseOverrides(args)
	fields.Merge(overrides)

	return fields, ignored, nil
}

// FieldError reports which field failed validation.
// errors.Is matches the wrapped sentinel (e.g. ErrMissingField).
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("%v: %s", e.Err, FlagName(e.Field))
	}
	return fmt.Sprintf("%s: %v", FlagName(e.Field), e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidateFields checks required fields and value lengths.
// The first failure is returned as a *FieldError.
func ValidateFields(f *Fields) error {
	for _, key := range RequiredFields {
		if v, _ := f.Get(key); strings.TrimSpace(v) == "" {
			return &FieldError{Field: key, Err: ErrMissingField}
		}
	}

	for _, key := range f.Keys() {
		if v := f.Value(key); len(v) > MaxFieldLength {
			return &FieldError{
				Field: key,
				Err:   fmt.Errorf("%w (%d chars, max %d)", ErrFieldTooLong, len(v), MaxFieldLength),
			}
		}
	}

	return nil
}
