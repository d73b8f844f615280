package form

import (
	"errors"
	"fmt"

	"gasstation/internal/station"
)

// Text of the alert shown when the two lists differ in length.
const (
	AlertTitle    = "Invalid fields content"
	AlertSubtitle = "Both entries must contain the same amount of numbers"
)

// ErrInvalidFields is returned by Submit while any field fails validation.
var ErrInvalidFields = errors.New("form has invalid fields")

// Field is one text input: its value, whether the user touched it, and the
// result of validating the current value.
type Field struct {
	Value   string
	Changed bool
	Check   Check
}

// NewField returns an untouched field already validated against value.
func NewField(value string) Field {
	return Field{Value: value, Check: Validate(value)}
}

// Set stores a new value, marks the field as changed and revalidates.
func (f *Field) Set(v string) {
	f.Value = v
	f.Changed = true
	f.Check = Validate(v)
}

// Clear empties the field.
func (f *Field) Clear() { f.Set("") }

// Failed reports whether the error message should be shown.
func (f Field) Failed() bool { return f.Changed && !f.Check.Valid }

// Message returns the error message when Failed, the assistive text otherwise.
func (f Field) Message(assistive string) string {
	if f.Failed() && f.Check.Message != "" {
		return f.Check.Message
	}
	return assistive
}

// Outcome is what a successful submit produced.
type Outcome struct {
	Supply []int
	Cost   []int
	Start  int
}

// Feasible reports whether a start station was found.
func (o Outcome) Feasible() bool { return o.Start != station.NoStart }

// Label is the heading shown for the outcome.
func (o Outcome) Label() string { return station.Label(o.Start) }

// Form is the supply/cost pair plus what the last submit left on screen.
type Form struct {
	Supply Field
	Cost   Field

	// Result is nil until a submit succeeds and again after any edit.
	Result *int
	// Alert is set when the last submit hit a length mismatch.
	Alert bool
}

// New returns an empty form.
func New() *Form {
	return &Form{Supply: NewField(""), Cost: NewField("")}
}

// SetSupply updates the supply field and drops any shown result.
func (f *Form) SetSupply(v string) {
	f.Result = nil
	f.Supply.Set(v)
}

// SetCost updates the cost field and drops any shown result.
func (f *Form) SetCost(v string) {
	f.Result = nil
	f.Cost.Set(v)
}

// HasError reports whether submit is currently blocked.
func (f *Form) HasError() bool {
	return !f.Supply.Check.Valid || !f.Cost.Check.Valid
}

// DismissAlert hides the length mismatch alert.
func (f *Form) DismissAlert() { f.Alert = false }

// Submit parses both fields and runs the solver once. A length mismatch sets
// Alert and returns an error wrapping station.ErrLengthMismatch.
func (f *Form) Submit() (Outcome, error) {
	if f.HasError() {
		return Outcome{}, ErrInvalidFields
	}

	supply, err := parseField(&f.Supply)
	if err != nil {
		return Outcome{}, fmt.Errorf("supply: %w", err)
	}
	cost, err := parseField(&f.Cost)
	if err != nil {
		return Outcome{}, fmt.Errorf("cost: %w", err)
	}

	if err := station.CheckPair(supply, cost); err != nil {
		f.Alert = true
		f.Result = nil
		return Outcome{}, err
	}

	start := station.Solve(supply, cost)
	f.Result = &start
	return Outcome{Supply: supply, Cost: cost, Start: start}, nil
}

// parseField converts a validated field, marking it with the format message
// when a token or the list total does not fit in an int.
func parseField(fd *Field) ([]int, error) {
	xs, err := station.ParseList(fd.Value)
	if err == nil {
		_, err = station.CheckedSum(xs)
	}
	if err != nil {
		fd.Check = Check{Message: MsgFormat}
		return nil, err
	}
	return xs, nil
}
