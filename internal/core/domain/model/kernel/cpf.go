package kernel

import (
	"fmt"
	"strings"

	"fastorder/internal/pkg/errs"
	"fastorder/internal/pkg/guard"
)

// cpfLength is the number of digits a normalized CPF must contain.
const cpfLength = 11

// ErrCPFIsNotConstructed indicates that a CPF was not created via NewCPF.
var ErrCPFIsNotConstructed = errs.NewValueIsRequiredError("CPF must be created via NewCPF")

// CPF is the national customer identifier used to look up registered customers.
// It is constructed through a sanitize-then-validate path: every non-digit
// character is stripped from the raw input, and the remainder must be exactly
// 11 digits long. No check-digit algorithm is applied; only the length is
// validated.
//
// CPF is immutable once constructed.
type CPF struct {
	value string

	guard guard.ConstructorGuard
}

// NewCPF normalizes and validates a raw identifier string.
// Returns a ValueIsInvalidError when the digit count differs from 11.
func NewCPF(raw string) (CPF, error) {
	digits := sanitizeCPF(raw)
	if len(digits) != cpfLength {
		return CPF{}, errs.NewValueIsInvalidErrorWithCause(
			"cpf",
			fmt.Errorf("%q does not contain exactly %d digits", raw, cpfLength),
		)
	}

	return CPF{
		value: digits,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// sanitizeCPF removes every non-digit character from the input.
func sanitizeCPF(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String returns the normalized 11-digit string.
func (c CPF) String() string {
	return c.value
}

// IsEqual compares two CPFs by their normalized value.
func (c CPF) IsEqual(other CPF) bool {
	return c.value == other.value
}

// Validate ensures the CPF was created via NewCPF.
func (c CPF) Validate() error {
	return c.guard.Validate(ErrCPFIsNotConstructed)
}
