package people

import (
	"strings"

	"github.com/peoplemanager/backend/internal/domain/shared"
)

// NormalizeCPF strips mask characters (and anything else that is not a
// digit) from a CPF, returning the canonical digits-only form.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	b.Grow(len(cpf))
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCPF validates a Brazilian CPF number. The input may be masked
// (000.000.000-00) or bare digits; it is normalized before checking.
// A CPF is valid when it has exactly 11 digits, is not a run of a single
// repeated digit, and its two check digits match the computed ones.
func ValidateCPF(cpf string) error {
	digits := NormalizeCPF(cpf)
	if len(digits) != 11 {
		return shared.NewDomainError("INVALID_CPF", "CPF must contain exactly 11 digits")
	}

	allSame := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return shared.NewDomainError("INVALID_CPF", "Invalid CPF")
	}

	first := cpfCheckDigit(digits[:9], 10)
	second := cpfCheckDigit(digits[:10], 11)
	if int(digits[9]-'0') != first || int(digits[10]-'0') != second {
		return shared.NewDomainError("INVALID_CPF", "Invalid CPF")
	}

	return nil
}

// cpfCheckDigit computes one CPF check digit over the given digit prefix,
// weighting digits from startWeight down to 2.
func cpfCheckDigit(digits string, startWeight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (startWeight - i)
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}
