package validator

import "github.com/go-playground/validator/v10"

const nationalIDLength = 10

// IsValidNationalID validates an Ecuadorian cédula.
//
// The first two digits are the province code (01-24, 30 or 31), the third digit
// is 0-6 for natural persons and the last digit is a modulus 10 check digit over
// the first nine.
func IsValidNationalID(id string) bool {
	if len(id) != nationalIDLength {
		return false
	}

	digits := make([]int, nationalIDLength)
	for i := 0; i < nationalIDLength; i++ {
		ch := id[i]
		if ch < '0' || ch > '9' {
			return false
		}
		digits[i] = int(ch - '0')
	}

	province := digits[0]*10 + digits[1]
	if province < 1 || (province > 24 && province != 30 && province != 31) {
		return false
	}

	if digits[2] > 6 {
		return false
	}

	return nationalIDCheckDigit(digits[:9]) == digits[9]
}

// nationalIDCheckDigit doubles every even-indexed digit (folding values above 9)
// and returns the distance from the sum to the next multiple of ten.
func nationalIDCheckDigit(digits []int) int {
	sum := 0
	for i, d := range digits {
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	remainder := sum % 10
	if remainder == 0 {
		return 0
	}
	return 10 - remainder
}

// ValidateNationalID is the "ec_cedula" tag function
func ValidateNationalID(fl validator.FieldLevel) bool {
	return IsValidNationalID(fl.Field().String())
}
