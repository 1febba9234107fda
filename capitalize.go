// Package textkit provides small, pure transforms over collections of text:
// ASCII title-casing and ASCII whitespace trimming.
//
// Every function returns a new slice with the same length and order as its
// input and never modifies the input. All functions are safe for concurrent
// use.
package textkit

// Capitalize returns a copy of values where each value has its first
// character upper-cased and every remaining character lower-cased.
//
// Casing is ASCII only: bytes outside 'A'-'Z' and 'a'-'z' are left as they
// are, so a value starting with a multi-byte character keeps that character
// unchanged. Empty values are returned unchanged.
func Capitalize(values []string) []string {
	capitalized := make([]string, len(values))
	for index, value := range values {
		capitalized[index] = CapitalizeValue(value)
	}
	return capitalized
}

// CapitalizeValue applies the Capitalize transform to a single value.
func CapitalizeValue(value string) string {
	if value == "" {
		return value
	}
	valueBytes := []byte(value)
	for index, valueByte := range valueBytes {
		valueBytes[index] = asciiLower(valueByte)
	}
	valueBytes[0] = asciiUpper(valueBytes[0])
	return string(valueBytes)
}

func asciiLower(valueByte byte) byte {
	if 'A' <= valueByte && valueByte <= 'Z' {
		return valueByte + ('a' - 'A')
	}
	return valueByte
}

func asciiUpper(valueByte byte) byte {
	if 'a' <= valueByte && valueByte <= 'z' {
		return valueByte - ('a' - 'A')
	}
	return valueByte
}
