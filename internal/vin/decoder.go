// Package vin extracts the fixed-position codes embedded in a Vehicle
// Identification Number. Positional decoding is brittle across manufacturers;
// that is a domain constraint here, not something this package tries to fix.
package vin

import "strings"

// Codes holds the positional codes decoded from a VIN.
type Codes struct {
	// ModelIdentifier is positions 7-8, whitespace-trimmed. Matched
	// case-insensitively against the bilmodell_kode reference table.
	ModelIdentifier string
	// ModelYear is position 10, uppercased. Empty when the VIN is too
	// short, which downstream resolution reports as "year not found".
	ModelYear string
}

// Decode extracts the positional codes from vin. No length or charset
// validation is performed; short input yields empty codes rather than an
// error so absence propagates as a resolution failure downstream.
func Decode(vin string) Codes {
	var codes Codes

	if len(vin) >= 8 {
		codes.ModelIdentifier = strings.TrimSpace(vin[6:8])
	}
	if len(vin) >= 10 {
		codes.ModelYear = strings.ToUpper(vin[9:10])
	}

	return codes
}
