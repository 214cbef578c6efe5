// Package barcode normalizes decoded scan payloads into canonical article
// codes. Resolution against the warehouse API always uses the raw payload;
// the canonical form is recorded alongside it in the scan journal.
package barcode

import (
	"fmt"
	"strings"
)

// Result holds the fields extracted from a scanned payload.
type Result struct {
	Gtin14     string // AI (01) trade item number, zero-padded to 14 digits
	ExpiryDate string // AI (17) expiry, YYMMDD as scanned
	LotNumber  string // AI (10) batch/lot
	Symbology  string // best-effort hint derived from the payload shape
}

// Maximum data lengths for the variable-length AIs we consume.
var aiLengths = map[string]int{
	"10": 20,
}

// Parse classifies a payload by length and extracts its identifiers.
// 15+ characters starting with "01" is treated as a GS1 AI string, 14 digits
// as a GTIN-14, 13 as an EAN-13 and anything shorter is zero-padded.
func Parse(code string) (*Result, error) {
	length := len(code)

	if length == 0 {
		return nil, fmt.Errorf("empty payload")
	}

	if length >= 15 {
		if strings.HasPrefix(code, "01") {
			return parseAIString(code)
		}
		return nil, fmt.Errorf("payload of %d characters does not start with AI (01)", length)
	}

	if length == 14 {
		return &Result{Gtin14: code, Symbology: "gtin-14"}, nil
	}

	if length == 13 {
		return &Result{Gtin14: "0" + code, Symbology: "ean-13"}, nil
	}

	// EAN-8 and shorter legacy codes: left-pad to GTIN-14.
	return &Result{
		Gtin14:    fmt.Sprintf("%014s", code),
		Symbology: "short-code",
	}, nil
}

// parseAIString walks a GS1-128 payload and picks out the AIs (01), (17)
// and (10). Unknown runs are skipped one character at a time rather than
// rejected, since wedge scanners occasionally pass through group separators.
func parseAIString(code string) (*Result, error) {
	result := &Result{Symbology: "gs1-128"}
	i := 0
	length := len(code)

	for i < length {
		// (01) GTIN, 14 fixed digits.
		if strings.HasPrefix(code[i:], "01") {
			if i+16 > length {
				return nil, fmt.Errorf("truncated AI (01) data")
			}
			result.Gtin14 = code[i+2 : i+16]
			i += 16
			continue
		}

		// (17) expiry date, 6 fixed digits.
		if strings.HasPrefix(code[i:], "17") {
			if i+8 > length {
				return nil, fmt.Errorf("truncated AI (17) data")
			}
			result.ExpiryDate = code[i+2 : i+8]
			i += 8
			continue
		}

		// (10) lot number, variable length.
		if strings.HasPrefix(code[i:], "10") {
			dataStart := i + 2
			dataEnd := dataStart
			maxLength := aiLengths["10"]

			for dataEnd < length {
				if (dataEnd - dataStart) >= maxLength {
					break
				}

				remaining := code[dataEnd:]

				// Cut the lot short only when the next AI is present in
				// complete form; a bare "01" or "17" inside a lot stays
				// part of the lot.
				if len(remaining) >= 2 {
					nextAI := remaining[:2]
					if nextAI == "01" && len(remaining) >= 16 {
						break
					}
					if nextAI == "17" && len(remaining) >= 8 {
						break
					}
				}
				dataEnd++
			}

			result.LotNumber = code[dataStart:dataEnd]
			i = dataEnd
			continue
		}

		i++
	}

	if result.Gtin14 == "" {
		return nil, fmt.Errorf("no AI (01) GTIN found in payload")
	}

	return result, nil
}

// CanonicalCode returns the normalized article code for a payload, or the
// empty string when the payload has no recognizable code structure.
// Free-text payloads are simply not canonicalizable; that is not an error.
func CanonicalCode(payload string) string {
	res, err := Parse(payload)
	if err != nil {
		return ""
	}
	return res.Gtin14
}
