package barcode

import "testing"

func TestParseEan13(t *testing.T) {
	res, err := Parse("4006381333931")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Gtin14 != "04006381333931" {
		t.Fatalf("expected zero-padded GTIN-14, got %q", res.Gtin14)
	}
	if res.Symbology != "ean-13" {
		t.Fatalf("expected ean-13 symbology, got %q", res.Symbology)
	}
}

func TestParseGtin14Passthrough(t *testing.T) {
	res, err := Parse("14006381333938")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Gtin14 != "14006381333938" {
		t.Fatalf("expected passthrough, got %q", res.Gtin14)
	}
}

func TestParseShortCodePadding(t *testing.T) {
	res, err := Parse("12345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Gtin14 != "00000012345678" {
		t.Fatalf("expected left padding to 14 digits, got %q", res.Gtin14)
	}
}

func TestParseGS1String(t *testing.T) {
	res, err := Parse("01140063813339381728010010ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Gtin14 != "14006381333938" {
		t.Fatalf("expected GTIN from AI (01), got %q", res.Gtin14)
	}
	if res.ExpiryDate != "280100" {
		t.Fatalf("expected expiry 280100, got %q", res.ExpiryDate)
	}
	if res.LotNumber != "ABC123" {
		t.Fatalf("expected lot ABC123, got %q", res.LotNumber)
	}
	if res.Symbology != "gs1-128" {
		t.Fatalf("expected gs1-128 symbology, got %q", res.Symbology)
	}
}

func TestParseGS1LotBeforeExpiry(t *testing.T) {
	res, err := Parse("01140063813339381017280100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The "17" after the lot start is a complete AI (17) block, so the lot
	// ends right before it.
	if res.LotNumber != "" {
		t.Fatalf("expected empty lot, got %q", res.LotNumber)
	}
	if res.ExpiryDate != "280100" {
		t.Fatalf("expected expiry 280100, got %q", res.ExpiryDate)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := Parse("990063813339381728010"); err == nil {
		t.Fatalf("expected error for long payload without AI (01)")
	}
	if _, err := Parse("011400638133393"); err == nil {
		t.Fatalf("expected error for truncated AI (01)")
	}
}

func TestCanonicalCode(t *testing.T) {
	if got := CanonicalCode("4006381333931"); got != "04006381333931" {
		t.Fatalf("expected canonical code, got %q", got)
	}
	if got := CanonicalCode(""); got != "" {
		t.Fatalf("expected empty canonical code for empty payload, got %q", got)
	}
}
