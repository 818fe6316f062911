package i18n

import "testing"

func TestTranslateExact(t *testing.T) {
	cases := []struct {
		key    string
		locale Locale
		want   string
	}{
		{"grandTotal", English, "Grand Total"},
		{"grandTotal", Tamil, "மொத்த தொகை"},
		{"date", English, "Date"},
		{"upi", Tamil, "UPI"},
	}
	for i, tc := range cases {
		if got := T(tc.key, tc.locale, nil); got != tc.want {
			t.Fatalf("case %d: T(%q, %q) = %q, want %q", i, tc.key, tc.locale, got, tc.want)
		}
	}
}

func TestTranslateShortTypeKeys(t *testing.T) {
	// The short type names are table entries of their own and must not
	// drift into the fuzzy path.
	if got := T("daily", English, nil); got != "Daily" {
		t.Fatalf("T(daily) = %q", got)
	}
	if got := T("special", Tamil, nil); got != "சிறப்பு" {
		t.Fatalf("T(special, ta) = %q", got)
	}
}

func TestTranslateDerivedSuffix(t *testing.T) {
	// No exact "creditcard" entry; the derived "<key>expense" probe
	// lands on creditCardExpense.
	if got := T("creditcard", English, nil); got != "Credit Card" {
		t.Fatalf("T(creditcard) = %q", got)
	}
}

func TestTranslateSubstringFallback(t *testing.T) {
	// "credit" matches "creditCard" by containment.
	if got := T("credit", English, nil); got != "Credit Card" {
		t.Fatalf("T(credit) = %q", got)
	}
}

func TestTranslateMissingKeyReturnsKey(t *testing.T) {
	if got := T("zzzNotAKey", English, nil); got != "zzzNotAKey" {
		t.Fatalf("missing key should echo back, got %q", got)
	}
}

func TestTranslatePlaceholders(t *testing.T) {
	got := T("monthlySummaryForMonth", English, map[string]string{"month": "May 2025"})
	if got != "Monthly Summary for May 2025" {
		t.Fatalf("placeholder substitution failed: %q", got)
	}

	// Unresolved placeholders stay literal.
	got = T("monthlySummaryForMonth", English, nil)
	if got != "Monthly Summary for {month}" {
		t.Fatalf("unresolved placeholder should stay literal: %q", got)
	}
}

func TestTranslateLocaleFallback(t *testing.T) {
	// A locale with no string for the key falls back to English.
	if got := T("grandTotal", Locale("xx"), nil); got != "Grand Total" {
		t.Fatalf("unknown locale should fall back to English, got %q", got)
	}
}

func TestParseLocale(t *testing.T) {
	cases := []struct {
		in   string
		want Locale
	}{
		{"en", English},
		{"TA", Tamil},
		{" ta ", Tamil},
		{"fr", English},
		{"", English},
	}
	for i, tc := range cases {
		if got := ParseLocale(tc.in); got != tc.want {
			t.Fatalf("case %d: ParseLocale(%q) = %q, want %q", i, tc.in, got, tc.want)
		}
	}
}
