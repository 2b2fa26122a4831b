package address

import (
	"strings"
	"testing"
)

func validRecord() Record {
	return Record{
		Name:    "Aniket Saini",
		Street:  "66/6B Main Post Office",
		City:    "Roorkee",
		State:   "Uttarakhand",
		Country: "India",
		Pincode: "247667",
		Phone:   "9639060737",
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	errs := Validate(validRecord())
	if !errs.Valid() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_EmptyRecordReportsEveryField(t *testing.T) {
	errs := Validate(Record{})
	want := Errors{
		FieldName:    MsgName,
		FieldStreet:  MsgStreet,
		FieldCity:    MsgCity,
		FieldState:   MsgState,
		FieldCountry: MsgCountry,
		FieldPincode: MsgPincode,
		FieldPhone:   MsgPhone,
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), errs)
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("field %s: expected %q, got %q", field, msg, errs[field])
		}
	}
}

func TestValidate_TrimmedLengths(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *Record)
		field  string
		fails  bool
	}{
		{"name two chars", func(r *Record) { r.Name = "Al" }, FieldName, true},
		{"name padded two chars", func(r *Record) { r.Name = "  Al   " }, FieldName, true},
		{"name three chars", func(r *Record) { r.Name = "Ali" }, FieldName, false},
		{"name whitespace only", func(r *Record) { r.Name = "      " }, FieldName, true},
		{"name multibyte", func(r *Record) { r.Name = "Zoë" }, FieldName, false},
		{"street four chars", func(r *Record) { r.Street = " 12a " }, FieldStreet, true},
		{"street five chars", func(r *Record) { r.Street = "12 Av" }, FieldStreet, false},
		{"city empty", func(r *Record) { r.City = "" }, FieldCity, true},
		{"city blank is present", func(r *Record) { r.City = " " }, FieldCity, false},
		{"state empty", func(r *Record) { r.State = "" }, FieldState, true},
		{"country empty", func(r *Record) { r.Country = "" }, FieldCountry, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			tc.mutate(&r)
			errs := Validate(r)
			_, failed := errs[tc.field]
			if failed != tc.fails {
				t.Fatalf("expected failure=%v for %s, got errors %v", tc.fails, tc.field, errs)
			}
			if len(errs) > 1 {
				t.Fatalf("only %s should fail, got %v", tc.field, errs)
			}
		})
	}
}

func TestValidate_PincodeBoundaries(t *testing.T) {
	cases := map[string]bool{
		"1234":        false,
		"12345":       true,
		"1234567890":  true,
		"12345678901": false,
		"12a45":       false,
		" 12345":      false,
		"１２３４５":       false, // full-width digits are not ASCII
		"":            false,
	}
	for pin, ok := range cases {
		r := validRecord()
		r.Pincode = pin
		errs := Validate(r)
		if got := errs[FieldPincode] == ""; got != ok {
			t.Errorf("pincode %q: expected valid=%v, got errors %v", pin, ok, errs)
		}
		if !ok && errs[FieldPincode] != MsgPincode {
			t.Errorf("pincode %q: unexpected message %q", pin, errs[FieldPincode])
		}
	}
}

func TestValidate_PhoneBoundaries(t *testing.T) {
	for n := 6; n <= 16; n++ {
		r := validRecord()
		r.Phone = strings.Repeat("9", n)
		errs := Validate(r)
		want := n >= 8 && n <= 14
		if got := errs.Valid(); got != want {
			t.Errorf("phone of %d digits: expected valid=%v, got %v", n, want, errs)
		}
	}

	r := validRecord()
	r.Phone = "+919639060737"
	if Validate(r)[FieldPhone] != MsgPhone {
		t.Fatalf("expected leading plus to be rejected")
	}
}

func TestValidate_NoShortCircuit(t *testing.T) {
	r := validRecord()
	r.Name = "Al"
	r.Phone = "12"
	errs := Validate(r)
	if errs[FieldName] != MsgName || errs[FieldPhone] != MsgPhone || len(errs) != 2 {
		t.Fatalf("expected name and phone errors, got %v", errs)
	}
}

func TestValidate_ByteOrderMarkIsTrimmed(t *testing.T) {
	r := validRecord()
	r.Name = "\uFEFFAl\uFEFF"
	r.Street = " \uFEFF12 B　"
	errs := Validate(r)
	if errs[FieldName] != MsgName {
		t.Fatalf("expected name rejected after trimming, got %v", errs)
	}
	if errs[FieldStreet] != MsgStreet {
		t.Fatalf("expected street rejected after trimming, got %v", errs)
	}
}
