package address

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Errors maps a field name to a human readable message. A missing key means
// the field is valid.
type Errors map[string]string

// Valid reports whether the set holds no errors.
func (e Errors) Valid() bool { return len(e) == 0 }

const (
	MsgName    = "Name must be at least 3 characters."
	MsgStreet  = "Street must be at least 5 characters."
	MsgCity    = "City is required."
	MsgState   = "State is required."
	MsgCountry = "Country is required."
	MsgPincode = "Pincode must be 5 to 10 digits."
	MsgPhone   = "Phone number must be 8 to 14 digits."
)

var (
	pincodePattern = regexp.MustCompile(`^\d{5,10}$`)
	phonePattern   = regexp.MustCompile(`^\d{8,14}$`)
)

// Validate checks every field of r and returns all failures at once.
func Validate(r Record) Errors {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.By(minTrimmed(3, "validation_name_length", MsgName))),
		validation.Field(&r.Street, validation.By(minTrimmed(5, "validation_street_length", MsgStreet))),
		validation.Field(&r.City, validation.Required.Error(MsgCity)),
		validation.Field(&r.State, validation.Required.Error(MsgState)),
		validation.Field(&r.Country, validation.Required.Error(MsgCountry)),
		validation.Field(&r.Pincode,
			validation.Required.Error(MsgPincode),
			validation.Match(pincodePattern).Error(MsgPincode),
		),
		validation.Field(&r.Phone,
			validation.Required.Error(MsgPhone),
			validation.Match(phonePattern).Error(MsgPhone),
		),
	)

	out := Errors{}
	if err == nil {
		return out
	}
	if errs, ok := err.(validation.Errors); ok {
		for field, fe := range errs {
			out[field] = fe.Error()
		}
		return out
	}
	// only reachable on a programming error in the rule set above
	out["_"] = err.Error()
	return out
}

// isTrimmable matches what browsers strip in String.prototype.trim:
// Unicode white space plus the byte order mark.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// minTrimmed fails when the value, with surrounding whitespace removed, has
// fewer than n characters. Empty values fail too.
func minTrimmed(n int, code, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if utf8.RuneCountInString(strings.TrimFunc(s, isTrimmable)) < n {
			return validation.NewError(code, msg)
		}
		return nil
	}
}
