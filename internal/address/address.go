package address

// Record is the editable part of a shipping address. ID is zero until the
// address has been stored.
type Record struct {
	ID      int    `json:"addressId,omitempty"`
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

// Address is a stored address owned by a user.
type Address struct {
	Record
	UserID    int    `json:"userId"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Field names as they appear on the wire and in Errors.
const (
	FieldName    = "name"
	FieldStreet  = "street"
	FieldCity    = "city"
	FieldState   = "state"
	FieldCountry = "country"
	FieldPincode = "pincode"
	FieldPhone   = "phone"
)

// Fields lists the editable fields in form order.
var Fields = []string{FieldName, FieldStreet, FieldCity, FieldState, FieldCountry, FieldPincode, FieldPhone}

// Get returns the value of the named field and whether the name is known.
func (r Record) Get(field string) (string, bool) {
	switch field {
	case FieldName:
		return r.Name, true
	case FieldStreet:
		return r.Street, true
	case FieldCity:
		return r.City, true
	case FieldState:
		return r.State, true
	case FieldCountry:
		return r.Country, true
	case FieldPincode:
		return r.Pincode, true
	case FieldPhone:
		return r.Phone, true
	}
	return "", false
}

// Set replaces one field and reports whether the name is known.
func (r *Record) Set(field, value string) bool {
	switch field {
	case FieldName:
		r.Name = value
	case FieldStreet:
		r.Street = value
	case FieldCity:
		r.City = value
	case FieldState:
		r.State = value
	case FieldCountry:
		r.Country = value
	case FieldPincode:
		r.Pincode = value
	case FieldPhone:
		r.Phone = value
	default:
		return false
	}
	return true
}
