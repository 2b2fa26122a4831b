package addressform

import (
	"errors"
	"sync"

	"github.com/wichananm65/pet-shop-checkout/internal/address"
)

var ErrUnknownField = errors.New("unknown address field")

// Sample is the demonstration address behind "Add Dummy Data".
var Sample = address.Record{
	Name:    "Aniket Saini",
	Street:  "66/6B Main Post Office",
	City:    "Roorkee",
	State:   "Uttarakhand",
	Country: "India",
	Pincode: "247667",
	Phone:   "9639060737",
}

// Form holds the working copy of the address being added or edited together
// with the result of the last validation.
type Form struct {
	mu     sync.RWMutex
	record address.Record
	errs   address.Errors
}

func NewForm() *Form {
	return &Form{errs: address.Errors{}}
}

func (f *Form) Record() address.Record {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.record
}

// Errors returns a copy of the last validation result.
func (f *Form) Errors() address.Errors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(address.Errors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// SetField replaces a single attribute. It does not re-validate.
func (f *Form) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.record.Set(name, value) {
		return ErrUnknownField
	}
	return nil
}

func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record = address.Record{}
	f.errs = address.Errors{}
}

// FillSample overwrites every editable field with Sample. The address id is
// kept so the sample can be used while editing.
func (f *Form) FillSample() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.record.ID
	f.record = Sample
	f.record.ID = id
}

// Load prepopulates the form, typically with an existing address to edit.
func (f *Form) Load(rec address.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record = rec
	f.errs = address.Errors{}
}

// Validate checks the working record and stores the result wholesale.
func (f *Form) Validate() address.Errors {
	_, errs := f.Check()
	return errs
}

// Check validates the working record and returns it together with the
// result, both taken under one lock. Edits made afterwards do not affect
// the returned record.
func (f *Form) Check() (address.Record, address.Errors) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = address.Validate(f.record)
	out := make(address.Errors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return f.record, out
}
