package addressform

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wichananm65/pet-shop-checkout/internal/address"
	"github.com/wichananm65/pet-shop-checkout/internal/addressapi"
)

var ErrSubmitInFlight = errors.New("address submission already in flight")

const MsgCreated = "New address added successfully!"

// UpdatedMessage is the notification shown after an update.
func UpdatedMessage(name string) string {
	return fmt.Sprintf("%s's address updated successfully!", name)
}

type AddressAPI interface {
	CreateAddress(rec address.Record, token string) (addressapi.Response, error)
	UpdateAddress(rec address.Record, token string) (addressapi.Response, error)
}

type TokenSource interface {
	Token() string
}

type AddressStore interface {
	SetAddresses(list []address.Address)
}

type ModalState interface {
	IsEdit() bool
	SetEdit(edit bool)
	SetOpen(open bool)
}

type Notifier interface {
	Success(message string)
}

// Deps are the collaborators a Coordinator drives.
type Deps struct {
	Form     *Form
	API      AddressAPI
	Tokens   TokenSource
	Store    AddressStore
	Modal    ModalState
	Notifier Notifier
	Log      zerolog.Logger
}

// Attempt is the outcome of one Submit call. A submit refused by the
// in-flight guard reports Idle with ErrSubmitInFlight.
type Attempt struct {
	State  State
	Errors address.Errors
	Err    error
}

type Option func(*Coordinator)

// WithInFlightGuard rejects a submit while another request is outstanding.
// Enabled by default.
func WithInFlightGuard(on bool) Option {
	return func(c *Coordinator) { c.guard = on }
}

// WithTransitionHook observes every state change.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(c *Coordinator) { c.hook = fn }
}

// Coordinator validates the form and sends it to the api as a create or an
// update depending on the modal's edit flag.
type Coordinator struct {
	deps  Deps
	guard bool
	hook  func(from, to State)

	mu       sync.Mutex
	state    State
	inFlight int
}

func NewCoordinator(deps Deps, opts ...Option) *Coordinator {
	c := &Coordinator{deps: deps, guard: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports the phase of the most recent attempt.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// InFlight reports whether a request is outstanding.
func (c *Coordinator) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

func (c *Coordinator) transition(to State) {
	c.mu.Lock()
	from := c.state
	c.state = to
	hook := c.hook
	c.mu.Unlock()
	if hook != nil {
		hook(from, to)
	}
}

// Submit runs one submission attempt and returns its terminal state. The
// coordinator is back in Idle when Submit returns.
func (c *Coordinator) Submit() Attempt {
	if c.guard {
		c.mu.Lock()
		busy := c.inFlight > 0
		c.mu.Unlock()
		if busy {
			return Attempt{State: Idle, Err: ErrSubmitInFlight}
		}
	}

	c.transition(Validating)
	rec, errs := c.deps.Form.Check()
	if !errs.Valid() {
		c.transition(Rejected)
		c.transition(Idle)
		return Attempt{State: Rejected, Errors: errs}
	}

	c.mu.Lock()
	if c.guard && c.inFlight > 0 {
		c.mu.Unlock()
		c.transition(Idle)
		return Attempt{State: Idle, Err: ErrSubmitInFlight}
	}
	c.inFlight++
	c.mu.Unlock()
	c.transition(Requesting)

	edit := c.deps.Modal.IsEdit()
	res, err := c.send(rec, edit)

	c.mu.Lock()
	c.inFlight--
	c.mu.Unlock()

	if err != nil {
		c.deps.Log.Error().Err(err).
			Bool("edit", edit).
			Int("address_id", rec.ID).
			Msg("address submission failed")
		c.transition(Failed)
		c.transition(Idle)
		return Attempt{State: Failed, Errors: errs, Err: err}
	}

	if edit {
		c.deps.Notifier.Success(UpdatedMessage(rec.Name))
	} else {
		c.deps.Notifier.Success(MsgCreated)
	}
	c.deps.Store.SetAddresses(res.AddressList)
	if edit {
		c.deps.Modal.SetEdit(false)
	}
	c.deps.Form.Reset()
	c.deps.Modal.SetOpen(false)

	c.transition(Succeeded)
	c.transition(Idle)
	return Attempt{State: Succeeded, Errors: errs}
}

func (c *Coordinator) send(rec address.Record, edit bool) (addressapi.Response, error) {
	token := c.deps.Tokens.Token()
	if edit {
		res, err := c.deps.API.UpdateAddress(rec, token)
		if err != nil {
			return res, fmt.Errorf("update address: %w", err)
		}
		if res.StatusCode != http.StatusOK {
			return res, &addressapi.StatusError{Op: "update address", Code: res.StatusCode}
		}
		return res, nil
	}

	res, err := c.deps.API.CreateAddress(rec, token)
	if err != nil {
		return res, fmt.Errorf("create address: %w", err)
	}
	if res.StatusCode != http.StatusCreated {
		return res, &addressapi.StatusError{Op: "create address", Code: res.StatusCode}
	}
	return res, nil
}
