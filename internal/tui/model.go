package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/wichananm65/pet-shop-checkout/internal/address"
	"github.com/wichananm65/pet-shop-checkout/internal/addressform"
)

// API is the part of the address client the screen needs.
type API interface {
	addressform.AddressAPI
	DeleteAddress(id int, token string) ([]address.Address, error)
}

type Options struct {
	API         API
	Session     *addressform.Session
	Addresses   []address.Address
	Log         zerolog.Logger
	SubmitGuard bool
}

var labels = map[string]string{
	address.FieldName:    "Name",
	address.FieldStreet:  "Street",
	address.FieldCity:    "City",
	address.FieldState:   "State",
	address.FieldCountry: "Country",
	address.FieldPincode: "Pincode",
	address.FieldPhone:   "Phone",
}

type submitDoneMsg struct{ attempt addressform.Attempt }

type deletedMsg struct {
	list []address.Address
	err  error
}

// Model is the address book screen with its add/edit modal.
type Model struct {
	api     API
	session *addressform.Session
	log     zerolog.Logger

	form    *addressform.Form
	modal   *addressform.Modal
	book    *addressform.AddressBook
	toaster *Toaster
	coord   *addressform.Coordinator

	cursor     int
	inputs     []textinput.Model
	focus      int
	submitting bool
	toast      string
}

func New(opts Options) *Model {
	m := &Model{
		api:     opts.API,
		session: opts.Session,
		log:     opts.Log,
		form:    addressform.NewForm(),
		modal:   &addressform.Modal{},
		book:    &addressform.AddressBook{},
		toaster: &Toaster{},
	}
	m.book.SetAddresses(opts.Addresses)
	m.coord = addressform.NewCoordinator(addressform.Deps{
		Form:     m.form,
		API:      opts.API,
		Tokens:   opts.Session,
		Store:    m.book,
		Modal:    m.modal,
		Notifier: m.toaster,
		Log:      opts.Log,
	}, addressform.WithInFlightGuard(opts.SubmitGuard),
		addressform.WithTransitionHook(func(from, to addressform.State) {
			opts.Log.Debug().Stringer("from", from).Stringer("to", to).Msg("submission state")
		}))

	for _, f := range address.Fields {
		in := textinput.New()
		in.Prompt = labels[f] + ": "
		in.CharLimit = 120
		m.inputs = append(m.inputs, in)
	}
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		m.submitting = m.coord.InFlight()
		if t := m.toaster.Take(); t != "" {
			m.toast = t
		}
		m.clampCursor()
		return m, nil
	case deletedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("address delete failed")
			return m, nil
		}
		m.book.SetAddresses(msg.list)
		m.toast = "Address removed."
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if m.modal.IsOpen() {
			return m.updateModal(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.book.Addresses()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case "a":
		m.form.Reset()
		m.openModal(false)
	case "e":
		if len(list) == 0 {
			return m, nil
		}
		m.form.Load(list[m.cursor].Record)
		m.openModal(true)
	case "d":
		if len(list) == 0 {
			return m, nil
		}
		id, token := list[m.cursor].ID, m.session.Token()
		return m, func() tea.Msg {
			out, err := m.api.DeleteAddress(id, token)
			return deletedMsg{list: out, err: err}
		}
	}
	return m, nil
}

func (m *Model) openModal(edit bool) {
	m.toast = ""
	m.modal.SetEdit(edit)
	m.modal.SetOpen(true)
	m.syncInputs()
	m.inputs[m.focus].Blur()
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.modal.SetOpen(false)
		return m, nil
	case "tab", "shift+tab":
		dir := 1
		if msg.String() == "shift+tab" {
			dir = -1
		}
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	case "ctrl+d":
		m.form.FillSample()
		m.syncInputs()
		return m, nil
	case "enter":
		m.submitting = true
		coord := m.coord
		return m, func() tea.Msg { return submitDoneMsg{attempt: coord.Submit()} }
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if err := m.form.SetField(address.Fields[m.focus], m.inputs[m.focus].Value()); err != nil {
		m.log.Error().Err(err).Msg("form field")
	}
	return m, cmd
}

func (m *Model) syncInputs() {
	rec := m.form.Record()
	for i, f := range address.Fields {
		v, _ := rec.Get(f)
		m.inputs[i].SetValue(v)
	}
}

func (m *Model) clampCursor() {
	n := len(m.book.Addresses())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	if m.modal.IsOpen() {
		return m.modalView()
	}
	return m.listView()
}

func (m *Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Shipping addresses"))
	b.WriteString("\n\n")

	list := m.book.Addresses()
	if len(list) == 0 {
		b.WriteString(mutedStyle.Render("No saved addresses yet."))
		b.WriteString("\n")
	}
	for i, a := range list {
		line := fmt.Sprintf("%s, %s, %s, %s %s, %s (%s)", a.Name, a.Street, a.City, a.State, a.Pincode, a.Country, a.Phone)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.toast != "" {
		b.WriteString("\n" + toastStyle.Render(m.toast) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("a: add  e: edit  d: delete  ↑/↓: move  q: quit"))
	return b.String()
}

func (m *Model) modalView() string {
	title := "Add Address"
	if m.modal.IsEdit() {
		title = "Edit Address"
	}
	errs := m.form.Errors()

	lines := []string{titleStyle.Render(title), ""}
	for i, f := range address.Fields {
		lines = append(lines, m.inputs[i].View())
		if msg, ok := errs[f]; ok {
			lines = append(lines, errorStyle.Render("  "+msg))
		}
	}
	if m.submitting {
		lines = append(lines, "", mutedStyle.Render("Saving..."))
	}
	lines = append(lines, "", helpStyle.Render("enter: save  esc: cancel  tab: next field  ctrl+d: add dummy data"))
	return modalStyle.Render(strings.Join(lines, "\n"))
}
