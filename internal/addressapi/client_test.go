package addressapi

import (
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/pet-shop-checkout/internal/address"
	"github.com/wichananm65/pet-shop-checkout/internal/server"
	"github.com/wichananm65/pet-shop-checkout/internal/user"
)

// startAPI runs the real api on a loopback port with one seeded user.
func startAPI(t *testing.T) string {
	t.Helper()
	users := user.NewInMemoryRepository()
	svc := user.NewService(users)
	_, err := svc.Register(user.SignUp{Email: "aniket@example.com", Password: "secret1", FirstName: "Aniket", LastName: "Saini", Phone: "9639060737"})
	require.NoError(t, err)

	app := server.New(server.Deps{
		Users:     users,
		Addresses: address.NewInMemoryRepository(nil),
		Tokens:    user.TokenConfig{Secret: []byte("client-test"), TTL: time.Hour},
		Log:       zerolog.Nop(),
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}

var sample = address.Record{
	Name:    "Aniket Saini",
	Street:  "66/6B Main Post Office",
	City:    "Roorkee",
	State:   "Uttarakhand",
	Country: "India",
	Pincode: "247667",
	Phone:   "9639060737",
}

func TestClient_RoundTrip(t *testing.T) {
	c := New(startAPI(t), 5*time.Second)

	in, err := c.SignIn("aniket@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, in.Token)
	assert.Equal(t, "Aniket", in.User.FirstName)
	assert.Equal(t, "aniket@example.com", in.User.Email)

	list, err := c.ListAddresses(in.Token)
	require.NoError(t, err)
	assert.Empty(t, list)

	res, err := c.CreateAddress(sample, in.Token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	require.Len(t, res.AddressList, 1)
	created := res.AddressList[0]
	assert.Equal(t, sample.Name, created.Name)
	assert.NotZero(t, created.ID)

	upd := created.Record
	upd.Name = "Ravi Kumar"
	res, err = c.UpdateAddress(upd, in.Token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, res.AddressList, 1)
	assert.Equal(t, "Ravi Kumar", res.AddressList[0].Name)

	list, err = c.DeleteAddress(created.ID, in.Token)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClient_NonSuccessStatusIsNotAnError(t *testing.T) {
	c := New(startAPI(t), 5*time.Second)
	in, err := c.SignIn("aniket@example.com", "secret1")
	require.NoError(t, err)

	bad := sample
	bad.Pincode = "12"
	res, err := c.CreateAddress(bad, in.Token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, address.MsgPincode, res.Errors[address.FieldPincode])

	missing := sample
	missing.ID = 404
	res, err = c.UpdateAddress(missing, in.Token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, err = c.CreateAddress(sample, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestClient_Errors(t *testing.T) {
	c := New(startAPI(t), 5*time.Second)

	_, err := c.SignIn("aniket@example.com", "wrong")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Code)

	_, err = c.ListAddresses("")
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Code)

	_, err = c.UpdateAddress(sample, "token")
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestClient_TransportError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := New("http://"+addr, time.Second)
	_, err = c.CreateAddress(sample, "token")
	assert.Error(t, err)
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/api/v1/address", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).SendString("<html>oops</html>")
	})
	app.Post("/api/v1/address/:addressId", func(c *fiber.Ctx) error {
		return c.SendString("")
	})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	c := New("http://"+ln.Addr().String(), 5*time.Second)

	res, err := c.CreateAddress(sample, "token")
	assert.ErrorContains(t, err, "decode 201 response")
	assert.Nil(t, res.AddressList)

	upd := sample
	upd.ID = 1
	_, err = c.UpdateAddress(upd, "token")
	assert.ErrorContains(t, err, "decode 200 response")
}
