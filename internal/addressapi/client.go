package addressapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/wichananm65/pet-shop-checkout/internal/address"
	"github.com/wichananm65/pet-shop-checkout/internal/logger"
	"github.com/wichananm65/pet-shop-checkout/internal/user"
)

var ErrMissingID = errors.New("address id is required for update")

// Response is what the address endpoints answer with. StatusCode is filled
// in for every completed round-trip, successful or not.
type Response struct {
	StatusCode  int               `json:"-"`
	Message     string            `json:"message,omitempty"`
	AddressList []address.Address `json:"addressList"`
	Errors      address.Errors    `json:"errors,omitempty"`
}

// StatusError reports a completed request that did not answer with the
// status the caller expected.
type StatusError struct {
	Op      string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Code)
}

type SignInResponse struct {
	Message string    `json:"message"`
	User    user.User `json:"user"`
	Token   string    `json:"token"`
}

// Client talks to the pet shop api using fiber's HTTP agent.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fiber.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{baseURL: baseURL, timeout: timeout, http: &fiber.Client{}}
}

type addressRequest struct {
	Address address.Record `json:"address"`
}

func (c *Client) agent(a *fiber.Agent, token string) *fiber.Agent {
	a.Timeout(c.timeout).Set(logger.RequestIDHeader, uuid.NewString())
	if token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return a
}

// do sends the request and decodes the JSON body into out. A 2xx answer
// must decode; for other statuses the body is best effort.
func do(a *fiber.Agent, out any) (int, error) {
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return 0, errors.Join(errs...)
	}
	if out == nil {
		return code, nil
	}
	if code >= fiber.StatusOK && code < fiber.StatusMultipleChoices {
		if err := json.Unmarshal(body, out); err != nil {
			return code, fmt.Errorf("decode %d response: %w", code, err)
		}
		return code, nil
	}
	if len(body) > 0 {
		_ = json.Unmarshal(body, out)
	}
	return code, nil
}

// SignIn exchanges credentials for a bearer token.
func (c *Client) SignIn(email, password string) (SignInResponse, error) {
	var out SignInResponse
	a := c.agent(c.http.Post(c.baseURL+"/api/v1/sign-in"), "").
		JSON(fiber.Map{"email": email, "password": password})
	code, err := do(a, &out)
	if err != nil {
		return out, fmt.Errorf("sign in: %w", err)
	}
	if code != fiber.StatusOK {
		return out, &StatusError{Op: "sign in", Code: code, Message: out.Message}
	}
	return out, nil
}

func (c *Client) ListAddresses(token string) ([]address.Address, error) {
	var out Response
	code, err := do(c.agent(c.http.Get(c.baseURL+"/api/v1/address"), token), &out)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	if code != fiber.StatusOK {
		return nil, &StatusError{Op: "list addresses", Code: code, Message: out.Message}
	}
	return out.AddressList, nil
}

// CreateAddress posts a new address. The api answers 201 on success.
func (c *Client) CreateAddress(rec address.Record, token string) (Response, error) {
	var out Response
	a := c.agent(c.http.Post(c.baseURL+"/api/v1/address"), token).
		JSON(addressRequest{Address: rec})
	code, err := do(a, &out)
	if err != nil {
		return Response{}, err
	}
	out.StatusCode = code
	return out, nil
}

// UpdateAddress replaces the address identified by rec.ID. The api answers
// 200 on success.
func (c *Client) UpdateAddress(rec address.Record, token string) (Response, error) {
	if rec.ID == 0 {
		return Response{}, ErrMissingID
	}
	var out Response
	url := c.baseURL + "/api/v1/address/" + strconv.Itoa(rec.ID)
	a := c.agent(c.http.Post(url), token).JSON(addressRequest{Address: rec})
	code, err := do(a, &out)
	if err != nil {
		return Response{}, err
	}
	out.StatusCode = code
	return out, nil
}

func (c *Client) DeleteAddress(id int, token string) ([]address.Address, error) {
	var out Response
	url := c.baseURL + "/api/v1/address/" + strconv.Itoa(id)
	code, err := do(c.agent(c.http.Delete(url), token), &out)
	if err != nil {
		return nil, fmt.Errorf("delete address: %w", err)
	}
	if code != fiber.StatusOK {
		return nil, &StatusError{Op: "delete address", Code: code, Message: out.Message}
	}
	return out.AddressList, nil
}
