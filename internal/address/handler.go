package address

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/wichananm65/pet-shop-checkout/internal/user"
)

// Handler delegates address operations to the address service.
type Handler struct {
	service *Service
	metrics *Metrics
	log     zerolog.Logger
}

func NewHandler(s *Service, m *Metrics, log zerolog.Logger) *Handler {
	return &Handler{service: s, metrics: m, log: log.With().Str("component", "address").Logger()}
}

func (h *Handler) RegisterProtectedRoutes(app fiber.Router) {
	app.Get("/api/v1/address", h.getAddresses)
	app.Post("/api/v1/address", h.addAddress)
	// update is accepted as POST for older clients and PATCH for newer ones
	app.Post("/api/v1/address/:addressId", h.updateAddress)
	app.Patch("/api/v1/address/:addressId", h.updateAddress)
	app.Delete("/api/v1/address/:addressId", h.deleteAddress)
}

// request payloads

type addressRequest struct {
	Address Record `json:"address"`
}

type addressListResponse struct {
	AddressList []Address `json:"addressList"`
}

func (h *Handler) getAddresses(c *fiber.Ctx) error {
	userID, err := user.IDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	addrs, err := h.service.GetAddresses(userID)
	if err != nil {
		return h.fail(c, "list", err)
	}
	h.metrics.observe("list", "ok")
	return c.JSON(addressListResponse{AddressList: addrs})
}

func (h *Handler) addAddress(c *fiber.Ctx) error {
	userID, err := user.IDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(addressRequest)
	if err := c.BodyParser(payload); err != nil {
		h.metrics.observe("create", "bad_request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	addrs, err := h.service.AddAddress(userID, payload.Address)
	if err != nil {
		return h.fail(c, "create", err)
	}
	h.metrics.observe("create", "ok")
	h.log.Info().Int("user_id", userID).Int("count", len(addrs)).Msg("address created")
	return c.Status(fiber.StatusCreated).JSON(addressListResponse{AddressList: addrs})
}

func (h *Handler) updateAddress(c *fiber.Ctx) error {
	userID, err := user.IDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	addressID, err := c.ParamsInt("addressId")
	if err != nil || addressID <= 0 {
		h.metrics.observe("update", "bad_request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid addressId"})
	}
	payload := new(addressRequest)
	if err := c.BodyParser(payload); err != nil {
		h.metrics.observe("update", "bad_request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.Address.ID = addressID

	addrs, err := h.service.UpdateAddress(userID, payload.Address)
	if err != nil {
		return h.fail(c, "update", err)
	}
	h.metrics.observe("update", "ok")
	h.log.Info().Int("user_id", userID).Int("address_id", addressID).Msg("address updated")
	return c.Status(fiber.StatusOK).JSON(addressListResponse{AddressList: addrs})
}

func (h *Handler) deleteAddress(c *fiber.Ctx) error {
	userID, err := user.IDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	addressID, err := c.ParamsInt("addressId")
	if err != nil || addressID <= 0 {
		h.metrics.observe("delete", "bad_request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid addressId"})
	}

	addrs, err := h.service.DeleteAddress(userID, addressID)
	if err != nil {
		return h.fail(c, "delete", err)
	}
	h.metrics.observe("delete", "ok")
	return c.JSON(addressListResponse{AddressList: addrs})
}

func (h *Handler) fail(c *fiber.Ctx, op string, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		h.metrics.observe(op, "invalid")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid address", "errors": verr.Errors})
	case errors.Is(err, ErrNotFound), errors.Is(err, user.ErrNotFound):
		h.metrics.observe(op, "not_found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
	default:
		h.metrics.observe(op, "error")
		h.log.Error().Err(err).Str("op", op).Msg("address request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
