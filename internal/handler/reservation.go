package handler

import (
	"log"      // request outcomes are logged the same way the original service did
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/GuntasBains77/Smart-Parking-Project/internal/model"
)

// ReservationHandler serves slot reservation submissions and the
// reservation listing.  Validation is presence-only: an empty user ID or
// a zero slot number is rejected, nothing else is checked.  No
// uniqueness applies — the same slot can be reserved any number of
// times.
type ReservationHandler struct {
	Store ReservationStore
}

// NewReservationHandler constructs a ReservationHandler.  The store must
// be non-nil.
func NewReservationHandler(store ReservationStore) *ReservationHandler {
	if store == nil {
		panic("nil store passed to NewReservationHandler")
	}
	return &ReservationHandler{Store: store}
}

// ReserveSlot handles POST /reserve-slot.  The body must carry a
// non-empty userId and a non-zero slotNumber.  On success it returns 201
// with the stored document, including the generated ID and the
// reservedAt default applied by the database.
func (h *ReservationHandler) ReserveSlot(c echo.Context) error {
	var body struct {
		UserID     string `json:"userId"`
		SlotNumber int    `json:"slotNumber"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "User ID and Slot Number are required"})
	}
	if body.UserID == "" || body.SlotNumber == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "User ID and Slot Number are required"})
	}

	res := model.Reservation{UserID: body.UserID, SlotNumber: body.SlotNumber}
	if err := h.Store.Create(c.Request().Context(), &res); err != nil {
		log.Printf("reservation: save failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error reserving slot"})
	}
	log.Printf("reservation: saved | id=%d | user_id=%s | slot=%d", res.ID, res.UserID, res.SlotNumber)
	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Slot reserved successfully",
		"reservation": res,
	})
}

// GetReservations handles GET /reservations.  It returns every stored
// reservation as a JSON array with no pagination or filtering.
func (h *ReservationHandler) GetReservations(c echo.Context) error {
	list, err := h.Store.ListAll(c.Request().Context())
	if err != nil {
		log.Printf("reservation: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching reservations"})
	}
	return c.JSON(http.StatusOK, list)
}
