package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"table_reservations/pkg/auth"
	"table_reservations/pkg/database"
	"table_reservations/pkg/models"
	"table_reservations/pkg/validation"
)

const (
	msgFieldsRequired = "all fields are required"
	msgBadDate        = "date must be in dd-mm-yyyy format"
	msgGuestsRange    = "guest count must be between 1 and 20"
	msgBadTimeSlot    = "time must be one of the available slots"
	msgInvalidID      = "invalid reservation id"
)

const (
	opCreate = "create reservation"
	opList   = "list reservations"
	opDelete = "delete reservation"
)

// GuestCount holds the guest field as text. The form posts it as a string,
// API clients usually send a JSON number; both are accepted.
type GuestCount string

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*g = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = GuestCount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*g = GuestCount(n.String())
	return nil
}

// Int parses the count. Whole-valued decimals such as "4.0" are accepted.
func (g GuestCount) Int() (int, bool) {
	s := strings.TrimSpace(string(g))
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

type CreateRequest struct {
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Phone  string     `json:"phone"`
	Guests GuestCount `json:"guests"`
	Date   string     `json:"date"`
	Time   string     `json:"time"`
}

// Service implements the reservation lifecycle: guests create, the admin
// lists and deletes.
type Service struct {
	store  database.ReservationStore
	auth   auth.Authorizer
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store database.ReservationStore, authorizer auth.Authorizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		auth:   authorizer,
		logger: logger.With("component", "reservation"),
		now:    time.Now,
	}
}

// Create validates the request, normalizes it and stores a new reservation.
// Past dates are accepted here; only the booking form refuses them.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.Reservation, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	guestsText := strings.TrimSpace(string(req.Guests))
	date := strings.TrimSpace(req.Date)
	slot := strings.TrimSpace(req.Time)

	if name == "" || email == "" || phone == "" || guestsText == "" || date == "" || slot == "" {
		return nil, &ValidationError{Message: msgFieldsRequired}
	}
	if !validation.IsValidDate(date) {
		return nil, &ValidationError{Message: msgBadDate}
	}
	guests, ok := req.Guests.Int()
	if !ok || !validation.IsValidGuestCount(guests) {
		return nil, &ValidationError{Message: msgGuestsRange}
	}
	if !validation.IsValidTimeSlot(slot) {
		return nil, &ValidationError{Message: msgBadTimeSlot}
	}

	reservation := &models.Reservation{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Guests:    guests,
		Date:      date,
		Time:      slot,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.store.CreateReservation(ctx, reservation); err != nil {
		return nil, &StorageError{Op: opCreate, Err: err}
	}

	s.logger.InfoContext(ctx, "reservation created",
		"id", reservation.ID, "date", reservation.Date, "time", reservation.Time, "guests", reservation.Guests)
	return reservation, nil
}

// Login checks the admin password. It grants no server-side credential.
func (s *Service) Login(ctx context.Context, password string) error {
	if !s.auth.Authorize(password) {
		s.logger.WarnContext(ctx, "admin login rejected")
		return &AuthError{}
	}
	return nil
}

// List returns every reservation, most recent first.
func (s *Service) List(ctx context.Context, password string) ([]models.Reservation, error) {
	if !s.auth.Authorize(password) {
		return nil, &AuthError{}
	}

	reservations, err := s.store.ListReservations(ctx)
	if err != nil {
		return nil, &StorageError{Op: opList, Err: err}
	}
	return reservations, nil
}

// Delete removes the reservation identified by rawID, the text taken from
// the request path. Authorization is checked before the id is looked at.
func (s *Service) Delete(ctx context.Context, password, rawID string) error {
	if !s.auth.Authorize(password) {
		return &AuthError{}
	}

	id, err := strconv.ParseUint(rawID, 10, strconv.IntSize)
	if err != nil || id == 0 {
		return &ValidationError{Message: msgInvalidID}
	}

	if err := s.store.DeleteReservation(ctx, uint(id)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &NotFoundError{ID: uint(id)}
		}
		return &StorageError{Op: opDelete, Err: err}
	}

	s.logger.InfoContext(ctx, "reservation deleted", "id", id)
	return nil
}

// Healthy reports whether the underlying store answers.
func (s *Service) Healthy(ctx context.Context) error {
	return s.store.Ping(ctx)
}
