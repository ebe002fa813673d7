package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

type stubBookingService struct {
	reserveFn func(ctx context.Context, input ports.ReserveInput) (*domain.Booking, error)
	listFn    func(ctx context.Context, userID int64) ([]domain.Booking, error)
}

func (s *stubBookingService) Reserve(ctx context.Context, input ports.ReserveInput) (*domain.Booking, error) {
	return s.reserveFn(ctx, input)
}

func (s *stubBookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (s *stubBookingService) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.listFn(ctx, userID)
}

func (s *stubBookingService) Update(ctx context.Context, id int64, upd domain.BookingUpdate) (*domain.Booking, error) {
	return nil, domain.ErrBookingNotFound
}

func (s *stubBookingService) Delete(ctx context.Context, id int64) error {
	return domain.ErrBookingNotFound
}

func newBookingContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// Identity normally injected by the auth middleware.
	c.Set("username", "alice")
	c.Set("role", domain.RoleUser)
	return c, rec
}

func TestBookingHandler_Reserve_Success(t *testing.T) {
	stub := &stubBookingService{
		reserveFn: func(ctx context.Context, input ports.ReserveInput) (*domain.Booking, error) {
			if input.SpotID != 3 || input.UserID != 7 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if !input.CheckOut.After(input.CheckIn) {
				t.Fatalf("dates not parsed: %+v", input)
			}
			return &domain.Booking{
				ID:       11,
				UserID:   input.UserID,
				SpotID:   input.SpotID,
				CheckIn:  input.CheckIn,
				CheckOut: input.CheckOut,
				Status:   domain.BookingConfirmed,
			}, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := newBookingContext(http.MethodPost, `{"user_id":7,"spot_id":3,"check_in":"2026-07-01","check_out":"2026-07-04"}`)
	if err := handler.Reserve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var booking domain.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &booking); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if booking.ID != 11 || booking.Status != domain.BookingConfirmed {
		t.Fatalf("unexpected booking payload: %+v", booking)
	}
}

func TestBookingHandler_Reserve_Conflict(t *testing.T) {
	stub := &stubBookingService{
		reserveFn: func(ctx context.Context, input ports.ReserveInput) (*domain.Booking, error) {
			return nil, domain.ErrSpotAlreadyBooked
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := newBookingContext(http.MethodPost, `{"user_id":7,"spot_id":3,"check_in":"2026-07-01","check_out":"2026-07-04"}`)
	_ = handler.Reserve(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestBookingHandler_Reserve_SpotNotFound(t *testing.T) {
	stub := &stubBookingService{
		reserveFn: func(ctx context.Context, input ports.ReserveInput) (*domain.Booking, error) {
			return nil, domain.ErrSpotNotFound
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := newBookingContext(http.MethodPost, `{"user_id":7,"spot_id":99,"check_in":"2026-07-01","check_out":"2026-07-04"}`)
	_ = handler.Reserve(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBookingHandler_Reserve_BadDate(t *testing.T) {
	stub := &stubBookingService{
		reserveFn: func(ctx context.Context, input ports.ReserveInput) (*domain.Booking, error) {
			t.Fatal("service must not be called with an unparseable date")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := newBookingContext(http.MethodPost, `{"user_id":7,"spot_id":3,"check_in":"next tuesday","check_out":"2026-07-04"}`)
	_ = handler.Reserve(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookingHandler_Reserve_MissingIdentity(t *testing.T) {
	stub := &stubBookingService{
		reserveFn: func(ctx context.Context, input ports.ReserveInput) (*domain.Booking, error) {
			t.Fatal("service must not be called without identity")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"user_id":7,"spot_id":3,"check_in":"2026-07-01","check_out":"2026-07-04"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Reserve(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestBookingHandler_ListByUser_EmptyIsArray(t *testing.T) {
	stub := &stubBookingService{
		listFn: func(ctx context.Context, userID int64) ([]domain.Booking, error) {
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("42")

	if err := handler.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty json array, got %q", got)
	}
}

func TestBookingHandler_AcceptsRFC3339Dates(t *testing.T) {
	want := time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC)
	stub := &stubBookingService{
		reserveFn: func(ctx context.Context, input ports.ReserveInput) (*domain.Booking, error) {
			if !input.CheckIn.Equal(want) {
				t.Fatalf("check-in not parsed as RFC 3339: %v", input.CheckIn)
			}
			return &domain.Booking{ID: 1}, nil
		},
	}
	handler := NewBookingHandler(stub)

	c, rec := newBookingContext(http.MethodPost, `{"user_id":7,"spot_id":3,"check_in":"2026-07-01T15:00:00Z","check_out":"2026-07-04T11:00:00Z"}`)
	if err := handler.Reserve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
