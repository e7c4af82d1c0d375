package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareService/internal/domain"
	createBooking "github.com/m04kA/SMC-PetCareService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
)

type fakeUseCase struct {
	req  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	return f.resp, f.err
}

var flowID = uuid.MustParse("0b8e6a1c-5d2f-4e3a-8c7b-9a1d2e3f4a5b")

func submit(uc *fakeUseCase, target string, userID int64) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/booking-flows/{flowId}/submit", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, target, nil)
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		BookingID:   555,
		Status:      "pending",
		BookingType: domain.BookingTypeRecurring,
		AgreedPrice: domain.MustParseAmount("100"),
		Label:       domain.LabelPerNight,
		IsEstimate:  true,
		CheckoutURL: "https://pay.test/checkout/555",
	}}

	w := submit(uc, "/booking-flows/"+flowID.String()+"/submit", 5)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"booking_id": 555,
		"status": "pending",
		"booking_type": "recurring",
		"agreed_price": "100.00",
		"label": "`+domain.LabelPerNight+`",
		"is_estimate": true,
		"checkout_url": "https://pay.test/checkout/555"
	}`, w.Body.String())
	assert.Equal(t, flowID, uc.req.FlowID)
	assert.Equal(t, int64(5), uc.req.UserID)
}

func TestHandle_BadRequests(t *testing.T) {
	uc := &fakeUseCase{}

	assert.Equal(t, http.StatusUnauthorized, submit(uc, "/booking-flows/"+flowID.String()+"/submit", 0).Code)
	assert.Equal(t, http.StatusBadRequest, submit(uc, "/booking-flows/123/submit", 5).Code)
	assert.Nil(t, uc.req)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{createBooking.ErrFlowNotFound, http.StatusNotFound},
		{createBooking.ErrAccessDenied, http.StatusForbidden},
		{createBooking.ErrFlowNotReady, http.StatusUnprocessableEntity},
		{createBooking.ErrAlreadySubmitted, http.StatusConflict},
		{createBooking.ErrProviderNotFound, http.StatusNotFound},
		{createBooking.ErrServiceOptionNotFound, http.StatusNotFound},
		{createBooking.ErrBookingRejected, http.StatusUnprocessableEntity},
		{createBooking.ErrInvalidInput, http.StatusBadRequest},
		{createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := submit(&fakeUseCase{err: tt.err}, "/booking-flows/"+flowID.String()+"/submit", 5)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
