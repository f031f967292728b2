package controller

import (
	"net/http"

	"dealership-api/internal/entity"
	"dealership-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bookingRoutesHandler struct {
	bookingService service.Booking
	validate       *validator.Validate
}

func newBookingRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bookingRoutesHandler {
	h := &bookingRoutesHandler{bookingService: services.Booking, validate: v}
	outer.POST("/bookings", h.PostBooking)
	outer.GET("/bookings", h.GetBookings)
	outer.PUT("/bookings/:bookingId/status", h.UpdateBookingStatus)

	return h
}

type postBookingInput struct {
	CustomerName  string  `json:"customerName" validate:"required,max=100"`
	CustomerPhone string  `json:"customerPhone" validate:"required,max=30"`
	VehicleId     *string `json:"vehicleId" validate:"omitempty,max=100"`
	Kind          string  `json:"kind" validate:"required,oneof=test_drive service"`
	RequestedAt   string  `json:"requestedAt" validate:"required"`
}

// /bookings
func (h *bookingRoutesHandler) PostBooking(c echo.Context) error {
	var input postBookingInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateBookingInput{
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		VehicleId:     input.VehicleId,
		Kind:          input.Kind,
		RequestedAt:   input.RequestedAt,
	}

	booking, err := h.bookingService.CreateBooking(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, booking); e != nil {
		return e
	}

	return nil
}

type getBookingsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /bookings
func (h *bookingRoutesHandler) GetBookings(c echo.Context) error {
	input := getBookingsInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bookings, err := h.bookingService.GetBookings(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, bookings); e != nil {
		return e
	}

	return nil
}

type updateBookingStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

// /bookings/:bookingId/status
func (h *bookingRoutesHandler) UpdateBookingStatus(c echo.Context) error {
	var input updateBookingStatusInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	booking, err := h.bookingService.UpdateBookingStatusById(c.Request().Context(), c.Param("bookingId"), input.Status)
	if err == nil {
		if e := c.JSON(http.StatusOK, booking); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrBookingNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no booking with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
