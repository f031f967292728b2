package controller

import (
	"dealership-api/internal/service"
	"dealership-api/internal/ws"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, hub *ws.Hub) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newVehicleRoutesHandler(api, services, validate)
	newAuctionRoutesHandler(api, services, validate, hub)
	newBookingRoutesHandler(api, services, validate)
	newMessageRoutesHandler(api, services, validate)
	newChatRoutesHandler(api, services, validate)
	newLoanRoutesHandler(api, services, validate)
}
