package controller

import (
	"net/http"

	"dealership-api/internal/entity"
	"dealership-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type vehicleRoutesHandler struct {
	vehicleService service.Vehicle
	validate       *validator.Validate
}

func newVehicleRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *vehicleRoutesHandler {
	h := &vehicleRoutesHandler{vehicleService: services.Vehicle, validate: v}
	outer.POST("/vehicles", h.PostVehicle)
	outer.GET("/vehicles", h.GetVehicles)
	outer.GET("/vehicles/:vehicleId", h.GetVehicle)
	outer.PATCH("/vehicles/:vehicleId", h.EditVehicle)
	outer.DELETE("/vehicles/:vehicleId", h.DeleteVehicle)

	return h
}

type postVehicleInput struct {
	Make        string  `json:"make" validate:"required,max=100"`
	Model       string  `json:"model" validate:"required,max=100"`
	Year        int     `json:"year" validate:"gte=0"`
	Mileage     int     `json:"mileage" validate:"gte=0"`
	FuelType    string  `json:"fuelType" validate:"max=50"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageUrl    string  `json:"imageUrl" validate:"max=500"`
	Description string  `json:"description" validate:"max=2000"`
}

// /vehicles
func (h *vehicleRoutesHandler) PostVehicle(c echo.Context) error {
	var input postVehicleInput
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

	model := &entity.CreateVehicleInput{
		Make: input.Make, Model: input.Model, Year: input.Year, Mileage: input.Mileage,
		FuelType: input.FuelType, Price: input.Price, ImageUrl: input.ImageUrl,
		Description: input.Description,
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, vehicle); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrVehicleNameRequired:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Vehicle make and model are required"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getVehiclesInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /vehicles
func (h *vehicleRoutesHandler) GetVehicles(c echo.Context) error {
	input := getVehiclesInput{Limit: defaultLimit, Offset: defaultOffset}
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
	vehicles, err := h.vehicleService.GetVehicles(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, vehicles); e != nil {
		return e
	}

	return nil
}

// /vehicles/:vehicleId
func (h *vehicleRoutesHandler) GetVehicle(c echo.Context) error {
	vehicle, err := h.vehicleService.GetVehicleById(c.Request().Context(), c.Param("vehicleId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, vehicle); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrVehicleNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no vehicle with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type editVehicleInput struct {
	Make        *string  `json:"make" validate:"omitempty,max=100"`
	Model       *string  `json:"model" validate:"omitempty,max=100"`
	Year        *int     `json:"year" validate:"omitempty,gte=0"`
	Mileage     *int     `json:"mileage" validate:"omitempty,gte=0"`
	FuelType    *string  `json:"fuelType" validate:"omitempty,max=50"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageUrl    *string  `json:"imageUrl" validate:"omitempty,max=500"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
}

// /vehicles/:vehicleId
func (h *vehicleRoutesHandler) EditVehicle(c echo.Context) error {
	var input editVehicleInput
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

	model := &entity.EditVehicleInput{
		Make: input.Make, Model: input.Model, Year: input.Year, Mileage: input.Mileage,
		FuelType: input.FuelType, Price: input.Price, ImageUrl: input.ImageUrl,
		Description: input.Description,
	}

	vehicle, err := h.vehicleService.EditVehicleById(c.Request().Context(), c.Param("vehicleId"), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, vehicle); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrVehicleNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no vehicle with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /vehicles/:vehicleId
func (h *vehicleRoutesHandler) DeleteVehicle(c echo.Context) error {
	err := h.vehicleService.DeleteVehicleById(c.Request().Context(), c.Param("vehicleId"))
	if err == nil {
		if e := c.NoContent(http.StatusOK); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrVehicleNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no vehicle with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
