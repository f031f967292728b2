package controller

import (
	"net/http"

	"dealership-api/internal/entity"
	"dealership-api/internal/service"
	"dealership-api/internal/ws"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
)

type auctionRoutesHandler struct {
	auctionService service.Auction
	validate       *validator.Validate
	hub            *ws.Hub
	upgrader       websocket.Upgrader
}

func newAuctionRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, hub *ws.Hub) *auctionRoutesHandler {
	h := &auctionRoutesHandler{
		auctionService: services.Auction,
		validate:       v,
		hub:            hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	outer.POST("/auctions", h.PostAuction)
	outer.GET("/auctions", h.GetAuctions)
	outer.GET("/auctions/:auctionId", h.GetAuction)
	outer.POST("/auctions/:auctionId/bids", h.PostBid)
	outer.PUT("/auctions/:auctionId/cancel", h.CancelAuction)
	outer.GET("/auctions/:auctionId/live", h.Live)

	return h
}

type postAuctionInput struct {
	Make          string  `json:"make" validate:"required,max=100"`
	Model         string  `json:"model" validate:"required,max=100"`
	Year          int     `json:"year" validate:"gte=0"`
	Mileage       int     `json:"mileage" validate:"gte=0"`
	FuelType      string  `json:"fuelType" validate:"max=50"`
	ImageUrl      string  `json:"imageUrl" validate:"max=500"`
	Description   string  `json:"description" validate:"max=2000"`
	StartingBid   float64 `json:"startingBid" validate:"required,gt=0"`
	DurationHours int     `json:"durationHours" validate:"required,gt=0"`
}

// /auctions
func (h *auctionRoutesHandler) PostAuction(c echo.Context) error {
	var input postAuctionInput
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

	model := &entity.CreateAuctionInput{
		Make: input.Make, Model: input.Model, Year: input.Year, Mileage: input.Mileage,
		FuelType: input.FuelType, ImageUrl: input.ImageUrl, Description: input.Description,
		StartingBid: input.StartingBid, DurationHours: input.DurationHours,
	}

	auction, err := h.auctionService.CreateAuction(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, auction); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrVehicleNameRequired:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Vehicle make and model are required"}); e != nil {
			return e
		}
	case service.ErrNonPositiveStartingBid:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Starting bid must be positive"}); e != nil {
			return e
		}
	case service.ErrNonPositiveDuration:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Auction duration must be positive"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getAuctionsInput struct {
	State  string `query:"state" validate:"omitempty,oneof=open ended"`
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
}

// /auctions. The stored status is not enough to tell an open auction from
// an expired one, so the state filter works on the computed Open flag.
func (h *auctionRoutesHandler) GetAuctions(c echo.Context) error {
	input := getAuctionsInput{Limit: defaultLimit, Offset: defaultOffset}
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
	auctions, err := h.auctionService.GetAuctions(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if input.State != "" {
		wantOpen := input.State == "open"
		filtered := make([]entity.AuctionOutputModel, 0)
		for _, a := range auctions {
			if a.Open == wantOpen {
				filtered = append(filtered, a)
			}
		}
		auctions = filtered
	}

	if e := c.JSON(http.StatusOK, auctions); e != nil {
		return e
	}

	return nil
}

// /auctions/:auctionId
func (h *auctionRoutesHandler) GetAuction(c echo.Context) error {
	auction, err := h.auctionService.GetAuctionById(c.Request().Context(), c.Param("auctionId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, auction); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrAuctionNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no auction with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postBidInput struct {
	BidderName  string  `json:"bidderName" validate:"required,max=100"`
	BidderPhone string  `json:"bidderPhone" validate:"required,max=30"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

// /auctions/:auctionId/bids. A rejected bid is a normal outcome and still
// answers 200; only missing auctions and store failures map to error codes.
func (h *auctionRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
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

	model := &entity.PlaceBidInput{
		BidderName:  input.BidderName,
		BidderPhone: input.BidderPhone,
		Amount:      input.Amount,
	}

	outcome, err := h.auctionService.PlaceBid(c.Request().Context(), c.Param("auctionId"), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, outcome); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrAuctionNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"Auction not found"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusServiceUnavailable, errorResponse{"Network error, please try again"}); e != nil {
			return e
		}
	}

	return err
}

// /auctions/:auctionId/cancel
func (h *auctionRoutesHandler) CancelAuction(c echo.Context) error {
	err := h.auctionService.CancelAuction(c.Request().Context(), c.Param("auctionId"))
	if err == nil {
		if e := c.NoContent(http.StatusOK); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrAuctionNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no auction with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /auctions/:auctionId/live
func (h *auctionRoutesHandler) Live(c echo.Context) error {
	auctionId := c.Param("auctionId")
	if _, err := h.auctionService.GetAuctionById(c.Request().Context(), auctionId); err != nil {
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no auction with given id"}); e != nil {
			return e
		}

		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := ws.NewClient(auctionId, conn)
	h.hub.Register(client)

	go client.WritePump()
	client.ReadPump(h.hub)

	return nil
}
