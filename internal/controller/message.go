package controller

import (
	"net/http"

	"dealership-api/internal/entity"
	"dealership-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type messageRoutesHandler struct {
	messageService service.Message
	validate       *validator.Validate
}

func newMessageRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *messageRoutesHandler {
	h := &messageRoutesHandler{messageService: services.Message, validate: v}
	outer.POST("/messages", h.PostMessage)
	outer.GET("/messages", h.GetMessages)
	outer.PUT("/messages/:messageId/read", h.MarkMessageRead)

	return h
}

type postMessageInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,max=30"`
	Content string `json:"content" validate:"required,max=2000"`
}

type postMessageOutput struct {
	Id string `json:"id"`
}

// /messages
func (h *messageRoutesHandler) PostMessage(c echo.Context) error {
	var input postMessageInput
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

	model := &entity.CreateMessageInput{
		Name:    input.Name,
		Phone:   input.Phone,
		Content: input.Content,
	}

	id, err := h.messageService.CreateMessage(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, postMessageOutput{Id: id}); e != nil {
		return e
	}

	return nil
}

type getMessagesInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /messages
func (h *messageRoutesHandler) GetMessages(c echo.Context) error {
	input := getMessagesInput{Limit: defaultLimit, Offset: defaultOffset}
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
	messages, err := h.messageService.GetMessages(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, messages); e != nil {
		return e
	}

	return nil
}

// /messages/:messageId/read
func (h *messageRoutesHandler) MarkMessageRead(c echo.Context) error {
	err := h.messageService.MarkMessageReadById(c.Request().Context(), c.Param("messageId"))
	if err == nil {
		if e := c.NoContent(http.StatusOK); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrMessageNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no message with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
