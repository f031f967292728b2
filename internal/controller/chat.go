package controller

import (
	"net/http"

	"dealership-api/internal/entity"
	"dealership-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type chatRoutesHandler struct {
	chatService service.Chat
	leadService service.Lead
	validate    *validator.Validate
}

func newChatRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *chatRoutesHandler {
	h := &chatRoutesHandler{chatService: services.Chat, leadService: services.Lead, validate: v}
	outer.POST("/chat", h.PostChat)
	outer.GET("/leads", h.GetLeads)

	return h
}

type chatTurnInput struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=2000"`
}

type postChatInput struct {
	SessionId string          `json:"sessionId" validate:"required,max=100"`
	Message   string          `json:"message" validate:"required,max=2000"`
	History   []chatTurnInput `json:"history" validate:"omitempty,max=50,dive"`
}

// /chat
func (h *chatRoutesHandler) PostChat(c echo.Context) error {
	var input postChatInput
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

	history := make([]entity.ChatTurn, 0, len(input.History))
	for _, turn := range input.History {
		history = append(history, entity.ChatTurn{Role: turn.Role, Content: turn.Content})
	}

	model := &entity.ChatInput{
		SessionId: input.SessionId,
		Message:   input.Message,
		History:   history,
	}

	reply, err := h.chatService.Chat(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusBadGateway, errorResponse{"Assistant is unavailable, please try again"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, reply); e != nil {
		return e
	}

	return nil
}

type getLeadsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /leads
func (h *chatRoutesHandler) GetLeads(c echo.Context) error {
	input := getLeadsInput{Limit: defaultLimit, Offset: defaultOffset}
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
	leads, err := h.leadService.GetLeads(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, leads); e != nil {
		return e
	}

	return nil
}
