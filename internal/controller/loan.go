package controller

import (
	"net/http"

	"dealership-api/internal/entity"
	"dealership-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type loanRoutesHandler struct {
	loanService service.Loan
	validate    *validator.Validate
}

func newLoanRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *loanRoutesHandler {
	h := &loanRoutesHandler{loanService: services.Loan, validate: v}
	outer.GET("/loan/quote", h.GetQuote)

	return h
}

type loanQuoteInput struct {
	Principal  float64 `query:"principal" validate:"required,gt=0"`
	AnnualRate float64 `query:"annualRate" validate:"gte=0,lte=100"`
	TermMonths int     `query:"termMonths" validate:"required,gt=0,lte=120"`
}

// /loan/quote
func (h *loanRoutesHandler) GetQuote(c echo.Context) error {
	var input loanQuoteInput
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

	model := &entity.LoanQuoteInput{
		Principal:  input.Principal,
		AnnualRate: input.AnnualRate,
		TermMonths: input.TermMonths,
	}

	quote, err := h.loanService.Quote(model)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Loan principal and term must be positive"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, quote); e != nil {
		return e
	}

	return nil
}
