package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "gestionusuarios/internal/errors"
	"gestionusuarios/internal/service"
)

// ConsultaHandler exposes the canned queries.
type ConsultaHandler struct {
	svc service.ConsultaService
}

// NewConsultaHandler creates a new consulta handler.
func NewConsultaHandler(svc service.ConsultaService) *ConsultaHandler {
	return &ConsultaHandler{svc: svc}
}

func queryMonto(c echo.Context, name string) (decimal.Decimal, error) {
	monto, err := decimal.NewFromString(c.QueryParam(name))
	if err != nil {
		return decimal.Zero, apperrors.ErrMontoInvalido
	}
	return monto, nil
}

// SueldoMayor godoc
// @Summary Usuarios earning more than monto
// @Tags consultas
// @Produce json
// @Param monto query number true "Amount in Bs."
// @Success 200 {array} model.Usuario
// @Failure 400 {object} errors.ErrorResponse
// @Router /consultas/sueldo-mayor [get]
func (h *ConsultaHandler) SueldoMayor(c echo.Context) error {
	monto, err := queryMonto(c, "monto")
	if err != nil {
		return respondError(c, err)
	}
	usuarios, err := h.svc.UsuariosSueldoMayor(c.Request().Context(), monto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, usuarios)
}

// SueldoEntre godoc
// @Summary Usuarios earning between min and max, inclusive
// @Tags consultas
// @Produce json
// @Param min query number true "Lower bound in Bs."
// @Param max query number true "Upper bound in Bs."
// @Success 200 {array} model.Usuario
// @Failure 400 {object} errors.ErrorResponse
// @Router /consultas/sueldo-entre [get]
func (h *ConsultaHandler) SueldoEntre(c echo.Context) error {
	min, err := queryMonto(c, "min")
	if err != nil {
		return respondError(c, err)
	}
	max, err := queryMonto(c, "max")
	if err != nil {
		return respondError(c, err)
	}
	usuarios, err := h.svc.UsuariosSueldoEntre(c.Request().Context(), min, max)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, usuarios)
}

// LlegaronTarde godoc
// @Summary Usuarios who arrived after their cargo's start time at least once
// @Tags consultas
// @Produce json
// @Success 200 {array} model.Usuario
// @Router /consultas/llegaron-tarde [get]
func (h *ConsultaHandler) LlegaronTarde(c echo.Context) error {
	usuarios, err := h.svc.UsuariosLlegaronTarde(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, usuarios)
}

// SalieronTemprano godoc
// @Summary Usuarios who left before their cargo's end time at least once
// @Tags consultas
// @Produce json
// @Success 200 {array} model.Usuario
// @Router /consultas/salieron-temprano [get]
func (h *ConsultaHandler) SalieronTemprano(c echo.Context) error {
	usuarios, err := h.svc.UsuariosSalieronTemprano(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, usuarios)
}
