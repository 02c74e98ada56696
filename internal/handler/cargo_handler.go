package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"gestionusuarios/internal/model"
	"gestionusuarios/internal/service"
)

// CargoHandler serves the cargo catalogue.
type CargoHandler struct {
	svc service.CargoService
}

// NewCargoHandler creates a new cargo handler.
func NewCargoHandler(svc service.CargoService) *CargoHandler {
	return &CargoHandler{svc: svc}
}

// CreateCargoRequest creates a cargo. Missing hours default to 08:00:00 and 17:00:00.
type CreateCargoRequest struct {
	Cargo       string          `json:"cargo" validate:"required"`
	Sueldo      decimal.Decimal `json:"sueldo" swaggertype:"number"`
	HoraEntrada string          `json:"hora_entrada"`
	HoraSalida  string          `json:"hora_salida"`
}

// ListCargos godoc
// @Summary List cargos
// @Tags cargos
// @Produce json
// @Success 200 {array} model.Cargo
// @Failure 500 {object} errors.ErrorResponse
// @Router /cargos [get]
func (h *CargoHandler) ListCargos(c echo.Context) error {
	cargos, err := h.svc.ListarCargos(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cargos)
}

// CreateCargo godoc
// @Summary Create cargo
// @Tags cargos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cargo body CreateCargoRequest true "Cargo"
// @Success 201 {object} model.Cargo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /cargos [post]
func (h *CargoHandler) CreateCargo(c echo.Context) error {
	var req CreateCargoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cargo, err := h.svc.CrearCargo(c.Request().Context(), &model.Cargo{
		Cargo:       req.Cargo,
		Sueldo:      req.Sueldo,
		HoraEntrada: req.HoraEntrada,
		HoraSalida:  req.HoraSalida,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, cargo)
}
