package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gestionusuarios/internal/model"
	"gestionusuarios/internal/service"
)

// AsistenciaHandler records attendance.
type AsistenciaHandler struct {
	svc service.AsistenciaService
}

// NewAsistenciaHandler creates a new attendance handler.
func NewAsistenciaHandler(svc service.AsistenciaService) *AsistenciaHandler {
	return &AsistenciaHandler{svc: svc}
}

// CreateAsistenciaRequest records one day of attendance. An empty fecha means today.
type CreateAsistenciaRequest struct {
	IDUsuario   uint   `json:"id_usuario" validate:"required"`
	Fecha       string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	HoraEntrada string `json:"hora_entrada" validate:"required"`
	HoraSalida  string `json:"hora_salida"`
}

// CreateAsistencia godoc
// @Summary Record attendance
// @Tags asistencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param asistencia body CreateAsistenciaRequest true "Attendance"
// @Success 201 {object} model.Asistencia
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /asistencias [post]
func (h *AsistenciaHandler) CreateAsistencia(c echo.Context) error {
	var req CreateAsistenciaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	asistencia, err := h.svc.RegistrarAsistencia(c.Request().Context(), model.AsistenciaFormData(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, asistencia)
}
