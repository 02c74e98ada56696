package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gestionusuarios/internal/model"
	"gestionusuarios/internal/service"
)

// UsuarioHandler serves the usuario CRUD.
type UsuarioHandler struct {
	svc service.UsuarioService
}

// NewUsuarioHandler creates a new usuario handler.
func NewUsuarioHandler(svc service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{svc: svc}
}

// CreateUsuarioRequest is the form submitted to create a usuario.
type CreateUsuarioRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	IDCargo     string `json:"id_cargo" validate:"required"`
	FechaInicio string `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
}

// UpdateUsuarioRequest carries the fields to change; empty fields are left as they are.
type UpdateUsuarioRequest struct {
	Nombre      string `json:"nombre"`
	Email       string `json:"email" validate:"omitempty,email"`
	IDCargo     string `json:"id_cargo"`
	FechaInicio string `json:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
}

// ListUsuarios godoc
// @Summary List usuarios with their cargo
// @Tags usuarios
// @Produce json
// @Success 200 {array} model.Usuario
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios [get]
func (h *UsuarioHandler) ListUsuarios(c echo.Context) error {
	usuarios, err := h.svc.ListarUsuarios(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, usuarios)
}

// GetUsuario godoc
// @Summary Get usuario by id
// @Tags usuarios
// @Produce json
// @Param id path int true "Usuario ID"
// @Success 200 {object} model.Usuario
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [get]
func (h *UsuarioHandler) GetUsuario(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	usuario, err := h.svc.ObtenerUsuario(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, usuario)
}

// CreateUsuario godoc
// @Summary Create usuario and assign its cargo
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param usuario body CreateUsuarioRequest true "Usuario form"
// @Success 201 {object} model.Usuario
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /usuarios [post]
func (h *UsuarioHandler) CreateUsuario(c echo.Context) error {
	var req CreateUsuarioRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	usuario, err := h.svc.AgregarUsuario(c.Request().Context(), model.UsuarioFormData(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, usuario)
}

// UpdateUsuario godoc
// @Summary Update usuario
// @Description Only non-empty fields change. A non-empty id_cargo moves the usuario to that cargo.
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Usuario ID"
// @Param usuario body UpdateUsuarioRequest true "Fields to change"
// @Success 200 {object} model.Usuario
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /usuarios/{id} [put]
func (h *UsuarioHandler) UpdateUsuario(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateUsuarioRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	usuario, err := h.svc.ModificarUsuario(c.Request().Context(), id, model.UsuarioFormData(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, usuario)
}

// DeleteUsuario godoc
// @Summary Delete usuario with its assignment and attendance
// @Tags usuarios
// @Security BearerAuth
// @Param id path int true "Usuario ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *UsuarioHandler) DeleteUsuario(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.EliminarUsuario(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
