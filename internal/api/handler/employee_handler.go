package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/directory-api/internal/api/metrics"
	"github.com/staffdesk/directory-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee profiles.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// profileImageField is the multipart file field carrying the uploaded image.
const profileImageField = "profileImage"

// formImage extracts the optional uploaded profile image from a multipart
// request. The returned closer is nil when no file was sent.
func formImage(c echo.Context) (*ports.ProfileImageInput, func(), error) {
	fh, err := c.FormFile(profileImageField)
	if err != nil {
		// No multipart form or no file field; either way there is no image.
		return nil, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open upload: %w", err)
	}
	return &ports.ProfileImageInput{Filename: fh.Filename, Reader: f}, func() { _ = f.Close() }, nil
}

// Create stores a new employee profile, optionally with a profile image.
// An Idempotency-Key header makes the create replay-safe.
//
// @Summary      Create an employee profile
// @Tags         employees
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        profileImage  formData  file  false  "Profile image"
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return err
	}
	if closeImage != nil {
		defer closeImage()
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Role:            req.Role,
		Phone:           req.Phone,
		MobilePhone:     req.MobilePhone,
		Address:         req.Address,
		LinkedinProfile: req.LinkedinProfile,
		ProfileImage:    image,
		IdempotencyKey:  c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		return respond(c, http.StatusOK, "Employee already created", result.Employee)
	}

	metrics.EmployeesCreatedTotal.Inc()
	if image != nil {
		metrics.UploadsStoredTotal.Inc()
	}
	return respond(c, http.StatusCreated, "Employee created successfully", result.Employee)
}

// GetInfo returns the public profile for a username. No authentication
// required.
//
// @Summary      Get an employee profile by username
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  employeeInfoRequest  true  "Username"
// @Router       /employees/get-info [post]
func (h *EmployeeHandler) GetInfo(c echo.Context) error {
	var req employeeInfoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employee, err := h.service.GetByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Get employee info success", employee)
}

// List returns all employee profiles.
//
// @Summary      List employee profiles
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Get employees success", employees)
}

// Update edits an existing profile, optionally replacing its image.
//
// @Summary      Edit an employee profile
// @Tags         employees
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        profileImage  formData  file  false  "Profile image"
// @Router       /edit-employee [post]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req editEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return err
	}
	if closeImage != nil {
		defer closeImage()
	}

	employee, err := h.service.Update(c.Request().Context(), ports.UpdateEmployeeInput{
		ID:              req.ID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Role:            req.Role,
		Phone:           req.Phone,
		MobilePhone:     req.MobilePhone,
		Address:         req.Address,
		LinkedinProfile: req.LinkedinProfile,
		ProfileImage:    image,
	})
	if err != nil {
		return err
	}

	if image != nil {
		metrics.UploadsStoredTotal.Inc()
	}
	return respond(c, http.StatusOK, "Employee updated successfully", employee)
}

// Delete removes a profile.
//
// @Summary      Delete an employee profile
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  deleteEmployeeRequest  true  "Employee id"
// @Router       /employees [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	var req deleteEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Delete employee success", nil)
}
