package handler

import "github.com/labstack/echo/v4"

// envelope is the canonical success response shape. The matching failure
// shape (success=false, no data) is rendered by the central error handler.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}
