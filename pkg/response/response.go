package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/pokecreche/pokecreche-api/pkg/errors"
)

// Fail is the error body every endpoint returns on failure. The message is
// the typed error's message only; driver detail stays in the server log.
type Fail struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON sends a success payload as-is. Each endpoint owns its body shape,
// which mirrors the contract the frontend already consumes.
func JSON(c *gin.Context, status int, body interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, body)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, body interface{}) {
	JSON(c, http.StatusCreated, body)
}

// Error converts any error into the common failure body.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, Fail{Success: false, Message: appErr.Message})
}
