package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageResponse is the body of every response that does not carry an entity.
type MessageResponse struct {
	Message   string `json:"message"`
	ID        int    `json:"id,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Message writes a plain message response.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{
		Message:   message,
		RequestID: RequestID(c),
	})
}

// Created writes a 201 response carrying the identifier assigned by the database.
func Created(c *gin.Context, message string, id int) {
	c.JSON(201, MessageResponse{
		Message:   message,
		ID:        id,
		RequestID: RequestID(c),
	})
}

// RequestID returns the id set by the logging middleware, or a fresh one when
// the middleware did not run.
func RequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	id := uuid.New().String()[:8]
	c.Set("request_id", id)
	return id
}
