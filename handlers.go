package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ifoundaim/videogen-mcp/videogen"
)

// generateVideoHandler handles REST video generation requests. Same contract
// as the generate_video MCP tool.
func (s *AppServer) generateVideoHandler(c *gin.Context) {
	var in videogen.RawInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Invalid request parameters", err.Error())
		return
	}

	if err := ValidateInput(in); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Invalid request parameters", err.Error())
		return
	}

	logrus.Infof("Received video generation request: aspect_ratio=%s, prompt_len=%d",
		in.AspectRatio, len(in.Prompt))

	result, err := s.service.GenerateVideo(c.Request.Context(), in)
	if err != nil {
		if videogen.IsInputError(err) {
			respondError(c, http.StatusBadRequest, "INVALID_PROMPT",
				"Invalid prompt", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "GENERATION_FAILED",
			"Failed to generate video", err.Error())
		return
	}

	respondSuccess(c, result, "Generation request completed")
}
