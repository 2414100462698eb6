// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"net/http"

	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/gin-gonic/gin"
)

// MaxBodyBytes bounds the password request body.
const MaxBodyBytes = 16 << 10

type strengthApi struct {
	evaluator *strength.Evaluator
}

func (s *strengthApi) checkPassword(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}

		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev := s.evaluator.WithUserInputs(req.UserInputs).Evaluate(req.Password)
	c.JSON(http.StatusOK, passwordResponse{
		Scorer:     s.evaluator.Scorer().Name(),
		Evaluation: ev,
	})
}

func (s *strengthApi) severities(c *gin.Context) {
	table := s.evaluator.Scorer().Severities()
	c.JSON(http.StatusOK, severitiesResponse{
		Scorer:     s.evaluator.Scorer().Name(),
		Severities: table[:],
	})
}

// RegisterStrengthApi adds the password strength endpoints to group.
func RegisterStrengthApi(group *gin.RouterGroup, evaluator *strength.Evaluator) {
	s := &strengthApi{evaluator: evaluator}

	group.POST("/password", s.checkPassword)
	group.GET("/severities", s.severities)
}
