package api

import "github.com/alvinbaena/pwd-meter/pkg/strength"

type passwordRequest struct {
	Password   string   `json:"password"`
	UserInputs []string `json:"user_inputs"`
}

type passwordResponse struct {
	Scorer string `json:"scorer"`
	strength.Evaluation
}

type severitiesResponse struct {
	Scorer     string              `json:"scorer"`
	Severities []strength.Severity `json:"severities"`
}
