package response

import (
	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase"
)

type TimelineResponse struct {
	Application ApplicationResponse               `json:"application"`
	History     []entities.EvaluationHistoryEntry `json:"history"`
	Decisions   []entities.AnalystDecision        `json:"decisions"`
	Activity    []entities.ActivityEntry          `json:"activity"`
}

func FromTimeline(t usecase.Timeline) TimelineResponse {
	return TimelineResponse{
		Application: FromApplication(t.Application),
		History:     t.History,
		Decisions:   t.Decisions,
		Activity:    t.Activity,
	}
}
