package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"evseed/internal/model"
)

// Report summarises one seeding run.
type Report struct {
	ProjectID  string              `json:"project_id"`
	StartedAt  time.Time           `json:"started_at"`
	FinishedAt time.Time           `json:"finished_at"`
	Counts     map[string]int      `json:"counts"`
	Documents  []model.WriteResult `json:"documents"`
	Error      string              `json:"error,omitempty"`
}

// NewReport builds a Report from the documents a run created and its error.
func NewReport(projectID string, startedAt, finishedAt time.Time, created []model.WriteResult, runErr error) Report {
	r := Report{
		ProjectID:  projectID,
		StartedAt:  startedAt.UTC(),
		FinishedAt: finishedAt.UTC(),
		Counts: map[string]int{
			model.CollectionStations:     0,
			model.CollectionChargers:     0,
			model.CollectionUsers:        0,
			model.CollectionTransactions: 0,
		},
		Documents: created,
	}
	for _, wr := range created {
		r.Counts[wr.Collection]++
	}
	if runErr != nil {
		r.Error = runErr.Error()
	}
	return r
}

// PublishReport encodes r as JSON and publishes it to topic.
func PublishReport(ctx context.Context, p Publisher, topic string, r Report) (string, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode run report: %w", err)
	}
	return p.Publish(ctx, topic, payload)
}
