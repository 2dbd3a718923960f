package api

import (
	"context"

	"quizgen/internal/store"
)

// publishSubmissionCreated emits an event after a durable write. A nil
// bus or publish failure never affects the response.
func (a *API) publishSubmissionCreated(ctx context.Context, submission *store.Submission) {
	if a.bus == nil {
		return
	}

	err := a.bus.Publish(ctx, submissionCreatedTopic, map[string]any{
		"submission_id": submission.ID.Hex(),
		"email":         submission.Email,
		"source_type":   submission.SourceType,
		"num_questions": len(submission.Questions),
		"created_at":    submission.CreatedAt,
	})
	if err != nil {
		a.logger.Warn().Err(err).Msg("publish submission event")
	}
}
