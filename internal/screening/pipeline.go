package screening

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"screening-backend/internal/contact"
	"screening-backend/internal/extract"
	"screening-backend/internal/llm"
	"screening-backend/internal/notify"
	"screening-backend/internal/shared/metrics"
	"screening-backend/internal/shared/telemetry"
)

// extractText is indirected so tests can exercise the pipeline without
// real PDF bytes.
var extractText = extract.FromBytes

// Pipeline runs one submission through extraction, scoring, aggregation
// and notification. It holds no per-request state.
type Pipeline struct {
	Roles        []string
	ATSThreshold int
	CompanyName  string

	LLM      llm.Client
	Notifier notify.Notifier
	Repo     Repo

	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
	LLMTimeout       time.Duration
}

// Ready reports whether the pipeline can score resumes. The health
// endpoint exposes this so deploys with a missing API key are visible.
func (p *Pipeline) Ready() bool {
	if p.LLM == nil {
		return false
	}
	switch p.LLM.(type) {
	case llm.PlaceholderClient, *llm.PlaceholderClient:
		return false
	}
	return true
}

// Process screens a single submission synchronously. Notification failure
// is not fatal; every other stage failure aborts with a StageError.
func (p *Pipeline) Process(ctx context.Context, sub Submission) (Result, error) {
	startedAt := time.Now().UTC()
	id := uuid.NewString()
	metrics.IncScreeningStarted()
	p.logStage(ctx, id, sub.JobRole, StageReceived, nil)

	if err := p.validate(sub); err != nil {
		return p.fail(ctx, id, sub.JobRole, startedAt, failStage(StageReceived, KindValidation, err))
	}

	p.logStage(ctx, id, sub.JobRole, StageExtracting, nil)
	text, err := extractText(sub.File)
	if err != nil {
		var xerr *extract.Error
		if errors.As(err, &xerr) {
			return p.fail(ctx, id, sub.JobRole, startedAt, failStage(StageExtracting, KindExtraction, err))
		}
		return p.fail(ctx, id, sub.JobRole, startedAt, failStage(StageExtracting, KindInternal, err))
	}

	p.logStage(ctx, id, sub.JobRole, StageScoring, nil)
	scorer := newRetryingClient(p.LLM, p.RetryMaxAttempts, p.RetryBaseDelay, p.LLMTimeout)
	raw, err := scorer.ScoreResume(ctx, llm.ScoreInput{ResumeText: text, JobRole: sub.JobRole})
	if err != nil {
		return p.fail(ctx, id, sub.JobRole, startedAt, failStage(StageScoring, KindTransport, err))
	}

	ats, dims, err := parseModelResponse(raw)
	if err != nil {
		return p.fail(ctx, id, sub.JobRole, startedAt, failStage(StageScoring, KindSchema, err))
	}

	p.logStage(ctx, id, sub.JobRole, StageAggregating, nil)
	ats.Threshold = p.ATSThreshold
	ats.Passed = ats.Score >= p.ATSThreshold

	finalScore := Aggregate(ats.Score, dims)
	status := StatusProcessed
	if !ats.Passed {
		status = StatusBelowThreshold
	}

	info := contact.Merge(contact.Info{
		Name:     sub.CandidateName,
		Email:    sub.CandidateEmail,
		LinkedIn: sub.CandidateLinkedIn,
	}, contact.FromText(text))

	result := Result{
		ID:      id,
		JobRole: sub.JobRole,
		Status:  status,
		CandidateInfo: CandidateInfo{
			Name:     contact.OrNA(info.Name),
			Email:    contact.OrNA(info.Email),
			Phone:    contact.OrNA(info.Phone),
			LinkedIn: contact.OrNA(info.LinkedIn),
		},
		AtsCheck:        ats,
		DimensionScores: dims,
		FinalScore:      finalScore,
		CreatedAt:       startedAt,
	}

	p.logStage(ctx, id, sub.JobRole, StageNotifying, nil)
	result.EmailSent = p.notifyCandidate(ctx, result, info.Email)

	if p.Repo != nil {
		if err := p.Repo.Create(ctx, result); err != nil {
			telemetry.Error("screening.store_failed", map[string]any{
				"screening_id": id,
				"error":        sanitizeError(err),
			})
		}
	}

	completedAt := time.Now().UTC()
	metrics.IncScreeningCompleted()
	metrics.ObserveScreeningDurationMs(float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0)
	p.logStage(ctx, id, sub.JobRole, StageCompleted, map[string]any{
		"final_score": finalScore,
		"ats_score":   ats.Score,
		"status":      status,
		"email_sent":  result.EmailSent,
		"duration_ms": float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0,
	})
	return result, nil
}

func (p *Pipeline) validate(sub Submission) error {
	if len(sub.File) == 0 {
		return errors.New("No file uploaded")
	}
	if strings.TrimSpace(sub.JobRole) == "" {
		return errors.New("Job role is required")
	}
	if !p.roleSupported(sub.JobRole) {
		return fmt.Errorf("Unsupported job role: %s", sub.JobRole)
	}
	return nil
}

func (p *Pipeline) roleSupported(role string) bool {
	for _, r := range p.Roles {
		if strings.EqualFold(strings.TrimSpace(role), r) {
			return true
		}
	}
	return false
}

// notifyCandidate sends the outcome email. Failures are logged and
// reflected in email_sent, never surfaced as request errors.
func (p *Pipeline) notifyCandidate(ctx context.Context, result Result, email string) bool {
	if p.Notifier == nil || email == "" {
		return false
	}
	n := notify.Notification{
		CandidateName:  result.CandidateInfo.Name,
		CandidateEmail: email,
		JobRole:        result.JobRole,
		FinalScore:     result.FinalScore,
		ATSScore:       result.AtsCheck.Score,
		Recommendation: result.AtsCheck.Recommendation,
		Reasons:        result.AtsCheck.Reasons,
	}
	if err := p.Notifier.Notify(ctx, n); err != nil {
		metrics.IncEmailFailed()
		telemetry.Warn("screening.notify_failed", map[string]any{
			"screening_id": result.ID,
			"error":        sanitizeError(err),
		})
		return false
	}
	metrics.IncEmailSent()
	return true
}

func (p *Pipeline) fail(ctx context.Context, id, jobRole string, startedAt time.Time, serr *StageError) (Result, error) {
	completedAt := time.Now().UTC()
	metrics.IncScreeningFailed()
	metrics.ObserveScreeningDurationMs(float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0)
	p.logStage(ctx, id, jobRole, StageFailed, map[string]any{
		"failed_stage": serr.Stage,
		"kind":         string(serr.Kind),
		"error":        sanitizeError(serr.Err),
	})
	return Result{}, serr
}

func (p *Pipeline) logStage(ctx context.Context, id, jobRole, stage string, extra map[string]any) {
	fields := map[string]any{
		"screening_id": id,
		"job_role":     jobRole,
		"stage":        stage,
	}
	for k, v := range extra {
		fields[k] = v
	}
	telemetry.Info("screening.status", fields)
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
