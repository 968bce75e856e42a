package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"swasthprameh/internal/ai"
	"swasthprameh/internal/ayurveda"
	"swasthprameh/internal/cache"
	"swasthprameh/internal/config"
	"swasthprameh/internal/llm"
	"swasthprameh/internal/models"
	"swasthprameh/internal/repository"

	"github.com/google/uuid"
)

// PlanLength is the fixed size of every generated plan. Model responses of a
// different length are padded or truncated to this size.
const PlanLength = 15

var (
	// ErrInvalidArgument marks missing required request fields.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstreamFatal marks completion-API errors that are not retried.
	ErrUpstreamFatal = errors.New("completion service error")
	// ErrParseFailure marks malformed JSON from the completion API. It is
	// counted and logged, then masked by the synthesized fallback plan.
	ErrParseFailure = errors.New("completion response is not valid JSON")
	// ErrContentPolicy marks a plan whose meals leave the approved food
	// vocabulary; the plan is replaced by the synthesized fallback.
	ErrContentPolicy = errors.New("plan violates approved food vocabulary")
)

// PlanGenerator runs the full generation pipeline: completion call with an
// ordered model-fallback policy, strict JSON parsing, vocabulary validation,
// 15-day normalization, then best-effort persistence and cache refresh.
type PlanGenerator struct {
	client   llm.Client
	planRepo repository.PlanRepository
	cache    *cache.RedisClient
	models   []string
	timeout  time.Duration

	parseFailures  atomic.Int64
	policyFailures atomic.Int64
}

func NewPlanGenerator(client llm.Client, planRepo repository.PlanRepository, planCache *cache.RedisClient, cfg *config.Config) *PlanGenerator {
	candidates := []string{cfg.LLMModel}
	if cfg.LLMModel != config.DefaultLLMModel {
		candidates = append(candidates, config.DefaultLLMModel)
	}

	return &PlanGenerator{
		client:   client,
		planRepo: planRepo,
		cache:    planCache,
		models:   candidates,
		timeout:  cfg.CompletionTimeout,
	}
}

// Generate produces a 15-day plan for the request. Without a configured
// completion client it returns the deterministic stub plan. Persistence and
// cache failures are logged and never surfaced: the caller always gets the
// plan that was generated.
func (g *PlanGenerator) Generate(ctx context.Context, req models.GeneratePlanRequest) (*models.GeneratedPlan, error) {
	if req.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidArgument)
	}
	if req.Context == nil {
		return nil, fmt.Errorf("%w: context is required", ErrInvalidArgument)
	}

	requestID := uuid.NewString()

	var generated *models.GeneratedPlan
	if g.client == nil {
		generated = StubPlan()
	} else {
		var err error
		generated, err = g.generateFromModel(ctx, requestID, req.Context)
		if err != nil {
			return nil, err
		}
	}

	g.persist(requestID, req, generated)
	return generated, nil
}

// ParseFailures exposes the masked parse-failure count for observability.
func (g *PlanGenerator) ParseFailures() int64 { return g.parseFailures.Load() }

// PolicyFailures exposes the vocabulary-violation count.
func (g *PlanGenerator) PolicyFailures() int64 { return g.policyFailures.Load() }

func (g *PlanGenerator) generateFromModel(ctx context.Context, requestID string, planContext map[string]interface{}) (*models.GeneratedPlan, error) {
	messages, err := ai.BuildPlanMessages(planContext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	var parsed *models.GeneratedPlan
	var lastErr error

	for _, model := range g.models {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		content, err := g.client.Complete(callCtx, llm.CompletionRequest{
			Model:     model,
			Messages:  messages,
			JSONMode:  true,
			MaxTokens: 2048,
		})
		cancel()

		if err != nil {
			lastErr = err
			if ShouldFallback(err) {
				log.Printf("plan %s: model %s decommissioned, trying next candidate", requestID, model)
				continue
			}
			break
		}

		plan, perr := parsePlan(content)
		if perr != nil {
			// Masked by design: the synthesize step below still yields a
			// usable plan, but the failure is counted and logged.
			g.parseFailures.Add(1)
			log.Printf("plan %s: %v (model %s)", requestID, perr, model)
			plan = &models.GeneratedPlan{Summary: "Plan unavailable", Plan: []models.PlanDay{}}
		}
		parsed = plan
		lastErr = nil
		break
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFatal, lastErr)
	}

	if err := ValidateVocabulary(parsed, dominantDosha(planContext)); err != nil {
		g.policyFailures.Add(1)
		log.Printf("plan %s: %v, falling back to synthesized plan", requestID, err)
		parsed = &models.GeneratedPlan{Summary: parsed.Summary, Plan: []models.PlanDay{}}
	}

	Normalize(parsed)
	return parsed, nil
}

// ShouldFallback decides whether a completion error warrants trying the next
// candidate model. Only decommissioned-model errors do; everything else
// aborts the loop.
func ShouldFallback(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "decommissioned")
}

// ValidateVocabulary checks every model-produced meal entry against the
// approved food list for the user's dosha. Plans for labels with no food
// bucket (e.g. Tridoshic) are not validated. Empty plans pass; they are
// replaced during normalization anyway.
func ValidateVocabulary(plan *models.GeneratedPlan, dosha string) error {
	if plan == nil || len(plan.Plan) == 0 {
		return nil
	}
	foods := ayurveda.ApprovedFoods(dosha)
	if foods == nil {
		return nil
	}

	for _, day := range plan.Plan {
		if day.Meals == "" {
			continue
		}
		if !foods.ContainsApproved(day.Meals) {
			return fmt.Errorf("%w: day %d meals %q", ErrContentPolicy, day.Day, day.Meals)
		}
	}
	return nil
}

// Normalize enforces the output invariant: a non-empty summary and exactly
// PlanLength day entries numbered 1..PlanLength. Short plans are padded with
// the fixed template, long ones truncated.
func Normalize(plan *models.GeneratedPlan) {
	if plan.Summary == "" {
		plan.Summary = "15-day lifestyle plan based on your profile."
	}

	if len(plan.Plan) > PlanLength {
		plan.Plan = plan.Plan[:PlanLength]
	}
	for len(plan.Plan) < PlanLength {
		plan.Plan = append(plan.Plan, templateDay())
	}
	for i := range plan.Plan {
		plan.Plan[i].Day = i + 1
	}
}

// StubPlan is the deterministic plan returned when no completion-API key is
// configured.
func StubPlan() *models.GeneratedPlan {
	days := make([]models.PlanDay, PlanLength)
	for i := range days {
		days[i] = models.PlanDay{
			Day:     i + 1,
			Morning: "10 min breathwork + light stretching",
			Meals:   "Warm, lightly spiced, low-sugar balanced meals",
			Evening: "20 min walk; digital sunset 1 hour before bed",
		}
	}
	return &models.GeneratedPlan{
		Summary: "Sample 15-day lifestyle plan (development stub).",
		Plan:    days,
	}
}

func templateDay() models.PlanDay {
	return models.PlanDay{
		Morning: "10 min breathwork + gentle stretching",
		Meals:   "Balanced, warm, low-sugar meals aligned to dosha moderation",
		Evening: "20 min walk; 5 min mindfulness; regular sleep time",
	}
}

func parsePlan(content string) (*models.GeneratedPlan, error) {
	var plan models.GeneratedPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return &plan, nil
}

func dominantDosha(planContext map[string]interface{}) string {
	if v, ok := planContext["dominant_dosha"].(string); ok {
		return v
	}
	return ""
}

// persist writes the plan row and refreshes the latest-plan cache. Both are
// best-effort: the generated plan is returned to the caller regardless.
func (g *PlanGenerator) persist(requestID string, req models.GeneratePlanRequest, generated *models.GeneratedPlan) {
	planJSON, err := json.Marshal(generated)
	if err != nil {
		log.Printf("plan %s: failed to marshal plan for persistence: %v", requestID, err)
		return
	}

	row := &models.Plan{
		UserID:      req.UserID,
		DiagnosisID: req.DiagnosisID,
		PlanJSON:    string(planJSON),
		Summary:     generated.Summary,
	}
	if g.planRepo != nil {
		if err := g.planRepo.SavePlan(row); err != nil {
			log.Printf("plan %s: failed to persist plan for user %d: %v", requestID, req.UserID, err)
		}
	}

	if g.cache != nil {
		if err := g.cache.StoreLatestPlan(req.UserID, generated); err != nil {
			log.Printf("plan %s: failed to cache latest plan for user %d: %v", requestID, req.UserID, err)
		}
	}
}
