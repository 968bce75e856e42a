package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"swasthprameh/internal/config"
	"swasthprameh/internal/llm"
	"swasthprameh/internal/models"
	"swasthprameh/internal/repository"

	"github.com/stretchr/testify/assert"
)

// fakeCompletionClient scripts one response (or error) per call.
type fakeCompletionClient struct {
	responses []string
	errs      []error
	calls     int
	models    []string
}

func (f *fakeCompletionClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	i := f.calls
	f.calls++
	f.models = append(f.models, req.Model)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

// fakePlanRepository records saves and can simulate datastore failures.
type fakePlanRepository struct {
	repository.PlanRepository
	saved   []*models.Plan
	saveErr error
}

func (f *fakePlanRepository) SavePlan(plan *models.Plan) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, plan)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		LLMModel:          "primary-model",
		CompletionTimeout: config.Load().CompletionTimeout,
	}
}

func validModelPlan(days int) string {
	plan := models.GeneratedPlan{Summary: "Kapha-balancing 15-day plan."}
	for i := 0; i < days; i++ {
		plan.Plan = append(plan.Plan, models.PlanDay{
			Day:     i + 1,
			Morning: "Sunrise pranayama",
			Meals:   "Moong dal chila with ginger tea",
			Evening: "Evening walk",
		})
	}
	out, _ := json.Marshal(plan)
	return string(out)
}

func kaphaContext() map[string]interface{} {
	return map[string]interface{}{"dominant_dosha": "Kapha"}
}

func TestGenerateRequiresUserIDAndContext(t *testing.T) {
	gen := NewPlanGenerator(nil, &fakePlanRepository{}, nil, testConfig())

	_, err := gen.Generate(context.Background(), models.GeneratePlanRequest{Context: kaphaContext()})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = gen.Generate(context.Background(), models.GeneratePlanRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGenerateStubPathIsDeterministic(t *testing.T) {
	repo := &fakePlanRepository{}
	gen := NewPlanGenerator(nil, repo, nil, testConfig())
	req := models.GeneratePlanRequest{UserID: 1, Context: kaphaContext()}

	first, err := gen.Generate(context.Background(), req)
	assert.NoError(t, err)
	second, err := gen.Generate(context.Background(), req)
	assert.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Len(t, first.Plan, PlanLength)
	assert.Len(t, second.Plan, PlanLength)
	assert.Equal(t, first, second)
	assert.Len(t, repo.saved, 2)
}

func TestGenerateModelPlanIsNormalizedTo15(t *testing.T) {
	tests := []struct {
		name string
		days int
	}{
		{"model returns exactly 15", 15},
		{"short model plan is padded", 9},
		{"long model plan is truncated", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeCompletionClient{responses: []string{validModelPlan(tt.days)}}
			gen := NewPlanGenerator(client, &fakePlanRepository{}, nil, testConfig())

			plan, err := gen.Generate(context.Background(), models.GeneratePlanRequest{UserID: 1, Context: kaphaContext()})
			assert.NoError(t, err)
			assert.Len(t, plan.Plan, PlanLength)
			for i, day := range plan.Plan {
				assert.Equal(t, i+1, day.Day)
			}
			assert.Equal(t, "Kapha-balancing 15-day plan.", plan.Summary)
		})
	}
}

func TestGenerateFallsBackOnDecommissionedModel(t *testing.T) {
	client := &fakeCompletionClient{
		errs:      []error{errors.New("model_decommissioned: primary-model is retired"), nil},
		responses: []string{"", validModelPlan(15)},
	}
	gen := NewPlanGenerator(client, &fakePlanRepository{}, nil, testConfig())

	plan, err := gen.Generate(context.Background(), models.GeneratePlanRequest{UserID: 1, Context: kaphaContext()})
	assert.NoError(t, err)
	assert.Len(t, plan.Plan, PlanLength)
	assert.Equal(t, []string{"primary-model", config.DefaultLLMModel}, client.models)
}

func TestGenerateAbortsOnOtherUpstreamErrors(t *testing.T) {
	client := &fakeCompletionClient{errs: []error{errors.New("rate limit exceeded")}}
	gen := NewPlanGenerator(client, &fakePlanRepository{}, nil, testConfig())

	_, err := gen.Generate(context.Background(), models.GeneratePlanRequest{UserID: 1, Context: kaphaContext()})
	assert.ErrorIs(t, err, ErrUpstreamFatal)
	assert.Equal(t, 1, client.calls)
}

func TestGenerateExhaustedFallbacksPropagateLastError(t *testing.T) {
	client := &fakeCompletionClient{
		errs: []error{
			errors.New("model_decommissioned: primary-model"),
			errors.New("model_decommissioned: fallback too"),
		},
	}
	gen := NewPlanGenerator(client, &fakePlanRepository{}, nil, testConfig())

	_, err := gen.Generate(context.Background(), models.GeneratePlanRequest{UserID: 1, Context: kaphaContext()})
	assert.ErrorIs(t, err, ErrUpstreamFatal)
	assert.Contains(t, err.Error(), "fallback too")
	assert.Equal(t, 2, client.calls)
}

func TestGenerateMasksParseFailureWithSynthesizedPlan(t *testing.T) {
	client := &fakeCompletionClient{responses: []string{"not json at all"}}
	gen := NewPlanGenerator(client, &fakePlanRepository{}, nil, testConfig())

	plan, err := gen.Generate(context.Background(), models.GeneratePlanRequest{UserID: 1, Context: kaphaContext()})
	assert.NoError(t, err)
	assert.Len(t, plan.Plan, PlanLength)
	assert.Equal(t, "Plan unavailable", plan.Summary)
	assert.Equal(t, int64(1), gen.ParseFailures())
	// Parse failure is terminal: the fallback model is not consulted.
	assert.Equal(t, 1, client.calls)
}

func TestGenerateRejectsOffVocabularyMeals(t *testing.T) {
	offPlan := models.GeneratedPlan{Summary: "Tasty plan"}
	for i := 0; i < 15; i++ {
		offPlan.Plan = append(offPlan.Plan, models.PlanDay{
			Day: i + 1, Morning: "Run", Meals: "Bacon cheeseburger", Evening: "TV",
		})
	}
	raw, _ := json.Marshal(offPlan)

	client := &fakeCompletionClient{responses: []string{string(raw)}}
	gen := NewPlanGenerator(client, &fakePlanRepository{}, nil, testConfig())

	plan, err := gen.Generate(context.Background(), models.GeneratePlanRequest{UserID: 1, Context: kaphaContext()})
	assert.NoError(t, err)
	assert.Len(t, plan.Plan, PlanLength)
	// Model summary survives; meals come from the synthesized template.
	assert.Equal(t, "Tasty plan", plan.Summary)
	assert.NotEqual(t, "Bacon cheeseburger", plan.Plan[0].Meals)
	assert.Equal(t, int64(1), gen.PolicyFailures())
}

func TestGenerateSynthesizesWhenPlanMissing(t *testing.T) {
	client := &fakeCompletionClient{responses: []string{`{"summary":"Only a summary came back"}`}}
	gen := NewPlanGenerator(client, &fakePlanRepository{}, nil, testConfig())

	plan, err := gen.Generate(context.Background(), models.GeneratePlanRequest{UserID: 1, Context: kaphaContext()})
	assert.NoError(t, err)
	assert.Len(t, plan.Plan, PlanLength)
	assert.Equal(t, "Only a summary came back", plan.Summary)
}

func TestGeneratePersistenceFailureDoesNotBlock(t *testing.T) {
	repo := &fakePlanRepository{saveErr: errors.New("datastore unavailable")}
	gen := NewPlanGenerator(nil, repo, nil, testConfig())

	plan, err := gen.Generate(context.Background(), models.GeneratePlanRequest{UserID: 1, Context: kaphaContext()})
	assert.NoError(t, err)
	assert.NotNil(t, plan)
	assert.Len(t, plan.Plan, PlanLength)
}

func TestGeneratePersistedRowCarriesPlanJSON(t *testing.T) {
	repo := &fakePlanRepository{}
	diagID := uint(7)
	gen := NewPlanGenerator(nil, repo, nil, testConfig())

	plan, err := gen.Generate(context.Background(), models.GeneratePlanRequest{
		UserID:      42,
		DiagnosisID: &diagID,
		Context:     kaphaContext(),
	})
	assert.NoError(t, err)
	assert.Len(t, repo.saved, 1)

	row := repo.saved[0]
	assert.Equal(t, uint(42), row.UserID)
	assert.Equal(t, &diagID, row.DiagnosisID)
	assert.Equal(t, plan.Summary, row.Summary)

	var stored models.GeneratedPlan
	assert.NoError(t, json.Unmarshal([]byte(row.PlanJSON), &stored))
	assert.Len(t, stored.Plan, PlanLength)
}

func TestShouldFallback(t *testing.T) {
	assert.True(t, ShouldFallback(errors.New("model_decommissioned")))
	assert.True(t, ShouldFallback(errors.New("the model has been decommissioned")))
	assert.False(t, ShouldFallback(errors.New("context deadline exceeded")))
	assert.False(t, ShouldFallback(nil))
}

func TestValidateVocabulary(t *testing.T) {
	good := &models.GeneratedPlan{Plan: []models.PlanDay{
		{Day: 1, Meals: "Moong dal chila with ginger tea"},
	}}
	assert.NoError(t, ValidateVocabulary(good, "Kapha"))

	bad := &models.GeneratedPlan{Plan: []models.PlanDay{
		{Day: 1, Meals: "Deep fried snacks"},
	}}
	assert.ErrorIs(t, ValidateVocabulary(bad, "Kapha"), ErrContentPolicy)

	// Labels without a food bucket skip validation.
	assert.NoError(t, ValidateVocabulary(bad, "Tridoshic"))
	assert.NoError(t, ValidateVocabulary(nil, "Kapha"))
}
