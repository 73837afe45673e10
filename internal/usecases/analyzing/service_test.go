package analyzing_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-optimizer-api/internal/config"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
	"github.com/vfg2006/ad-optimizer-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-optimizer-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func analysisConfig() *config.Config {
	return &config.Config{
		Analysis: config.Analysis{
			LookbackDays:        30,
			FetchTimeoutSeconds: 5,
			FetchRetryBackoffMs: 1,
			MinDataPoints:       1,
			RecoveryFraction:    0.7,

			RealizationDiscount:   0.3,
			WorstCaseMultiplier:   0.8,
			OpportunityCostFactor: 2.0,
			ConfidenceLowerBand:   0.85,
			ConfidenceUpperBand:   1.15,
			FallbackImprovement:   0.5,

			Demographic: config.DimensionThresholds{TopMultiplier: 2.0, MinConversions: 3, UnderMultiplier: 0.5, MinSpend: 50},
			Placement:   config.DimensionThresholds{TopMultiplier: 1.5, MinConversions: 2, UnderMultiplier: 0.6, MinSpend: 30},
			Geographic:  config.DimensionThresholds{TopMultiplier: 1.8, MinConversions: 3, UnderMultiplier: 0.5, MinSpend: 40},
			Temporal:    config.DimensionThresholds{TopMultiplier: 2.0, MinConversions: 2, UnderMultiplier: 0.4, MinSpend: 20},
		},
	}
}

func testEntity() *domain.AdEntity {
	return &domain.AdEntity{
		ID:       "ENT001",
		Name:     "Campanha Verão",
		Type:     domain.EntityTypeCampaign,
		Platform: domain.PlatformFacebook,
	}
}

func testBaseline() *domain.EntityBaseline {
	return &domain.EntityBaseline{
		EntityID: "ENT001",
		Spend:    1000.0,
		Revenue:  2000.0,
		ROAS:     2.0,
	}
}

type serviceMocks struct {
	breakdowns  *mocks.MockBreakdownSource
	baselines   *mocks.MockBaselineSource
	conversions *mocks.MockConversionSource
	rules       *mocks.MockRuleGenerator
}

func newServiceWithMocks(t *testing.T) (analyzing.EntityAnalyzer, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		breakdowns:  mocks.NewMockBreakdownSource(ctrl),
		baselines:   mocks.NewMockBaselineSource(ctrl),
		conversions: mocks.NewMockConversionSource(ctrl),
		rules:       mocks.NewMockRuleGenerator(ctrl),
	}

	service := analyzing.NewService(analysisConfig(), m.breakdowns, m.baselines, m.conversions, m.rules)

	return service, m
}

func TestService_AnalyzeEntity_SemDados(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.baselines.EXPECT().
		GetEntityBaseline(gomock.Any(), "ENT001").
		Return(testBaseline(), nil)

	// As quatro dimensões respondem sem linhas
	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", gomock.Any(), gomock.Any()).
		Return([]*domain.BreakdownRow{}, nil).
		Times(4)

	m.conversions.EXPECT().
		GetEnrichedConversions(gomock.Any(), "ENT001", 30).
		Return([]*domain.EnrichedConversion{}, nil)

	suggestions, err := service.AnalyzeEntity(context.Background(), testEntity())

	assert.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Len(t, suggestions, 0)
}

func TestService_AnalyzeEntity_FalhaDeAutenticacaoNoBaseline(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.baselines.EXPECT().
		GetEntityBaseline(gomock.Any(), "ENT001").
		Return(nil, analyzing.ErrUpstreamAuth)

	suggestions, err := service.AnalyzeEntity(context.Background(), testEntity())

	assert.ErrorIs(t, err, analyzing.ErrUpstreamAuth)
	assert.Nil(t, suggestions)
}

func TestService_AnalyzeEntity_FalhaDeAutenticacaoNaFonteDeBreakdown(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.baselines.EXPECT().
		GetEntityBaseline(gomock.Any(), "ENT001").
		Return(testBaseline(), nil)

	// Erro de autenticação não ganha nova tentativa e derruba a chamada inteira
	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", domain.DimensionDemographic, gomock.Any()).
		Return(nil, analyzing.ErrUpstreamAuth)

	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", gomock.Any(), gomock.Any()).
		Return([]*domain.BreakdownRow{}, nil).
		Times(3)

	m.conversions.EXPECT().
		GetEnrichedConversions(gomock.Any(), "ENT001", 30).
		Return([]*domain.EnrichedConversion{}, nil)

	suggestions, err := service.AnalyzeEntity(context.Background(), testEntity())

	assert.ErrorIs(t, err, analyzing.ErrUpstreamAuth)
	assert.Nil(t, suggestions)
}

func TestService_AnalyzeEntity_DegradacaoParcial(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.baselines.EXPECT().
		GetEntityBaseline(gomock.Any(), "ENT001").
		Return(testBaseline(), nil)

	// A dimensão demográfica falha nas duas tentativas; os irmãos seguem
	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", domain.DimensionDemographic, gomock.Any()).
		Return(nil, assert.AnError).
		Times(2)

	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", gomock.Any(), gomock.Any()).
		Return([]*domain.BreakdownRow{}, nil).
		Times(3)

	m.conversions.EXPECT().
		GetEnrichedConversions(gomock.Any(), "ENT001", 30).
		Return([]*domain.EnrichedConversion{}, nil)

	suggestions, err := service.AnalyzeEntity(context.Background(), testEntity())

	assert.NoError(t, err)
	assert.Len(t, suggestions, 0)
}

func TestService_AnalyzeEntity_SugestaoDemografica(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.baselines.EXPECT().
		GetEntityBaseline(gomock.Any(), "ENT001").
		Return(testBaseline(), nil)

	demographicRows := []*domain.BreakdownRow{
		{
			EntityID: "ENT001", Dimension: domain.DimensionDemographic,
			AgeRange: "25-34", Gender: "female",
			Impressions: 1000, Clicks: 50, Spend: 100.0, Conversions: 5, Revenue: 600.0,
		},
		{
			EntityID: "ENT001", Dimension: domain.DimensionDemographic,
			AgeRange: "55-64", Gender: "male",
			Impressions: 800, Clicks: 10, Spend: 80.0, Conversions: 0, Revenue: 40.0,
		},
	}

	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", domain.DimensionDemographic, gomock.Any()).
		Return(demographicRows, nil)

	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", gomock.Any(), gomock.Any()).
		Return([]*domain.BreakdownRow{}, nil).
		Times(3)

	m.conversions.EXPECT().
		GetEnrichedConversions(gomock.Any(), "ENT001", 30).
		Return([]*domain.EnrichedConversion{}, nil)

	recommendedRule := json.RawMessage(`{"action":"pause","target":"55-64|male"}`)
	m.rules.EXPECT().
		GenerateRule(gomock.Any(), gomock.Any()).
		Return(recommendedRule, nil)

	suggestions, err := service.AnalyzeEntity(context.Background(), testEntity())

	assert.NoError(t, err)
	assert.Len(t, suggestions, 1)

	suggestion := suggestions[0]
	assert.Equal(t, domain.SuggestionPauseDemographics, suggestion.SuggestionType)
	assert.Equal(t, "ENT001", suggestion.EntityID)
	assert.Equal(t, domain.EntityTypeCampaign, suggestion.EntityType)
	assert.NotEmpty(t, suggestion.ID)
	assert.Equal(t, 75, suggestion.PriorityScore)   // R$ 80 desperdiçados, abaixo do limiar de alta prioridade
	assert.Equal(t, 70, suggestion.ConfidenceScore) // um único segmento under

	assert.NotNil(t, suggestion.Reasoning)
	assert.Equal(t, 2.0, suggestion.Reasoning.Metrics["baseline_roas"])
	assert.Equal(t, 6.0, suggestion.Reasoning.Metrics["best_segment_roas"])
	assert.Equal(t, 200.0, suggestion.Reasoning.Metrics["best_segment_improvement"])
	assert.Equal(t, 80.0, suggestion.Reasoning.Metrics["wasted_spend"])
	assert.Equal(t, 2, suggestion.Reasoning.DataPointsAnalyzed)

	assert.NotNil(t, suggestion.EstimatedImpact)
	assert.Equal(t, 56.0, suggestion.EstimatedImpact.ExpectedSavings) // 80 * 0.7

	assert.Equal(t, recommendedRule, suggestion.RecommendedRule)
}

func TestService_AnalyzeEntity_FalhaNoGeradorDeRegraNaoInvalidaASugestao(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.baselines.EXPECT().
		GetEntityBaseline(gomock.Any(), "ENT001").
		Return(testBaseline(), nil)

	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", domain.DimensionDemographic, gomock.Any()).
		Return([]*domain.BreakdownRow{
			{
				EntityID: "ENT001", Dimension: domain.DimensionDemographic,
				AgeRange: "25-34", Gender: "female",
				Spend: 100.0, Conversions: 5, Revenue: 600.0,
			},
		}, nil)

	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", gomock.Any(), gomock.Any()).
		Return([]*domain.BreakdownRow{}, nil).
		Times(3)

	m.conversions.EXPECT().
		GetEnrichedConversions(gomock.Any(), "ENT001", 30).
		Return([]*domain.EnrichedConversion{}, nil)

	m.rules.EXPECT().
		GenerateRule(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	suggestions, err := service.AnalyzeEntity(context.Background(), testEntity())

	assert.NoError(t, err)
	assert.Len(t, suggestions, 1)
	assert.Nil(t, suggestions[0].RecommendedRule)
}

func TestService_AnalyzeEntity_SugestaoDeRetencao(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.baselines.EXPECT().
		GetEntityBaseline(gomock.Any(), "ENT001").
		Return(testBaseline(), nil)

	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", gomock.Any(), gomock.Any()).
		Return([]*domain.BreakdownRow{}, nil).
		Times(4)

	// 12 pedidos: 4 primeiras compras e 8 recorrentes, CLV 2.5x o ticket
	conversions := make([]*domain.EnrichedConversion, 0, 12)
	for i := 0; i < 12; i++ {
		conversions = append(conversions, &domain.EnrichedConversion{
			OrderID:               "ORD",
			EntityID:              "ENT001",
			IsFirstPurchase:       i < 4,
			OrderValue:            100.0,
			CustomerLifetimeValue: 250.0,
		})
	}

	m.conversions.EXPECT().
		GetEnrichedConversions(gomock.Any(), "ENT001", 30).
		Return(conversions, nil)

	m.rules.EXPECT().
		GenerateRule(gomock.Any(), gomock.Any()).
		Return(json.RawMessage(`{}`), nil)

	suggestions, err := service.AnalyzeEntity(context.Background(), testEntity())

	assert.NoError(t, err)
	assert.Len(t, suggestions, 1)

	suggestion := suggestions[0]
	assert.Equal(t, domain.SuggestionRetainCustomers, suggestion.SuggestionType)
	assert.Equal(t, 90, suggestion.PriorityScore)   // lucro esperado acima do limiar de alta prioridade
	assert.Equal(t, 70, suggestion.ConfidenceScore) // menos de 30 pedidos

	// (250 - 100) * 8 recorrentes * 0.7
	assert.Equal(t, 840.0, suggestion.EstimatedImpact.ExpectedProfit)
	assert.Equal(t, 2.5, suggestion.Reasoning.Metrics["clv_to_aov_ratio"])
}

func TestService_GenerateDeepAnalysis_SemDados(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.baselines.EXPECT().
		GetEntityBaseline(gomock.Any(), "ENT001").
		Return(testBaseline(), nil)

	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", gomock.Any(), gomock.Any()).
		Return([]*domain.BreakdownRow{}, nil).
		Times(4)

	analysis, err := service.GenerateDeepAnalysis(context.Background(), "ENT001", nil)

	assert.NoError(t, err)
	assert.Nil(t, analysis)
}

func TestService_GenerateDeepAnalysis_PadraoCruzado(t *testing.T) {
	service, m := newServiceWithMocks(t)

	m.baselines.EXPECT().
		GetEntityBaseline(gomock.Any(), "ENT001").
		Return(testBaseline(), nil)

	// Dois dias do mesmo segmento demográfico: spend total 100, receita 600,
	// roas 6.0 contra baseline 2.0 (melhora de 200%)
	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", domain.DimensionDemographic, gomock.Any()).
		Return([]*domain.BreakdownRow{
			{
				EntityID: "ENT001", Dimension: domain.DimensionDemographic,
				AgeRange: "25-34", Gender: "female",
				Spend: 50.0, Conversions: 3, Revenue: 300.0,
			},
			{
				EntityID: "ENT001", Dimension: domain.DimensionDemographic,
				AgeRange: "25-34", Gender: "female",
				Spend: 50.0, Conversions: 2, Revenue: 300.0,
			},
		}, nil)

	m.breakdowns.EXPECT().
		GetBreakdownRows(gomock.Any(), "ENT001", gomock.Any(), gomock.Any()).
		Return([]*domain.BreakdownRow{}, nil).
		Times(3)

	analysis, err := service.GenerateDeepAnalysis(context.Background(), "ENT001", nil)

	assert.NoError(t, err)
	assert.NotNil(t, analysis)

	assert.Equal(t, "ENT001", analysis.EntityID)
	assert.Equal(t, domain.PatternTypeHidden, analysis.PatternType)
	assert.Equal(t, domain.UrgencyCritical, analysis.UrgencyLevel)
	assert.True(t, analysis.Actionable)
	assert.Equal(t, 2, analysis.DataPointsAnalyzed)
	assert.Len(t, analysis.SampleDataPoints, 2)
	assert.Contains(t, analysis.PrimaryInsight, "female 25-34")

	assert.NotNil(t, analysis.FinancialImpact)
	// 100 de spend * roas médio 6.0 * melhora 2.0 * desconto de realização 0.3
	assert.Equal(t, 360.0, analysis.FinancialImpact.IfAdopted.ProjectedProfit)
	assert.Equal(t, 720.0, analysis.FinancialImpact.IfIgnored.OpportunityCost)

	assert.NotNil(t, analysis.ConfidenceInterval)
	assert.Equal(t, 6.0, analysis.ConfidenceInterval.Expected)
	assert.Equal(t, 5.1, analysis.ConfidenceInterval.Lower)
	assert.Equal(t, 6.9, analysis.ConfidenceInterval.Upper)

	assert.NotNil(t, analysis.CrossDimensionalPattern)
	assert.Equal(t, 0.95, analysis.CrossDimensionalPattern.Confidence)

	assert.Len(t, analysis.SupportingData[domain.DimensionDemographic], 1)
}

func TestService_GenerateDeepAnalysis_ServidoDoCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		breakdowns:  mocks.NewMockBreakdownSource(ctrl),
		baselines:   mocks.NewMockBaselineSource(ctrl),
		conversions: mocks.NewMockConversionSource(ctrl),
		rules:       mocks.NewMockRuleGenerator(ctrl),
	}
	cache := mocks.NewMockAnalysisCache(ctrl)

	service := analyzing.NewService(analysisConfig(), m.breakdowns, m.baselines, m.conversions, m.rules).(*analyzing.Service).
		WithCache(cache)

	cached := &domain.PatternAnalysis{EntityID: "ENT001", PrimaryInsight: "do cache"}

	// Com acerto no cache nenhuma fonte é consultada
	cache.EXPECT().
		Get(gomock.Any(), "ENT001", gomock.Any()).
		Return(cached, nil)

	analysis, err := service.GenerateDeepAnalysis(context.Background(), "ENT001", nil)

	assert.NoError(t, err)
	assert.Equal(t, cached, analysis)
}

func TestService_AnalyzeEntity_EntidadeObrigatoria(t *testing.T) {
	service, _ := newServiceWithMocks(t)

	suggestions, err := service.AnalyzeEntity(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, suggestions)
}
