package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
	"github.com/vfg2006/ad-optimizer-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ad-optimizer-api/pkg/log"
	"github.com/vfg2006/ad-optimizer-api/pkg/utils"
)

// GetEntitySuggestions roda a análise completa da entidade e devolve a lista
// de sugestões de otimização. Lista vazia é uma resposta válida: significa que
// nenhum analisador encontrou nada para recomendar.
func GetEntitySuggestions(entityRepo repository.EntityRepository, analyzer analyzing.EntityAnalyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("entity_id", id).Info("analysis: gerando sugestões para a entidade")

		entity, err := entityRepo.GetEntityByID(r.Context(), id)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("analysis: erro ao buscar a entidade")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar a entidade", nil)
			return
		}

		if entity == nil {
			apiErrors.WriteError(w, apiErrors.ErrEntityNotFound, "Entidade não encontrada", nil)
			return
		}

		suggestions, err := analyzer.AnalyzeEntity(r.Context(), entity)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("analysis: erro ao analisar a entidade")

			if errors.Is(err, analyzing.ErrUpstreamAuth) {
				apiErrors.WriteError(w, apiErrors.ErrUpstreamAuth, "Falha de autenticação na fonte de dados", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao analisar a entidade", nil)
			return
		}

		logger.WithFields(log.Fields{
			"entity_id":   id,
			"suggestions": len(suggestions),
		}).Info("analysis: sugestões geradas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestions); err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("analysis: erro ao serializar a resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetEntityDeepAnalysis roda a análise profunda da entidade dentro da janela
// informada (ou da janela padrão) e devolve o padrão sintetizado. Sem pontos
// de dados a resposta é 204: não há análise, e isso não é erro.
func GetEntityDeepAnalysis(analyzer analyzing.EntityAnalyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("entity_id", id).Info("analysis: gerando análise profunda da entidade")

		filters, err := parseAnalysisFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Warn("analysis: parâmetros de data inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato YYYY-MM-DD", nil)
			return
		}

		analysis, err := analyzer.GenerateDeepAnalysis(r.Context(), id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("analysis: erro ao gerar análise profunda")

			if errors.Is(err, analyzing.ErrUpstreamAuth) {
				apiErrors.WriteError(w, apiErrors.ErrUpstreamAuth, "Falha de autenticação na fonte de dados", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar análise profunda", nil)
			return
		}

		if analysis == nil {
			logger.WithField("entity_id", id).Info("analysis: sem pontos de dados para análise profunda")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("analysis: erro ao serializar a resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetPublishedSuggestions lista as sugestões publicadas pela varredura
// agendada, das mais prioritárias para as menos
func GetPublishedSuggestions(suggestionRepo repository.SuggestionRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("entity_id", id).Info("analysis: listando sugestões publicadas da entidade")

		suggestions, err := suggestionRepo.ListByEntityID(r.Context(), id)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("analysis: erro ao listar sugestões publicadas")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar sugestões publicadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestions); err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("analysis: erro ao serializar a resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseAnalysisFilters monta a janela de datas a partir da query string.
// Parâmetro ausente fica nil e o orquestrador aplica a janela padrão.
func parseAnalysisFilters(r *http.Request) (*domain.AnalysisFilters, error) {
	filters := &domain.AnalysisFilters{}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
	}

	if filters.StartDate == nil && filters.EndDate == nil {
		return nil, nil
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, errors.New("end_date anterior a start_date")
	}

	return filters, nil
}
