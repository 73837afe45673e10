package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/ad-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ad-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ad-optimizer-api/pkg/log"
)

// ListEntities lista as entidades ativas elegíveis para análise
func ListEntities(entityRepo repository.EntityRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entities, err := entityRepo.ListActiveEntities(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("entities: erro ao listar entidades ativas")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar entidades", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entities); err != nil {
			logger.WithField("error", err.Error()).Error("entities: erro ao serializar a resposta")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
