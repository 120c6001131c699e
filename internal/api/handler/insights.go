package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/internal/usecases/insighting"
	"github.com/precifica/cost-manager-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Limite padrão de produtos na central de ações
const defaultActionCenterLimit = 20

// GetProductInsights retorna os alertas do produto junto com os indicadores
// que os geraram
func GetProductInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		result, err := service.ProductInsights(id)
		if err != nil {
			if errors.Is(err, insighting.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular alertas do produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// GetActionCenter retorna os produtos com alertas mais graves, ordenados por severidade
func GetActionCenter(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultActionCenterLimit)
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.ParseUint(limitStr, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		snapshots, err := service.ActionCenter(r.Context(), limit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a central de ações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshots)
	}
}
