package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/precifica/cost-manager-api/internal/usecases/costing"
	"github.com/precifica/cost-manager-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// costIDFromRequest extrai e valida o :id da URL
func costIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do custo inválido", nil)
		return 0, false
	}

	return id, true
}

// ListFixedCosts lista os lançamentos de custo fixo mensal
func ListFixedCosts(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		costs, err := service.ListFixedCosts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar custos fixos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(costs)
	}
}

// CreateFixedCost cadastra um custo fixo e ressincroniza os totais da configuração
func CreateFixedCost(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateFixedCost")

		var cost *domain.FixedCost
		if err := json.NewDecoder(r.Body).Decode(&cost); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if cost.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do custo é obrigatório", nil)
			return
		}

		created, err := service.CreateFixedCost(r.Context(), cost)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar custo fixo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateFixedCost atualiza um custo fixo existente
func UpdateFixedCost(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateFixedCost")

		id, ok := costIDFromRequest(w, r)
		if !ok {
			return
		}

		var cost domain.FixedCost
		if err := json.NewDecoder(r.Body).Decode(&cost); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		cost.ID = id

		if err := service.UpdateFixedCost(r.Context(), &cost); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar custo fixo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteFixedCost remove um custo fixo
func DeleteFixedCost(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteFixedCost")

		id, ok := costIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteFixedCost(r.Context(), id); err != nil {
			if errors.Is(err, costing.ErrCostNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCostNotFound, "Lançamento de custo não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover custo fixo", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListVariableCosts lista os custos percentuais incidentes sobre cada venda
func ListVariableCosts(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		costs, err := service.ListVariableCosts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar custos variáveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(costs)
	}
}

// CreateVariableCost cadastra um custo variável e ressincroniza os totais da configuração
func CreateVariableCost(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateVariableCost")

		var cost *domain.VariableCost
		if err := json.NewDecoder(r.Body).Decode(&cost); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if cost.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do custo é obrigatório", nil)
			return
		}

		created, err := service.CreateVariableCost(r.Context(), cost)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar custo variável", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateVariableCost atualiza um custo variável existente
func UpdateVariableCost(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateVariableCost")

		id, ok := costIDFromRequest(w, r)
		if !ok {
			return
		}

		var cost domain.VariableCost
		if err := json.NewDecoder(r.Body).Decode(&cost); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		cost.ID = id

		if err := service.UpdateVariableCost(r.Context(), &cost); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar custo variável", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteVariableCost remove um custo variável
func DeleteVariableCost(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteVariableCost")

		id, ok := costIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteVariableCost(r.Context(), id); err != nil {
			if errors.Is(err, costing.ErrCostNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCostNotFound, "Lançamento de custo não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover custo variável", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
