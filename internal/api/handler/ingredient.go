package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/precifica/cost-manager-api/internal/usecases/catalog"
	"github.com/precifica/cost-manager-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ListIngredients lista todos os insumos cadastrados
func ListIngredients(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredients, err := service.ListIngredients()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar insumos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ingredients); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateIngredient cadastra um novo insumo
func CreateIngredient(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateIngredient")

		var ingredient *domain.Ingredient
		if err := json.NewDecoder(r.Body).Decode(&ingredient); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if ingredient.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do insumo é obrigatório", nil)
			return
		}

		if ingredient.PackageQuantity <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Quantidade da embalagem deve ser maior que zero", nil)
			return
		}

		created, err := service.CreateIngredient(ingredient)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar insumo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateIngredient atualiza um insumo existente
func UpdateIngredient(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateIngredient")

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do insumo inválido", nil)
			return
		}

		var ingredient domain.Ingredient
		if err := json.NewDecoder(r.Body).Decode(&ingredient); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		ingredient.ID = id

		if err := service.UpdateIngredient(&ingredient); err != nil {
			if errors.Is(err, catalog.ErrIngredientNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrIngredientNotFound, "Insumo não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar insumo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteIngredient remove um insumo. Fichas técnicas que o usam são limpas em cascata.
func DeleteIngredient(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteIngredient")

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do insumo inválido", nil)
			return
		}

		if err := service.DeleteIngredient(id); err != nil {
			if errors.Is(err, catalog.ErrIngredientNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrIngredientNotFound, "Insumo não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover insumo", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
