package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/precifica/cost-manager-api/internal/usecases/catalog"
	"github.com/precifica/cost-manager-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type SaveRecipeRequest struct {
	Items []*domain.RecipeItem `json:"items"`
}

type SaveRecipeResponse struct {
	CMV   float64              `json:"cmv"`
	Items []*domain.RecipeItem `json:"items"`
}

// GetRecipe retorna a ficha técnica do produto
func GetRecipe(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		items, err := service.GetRecipe(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ficha técnica", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

// SaveRecipe substitui a ficha técnica do produto e retorna o CMV recalculado
func SaveRecipe(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveRecipe")

		id, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		var req SaveRecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		cmv, err := service.SaveRecipe(r.Context(), id, req.Items)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrProductNotFound):
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)

			case errors.Is(err, catalog.ErrIngredientNotFound):
				apiErrors.WriteError(w, apiErrors.ErrIngredientNotFound, "Insumo não encontrado", nil)

			default:
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar ficha técnica", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SaveRecipeResponse{
			CMV:   cmv,
			Items: req.Items,
		})
	}
}
