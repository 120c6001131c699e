package handler

import (
	"encoding/json"
	"net/http"

	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/precifica/cost-manager-api/internal/usecases/costing"
	"github.com/precifica/cost-manager-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// GetSettings retorna a configuração do negócio. Negócio nunca configurado
// recebe os valores padrão.
func GetSettings(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.GetSettings()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)
	}
}

// SaveSettings grava a configuração única do negócio
func SaveSettings(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveSettings")

		var settings *domain.BusinessSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.SaveSettings(settings); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)
	}
}
