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

// ListChannels lista os canais de venda cadastrados
func ListChannels(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channels, err := service.ListChannels()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar canais de venda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(channels)
	}
}

// CreateChannel cadastra um canal de venda com sua taxa total
func CreateChannel(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateChannel")

		var channel *domain.SalesChannel
		if err := json.NewDecoder(r.Body).Decode(&channel); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if channel.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do canal é obrigatório", nil)
			return
		}

		created, err := service.CreateChannel(channel)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar canal de venda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateChannel atualiza nome e taxa de um canal de venda
func UpdateChannel(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateChannel")

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do canal inválido", nil)
			return
		}

		var channel domain.SalesChannel
		if err := json.NewDecoder(r.Body).Decode(&channel); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		channel.ID = id

		if err := service.UpdateChannel(&channel); err != nil {
			if errors.Is(err, costing.ErrChannelNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrChannelNotFound, "Canal de venda não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar canal de venda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteChannel remove um canal de venda
func DeleteChannel(service costing.Coster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteChannel")

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do canal inválido", nil)
			return
		}

		if err := service.DeleteChannel(id); err != nil {
			if errors.Is(err, costing.ErrChannelNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrChannelNotFound, "Canal de venda não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover canal de venda", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
