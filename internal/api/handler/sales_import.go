package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/internal/usecases/importing"
	"github.com/precifica/cost-manager-api/pkg/apiErrors"
	"github.com/precifica/cost-manager-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type PreviewSalesImportRequest struct {
	Text string `json:"text"`
}

type CommitSalesImportRequest struct {
	Items  []*importing.ParsedItem `json:"items"`
	SoldAt string                  `json:"sold_at"`
}

type UndoSalesImportResponse struct {
	BatchID      string `json:"batch_id"`
	SalesRemoved int64  `json:"sales_removed"`
}

// PreviewSalesImport faz o parsing do texto colado do relatório de vendas
// contra o catálogo atual, sem gravar nada
func PreviewSalesImport(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PreviewSalesImport")

		var req PreviewSalesImportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		items, err := service.Preview(r.Context(), req.Text)
		if err != nil {
			if errors.Is(err, importing.ErrEmptyImport) {
				apiErrors.WriteError(w, apiErrors.ErrImportEmpty, "Nenhuma linha aproveitável no texto colado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrImportFailed, "Erro ao processar o texto de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

// CommitSalesImport grava os itens selecionados da prévia como vendas de um
// novo lote. Data ausente usa o dia corrente.
func CommitSalesImport(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CommitSalesImport")

		var req CommitSalesImportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		soldAt := time.Now()
		if req.SoldAt != "" {
			parsed, err := utils.ParseDate(req.SoldAt)
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de venda inválida, use o formato AAAA-MM-DD", nil)
				return
			}
			soldAt = *parsed
		}

		result, err := service.Commit(r.Context(), req.Items, soldAt)
		if err != nil {
			if errors.Is(err, importing.ErrNothingSelected) {
				apiErrors.WriteError(w, apiErrors.ErrNothingToWrite, "Nenhum item selecionado para importação", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrImportFailed, "Erro ao confirmar o lote de importação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(result)
	}
}

// UndoSalesImport desfaz um lote já confirmado, removendo todas as vendas gravadas por ele
func UndoSalesImport(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UndoSalesImport")

		batchID := httprouter.ParamsFromContext(r.Context()).ByName("batch_id")
		if batchID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do lote não fornecido", nil)
			return
		}

		removed, err := service.UndoBatch(r.Context(), batchID)
		if err != nil {
			if errors.Is(err, importing.ErrBatchNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrBatchNotFound, "Lote de importação não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrImportFailed, "Erro ao desfazer o lote de importação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(UndoSalesImportResponse{
			BatchID:      batchID,
			SalesRemoved: removed,
		})
	}
}
