package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/precifica/cost-manager-api/internal/usecases/catalog"
	"github.com/precifica/cost-manager-api/internal/usecases/pricing"
	"github.com/precifica/cost-manager-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// SimulateRequest é a entrada do simulador de preços. Nenhum campo toca o
// banco: o front envia os números e recebe o retrato financeiro calculado.
type SimulateRequest struct {
	CMV                     float64                        `json:"cmv"`
	SalePrice               float64                        `json:"sale_price"`
	FixedCostPercent        float64                        `json:"fixed_cost_percent"`
	VariableCostPercent     float64                        `json:"variable_cost_percent"`
	DesiredProfitPercent    float64                        `json:"desired_profit_percent"`
	TotalFixedCosts         float64                        `json:"total_fixed_costs"`
	EstimatedMonthlySales   float64                        `json:"estimated_monthly_sales"`
	AverageMonthlyRevenue   float64                        `json:"average_monthly_revenue"`
	FixedCostAllocationMode domain.FixedCostAllocationMode `json:"fixed_cost_allocation_mode"`
	TargetCMVPercent        float64                        `json:"target_cmv_percent"`
	Channels                []*domain.SalesChannel         `json:"channels"`
}

// productIDFromRequest extrai e valida o :id da URL
func productIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
		return 0, false
	}

	return id, true
}

// ListProducts lista todos os produtos do cardápio
func ListProducts(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetProduct retorna um produto por ID
func GetProduct(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		product, err := service.GetProduct(id)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(product)
	}
}

// CreateProduct cria um novo produto no cardápio
func CreateProduct(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProduct")

		var product *domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if product.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do produto é obrigatório", nil)
			return
		}

		created, err := service.CreateProduct(product)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateProduct atualiza campos do produto. Campos ausentes no corpo não são alterados.
func UpdateProduct(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProduct")

		id, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		var updateReq domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updateReq.ID = id

		product, err := service.UpdateProduct(&updateReq)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(product)
	}
}

// DeleteProduct remove um produto do cardápio
func DeleteProduct(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProduct")

		id, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteProduct(id); err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover produto", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetProductMetrics retorna o retrato financeiro calculado do produto
func GetProductMetrics(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := productIDFromRequest(w, r)
		if !ok {
			return
		}

		metrics, err := service.ProductMetrics(id)
		if err != nil {
			if errors.Is(err, pricing.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular indicadores do produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(metrics)
	}
}

// SimulatePricing calcula indicadores para uma entrada arbitrária, sem persistir nada
func SimulatePricing(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SimulateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		metrics := service.Simulate(domain.ProductMetricsInput{
			CMV:                     req.CMV,
			SalePrice:               req.SalePrice,
			FixedCostPercent:        req.FixedCostPercent,
			VariableCostPercent:     req.VariableCostPercent,
			DesiredProfitPercent:    req.DesiredProfitPercent,
			TotalFixedCosts:         req.TotalFixedCosts,
			EstimatedMonthlySales:   req.EstimatedMonthlySales,
			AverageMonthlyRevenue:   req.AverageMonthlyRevenue,
			FixedCostAllocationMode: req.FixedCostAllocationMode,
			TargetCMVPercent:        req.TargetCMVPercent,
			Channels:                req.Channels,
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(metrics)
	}
}
