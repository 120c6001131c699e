package catalog

import (
	"context"

	"github.com/pkg/errors"
	"github.com/precifica/cost-manager-api/infrastructure/repository"
	"github.com/precifica/cost-manager-api/internal/domain"
	"github.com/precifica/cost-manager-api/pkg/log"
	"github.com/precifica/cost-manager-api/pkg/utils"
)

var (
	ErrProductNotFound    = errors.New("produto não encontrado")
	ErrIngredientNotFound = errors.New("insumo não encontrado")
)

// Cataloger mantém produtos, insumos e fichas técnicas. Toda alteração de
// ficha técnica recalcula e persiste o CMV do produto.
type Cataloger interface {
	ListProducts() ([]*domain.Product, error)
	GetProduct(id int64) (*domain.Product, error)
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(req *domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(id int64) error

	ListIngredients() ([]*domain.Ingredient, error)
	CreateIngredient(ingredient *domain.Ingredient) (*domain.Ingredient, error)
	UpdateIngredient(ingredient *domain.Ingredient) error
	DeleteIngredient(id int64) error

	GetRecipe(productID int64) ([]*domain.RecipeItem, error)
	SaveRecipe(ctx context.Context, productID int64, items []*domain.RecipeItem) (float64, error)
}

type Service struct {
	productRepo    repository.ProductRepository
	ingredientRepo repository.IngredientRepository
	recipeRepo     repository.RecipeRepository
}

func NewService(
	productRepo repository.ProductRepository,
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
) Cataloger {
	return &Service{
		productRepo:    productRepo,
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
	}
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.ListProducts()
}

func (s *Service) GetProduct(id int64) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (s *Service) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, errors.New("nome do produto é obrigatório")
	}

	return s.productRepo.CreateProduct(product)
}

func (s *Service) UpdateProduct(req *domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(req.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.CMV != nil {
		product.CMV = *req.CMV
	}
	if req.SalePrice != nil {
		product.SalePrice = *req.SalePrice
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := s.productRepo.UpdateProduct(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) DeleteProduct(id int64) error {
	product, err := s.productRepo.GetProductByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	return s.productRepo.DeleteProduct(id)
}

func (s *Service) ListIngredients() ([]*domain.Ingredient, error) {
	return s.ingredientRepo.ListIngredients()
}

func (s *Service) CreateIngredient(ingredient *domain.Ingredient) (*domain.Ingredient, error) {
	if ingredient.Name == "" {
		return nil, errors.New("nome do insumo é obrigatório")
	}
	if ingredient.PackageQuantity <= 0 {
		return nil, errors.New("quantidade da embalagem deve ser maior que zero")
	}

	return s.ingredientRepo.CreateIngredient(ingredient)
}

func (s *Service) UpdateIngredient(ingredient *domain.Ingredient) error {
	existing, err := s.ingredientRepo.GetIngredientByID(ingredient.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrIngredientNotFound
	}

	return s.ingredientRepo.UpdateIngredient(ingredient)
}

func (s *Service) DeleteIngredient(id int64) error {
	existing, err := s.ingredientRepo.GetIngredientByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrIngredientNotFound
	}

	return s.ingredientRepo.DeleteIngredient(id)
}

func (s *Service) GetRecipe(productID int64) ([]*domain.RecipeItem, error) {
	return s.recipeRepo.ListByProduct(productID)
}

// SaveRecipe substitui a ficha técnica do produto e recalcula o CMV a partir
// dos insumos. Retorna o novo CMV já arredondado.
func (s *Service) SaveRecipe(ctx context.Context, productID int64, items []*domain.RecipeItem) (float64, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, ErrProductNotFound
	}

	for _, item := range items {
		ingredient, err := s.ingredientRepo.GetIngredientByID(item.IngredientID)
		if err != nil {
			return 0, err
		}
		if ingredient == nil {
			return 0, ErrIngredientNotFound
		}

		item.ProductID = productID
		item.UnitCost = ingredient.UnitCost()
	}

	if err := s.recipeRepo.ReplaceForProduct(ctx, productID, items); err != nil {
		return 0, errors.Wrap(err, "erro ao salvar a ficha técnica")
	}

	cmv := 0.0
	for _, item := range items {
		cmv += item.Cost()
	}
	cmv = utils.RoundWithTwoDecimalPlace(cmv)

	if err := s.productRepo.UpdateProductCMV(productID, cmv); err != nil {
		return 0, errors.Wrap(err, "erro ao atualizar o CMV do produto")
	}

	log.FromContext(ctx).WithFields(log.Fields{
		"product_id": productID,
		"cmv":        cmv,
		"insumos":    len(items),
	}).Info("ficha técnica atualizada")

	return cmv, nil
}
