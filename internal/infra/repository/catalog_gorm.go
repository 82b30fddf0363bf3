package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/barberia-cr/barberia-api/internal/models"
)

// CatalogGormRepository serve as listagens públicas do catálogo. O filtro
// de visibilidade é aplicado aqui, e só aqui: nenhuma tela decide por
// conta própria o que esconder.
type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) ListVisibleBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("visible = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *CatalogGormRepository) ListVisibleServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("visible = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// ListProducts devolve produtos em estoque, opcionalmente filtrados por
// categoria (equivalente ao listWhere da loja).
func (r *CatalogGormRepository) ListProducts(
	ctx context.Context,
	category string,
) ([]models.Product, error) {

	q := r.db.WithContext(ctx).Where("in_stock = ?", true)

	if category = strings.ToLower(strings.TrimSpace(category)); category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var products []models.Product
	if err := q.
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
