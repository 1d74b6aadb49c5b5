package service

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardStats is the aggregate snapshot the dashboard renders.
type DashboardStats struct {
	TotalProducts  int64           `json:"total_products"`
	TotalUnits     int64           `json:"total_units"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	LowStock       []model.Product `json:"low_stock"`
}

type DashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
}

func NewDashboardService(pRepo repository.ProductRepository) DashboardService {
	return &dashboardService{productRepo: pRepo}
}

func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{LowStock: []model.Product{}}

	var err error
	if stats.TotalProducts, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalUnits, err = s.productRepo.TotalUnits(); err != nil {
		return nil, err
	}
	if stats.InventoryValue, err = s.productRepo.InventoryValue(); err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.LowStock()
	if err != nil {
		return nil, err
	}
	if lowStock != nil {
		stats.LowStock = lowStock
	}

	return stats, nil
}
