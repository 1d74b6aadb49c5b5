package service

import (
	"testing"

	"go-stockroom/internal/repository"

	"github.com/shopspring/decimal"
)

func TestDashboardService_EmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(repository.NewProductRepo(db))

	stats, err := svc.GetDashboardStats()
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	if stats.TotalProducts != 0 {
		t.Errorf("expected 0 products, got %d", stats.TotalProducts)
	}
	if stats.TotalUnits != 0 {
		t.Errorf("expected 0 units, got %d", stats.TotalUnits)
	}
	if !stats.InventoryValue.IsZero() {
		t.Errorf("expected zero inventory value, got %s", stats.InventoryValue)
	}
	if len(stats.LowStock) != 0 {
		t.Errorf("expected empty low-stock list, got %d entries", len(stats.LowStock))
	}
}

func TestDashboardService_Aggregates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(repository.NewProductRepo(db))

	mustCreateProduct(t, db, "Widget", "WD-1", 10, "2.50")  // value 25.00
	mustCreateProduct(t, db, "Gadget", "GT-9", 2, "3.00")   // value 6.00, low stock
	mustCreateProduct(t, db, "Cable", "CBL-2", 5, "4.90")   // value 24.50, low stock (at threshold)
	mustCreateProduct(t, db, "Adapter", "ADP-1", 6, "1.00") // value 6.00, just above threshold

	stats, err := svc.GetDashboardStats()
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	if stats.TotalProducts != 4 {
		t.Errorf("expected 4 products, got %d", stats.TotalProducts)
	}
	if stats.TotalUnits != 23 {
		t.Errorf("expected 23 units, got %d", stats.TotalUnits)
	}
	if !stats.InventoryValue.Equal(decimal.RequireFromString("61.50")) {
		t.Errorf("expected inventory value 61.50, got %s", stats.InventoryValue)
	}

	// Exactly the products at or below the threshold, name ascending
	if len(stats.LowStock) != 2 {
		t.Fatalf("expected 2 low-stock products, got %d", len(stats.LowStock))
	}
	if stats.LowStock[0].Name != "Cable" || stats.LowStock[1].Name != "Gadget" {
		t.Errorf("unexpected low-stock ordering: %q, %q", stats.LowStock[0].Name, stats.LowStock[1].Name)
	}
}
