package inventory

import (
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// ToInventoryResponse mapea la entidad al DTO HTTP.
func ToInventoryResponse(inv *entity.Inventory) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:              inv.ID,
		ProductID:       inv.ProductID,
		CurrentStock:    inv.CurrentStock,
		ReservedStock:   inv.ReservedStock,
		AvailableStock:  inv.AvailableStock,
		MinStockLevel:   inv.MinStockLevel,
		MaxStockLevel:   inv.MaxStockLevel,
		ReorderPoint:    inv.ReorderPoint,
		ReorderQuantity: inv.ReorderQuantity,
		Location:        inv.Location,
		BinLocation:     inv.BinLocation,
		CostPrice:       inv.CostPrice,
		LastRestocked:   inv.LastRestocked,
		LastCounted:     inv.LastCounted,
		IsActive:        inv.IsActive,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

// ToMovementResponse mapea un movimiento al DTO HTTP.
func ToMovementResponse(m *entity.StockMovement) dto.StockMovementResponse {
	return dto.StockMovementResponse{
		ID:            m.ID,
		InventoryID:   m.InventoryID,
		ProductID:     m.ProductID,
		MovementType:  m.MovementType,
		Quantity:      m.Quantity,
		ReferenceID:   m.ReferenceID,
		ReferenceType: m.ReferenceType,
		CostPrice:     m.CostPrice,
		Notes:         m.Notes,
		BatchNumber:   m.BatchNumber,
		ExpiryDate:    m.ExpiryDate,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
	}
}

// ToAlertResponse mapea una alerta al DTO HTTP.
func ToAlertResponse(a *entity.StockAlert) dto.StockAlertResponse {
	return dto.StockAlertResponse{
		ID:             a.ID,
		InventoryID:    a.InventoryID,
		ProductID:      a.ProductID,
		AlertType:      a.AlertType,
		ThresholdValue: a.ThresholdValue,
		CurrentValue:   a.CurrentValue,
		Message:        a.Message,
		Priority:       a.Priority,
		IsResolved:     a.IsResolved,
		ResolvedAt:     a.ResolvedAt,
		ResolvedBy:     a.ResolvedBy,
		CreatedAt:      a.CreatedAt,
	}
}
