// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Rows and runs are stored as child tables keyed by the order.
type OrderDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	RecipeID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	TotalVolume float64       `gorm:"type:numeric(10,3);not null"`
	Status      int           `gorm:"type:int;not null;index"`
	CreatedAt   time.Time     `gorm:"not null;index"`
	Rows        []OrderRowDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Runs        []CarRunDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderRowDTO represents one planned batch row. Actual channel weights are
// nullable: they stay NULL until the row completes.
type OrderRowDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	SeqNo         int        `gorm:"type:int;not null"`
	PlannedVolume float64    `gorm:"type:numeric(10,3);not null"`
	State         int        `gorm:"type:int;not null"`
	ActualCement  *float64   `gorm:"type:numeric(12,3)"`
	ActualSand    *float64   `gorm:"type:numeric(12,3)"`
	ActualAgg1    *float64   `gorm:"type:numeric(12,3)"`
	ActualAgg2    *float64   `gorm:"type:numeric(12,3)"`
	ActualWater   *float64   `gorm:"type:numeric(12,3)"`
	ActualAdmix   *float64   `gorm:"type:numeric(12,3)"`
	StartedAt     *time.Time
	CompletedAt   *time.Time
	CarRunID      *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for order row entities.
func (OrderRowDTO) TableName() string {
	return "order_rows"
}

// CarRunDTO represents one allocated delivery run within an order.
type CarRunDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID   uuid.UUID `gorm:"type:uuid;not null;index"`
	LoadSeq     int       `gorm:"type:int;not null"`
	Volume      float64   `gorm:"type:numeric(10,3);not null"`
	Note        string    `gorm:"type:varchar(255)"`
	RowStartSeq int       `gorm:"type:int;not null"`
	RowEndSeq   int       `gorm:"type:int;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for car run entities.
func (CarRunDTO) TableName() string {
	return "car_runs"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all child entities including rows with their readings and allocated runs.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	rows := make([]OrderRowDTO, 0, len(aggregate.Rows()))
	for _, row := range aggregate.Rows() {
		dto := OrderRowDTO{
			ID:            row.ID().Bytes(),
			OrderID:       orderID,
			SeqNo:         row.SeqNo(),
			PlannedVolume: row.PlannedVolume(),
			State:         int(row.State()),
			StartedAt:     row.StartedAt(),
			CompletedAt:   row.CompletedAt(),
		}
		if actual := row.Actual(); actual != nil {
			dto.ActualCement = ptr(actual.Cement)
			dto.ActualSand = ptr(actual.Sand)
			dto.ActualAgg1 = ptr(actual.Agg1)
			dto.ActualAgg2 = ptr(actual.Agg2)
			dto.ActualWater = ptr(actual.Water)
			dto.ActualAdmix = ptr(actual.Admix)
		}
		if runID := row.CarRunID(); runID != nil {
			raw := runID.Bytes()
			dto.CarRunID = &raw
		}
		rows = append(rows, dto)
	}

	runs := make([]CarRunDTO, 0, len(aggregate.Runs()))
	for _, run := range aggregate.Runs() {
		runs = append(runs, CarRunDTO{
			ID:          run.ID().Bytes(),
			OrderID:     orderID,
			VehicleID:   run.VehicleID().Bytes(),
			LoadSeq:     run.LoadSeq(),
			Volume:      run.Volume(),
			Note:        run.Note(),
			RowStartSeq: run.RowStartSeq(),
			RowEndSeq:   run.RowEndSeq(),
			CreatedAt:   run.CreatedAt(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		ClientID:    aggregate.ClientID().Bytes(),
		RecipeID:    aggregate.RecipeID().Bytes(),
		TotalVolume: aggregate.TotalVolume(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		Rows:        rows,
		Runs:        runs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including rows and runs using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	recipeID, err := kernel.UUIDFromBytes(dto.RecipeID[:])
	if err != nil {
		return nil, err
	}

	rows := make([]*order.Row, 0, len(dto.Rows))
	for _, rowDto := range dto.Rows {
		row, rowErr := rowToDomain(rowDto)
		if rowErr != nil {
			return nil, rowErr
		}
		rows = append(rows, row)
	}

	runs := make([]*order.CarRun, 0, len(dto.Runs))
	for _, runDto := range dto.Runs {
		run, runErr := runToDomain(runDto)
		if runErr != nil {
			return nil, runErr
		}
		runs = append(runs, run)
	}

	return order.RestoreOrder(id, clientID, recipeID,
		dto.TotalVolume, order.Status(dto.Status), dto.CreatedAt, rows, runs)
}

// rowToDomain converts an order row DTO to a domain entity.
func rowToDomain(dto OrderRowDTO) (*order.Row, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var actual *recipe.Quantities
	if dto.ActualCement != nil {
		actual = &recipe.Quantities{
			Cement: *dto.ActualCement,
			Sand:   deref(dto.ActualSand),
			Agg1:   deref(dto.ActualAgg1),
			Agg2:   deref(dto.ActualAgg2),
			Water:  deref(dto.ActualWater),
			Admix:  deref(dto.ActualAdmix),
		}
	}

	var carRunID *kernel.UUID
	if dto.CarRunID != nil {
		runID, runErr := kernel.UUIDFromBytes((*dto.CarRunID)[:])
		if runErr != nil {
			return nil, runErr
		}
		carRunID = &runID
	}

	return order.RestoreRow(id, dto.SeqNo, dto.PlannedVolume,
		order.RowState(dto.State), actual, dto.StartedAt, dto.CompletedAt, carRunID)
}

// runToDomain converts a car run DTO to a domain entity.
func runToDomain(dto CarRunDTO) (*order.CarRun, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreCarRun(id, vehicleID, dto.LoadSeq, dto.Volume,
		dto.Note, dto.RowStartSeq, dto.RowEndSeq, dto.CreatedAt)
}

func ptr(v float64) *float64 { return &v }

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
