package http

import (
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/queries"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/services"
)

// QuantitiesDTO carries one value per material channel, 3-decimal numbers.
type QuantitiesDTO struct {
	Cement float64 `json:"cement"`
	Sand   float64 `json:"sand"`
	Agg1   float64 `json:"agg1"`
	Agg2   float64 `json:"agg2"`
	Water  float64 `json:"water"`
	Admix  float64 `json:"admix"`
}

func quantitiesToDTO(q recipe.Quantities) QuantitiesDTO {
	return QuantitiesDTO{
		Cement: q.Cement, Sand: q.Sand, Agg1: q.Agg1,
		Agg2: q.Agg2, Water: q.Water, Admix: q.Admix,
	}
}

func quantitiesPtrToDTO(q *recipe.Quantities) *QuantitiesDTO {
	if q == nil {
		return nil
	}
	dto := quantitiesToDTO(*q)
	return &dto
}

func (d QuantitiesDTO) toDomain() recipe.Quantities {
	return recipe.Quantities{
		Cement: d.Cement, Sand: d.Sand, Agg1: d.Agg1,
		Agg2: d.Agg2, Water: d.Water, Admix: d.Admix,
	}
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse reports idempotent no-ops and simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

type CreateClientRequest struct {
	Name         string `json:"name" validate:"required"`
	Cell         string `json:"cell"`
	Email        string `json:"email" validate:"omitempty,email"`
	OfficeAddr   string `json:"officeAddr"`
	DeliveryAddr string `json:"deliveryAddr"`
}

type UpdateClientRequest struct {
	Name         string `json:"name" validate:"required"`
	Cell         string `json:"cell"`
	Email        string `json:"email" validate:"omitempty,email"`
	OfficeAddr   string `json:"officeAddr"`
	DeliveryAddr string `json:"deliveryAddr"`
}

type ClientResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Cell         string `json:"cell"`
	Email        string `json:"email"`
	OfficeAddr   string `json:"officeAddr"`
	DeliveryAddr string `json:"deliveryAddr"`
}

func clientToResponse(c queries.GetAllClientsQueryResponse) ClientResponse {
	return ClientResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Cell:         c.Cell,
		Email:        c.Email,
		OfficeAddr:   c.OfficeAddr,
		DeliveryAddr: c.DeliveryAddr,
	}
}

type CreateVehicleRequest struct {
	Name       string  `json:"name" validate:"required"`
	Capacity   float64 `json:"capacity" validate:"gte=0"`
	Plate      string  `json:"plate"`
	DriverName string  `json:"driverName"`
}

type UpdateVehicleRequest struct {
	Name       string  `json:"name" validate:"required"`
	Capacity   float64 `json:"capacity" validate:"gt=0"`
	Plate      string  `json:"plate"`
	DriverName string  `json:"driverName"`
}

type VehicleResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Capacity   float64 `json:"capacity"`
	Plate      string  `json:"plate"`
	DriverName string  `json:"driverName"`
}

func vehicleToResponse(v queries.GetAllVehiclesQueryResponse) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID.String(),
		Name:       v.Name,
		Capacity:   v.Capacity,
		Plate:      v.Plate,
		DriverName: v.DriverName,
	}
}

type CreateRecipeRequest struct {
	Name      string        `json:"name" validate:"required"`
	Setpoints QuantitiesDTO `json:"setpoints" validate:"required"`
}

type UpdateRecipeRequest struct {
	Name      string        `json:"name" validate:"required"`
	Setpoints QuantitiesDTO `json:"setpoints" validate:"required"`
}

type RecipeResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Setpoints QuantitiesDTO `json:"setpoints"`
}

func recipeToResponse(r queries.GetAllRecipesQueryResponse) RecipeResponse {
	return RecipeResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Setpoints: quantitiesToDTO(r.Setpoints),
	}
}

type UpdateSettingsRequest struct {
	TolerancePct    float64 `json:"tolerancePct" validate:"gte=0"`
	MixerCapacity   float64 `json:"mixerCapacity" validate:"gt=0"`
	DefaultRecipeID *string `json:"defaultRecipeId" validate:"omitempty,uuid"`
}

type SettingsResponse struct {
	TolerancePct    float64 `json:"tolerancePct"`
	MixerCapacity   float64 `json:"mixerCapacity"`
	DefaultRecipeID *string `json:"defaultRecipeId"`
}

type CreateOrderRequest struct {
	ClientID    string  `json:"clientId" validate:"required,uuid"`
	RecipeID    string  `json:"recipeId" validate:"required,uuid"`
	TotalVolume float64 `json:"totalVolume" validate:"gt=0"`
}

type CreateOrderResponse struct {
	ID          string `json:"id"`
	RowsPlanned int    `json:"rowsPlanned"`
}

type OrderListItemResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	ClientName  string    `json:"clientName"`
	RecipeID    string    `json:"recipeId"`
	RecipeName  string    `json:"recipeName"`
	TotalVolume float64   `json:"totalVolume"`
	Status      string    `json:"status"`
	RowsTotal   int       `json:"rowsTotal"`
	RowsDone    int       `json:"rowsDone"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderRowResponse struct {
	ID            string         `json:"id"`
	SeqNo         int            `json:"seqNo"`
	PlannedVolume float64        `json:"plannedVolume"`
	State         string         `json:"state"`
	Actual        *QuantitiesDTO `json:"actual,omitempty"`
	StartedAt     *time.Time     `json:"startedAt,omitempty"`
	CompletedAt   *time.Time     `json:"completedAt,omitempty"`
	CarRunID      *string        `json:"carRunId,omitempty"`
}

type OrderResponse struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"clientId"`
	RecipeID    string             `json:"recipeId"`
	TotalVolume float64            `json:"totalVolume"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	Rows        []OrderRowResponse `json:"rows"`
	Runs        []RunResponse      `json:"runs"`
}

func orderToResponse(o queries.GetOrderQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID.String(),
		ClientID:    o.ClientID.String(),
		RecipeID:    o.RecipeID.String(),
		TotalVolume: o.TotalVolume,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		Rows:        make([]OrderRowResponse, 0, len(o.Rows)),
		Runs:        make([]RunResponse, 0, len(o.Runs)),
	}

	for _, row := range o.Rows {
		var carRunID *string
		if row.CarRunID != nil {
			s := row.CarRunID.String()
			carRunID = &s
		}
		resp.Rows = append(resp.Rows, OrderRowResponse{
			ID:            row.ID.String(),
			SeqNo:         row.SeqNo,
			PlannedVolume: row.PlannedVolume,
			State:         row.State,
			Actual:        quantitiesPtrToDTO(row.Actual),
			StartedAt:     row.StartedAt,
			CompletedAt:   row.CompletedAt,
			CarRunID:      carRunID,
		})
	}

	for _, run := range o.Runs {
		resp.Runs = append(resp.Runs, RunResponse{
			ID:          run.ID.String(),
			VehicleID:   run.VehicleID.String(),
			LoadSeq:     run.LoadSeq,
			Volume:      run.Volume,
			Note:        run.Note,
			RowStartSeq: run.RowStartSeq,
			RowEndSeq:   run.RowEndSeq,
			CreatedAt:   run.CreatedAt,
		})
	}

	return resp
}

type StartNextRowResponse struct {
	RowID string `json:"rowId"`
	SeqNo int    `json:"seqNo"`
}

type CompleteRowResponse struct {
	Actual      QuantitiesDTO `json:"actual"`
	OrderStatus string        `json:"orderStatus"`
	Message     string        `json:"message,omitempty"`
}

type OrderStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type SummaryResponse struct {
	OrderID         string        `json:"orderId"`
	Status          string        `json:"status"`
	TotalVolume     float64       `json:"totalVolume"`
	ProducedVolume  float64       `json:"producedVolume"`
	RemainingVolume float64       `json:"remainingVolume"`
	SetTotals       QuantitiesDTO `json:"setTotals"`
	ActualTotals    QuantitiesDTO `json:"actualTotals"`
	DeltaTotals     QuantitiesDTO `json:"deltaTotals"`
}

type CreateRunRequest struct {
	VehicleID   string `json:"vehicleId" validate:"required,uuid"`
	RowStartSeq *int   `json:"rowStartSeq" validate:"omitempty,gte=1"`
	RowEndSeq   *int   `json:"rowEndSeq" validate:"omitempty,gte=1"`
	Note        string `json:"note"`
}

type RunResponse struct {
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicleId"`
	VehicleName string    `json:"vehicleName,omitempty"`
	LoadSeq     int       `json:"loadSeq"`
	Volume      float64   `json:"volume"`
	Note        string    `json:"note"`
	RowStartSeq int       `json:"rowStartSeq"`
	RowEndSeq   int       `json:"rowEndSeq"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LoadReportRowResponse struct {
	SeqNo         int            `json:"seqNo"`
	PlannedVolume float64        `json:"plannedVolume"`
	State         string         `json:"state"`
	Set           QuantitiesDTO  `json:"set"`
	Actual        *QuantitiesDTO `json:"actual,omitempty"`
	Delta         *QuantitiesDTO `json:"delta,omitempty"`
}

type LoadReportTotalsResponse struct {
	PlannedVolume float64       `json:"plannedVolume"`
	Set           QuantitiesDTO `json:"set"`
	Actual        QuantitiesDTO `json:"actual"`
	Delta         QuantitiesDTO `json:"delta"`
}

type LoadReportResponse struct {
	OrderID string                   `json:"orderId"`
	Rows    []LoadReportRowResponse  `json:"rows"`
	Totals  LoadReportTotalsResponse `json:"totals"`
}

func loadReportToResponse(r queries.GetLoadReportQueryResponse) LoadReportResponse {
	resp := LoadReportResponse{
		OrderID: r.OrderID.String(),
		Rows:    make([]LoadReportRowResponse, 0, len(r.Rows)),
		Totals: LoadReportTotalsResponse{
			PlannedVolume: r.Totals.PlannedVolume,
			Set:           quantitiesToDTO(r.Totals.Set),
			Actual:        quantitiesToDTO(r.Totals.Actual),
			Delta:         quantitiesToDTO(r.Totals.Delta),
		},
	}
	for _, row := range r.Rows {
		resp.Rows = append(resp.Rows, loadReportRowToResponse(row))
	}
	return resp
}

func loadReportRowToResponse(row services.LoadReportRow) LoadReportRowResponse {
	return LoadReportRowResponse{
		SeqNo:         row.SeqNo,
		PlannedVolume: row.PlannedVolume,
		State:         row.State.String(),
		Set:           quantitiesToDTO(row.Set),
		Actual:        quantitiesPtrToDTO(row.Actual),
		Delta:         quantitiesPtrToDTO(row.Delta),
	}
}
