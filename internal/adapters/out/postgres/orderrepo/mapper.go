package orderrepo

import (
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()

	totals := make(map[string]int64, len(o.StatusTimeTotals()))
	for status, d := range o.StatusTimeTotals() {
		totals[status.String()] = d.Milliseconds()
	}

	var last *time.Time
	if at, ok := o.LastStatusChangeAt(); ok {
		last = &at
	}

	return OrderDTO{
		ID:                 id,
		Title:              o.Title(),
		Status:             o.Status().String(),
		ProgressPercent:    o.ProgressPercent(),
		StatusReason:       optionalString(o.StatusReason()),
		StatusTimeTotals:   datatypes.NewJSONType(totals),
		LastStatusChangeAt: last,
		CreatedAt:          o.CreatedAt(),
		Version:            o.Version(),
		Events:             eventsFromDomain(id, o.History(), 0),
		MaterialLines:      materialLinesFromDomain(id, o.BillOfMaterials()),
	}
}

func eventsFromDomain(orderID uuid.UUID, events []order.StatusChangeEvent, firstSequence int) []StatusChangeEventDTO {
	dtos := make([]StatusChangeEventDTO, 0, len(events))
	for i, e := range events {
		dtos = append(dtos, StatusChangeEventDTO{
			OrderID:     orderID,
			Sequence:    firstSequence + i,
			Action:      e.Action(),
			FromStatus:  e.From().String(),
			ToStatus:    e.To().String(),
			Description: e.Description(),
			Reason:      optionalString(e.Reason()),
			OccurredAt:  e.OccurredAt(),
		})
	}
	return dtos
}

func materialLinesFromDomain(orderID uuid.UUID, lines []order.MaterialLine) []MaterialLineDTO {
	dtos := make([]MaterialLineDTO, 0, len(lines))
	for i, l := range lines {
		dtos = append(dtos, MaterialLineDTO{
			OrderID:          orderID,
			Position:         i,
			MaterialID:       l.MaterialID(),
			Name:             l.Name(),
			RequiredQuantity: l.RequiredQuantity(),
		})
	}
	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	totals := make(map[order.Status]time.Duration, len(dto.StatusTimeTotals.Data()))
	for status, ms := range dto.StatusTimeTotals.Data() {
		totals[order.Status(status)] += time.Duration(ms) * time.Millisecond
	}

	history := make([]order.StatusChangeEvent, 0, len(dto.Events))
	for _, e := range dto.Events {
		history = append(history, order.RestoreStatusChangeEvent(
			e.Action,
			e.OccurredAt,
			order.NormalizeLegacyStatus(order.Status(e.FromStatus)),
			order.NormalizeLegacyStatus(order.Status(e.ToStatus)),
			e.Description,
			derefString(e.Reason),
		))
	}

	lines := make([]order.MaterialLine, 0, len(dto.MaterialLines))
	for _, l := range dto.MaterialLines {
		line, lineErr := order.NewMaterialLine(l.MaterialID, l.Name, l.RequiredQuantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		Title:              dto.Title,
		Status:             order.Status(dto.Status),
		ProgressPercent:    dto.ProgressPercent,
		StatusReason:       derefString(dto.StatusReason),
		StatusTimeTotals:   totals,
		LastStatusChangeAt: dto.LastStatusChangeAt,
		History:            history,
		BillOfMaterials:    lines,
		CreatedAt:          dto.CreatedAt,
		Version:            dto.Version,
	})
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
