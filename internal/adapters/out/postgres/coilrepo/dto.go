// Package coilrepo provides data transfer objects and mapping functions for
// coil persistence. The remaining-weight decrement is committed as a
// compare-and-swap so concurrent allocations never jointly over-draw a coil.
package coilrepo

import (
	"steelflow/internal/core/domain/model/coil"
	"steelflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CoilDTO represents the database structure for persisting coil aggregates.
type CoilDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagNumber          string    `gorm:"uniqueIndex"`
	ItemID             string    `gorm:"index"`
	Material           string
	Gauge              float64
	WidthIn            float64
	TotalWeightLbs     float64
	RemainingWeightLbs float64
	Version            int64
}

// TableName specifies the database table name for coil entities.
func (CoilDTO) TableName() string {
	return "coils"
}

// fromDomain converts a coil domain aggregate to its database representation.
func fromDomain(aggregate *coil.Coil) CoilDTO {
	return CoilDTO{
		ID:                 aggregate.ID().Bytes(),
		TagNumber:          aggregate.TagNumber(),
		ItemID:             aggregate.ItemID(),
		Material:           aggregate.Material(),
		Gauge:              aggregate.Gauge(),
		WidthIn:            aggregate.WidthIn(),
		TotalWeightLbs:     aggregate.TotalWeightLbs(),
		RemainingWeightLbs: aggregate.RemainingWeightLbs(),
		Version:            aggregate.Version(),
	}
}

// toDomain converts a database DTO to a coil domain aggregate.
func toDomain(dto CoilDTO) (*coil.Coil, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return coil.RestoreCoil(
		id, dto.TagNumber, dto.ItemID, dto.Material,
		dto.Gauge, dto.WidthIn,
		dto.TotalWeightLbs, dto.RemainingWeightLbs, dto.Version,
	)
}
