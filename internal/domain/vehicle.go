package domain

import "time"

type VehicleType string

const (
	VehicleTypeBoat  VehicleType = "boat"
	VehicleTypePlane VehicleType = "plane"
)

func (t VehicleType) Valid() bool {
	return t == VehicleTypeBoat || t == VehicleTypePlane
}

type Vehicle struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      VehicleType `json:"type"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

type CreateVehicleInput struct {
	Name string
	Type VehicleType
}
