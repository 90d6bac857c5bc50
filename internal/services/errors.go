package services

import "errors"

var (
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrYearNotFound     = errors.New("model year not found")
	ErrModelNotFound    = errors.New("model not found")
	ErrColorNotFound    = errors.New("color not found")
	ErrRegistryNotFound = errors.New("registry data not found")
)
