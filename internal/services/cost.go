package services

import (
	"errors"
	"fmt"
	"strings"
)

// CostFunc scores a move of the given road distance made while the vehicle
// carries load. Lower is better.
type CostFunc func(distance int, load int) float64

// Shortest scores a move by its distance alone.
func Shortest() CostFunc {
	return func(distance, _ int) float64 { return float64(distance) }
}

// FuelEfficient penalizes distance driven with a heavy load:
// distance * (1 + load/capacity). capacity must be positive.
func FuelEfficient(capacity int) CostFunc {
	return func(distance, load int) float64 {
		return float64(distance) * (1 + float64(load)/float64(capacity))
	}
}

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy names one of the supported optimization objectives.
type Strategy string

const (
	StrategyShortest      Strategy = "shortest"
	StrategyFuelEfficient Strategy = "fuel_efficient"
)

// DefaultStrategies is the set planned when a caller asks for none.
func DefaultStrategies() []Strategy {
	return []Strategy{StrategyShortest, StrategyFuelEfficient}
}

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyShortest:
		return StrategyShortest, nil
	case StrategyFuelEfficient, "fuel-efficient", "fuel":
		return StrategyFuelEfficient, nil
	}
	return "", fmt.Errorf("parse strategy %q: %w", s, ErrUnknownStrategy)
}

// CostFunc returns the cost function for the strategy at the given capacity.
func (s Strategy) CostFunc(capacity int) (CostFunc, error) {
	switch s {
	case StrategyShortest:
		return Shortest(), nil
	case StrategyFuelEfficient:
		return FuelEfficient(capacity), nil
	}
	return nil, fmt.Errorf("cost function %q: %w", s, ErrUnknownStrategy)
}
