package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Di == 0 && p.Dj == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Di < -1 || p.Di > 1 || p.Dj < -1 || p.Dj > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p PositionPayload) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return errors.New("latitude out of range")
	}
	if p.Lng < -180 || p.Lng > 180 {
		return errors.New("longitude out of range")
	}
	return nil
}
