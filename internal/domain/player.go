package domain

import "geocoin-server/pkg/geo"

// PlayerState - состояние игрока: позиция, очки, монеты в кармане и след
// перемещений. Score только растет (при депозите), Carried обнуляется
// при депозите.
type PlayerState struct {
	Pos     geo.LatLng
	Score   int
	Carried int

	// Trail - упорядоченная история позиций для отрисовки полилинии.
	Trail []geo.LatLng
}

// NewPlayerState создает игрока в стартовой позиции.
// След сразу содержит стартовую точку.
func NewPlayerState(start geo.LatLng) *PlayerState {
	return &PlayerState{
		Pos:   start,
		Trail: []geo.LatLng{start},
	}
}

// MoveTo перемещает игрока и дописывает точку в след.
func (p *PlayerState) MoveTo(pos geo.LatLng) {
	p.Pos = pos
	p.Trail = append(p.Trail, pos)
}
