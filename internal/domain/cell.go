package domain

import "fmt"

// GridCell - дискретная клетка мировой сетки, идентифицирует место кеша.
// Получается из реальной координаты делением на шаг сетки с округлением вниз.
type GridCell struct {
	I int32 `json:"i"`
	J int32 `json:"j"`
}

// CellKey - упакованный 64-битный ключ клетки для использования в мапах.
//
// Формат битов (от старших к младшим):
//
//	[ I (32) | J (32) ]
//
// Структурный ключ вместо форматированной строки: нет парсинга,
// нет коллизий вида "1:23" против "12:3".
type CellKey uint64

// Key упаковывает клетку в ключ.
func (c GridCell) Key() CellKey {
	return CellKey(uint64(uint32(c.I))<<32 | uint64(uint32(c.J)))
}

// Cell распаковывает ключ обратно в клетку.
func (k CellKey) Cell() GridCell {
	return GridCell{
		I: int32(uint32(k >> 32)),
		J: int32(uint32(k)),
	}
}

// String реализует интерфейс Stringer (для логов и отладки).
func (c GridCell) String() string {
	return fmt.Sprintf("%d:%d", c.I, c.J)
}
