package geo

import "math"

// Factory конвертирует целочисленные индексы сетки в канонические координаты.
//
// Это flyweight-кеш: для одинаковой пары (i, j) всегда возвращается одно и то же
// значение LatLng, а результат запоминается во внутренней мапе. Кеш растет
// монотонно в течение сессии - для ожидаемой игровой области это приемлемо.
//
// Сетка глобальная: клетка (i, j) покрывает широты [i*step, (i+1)*step)
// и долготы [j*step, (j+1)*step). Начало координат - (0, 0), а не позиция
// игрока, поэтому конвертация не зависит от точки спавна.
type Factory struct {
	step float64

	// Мапа: упакованный ключ клетки -> канонический юго-западный угол.
	// Ключ: [ I (32) | J (32) ], см. packKey.
	cache map[uint64]LatLng
}

// NewFactory создает фабрику координат.
// step - шаг сетки в градусах. Должен быть одинаковым у фабрики и у логики
// регенерации, иначе границы клеток "поплывут".
func NewFactory(step float64) *Factory {
	return &Factory{
		step:  step,
		cache: make(map[uint64]LatLng),
	}
}

// Step возвращает шаг сетки в градусах.
func (f *Factory) Step() float64 {
	return f.step
}

// LatLng возвращает канонический юго-западный угол клетки (i, j).
// Чистая функция от (i, j) при фиксированном шаге; результат мемоизируется.
func (f *Factory) LatLng(i, j int32) LatLng {
	key := packKey(i, j)
	if p, ok := f.cache[key]; ok {
		return p
	}

	p := LatLng{
		Lat: float64(i) * f.step,
		Lng: float64(j) * f.step,
	}
	f.cache[key] = p
	return p
}

// CellOf возвращает индексы клетки, содержащей координату p.
// Деление с округлением вниз (floor), чтобы отрицательные координаты
// попадали в "свою" клетку, а не в соседнюю.
func (f *Factory) CellOf(p LatLng) (i, j int32) {
	i = int32(math.Floor(p.Lat / f.step))
	j = int32(math.Floor(p.Lng / f.step))
	return i, j
}

// CellBounds возвращает границы клетки (i, j) для отрисовки.
func (f *Factory) CellBounds(i, j int32) Bounds {
	return Bounds{
		SouthWest: f.LatLng(i, j),
		NorthEast: f.LatLng(i+1, j+1),
	}
}

// Size возвращает количество закешированных координат (для отладки).
func (f *Factory) Size() int {
	return len(f.cache)
}

func packKey(i, j int32) uint64 {
	return uint64(uint32(i))<<32 | uint64(uint32(j))
}
