package geo

import "fmt"

// LatLng - географическая координата в градусах.
// Value-type: дешево копируется, сравнивается по значению.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds - прямоугольник клетки на карте (юго-западный и северо-восточный углы).
// Этого достаточно, чтобы клиент отрисовал прямоугольник кеша.
type Bounds struct {
	SouthWest LatLng `json:"sw"`
	NorthEast LatLng `json:"ne"`
}

func (p LatLng) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat, p.Lng)
}
