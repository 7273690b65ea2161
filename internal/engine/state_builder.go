package engine

import (
	"geocoin-server/pkg/api"
	"geocoin-server/pkg/geo"
)

// BuildState создает снимок игры для клиента.
//
// Клиенту отдаются СТАБИЛЬНЫЕ идентификаторы клеток и актуальные количества
// монет: UI-слой обязан перерисовывать popup по этим данным после каждой
// мутации, а не держать ссылку на старое состояние (иначе после RESET
// открытый popup показывал бы мертвую зону).
func (s *GameSession) BuildState(respType string) *api.ServerResponse {
	trail := make([]geo.LatLng, len(s.Player.Trail))
	copy(trail, s.Player.Trail)

	playerView := &api.PlayerView{
		Pos:     s.Player.Pos,
		Score:   s.Player.Score,
		Carried: s.Player.Carried,
		Trail:   trail,
	}

	caches := make([]api.CacheView, 0, len(s.active))
	for _, z := range s.active {
		coins := z.Coins()
		coinIDs := make([]string, 0, len(coins))
		for _, c := range coins {
			coinIDs = append(coinIDs, c.String())
		}

		caches = append(caches, api.CacheView{
			I:         z.Cell.I,
			J:         z.Cell.J,
			Bounds:    s.Factory.CellBounds(z.Cell.I, z.Cell.J),
			CoinCount: z.CoinCount(),
			Coins:     coinIDs,
		})
	}

	// Копия логов, чтобы не было гонки с очисткой после рассылки.
	logsCopy := make([]api.LogEntry, len(s.Logs))
	copy(logsCopy, s.Logs)

	return &api.ServerResponse{
		Type:   respType,
		Player: playerView,
		Grid: &api.GridMeta{
			Step:   s.Factory.Step(),
			Radius: s.Config.SpawnRadius,
			Origin: s.Config.Origin(),
		},
		Caches: caches,
		Logs:   logsCopy,
	}
}
