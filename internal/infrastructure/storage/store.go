package storage

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"geocoin-server/pkg/geo"
)

// Ключи снапшота. Тайники лежат под общим префиксом,
// по одной записи на клетку: "cache/<i>:<j>" -> memento.
const (
	keyPlayer = "player"
	keyMint   = "mint"

	cachePrefix = "cache/"
)

// PlayerRecord - сериализуемое состояние игрока.
type PlayerRecord struct {
	Pos     geo.LatLng   `json:"pos"`
	Score   int          `json:"score"`
	Carried int          `json:"carried"`
	Trail   []geo.LatLng `json:"trail"`
}

// Snapshot - полный слепок сессии для сохранения/загрузки.
// Содержимое тайников хранится в непрозрачной текстовой кодировке
// (memento из domain.CacheZone) - хранилищу её структура не важна,
// требуется только round-trip.
type Snapshot struct {
	Player     PlayerRecord
	NextSerial uint64

	// Caches: "i:j" -> memento.
	Caches map[string]string
}

// SnapshotStore - key-value хранилище снапшотов поверх leveldb.
type SnapshotStore struct {
	db *leveldb.DB
}

// Open открывает (или создает) хранилище в каталоге dir.
func Open(dir string) (*SnapshotStore, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// Close закрывает хранилище.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save атомарно записывает снапшот, полностью заменяя предыдущий.
// Старые записи тайников удаляются, чтобы после Reset или Restore
// в базе не оставались "осиротевшие" клетки.
func (s *SnapshotStore) Save(snap *Snapshot) error {
	playerJSON, err := json.Marshal(snap.Player)
	if err != nil {
		return fmt.Errorf("marshal player record: %w", err)
	}

	batch := new(leveldb.Batch)

	iter := s.db.NewIterator(util.BytesPrefix([]byte(cachePrefix)), nil)
	for iter.Next() {
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		batch.Delete(key)
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return fmt.Errorf("scan stale cache records: %w", err)
	}

	batch.Put([]byte(keyPlayer), playerJSON)
	batch.Put([]byte(keyMint), []byte(strconv.FormatUint(snap.NextSerial, 10)))
	for cell, memento := range snap.Caches {
		batch.Put([]byte(cachePrefix+cell), []byte(memento))
	}

	return s.db.Write(batch, nil)
}

// Load читает снапшот. Если снапшота нет - возвращает (nil, nil):
// это не ошибка, сессия просто стартует с дефолтов.
// Битая запись игрока - ошибка, по которой вызывающий код тоже
// откатывается на дефолты (с предупреждением в лог).
func (s *SnapshotStore) Load() (*Snapshot, error) {
	playerJSON, err := s.db.Get([]byte(keyPlayer), nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read player record: %w", err)
	}

	snap := &Snapshot{Caches: make(map[string]string)}
	if err := json.Unmarshal(playerJSON, &snap.Player); err != nil {
		return nil, fmt.Errorf("corrupt player record: %w", err)
	}

	// Счетчик серий: битое значение не фатально, монеты просто
	// начнут нумероваться с нуля.
	if raw, err := s.db.Get([]byte(keyMint), nil); err == nil {
		if next, perr := strconv.ParseUint(string(raw), 10, 64); perr == nil {
			snap.NextSerial = next
		}
	}

	iter := s.db.NewIterator(util.BytesPrefix([]byte(cachePrefix)), nil)
	for iter.Next() {
		cell := string(iter.Key()[len(cachePrefix):])
		snap.Caches[cell] = string(iter.Value())
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("scan cache records: %w", err)
	}

	return snap, nil
}

// Discard стирает снапшот целиком (команда RESET).
func (s *SnapshotStore) Discard() error {
	batch := new(leveldb.Batch)
	batch.Delete([]byte(keyPlayer))
	batch.Delete([]byte(keyMint))

	iter := s.db.NewIterator(util.BytesPrefix([]byte(cachePrefix)), nil)
	for iter.Next() {
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		batch.Delete(key)
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return fmt.Errorf("scan cache records: %w", err)
	}

	return s.db.Write(batch, nil)
}
