package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove     // шаг на соседнюю клетку (кнопки управления)
	ActionPosition // абсолютное обновление позиции (геолокация)
	ActionCollect  // забрать все монеты из тайника
	ActionDeposit  // положить монеты из кармана в тайник
	ActionReset    // полный сброс сессии

	// ActionShutdown - внутренняя команда остановки цикла сессии.
	// Намеренно отсутствует в ParseAction: клиент не может её прислать.
	ActionShutdown
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":     ActionInit,
	"MOVE":     ActionMove,
	"POSITION": ActionPosition,
	"COLLECT":  ActionCollect,
	"DEPOSIT":  ActionDeposit,
	"RESET":    ActionReset,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:     "INIT",
	ActionMove:     "MOVE",
	ActionPosition: "POSITION",
	ActionCollect:  "COLLECT",
	ActionDeposit:  "DEPOSIT",
	ActionReset:    "RESET",
	ActionShutdown: "SHUTDOWN",
}

// ParseAction конвертирует строку из JSON в ActionType.
// Нечувствителен к регистру для надежности.
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
