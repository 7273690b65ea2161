package version

import (
	"fmt"
	"time"
)

// Заполняются линкером при сборке (-ldflags "-X ...").
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Номер сборки - количество дней от эпохи проекта.
var buildEpoch = time.Date(
	2024, time.January, 1,
	0, 0, 0, 0,
	time.UTC,
)

// VersionInfo - метаданные сборки в структурированном виде.
type VersionInfo struct {
	BuildID    int    `json:"build_id"`
	BuildDate  string `json:"build_date"`
	Commit     string `json:"commit"`
	Branch     string `json:"branch"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	// Считаем в часах: обе даты в UTC, переходов на летнее время нет.
	days := int(t.Sub(buildEpoch).Hours() / 24)
	return days, nil
}

// Info возвращает структурированную информацию о сборке.
// Безопасна в любой момент, включая dev-сборку без метаданных.
func Info() VersionInfo {
	id, err := CalculateBuildID()

	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}

	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String возвращает однострочное описание сборки для логов.
func String() string {
	info := Info()
	if !info.Calculated {
		return "geocoin-server (dev build)"
	}
	return fmt.Sprintf("geocoin-server build %d (%s, %s@%s)",
		info.BuildID, info.BuildDate, info.Branch, info.Commit)
}
