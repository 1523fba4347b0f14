package usecase

import (
	"strings"
	"time"

	"quick-capture/internal/task"
	"quick-capture/pkg/quickparse"
)

// parserFor resolves a language code to its parser. An empty code falls back
// to the configured default.
func (uc *implUseCase) parserFor(code string) (string, *quickparse.Parser, error) {
	if code == "" {
		code = uc.defaultLang
	}
	code = strings.ToLower(code)

	p, ok := uc.parsers[code]
	if !ok {
		return "", nil, task.ErrUnknownLanguage
	}

	return code, p, nil
}

func (uc *implUseCase) referenceTime(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return uc.now()
}
