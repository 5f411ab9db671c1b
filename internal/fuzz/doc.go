// Package fuzztests houses Go fuzz harnesses that exercise the parsing
// pipeline (source -> grammar -> transform). Its goal is to smoke test
// robustness and guard against panics or runaway allocations on arbitrary
// inputs.
//
// Назначение: прогонять произвольные байты через индекс, грамматику и
// нормализующие проходы.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/grammar, internal/driver,
// internal/diag, internal/testkit.
package fuzztests
