// Package fuzztests houses Go fuzz harnesses for the tokenizer and the
// attribute fixers. They guard against panics on arbitrary input and check
// that fixing never loses or invents non-whitespace bytes.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер и
// фиксеры.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/driver,
// internal/fix, internal/testkit.

package fuzztests
