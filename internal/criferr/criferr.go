// Package criferr задаёт закрытую таксономию отказов интеграции с бюро.
// Все слои (конфигурация, валидатор, кодек, транспорт) возвращают один
// тип *Error с видом отказа; вызывающий код различает виды через
// errors.As, не зная, какой внутренний шлюз их породил.
package criferr

import (
	"errors"
	"fmt"
)

// Kind — вид отказа.
type Kind int

const (
	// KindConfiguration — некорректные учётные данные или адрес;
	// фатально на старте, никогда не ретраится.
	KindConfiguration Kind = iota + 1
	// KindValidation — запрос не прошёл предусловия; в сеть не уходит.
	KindValidation
	// KindAuthentication — бюро отвергло учётные данные.
	KindAuthentication
	// KindCommunication — транспортный сбой или нечитаемый ответ;
	// единственный вид, который транспортному слою имеет смысл ретраить.
	KindCommunication
	// KindProtocol — сборка или разбор XML не удались по причине вне
	// остальных видов (неподдерживаемая операция, отсутствующий
	// контейнер вывода); ретрай бессмыслен.
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindCommunication:
		return "communication"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// Error — типизированный отказ с видом, кодом бюро и именем поля,
// когда они известны.
type Error struct {
	Kind  Kind
	Code  string
	Field string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New создаёт отказ заданного вида.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf создаёт отказ с форматированием сообщения.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap оборачивает причину в отказ заданного вида.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Validation создаёт отказ валидации с указанием поля.
func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Msg: msg}
}

// KindOf возвращает вид отказа из цепочки ошибок; ноль — когда в
// цепочке нет *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
