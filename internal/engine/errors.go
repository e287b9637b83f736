package engine

import "errors"

// ErrInvalidArgument единственный вид ошибки движка: плохая ставка, неизвестный тир, битая таблица весов.
// Конкретика добавляется через fmt.Errorf("%w: ...").
var ErrInvalidArgument = errors.New("invalid argument")
