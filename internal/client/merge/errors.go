package merge

import "errors"

var (
	// ErrNoBaseContent у конфликта нет базовой версии для трехстороннего слияния
	ErrNoBaseContent = errors.New("conflict has no base content")
	// ErrNoLocalFile локальный файл конфликта отсутствует
	ErrNoLocalFile = errors.New("local file does not exist")
)
