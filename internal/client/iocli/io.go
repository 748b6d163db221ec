package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод-вывод CLI
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	// Confirm задает вопрос да/нет; вне терминала ответ всегда "нет"
	Confirm(prompt string) (bool, error)
	IsTerminal() bool
	Write(p []byte) (n int, err error)
}
