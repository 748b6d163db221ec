package crypto

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

// chunkSize размер блока чтения; между блоками проверяется отмена контекста
const chunkSize = 64 * 1024

// HashFile считает MD5 содержимого файла.
// Отмена ctx прерывает чтение и возвращает ctx.Err() без частичного хеша.
func HashFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return HashReader(ctx, f)
}

// HashReader считает MD5 всего потока r.
func HashReader(ctx context.Context, r io.Reader) ([]byte, error) {
	h := md5.New()
	buf := make([]byte, chunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read content: %w", err)
		}
	}

	return h.Sum(nil), nil
}
