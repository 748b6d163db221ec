package api

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iudanet/vcresolve/internal/client/classifier"
	"github.com/iudanet/vcresolve/internal/models"
)

// applyMergedContent переносит результат слияния в рабочее пространство после
// того, как сервер принял AcceptMerge. Без этого шага на сервере конфликт
// закрыт, а локально остается только "your" содержимое.
func applyMergedContent(c *models.Conflict) error {
	if !c.HasState() {
		return nil
	}
	state := c.State()
	if state.Resolution != models.ResolutionAcceptMerge || !classifier.CanMergeContent(c) || state.MergedFileName == "" {
		return nil
	}

	merged := state.MergedFileName
	local := c.LocalPath()
	if local == "" {
		// Локального элемента нет: им становится сам merged-файл
		c.SetSourceLocalItem(merged)
		c.SetMergedFileName("")
		return nil
	}

	if err := replaceFile(merged, local); err != nil {
		return err
	}
	c.SetMergedFileName("")
	return nil
}

// replaceFile moves src over dst keeping dst's permissions.
func replaceFile(src, dst string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(dst); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.Rename(src, dst); err == nil {
		if err := os.Chmod(dst, mode); err != nil {
			return fmt.Errorf("failed to restore mode of %s: %w", dst, err)
		}
		return nil
	}

	// Rename не работает между томами, когда временный каталог на другом диске
	if err := copyFile(src, dst, mode); err != nil {
		return fmt.Errorf("failed to replace %s: %w", dst, err)
	}
	if err := os.Remove(src); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove merged file: %w", err)
	}
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
