package file

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

const BoardExt = ".txt"

var ErrEmptyPath = errors.New("empty file path")

// SaveBoard writes the text dump of b, creating parent directories as needed.
func SaveBoard(filePath string, b *chess.Board) error {
	if filePath == "" {
		return ErrEmptyPath
	}
	if filepath.Ext(filePath) == "" {
		filePath += BoardExt
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	log.Println("Save", filePath, "...")
	return os.WriteFile(filePath, []byte(b.String()), 0o644)
}

func LoadBoard(filePath string) (*chess.Board, error) {
	if filePath == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	b, err := chess.ParseBoard(string(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return b, nil
}

// AppendLines appends one line per element to filePath.
func AppendLines[T fmt.Stringer](filePath string, lines ...T) error {
	if len(lines) == 0 {
		return nil
	}

	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(strings.TrimRight(line.String(), "\n") + "\n"); err != nil {
			return err
		}
	}

	return w.Flush()
}
