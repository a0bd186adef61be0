// Package reftext loads reference texts from files.
package reftext

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a reference text from the provided file path. Line breaks
// are collapsed to single spaces so the text scores the same as if it had
// been typed into the editor.
func LoadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only reference file.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("reference file is empty")
	}
	return strings.Join(lines, " "), nil
}
