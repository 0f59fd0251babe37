package challenges

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/feadoor/cryptopals/internal/domain/message"
)

// readLines reads the named data file and returns its non-empty lines.
func readLines(env *Env, name string) ([]string, error) {
	path := filepath.Join(env.DataDir, name)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", name, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", name, err)
	}
	return lines, nil
}

// readBase64File reads the named data file, strips line breaks and decodes
// the remaining base64 content as a single message.
func readBase64File(env *Env, name string) (message.Message, error) {
	lines, err := readLines(env, name)
	if err != nil {
		return message.Message{}, err
	}
	msg, err := message.FromBase64(strings.Join(lines, ""))
	if err != nil {
		return message.Message{}, fmt.Errorf("failed to decode data file %s: %w", name, err)
	}
	return msg, nil
}
