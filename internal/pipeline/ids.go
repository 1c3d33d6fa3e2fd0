package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadIDFile reads one integer food id per line. Every line must parse,
// blank lines included: a malformed file kills the run before any request is
// made.
func ReadIDFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ids []int
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		id, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid food id %q", path, lineNo, line)
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ChunkIDs splits ids into consecutive chunks of at most size, preserving
// input order across chunks.
func ChunkIDs(ids []int, size int) [][]int {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	chunks := make([][]int, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
