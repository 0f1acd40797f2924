package testdata

import (
	"bufio"
	"os"
	"strings"
)

// Sample is a single line in a sample paths file:
// the name of a pattern followed by a path it should match.
type Sample struct {
	Pattern string
	Path    string
}

// Samples loads all samples from a text file. Blank lines and lines
// starting with # are skipped.
func Samples(fileName string) []Sample {
	var samples []Sample

	for line := range Lines(fileName) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		samples = append(samples, Sample{
			Pattern: parts[0],
			Path:    parts[1],
		})
	}

	return samples
}

// Lines is a utility function to easily read every line in a text file.
func Lines(fileName string) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		file, err := os.Open(fileName)

		if err != nil {
			return
		}

		defer file.Close()
		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
