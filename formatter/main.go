package main

import (
	"os"

	"git.solver4all.com/azaryc2s/dropoff"
)

// formatter rewrites instance JSON files in place with one matrix row per line.
func main() {
	log := dropoff.NewLogger(os.Stderr, false)
	if len(os.Args) < 2 {
		log.Info("No arguments passed!")
		return
	}
	for _, fileName := range os.Args[1:] {
		fileContent, err := os.ReadFile(fileName)
		if err != nil {
			log.Error(err, "read failed", "file", fileName)
			continue
		}
		formatted := dropoff.SanitizeJsonArrayLineBreaks(string(fileContent))
		if err = os.WriteFile(fileName, []byte(formatted), 0644); err != nil {
			log.Error(err, "write failed", "file", fileName)
		}
	}
}
