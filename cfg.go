package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/toxicgrid/model"
)

// LoadWords reads a label layout file, see model.ReadWords for the format.
func LoadWords(path string) ([]model.Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open labels: %w", err)
	}
	defer file.Close()
	words, err := model.ReadWords(file)
	if err != nil {
		return nil, fmt.Errorf("labels %s: %w", path, err)
	}
	log.Printf("loaded %d labels from %s", len(words), path)
	return words, nil
}
