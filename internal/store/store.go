package store

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"cryptonews/internal/model"
)

const (
	dateLayout      = "01022006"
	pairSuffix      = "-USDT"
	predictionsFile = "predictions.yaml"
	chartFile       = "chart.png"
)

// Key identifies one collection: one asset symbol on one calendar day.
type Key struct {
	Symbol string
	Date   string
}

func TodayKey(symbol string) Key {
	return Key{Symbol: symbol, Date: time.Now().Format(dateLayout)}
}

func ValidDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// Store persists record collections as one YAML file per key under
// <root>/news/<SYMBOL>-USDT/<MMDDYYYY>/. Whole-file overwrite semantics:
// callers load, modify in memory, and save once per run.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

func (s *Store) BaseDir(key Key) string {
	return filepath.Join(s.root, "news", key.Symbol+pairSuffix, key.Date)
}

func (s *Store) filePath(key Key) string {
	return filepath.Join(s.BaseDir(key), predictionsFile)
}

// ImagePath is the on-disk destination for a record's illustration.
func (s *Store) ImagePath(key Key, id int) string {
	return filepath.Join(s.BaseDir(key), strconv.Itoa(id), chartFile)
}

// ImageRef is the path stored inside the record, always slash-separated and
// relative to the data root.
func ImageRef(key Key, id int) string {
	return path.Join("news", key.Symbol+pairSuffix, key.Date, strconv.Itoa(id), chartFile)
}

// Load returns the collection for key. A missing, unreadable, or empty file
// yields an empty collection; a fresh run simply starts appending at id 1.
func (s *Store) Load(key Key) *model.Collection {
	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		return &model.Collection{}
	}

	var collection model.Collection
	if err := yaml.Unmarshal(data, &collection); err != nil {
		return &model.Collection{}
	}

	return &collection
}

// Save serializes the full collection and overwrites any prior file.
func (s *Store) Save(key Key, collection *model.Collection) error {
	if err := os.MkdirAll(s.BaseDir(key), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	data, err := yaml.Marshal(collection)
	if err != nil {
		return fmt.Errorf("marshaling collection: %w", err)
	}

	if err := os.WriteFile(s.filePath(key), data, 0o644); err != nil {
		return fmt.Errorf("writing collection: %w", err)
	}

	return nil
}

// ListSymbols returns the symbols that have a stored collection for date.
func (s *Store) ListSymbols(date string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, "news"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading store root: %w", err)
	}

	var symbols []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), pairSuffix) {
			continue
		}
		symbol := strings.TrimSuffix(entry.Name(), pairSuffix)
		if _, err := os.Stat(s.filePath(Key{Symbol: symbol, Date: date})); err == nil {
			symbols = append(symbols, symbol)
		}
	}

	return symbols, nil
}
