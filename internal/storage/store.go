// Package storage persists submitted orders and their uploaded photos on
// local disk: one image per order under the uploads directory, one JSON
// record per order under the orders directory.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"holiday-poster-funnel/internal/models"
)

// UploadsPublicPrefix is the URL path uploads are served back under.
const UploadsPublicPrefix = "/uploads"

type Store struct {
	uploadsDir string
	ordersDir  string
}

// New creates both directories if they do not exist yet.
func New(uploadsDir, ordersDir string) (*Store, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	if err := os.MkdirAll(ordersDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create orders directory: %w", err)
	}
	return &Store{uploadsDir: uploadsDir, ordersDir: ordersDir}, nil
}

func (s *Store) UploadsDir() string { return s.uploadsDir }

func (s *Store) OrdersDir() string { return s.ordersDir }

// NewOrderID generates an order id of the form order_<unixms>_<random>.
// Collisions are accepted as negligible, not formally bounded.
func NewOrderID() string {
	return fmt.Sprintf("order_%d_%d", time.Now().UnixMilli(), rand.Int63n(1_000_000))
}

// SaveUpload stores an uploaded photo under a generated filename of the
// form family-<unixms>-<random>.<ext>, keeping the original extension and
// defaulting to .jpg. It returns the generated filename and the public
// path the file will be served back at.
func (s *Store) SaveUpload(originalName string, r io.Reader) (string, string, error) {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	filename := fmt.Sprintf("family-%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)

	dst, err := os.Create(filepath.Join(s.uploadsDir, filename))
	if err != nil {
		return "", "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return filename, UploadsPublicPrefix + "/" + filename, nil
}

// WriteOrder writes the order record as indented JSON named by its id.
// The write is a single non-atomic operation, independent of the upload
// that preceded it.
func (s *Store) WriteOrder(order *models.Order) error {
	data, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	path := filepath.Join(s.ordersDir, order.OrderID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write order record: %w", err)
	}
	return nil
}

// ReadOrder returns the raw JSON record for an order id. Lookup is direct
// by id; there is no index or listing.
func (s *Store) ReadOrder(orderID string) ([]byte, error) {
	if orderID == "" || strings.ContainsAny(orderID, `/\`) || strings.Contains(orderID, "..") {
		return nil, fmt.Errorf("invalid order id %q", orderID)
	}
	data, err := os.ReadFile(filepath.Join(s.ordersDir, orderID+".json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read order record: %w", err)
	}
	return data, nil
}
