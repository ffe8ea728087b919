package session

import (
	"fmt"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketCity = "city"

// Store хранит выбранный город для каждого чата.
// Выбор переживает перезапуск бота, поэтому хранится в bbolt,
// а не в памяти процесса.
type Store struct {
	db *bolt.DB
}

// NewStore открывает файл хранилища и создаёт бакет
func NewStore(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("открытие хранилища сессий: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCity))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("создание бакета: %w", err)
	}

	return &Store{db: db}, nil
}

// Close закрывает хранилище
func (s *Store) Close() error {
	return s.db.Close()
}

// City возвращает выбранный город чата, пустую строку если выбора не было
func (s *Store) City(chatID int64) (string, error) {
	var city string

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketCity)).Get(key(chatID))
		if data != nil {
			city = string(data)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("чтение города: %w", err)
	}

	return city, nil
}

// SetCity запоминает выбранный город чата
func (s *Store) SetCity(chatID int64, city string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCity)).Put(key(chatID), []byte(city))
	})
	if err != nil {
		return fmt.Errorf("сохранение города: %w", err)
	}
	return nil
}

func key(chatID int64) []byte {
	return []byte(strconv.FormatInt(chatID, 10))
}
