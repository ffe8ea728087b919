package gsheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client клиент для чтения Google Sheets.
// Бот только читает таблицу, поэтому scope ограничен readonly.
type Client struct {
	sheets        *sheets.Service
	spreadsheetID string
}

// NewClient создаёт клиент по сервисному аккаунту.
// Credentials берутся из файла credentialsFile, а если путь пуст —
// из credentialsJSON как есть.
func NewClient(ctx context.Context, credentialsFile, credentialsJSON, spreadsheetID string) (*Client, error) {
	var creds []byte
	var err error

	if credentialsFile != "" {
		creds, err = os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("не удалось прочитать credentials: %w", err)
		}
	} else {
		creds = []byte(credentialsJSON)
	}

	jwtConfig, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("ошибка конфигурации JWT: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания Sheets сервиса: %w", err)
	}

	return &Client{
		sheets:        srv,
		spreadsheetID: spreadsheetID,
	}, nil
}

// FetchRange читает диапазон таблицы и возвращает ячейки строками.
// API отдаёт значения как interface{}, здесь они приводятся к строкам.
func (c *Client) FetchRange(ctx context.Context, rangeSpec string) ([][]string, error) {
	resp, err := c.sheets.Spreadsheets.Values.Get(c.spreadsheetID, rangeSpec).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("чтение диапазона %s: %w", rangeSpec, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprintf("%v", cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
