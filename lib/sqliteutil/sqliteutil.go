package sqliteutil

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Config selects between a local sqlite file and a remote libsql
// database. An empty Url means local.
type Config struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (config Config) OpenDB(schema string) (*sql.DB, error) {
	if config.Url != "" {
		dsn := config.Url
		if config.AuthToken != "" {
			dsn = fmt.Sprintf("%s?authToken=%s", config.Url, config.AuthToken)
		}
		database, err := sql.Open("libsql", dsn)
		if err != nil {
			return nil, err
		}
		return database, applySchema(database, schema)
	}

	file := config.File
	if file == "" {
		file = ":memory:"
	}
	database, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, err
	}
	return database, applySchema(database, schema)
}

// OpenDB opens a local sqlite database at path and applies the schema.
func OpenDB(schema, path string) (*sql.DB, error) {
	return Config{File: path}.OpenDB(schema)
}

func applySchema(database *sql.DB, schema string) error {
	if schema == "" {
		return nil
	}
	_, err := database.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return err
	}
	return nil
}
