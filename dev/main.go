package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"bookreviews-backend/services/catalog/db"

	_ "modernc.org/sqlite"
)

const exampleConfig = `{
	database: {
		file: "dev/.state/catalog.db",
	},
	// sentiment strategy: "vader" or "lexicon"
	sentiment: "vader",
	// show the browser window while harvesting reviews
	headful: false,
}
`

func createDb(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		fmt.Println("database already created at", path)
		return nil
	}

	fmt.Println("creating database at", path)
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer database.Close()
	_, err = database.Exec(db.Schema)
	return err
}

func create(recreate bool) error {
	_, err := os.Stat("go.mod")
	if os.IsNotExist(err) {
		return fmt.Errorf("the dev environment must be created in the repository root (the same directory as the 'go.mod' file)")
	}

	if recreate {
		err = os.RemoveAll("dev/.state")
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	err = os.MkdirAll("dev/.state", 0777)
	if err != nil && !os.IsExist(err) {
		return err
	}

	err = createDb("dev/.state/catalog.db")
	if err != nil {
		return err
	}

	_, err = os.Stat("config.json5")
	if os.IsNotExist(err) {
		fmt.Println("writing example config.json5")
		err = os.WriteFile("config.json5", []byte(exampleConfig), 0644)
		if err != nil {
			return err
		}
	}

	return nil
}

func main() {
	recreate := flag.Bool("recreate", false, "recreate the dev environment from scratch")
	flag.Parse()

	err := create(*recreate)
	if err != nil {
		slog.Error("failed to create dev environment", "err", err.Error())
		os.Exit(1)
	}
}
