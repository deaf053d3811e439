// Command tokenimport converts a token metadata CSV export into a SQL file
// with insert statements for the tokens table.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/vadiminshakov/tradeconsole/internal/tokensql"
)

func main() {
	var (
		csvPath string
		sqlPath string
	)

	flag.StringVar(&csvPath, "in", "token_info.txt", "input CSV file with symbol, network and contract_address columns")
	flag.StringVar(&sqlPath, "out", "tokens_insert.sql", "output file for SQL insert statements")
	flag.Parse()

	in, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer in.Close()

	tokens, err := tokensql.ReadCSV(in)
	if err != nil {
		log.Fatalf("parse %s: %v", csvPath, err)
	}
	if len(tokens) == 0 {
		log.Fatalf("no token rows found in %s", csvPath)
	}

	sql := tokensql.InsertStatement(tokens)
	if err := os.WriteFile(sqlPath, []byte(sql), 0644); err != nil {
		log.Fatalf("write output: %v", err)
	}

	log.Printf("SQL insert statements for %d tokens written to %s", len(tokens), sqlPath)
}
