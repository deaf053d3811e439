// Package tokensql converts token metadata CSV exports into SQL insert
// statements for the tokens table.
package tokensql

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Token is one row of the token metadata export.
type Token struct {
	Symbol          string
	Network         string
	ContractAddress string // "N/A" or empty means a native asset without a contract
}

// ReadCSV parses token rows from r. The header must contain the symbol,
// network and contract_address columns; column order is free.
func ReadCSV(r io.Reader) ([]Token, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"symbol", "network", "contract_address"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var tokens []Token
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read csv record")
		}
		tokens = append(tokens, Token{
			Symbol:          strings.TrimSpace(record[col["symbol"]]),
			Network:         strings.TrimSpace(record[col["network"]]),
			ContractAddress: strings.TrimSpace(record[col["contract_address"]]),
		})
	}

	return tokens, nil
}

// InsertStatement renders one bulk insert for the tokens table. Single
// quotes are escaped, an N/A contract address becomes SQL NULL. An empty
// token list renders an empty string.
func InsertStatement(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}

	values := make([]string, 0, len(tokens))
	for _, token := range tokens {
		contract := "NULL"
		if token.ContractAddress != "" && token.ContractAddress != "N/A" {
			contract = "'" + escape(token.ContractAddress) + "'"
		}
		values = append(values, fmt.Sprintf("('%s','%s',%s)", escape(token.Symbol), escape(token.Network), contract))
	}

	return fmt.Sprintf("insert into tokens (symbol, network, contract_address)\nvalues\n  %s\n;\n", strings.Join(values, ",\n  "))
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
