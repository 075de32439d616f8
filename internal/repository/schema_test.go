package repository

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Запросы пишутся руками, схема — в миграциях; этот тест держит их в согласии:
// каждый идентификатор из SQL-литералов пакета должен существовать в схеме.

var (
	createTableRe = regexp.MustCompile(`(?s)CREATE TABLE (\w+) \((.*?)\);`)
	rawStringRe   = regexp.MustCompile("`[^`]*`")
	identRe       = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	quotedRe      = regexp.MustCompile(`'[^']*'`)
	paramRe       = regexp.MustCompile(`\$\d+`)
)

func schemaIdentifiers(t *testing.T) map[string]bool {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "..", "migrations", "00001_init.sql"))
	require.NoError(t, err)

	idents := map[string]bool{}
	for _, table := range createTableRe.FindAllStringSubmatch(string(raw), -1) {
		idents[table[1]] = true
		for _, line := range strings.Split(table[2], "\n") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			if identRe.MatchString(fields[0]) {
				idents[fields[0]] = true
			}
		}
	}

	require.NotEmpty(t, idents)
	return idents
}

func sqlLiterals(t *testing.T) map[string][]string {
	t.Helper()

	entries, err := os.ReadDir(".")
	require.NoError(t, err)

	res := map[string][]string{}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		src, err := os.ReadFile(name)
		require.NoError(t, err)

		for _, lit := range rawStringRe.FindAllString(string(src), -1) {
			upper := strings.ToUpper(lit)
			if strings.Contains(upper, "SELECT") || strings.Contains(upper, "INSERT") ||
				strings.Contains(upper, "UPDATE") || strings.Contains(upper, "DELETE") {
				res[name] = append(res[name], lit)
			}
		}
	}

	require.NotEmpty(t, res)
	return res
}

func TestQueriesMatchMigrationSchema(t *testing.T) {
	idents := schemaIdentifiers(t)

	// Алиасы таблиц в запросах.
	idents["r"] = true
	idents["e"] = true

	for file, queries := range sqlLiterals(t) {
		for _, query := range queries {
			cleaned := paramRe.ReplaceAllString(quotedRe.ReplaceAllString(query, " "), " ")
			for _, token := range regexp.MustCompile(`[^a-zA-Z0-9_]+`).Split(cleaned, -1) {
				if token == "" || !identRe.MatchString(token) {
					continue
				}
				assert.True(t, idents[token],
					"%s references %q which does not exist in the schema", file, token)
			}
		}
	}
}
