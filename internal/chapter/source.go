package chapter

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed data/*.json
var sampleData embed.FS

// Source provides raw chapter documents by identifier.
type Source interface {
	// Fetch returns the chapter document for id in the wire format.
	Fetch(ctx context.Context, id string) ([]byte, error)
	// List returns the identifiers the source can serve.
	List(ctx context.Context) ([]string, error)
}

// Samples returns a source over the chapters bundled with the binary.
func Samples() *FSSource {
	sub, err := fs.Sub(sampleData, "data")
	if err != nil {
		panic(fmt.Sprintf("verse-order: embedded chapters: %v", err))
	}
	return NewFSSource(sub)
}

// Open picks a source from a configuration string:
//
//	""  or "embedded"      bundled sample chapters
//	"http://..."/"https://" HTTPSource rooted at the URL
//	"sqlite:<path>"        SQLiteSource over the database file
//	anything else          directory of <id>.json files
func Open(location string) (Source, error) {
	switch {
	case location == "" || location == "embedded":
		return Samples(), nil
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, nil), nil
	case strings.HasPrefix(location, "sqlite:"):
		src, err := OpenSQLite(strings.TrimPrefix(location, "sqlite:"))
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		info, err := os.Stat(location)
		if err != nil {
			return nil, fmt.Errorf("chapter source %s: %w", location, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("chapter source %s: not a directory", location)
		}
		return NewFSSource(os.DirFS(location)), nil
	}
}
