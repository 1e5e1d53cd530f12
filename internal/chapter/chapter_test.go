package chapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/klauspost/compress/gzip"
)

const twoVerses = `{"verses":[{"reference":"Ps 117:1","text":"O praise"},{"reference":"Ps 117:2","text":"For his"}]}`

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    int
		wantErr error
	}{
		{name: "verses", data: twoVerses, want: 2},
		{name: "missing verses key", data: `{}`, want: 0},
		{name: "null verses", data: `{"verses":null}`, want: 0},
		{name: "malformed", data: `{"verses":[`, wantErr: ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := Decode("ps117", []byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if ch.ID != "ps117" {
				t.Errorf("ID = %q", ch.ID)
			}
			if ch.Len() != tt.want {
				t.Errorf("Len = %d, want %d", ch.Len(), tt.want)
			}
		})
	}
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"plain.json":     {Data: []byte(twoVerses)},
		"packed.json.gz": {Data: gzipped(t, twoVerses)},
		"broken.json.gz": {Data: []byte("not gzip")},
		"index.json":     {Data: []byte(`["plain"]`)},
		"notes.txt":      {Data: []byte("skip")},
		"sub/x.json":     {Data: []byte(twoVerses)},
	}
	src := NewFSSource(fsys)
	ctx := context.Background()

	for _, id := range []string{"plain", "packed"} {
		data, err := src.Fetch(ctx, id)
		if err != nil {
			t.Fatalf("Fetch(%s): %v", id, err)
		}
		ch, err := Decode(id, data)
		if err != nil {
			t.Fatalf("Decode(%s): %v", id, err)
		}
		if ch.Len() != 2 {
			t.Errorf("%s: Len = %d, want 2", id, ch.Len())
		}
	}

	if _, err := src.Fetch(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing: expected ErrNotFound, got %v", err)
	}
	if _, err := src.Fetch(ctx, "../plain"); !errors.Is(err, ErrNotFound) {
		t.Errorf("traversal: expected ErrNotFound, got %v", err)
	}
	if _, err := src.Fetch(ctx, "broken"); !errors.Is(err, ErrMalformed) {
		t.Errorf("broken: expected ErrMalformed, got %v", err)
	}

	ids, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"broken", "packed", "plain"}
	if len(ids) != len(want) {
		t.Fatalf("List = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestSamples(t *testing.T) {
	src := Samples()
	ctx := context.Background()

	ids, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) == 0 {
		t.Fatal("expected bundled chapters")
	}
	for _, id := range ids {
		data, err := src.Fetch(ctx, id)
		if err != nil {
			t.Fatalf("Fetch(%s): %v", id, err)
		}
		ch, err := Decode(id, data)
		if err != nil {
			t.Fatalf("Decode(%s): %v", id, err)
		}
		if ch.Len() == 0 {
			t.Errorf("%s has no verses", id)
		}
		for i, v := range ch.Verses {
			if v.Reference == "" || v.Text == "" {
				t.Errorf("%s verse %d is incomplete: %+v", id, i, v)
			}
		}
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/chapters/ps117.json":
			w.Write([]byte(twoVerses))
		case "/chapters/index.json":
			w.Write([]byte(`["ps23","ps117"]`))
		case "/chapters/boom.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/chapters/", srv.Client())
	ctx := context.Background()

	data, err := src.Fetch(ctx, "ps117")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != twoVerses {
		t.Errorf("Fetch body = %q", data)
	}

	if _, err := src.Fetch(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing: expected ErrNotFound, got %v", err)
	}
	if _, err := src.Fetch(ctx, "boom"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("boom: expected status error, got %v", err)
	}

	ids, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 2 || ids[0] != "ps117" || ids[1] != "ps23" {
		t.Errorf("List = %v", ids)
	}
}

func TestSQLiteSource(t *testing.T) {
	src, err := OpenSQLite(filepath.Join(t.TempDir(), "verses.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer src.Close()

	if _, err := src.db.Exec(Schema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	rows := []struct {
		chapter   string
		position  int
		reference string
		text      string
	}{
		{"ps117", 2, "Ps 117:2", "For his"},
		{"ps117", 1, "Ps 117:1", "O praise"},
		{"ps23", 1, "Ps 23:1", "The LORD is my shepherd"},
	}
	for _, r := range rows {
		if _, err := src.db.Exec(`INSERT INTO verses VALUES (?, ?, ?, ?)`,
			r.chapter, r.position, r.reference, r.text); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	ctx := context.Background()
	data, err := src.Fetch(ctx, "ps117")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	ch, err := Decode("ps117", data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ch.Len() != 2 || ch.Verses[0].Reference != "Ps 117:1" || ch.Verses[1].Reference != "Ps 117:2" {
		t.Errorf("verses out of position order: %+v", ch.Verses)
	}

	if _, err := src.Fetch(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing: expected ErrNotFound, got %v", err)
	}

	ids, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 2 || ids[0] != "ps117" || ids[1] != "ps23" {
		t.Errorf("List = %v", ids)
	}
}

type countingSource struct {
	Source
	fetches atomic.Int32
}

func (s *countingSource) Fetch(ctx context.Context, id string) ([]byte, error) {
	s.fetches.Add(1)
	return s.Source.Fetch(ctx, id)
}

func TestLoader_CachesDecodedChapters(t *testing.T) {
	src := &countingSource{Source: NewFSSource(fstest.MapFS{
		"ps117.json": {Data: []byte(twoVerses)},
	})}
	l, err := NewLoader(src, LoaderOptions{MaxCostBytes: 1 << 20})
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	defer l.Close()

	ctx := context.Background()
	first, err := l.Load(ctx, "ps117")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	l.cache.Wait()

	second, err := l.Load(ctx, "ps117")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := src.fetches.Load(); got != 1 {
		t.Errorf("expected 1 fetch, got %d", got)
	}
	if first.Len() != 2 || second.Len() != 2 {
		t.Errorf("unexpected lengths %d and %d", first.Len(), second.Len())
	}
}

func TestLoader_Errors(t *testing.T) {
	l, err := NewLoader(NewFSSource(fstest.MapFS{
		"bad.json": {Data: []byte(`{"verses":`)},
	}), LoaderOptions{})
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	defer l.Close()

	ctx := context.Background()
	if _, err := l.Load(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := l.Load(ctx, "bad"); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

type closingSource struct {
	Source
	closed int
	err    error
}

func (s *closingSource) Close() error {
	s.closed++
	return s.err
}

func TestLoader_ClosesSource(t *testing.T) {
	src := &closingSource{Source: Samples()}
	l, err := NewLoader(src, LoaderOptions{})
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if src.closed != 1 {
		t.Errorf("source closed %d times, want 1", src.closed)
	}

	failing := &closingSource{Source: Samples(), err: errors.New("busy")}
	l, err = NewLoader(failing, LoaderOptions{})
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	if err := l.Close(); !errors.Is(err, failing.err) {
		t.Errorf("expected the source error, got %v", err)
	}
}

func TestLoader_ClosesSQLiteSource(t *testing.T) {
	src, err := OpenSQLite(filepath.Join(t.TempDir(), "verses.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	l, err := NewLoader(src, LoaderOptions{})
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := src.db.Ping(); err == nil {
		t.Error("database still open after Close")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		location string
		want     string
		wantErr  bool
	}{
		{location: "", want: "*chapter.FSSource"},
		{location: "embedded", want: "*chapter.FSSource"},
		{location: dir, want: "*chapter.FSSource"},
		{location: "https://example.com/chapters", want: "*chapter.HTTPSource"},
		{location: "sqlite:" + filepath.Join(dir, "v.db"), want: "*chapter.SQLiteSource"},
		{location: filepath.Join(dir, "missing"), wantErr: true},
	}
	for _, tt := range tests {
		src, err := Open(tt.location)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Open(%q): expected error", tt.location)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Open(%q): %v", tt.location, err)
		}
		if got := fmt.Sprintf("%T", src); got != tt.want {
			t.Errorf("Open(%q) = %s, want %s", tt.location, got, tt.want)
		}
		if c, ok := src.(interface{ Close() error }); ok {
			c.Close()
		}
	}
}
