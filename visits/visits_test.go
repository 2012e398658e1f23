package visits

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "visits.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDecodeAbsentOrGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-base64!!", Encode(nil)[:1], "e30"} {
		if got := Decode(raw); got == nil || len(got) != 0 {
			t.Errorf("Decode(%q) = %v, want empty", raw, got)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	in := Stats{"/se": 3, "/": 1}
	got := Decode(Encode(in))
	if got["/se"] != 3 || got["/"] != 1 || len(got) != 2 {
		t.Errorf("Decode(Encode) = %v", got)
	}
}

func TestStatsTotalsAndSorting(t *testing.T) {
	s := Stats{"/pm": 2, "/se": 5, "/aie": 2}
	if s.Total() != 9 {
		t.Errorf("Total = %d, want 9", s.Total())
	}
	sorted := s.Sorted()
	if sorted[0].Path != "/se" || sorted[1].Path != "/aie" || sorted[2].Path != "/pm" {
		t.Errorf("Sorted = %+v", sorted)
	}
}

func TestKey(t *testing.T) {
	cases := map[string]string{"": "/", "/": "/", "/se/": "/se", "/se": "/se", "///": "/"}
	for in, want := range cases {
		if got := Key(in); got != want {
			t.Errorf("Key(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsBot(t *testing.T) {
	if !IsBot("Mozilla/5.0 (compatible; Googlebot/2.1)") {
		t.Error("Googlebot should be a bot")
	}
	if IsBot("Mozilla/5.0 (X11; Linux x86_64) Firefox/120.0") {
		t.Error("Firefox should not be a bot")
	}
}

func TestSQLiteRecordIncrementsByOne(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	before, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := s.Record(ctx, "/se"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	after, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if after["/se"]-before["/se"] != 2 {
		t.Errorf("/se went from %d to %d, want +2", before["/se"], after["/se"])
	}
}

func TestSQLiteRecordReturnsAllPaths(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	s.Record(ctx, "/pm")
	stats, err := s.Record(ctx, "/")
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if stats["/pm"] != 1 || stats["/"] != 1 || stats.Total() != 2 {
		t.Errorf("stats = %v", stats)
	}
}

func TestSQLiteConcurrentRecords(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Record(ctx, "/aie"); err != nil {
				t.Errorf("Record failed: %v", err)
			}
		}()
	}
	wg.Wait()

	stats, _ := s.Load(ctx)
	if stats["/aie"] != 20 {
		t.Errorf("/aie = %d, want 20", stats["/aie"])
	}
}

func TestSQLiteReset(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	s.Record(ctx, "/se")
	s.Record(ctx, "/pm")

	if err := s.Reset(ctx, "/se"); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	stats, _ := s.Load(ctx)
	if _, ok := stats["/se"]; ok || stats["/pm"] != 1 {
		t.Errorf("after reset = %v", stats)
	}
	if err := s.Reset(ctx, ""); err != nil {
		t.Fatalf("Reset all failed: %v", err)
	}
	stats, _ = s.Load(ctx)
	if len(stats) != 0 {
		t.Errorf("after reset all = %v", stats)
	}
}

type failingStore struct{}

func (failingStore) Record(context.Context, string) (Stats, error) {
	return nil, errors.New("disk full")
}

func serve(t *testing.T, l *Logger, req *http.Request) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	called := false
	e.GET("/*", func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}, l.Middleware)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, called
}

func cookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestMiddlewareCountsTwoVisits(t *testing.T) {
	store := setupTestStore(t)
	l := NewLogger(store, false)

	rec, _ := serve(t, l, httptest.NewRequest(http.MethodGet, "/se/", nil))
	first := cookieFrom(rec)
	if first == nil {
		t.Fatal("expected visit cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/se/", nil)
	req.AddCookie(first)
	rec, _ = serve(t, l, req)

	client := Decode(cookieFrom(rec).Value)
	if client["/se"] != 2 {
		t.Errorf("client /se = %d, want 2", client["/se"])
	}
	stats, _ := store.Load(context.Background())
	if stats["/se"] != 2 {
		t.Errorf("stored /se = %d, want 2", stats["/se"])
	}
}

func TestMiddlewareStartsOverOnGarbageCookie(t *testing.T) {
	l := NewLogger(nil, false)
	req := httptest.NewRequest(http.MethodGet, "/pm/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%garbage"})
	rec, _ := serve(t, l, req)
	client := Decode(cookieFrom(rec).Value)
	if client["/pm"] != 1 || len(client) != 1 {
		t.Errorf("client = %v", client)
	}
}

func TestMiddlewareSkipsPartialsAndBots(t *testing.T) {
	store := setupTestStore(t)
	l := NewLogger(store, false)

	partial := httptest.NewRequest(http.MethodGet, "/se/?partial=tabs", nil)
	partial.Header.Set("HX-Request", "true")
	rec, called := serve(t, l, partial)
	if !called || cookieFrom(rec) != nil {
		t.Error("partial request should pass through uncounted")
	}

	bot := httptest.NewRequest(http.MethodGet, "/se/", nil)
	bot.Header.Set("User-Agent", "Googlebot/2.1")
	rec, called = serve(t, l, bot)
	if !called || cookieFrom(rec) != nil {
		t.Error("bot request should pass through uncounted")
	}

	stats, _ := store.Load(context.Background())
	if len(stats) != 0 {
		t.Errorf("stats = %v, want empty", stats)
	}
}

func TestMiddlewareSwallowsStoreErrors(t *testing.T) {
	l := NewLogger(failingStore{}, false)
	rec, called := serve(t, l, httptest.NewRequest(http.MethodGet, "/aie/", nil))
	if !called {
		t.Fatal("handler should still run")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if cookieFrom(rec) == nil {
		t.Error("client record should still be written")
	}
}
