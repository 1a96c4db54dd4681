package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const alquranFixture = `{
	"code": 200,
	"data": [
		{
			"text": "قُلْ هُوَ اللَّهُ أَحَدٌ",
			"surah": {"number": 112, "englishName": "Al-Ikhlas"},
			"numberInSurah": 1
		},
		{
			"text": "کہہ دو وہ اللہ ایک ہے",
			"surah": {"number": 112, "englishName": "Al-Ikhlas"},
			"numberInSurah": 1
		}
	]
}`

func hadeethFixture(lang string) string {
	if lang == "ur" {
		return `{"id": "42", "hadeeth": "اعمال کا دارومدار نیتوں پر ہے", "attribution": ""}`
	}
	return `{"id": "42", "hadeeth": "إنما الأعمال بالنيات", "attribution": "متفق عليه"}`
}

func newProviderTestSource(t *testing.T, quran, hadith http.Handler) *ProviderPairSource {
	t.Helper()
	quranSrv := httptest.NewServer(quran)
	hadithSrv := httptest.NewServer(hadith)
	t.Cleanup(quranSrv.Close)
	t.Cleanup(hadithSrv.Close)
	return &ProviderPairSource{
		quranBaseURL:  quranSrv.URL,
		hadithBaseURL: hadithSrv.URL,
		client:        quranSrv.Client(),
		pick:          func(n int) int { return 41 }, // deterministic id 42
	}
}

func TestProviderPairFetch(t *testing.T) {
	quran := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/ayah/42/editions/") {
			t.Errorf("unexpected quran path %s", r.URL.Path)
		}
		w.Write([]byte(alquranFixture))
	})
	hadith := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "42" {
			t.Errorf("unexpected hadith id %q", r.URL.Query().Get("id"))
		}
		w.Write([]byte(hadeethFixture(r.URL.Query().Get("language"))))
	})

	src := newProviderTestSource(t, quran, hadith)
	got, err := src.Fetch(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got.Ayah.Ref != "Surah Al-Ikhlas 112:1" {
		t.Errorf("ayah ref %q", got.Ayah.Ref)
	}
	if got.Ayah.Arabic == "" || got.Ayah.Urdu == "" {
		t.Errorf("ayah halves missing: %+v", got.Ayah)
	}
	if got.Hadith.Ref != "متفق عليه" {
		t.Errorf("hadith ref %q", got.Hadith.Ref)
	}
	if got.Hadith.Urdu == "" {
		t.Error("urdu hadith text missing")
	}
}

func TestProviderPairOneHalfFails(t *testing.T) {
	quran := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	hadith := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(hadeethFixture(r.URL.Query().Get("language"))))
	})

	src := newProviderTestSource(t, quran, hadith)
	got, err := src.Fetch(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatalf("one healthy half should not fail the fetch: %v", err)
	}
	if !got.Ayah.Empty() {
		t.Errorf("failed half should stay empty: %+v", got.Ayah)
	}
	if got.Hadith.Empty() {
		t.Error("healthy half lost")
	}
}

func TestProviderPairBothHalvesFail(t *testing.T) {
	down := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	src := newProviderTestSource(t, down, down)
	if _, err := src.Fetch(context.Background(), "2024-03-01"); err == nil {
		t.Fatal("expected error when both halves fail")
	}
}

func TestProviderPairHadithFallbackRef(t *testing.T) {
	quran := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(alquranFixture))
	})
	hadith := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "42", "hadeeth": "نص", "attribution": ""}`))
	})
	src := newProviderTestSource(t, quran, hadith)
	got, err := src.Fetch(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got.Hadith.Ref != "HadeethEnc #42" {
		t.Errorf("expected synthesized ref, got %q", got.Hadith.Ref)
	}
}
