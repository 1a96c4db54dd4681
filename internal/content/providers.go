package content

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/noorjournal/noor/internal/logger"
	"github.com/noorjournal/noor/internal/models"
)

const (
	alquranBaseURL    = "https://api.alquran.cloud/v1"
	hadeethEncBaseURL = "https://hadeethenc.com/api/v1"

	// quranAyahCount is the total number of ayat addressable by the
	// alquran.cloud global ayah number.
	quranAyahCount = 6236

	// hadeethEncMaxID bounds the random id drawn against the HadeethEnc
	// collection. Unknown ids return 404, which simply fails the half.
	hadeethEncMaxID = 3000
)

// alquranResponse is the alquran.cloud multi-edition ayah response.
type alquranResponse struct {
	Code int `json:"code"`
	Data []struct {
		Text  string `json:"text"`
		Surah struct {
			Number      int    `json:"number"`
			EnglishName string `json:"englishName"`
		} `json:"surah"`
		NumberInSurah int `json:"numberInSurah"`
	} `json:"data"`
}

// hadeethEncResponse is the HadeethEnc single-hadith response.
type hadeethEncResponse struct {
	ID          string `json:"id"`
	Hadeeth     string `json:"hadeeth"`
	Attribution string `json:"attribution"`
}

// ProviderPairSource fetches the two inspiration halves from independent
// public providers and combines them client-side: a random ayah in the
// Arabic and Urdu editions from alquran.cloud, and a hadith from the
// HadeethEnc encyclopedia in both languages. Each half is attempted once;
// a failure in one half does not abort the other.
type ProviderPairSource struct {
	quranBaseURL  string
	hadithBaseURL string
	client        *http.Client
	pick          func(n int) int
}

func NewProviderPairSource() *ProviderPairSource {
	return &ProviderPairSource{
		quranBaseURL:  alquranBaseURL,
		hadithBaseURL: hadeethEncBaseURL,
		client:        newHTTPClient(),
		pick:          rand.Intn,
	}
}

func (s *ProviderPairSource) Name() string { return "providers" }

// Fetch combines the two halves. An empty half signals its failure to the
// resolver, which substitutes the fixed fallback passage; only when both
// halves fail does the whole fetch report an error.
func (s *ProviderPairSource) Fetch(ctx context.Context, _ string) (models.DailyInspiration, error) {
	var out models.DailyInspiration

	ayah, ayahErr := s.fetchAyah(ctx)
	if ayahErr != nil {
		logger.Debug("ayah fetch failed", "error", ayahErr)
	} else {
		out.Ayah = ayah
	}

	hadith, hadithErr := s.fetchHadith(ctx)
	if hadithErr != nil {
		logger.Debug("hadith fetch failed", "error", hadithErr)
	} else {
		out.Hadith = hadith
	}

	if ayahErr != nil && hadithErr != nil {
		return models.DailyInspiration{}, fmt.Errorf("both halves failed: %v; %v", ayahErr, hadithErr)
	}
	return out, nil
}

func (s *ProviderPairSource) fetchAyah(ctx context.Context) (models.Passage, error) {
	n := s.pick(quranAyahCount) + 1
	addr := fmt.Sprintf("%s/ayah/%d/editions/quran-uthmani,ur.jalandhry", s.quranBaseURL, n)

	var resp alquranResponse
	if err := getJSON(ctx, s.client, addr, &resp); err != nil {
		return models.Passage{}, err
	}
	if resp.Code != 200 || len(resp.Data) < 2 {
		return models.Passage{}, fmt.Errorf("alquran.cloud returned unexpected payload (code %d, %d editions)", resp.Code, len(resp.Data))
	}

	arabic := strings.TrimSpace(resp.Data[0].Text)
	urdu := strings.TrimSpace(resp.Data[1].Text)
	if arabic == "" {
		return models.Passage{}, fmt.Errorf("alquran.cloud returned empty ayah text")
	}
	ref := fmt.Sprintf("Surah %s %d:%d", resp.Data[0].Surah.EnglishName, resp.Data[0].Surah.Number, resp.Data[0].NumberInSurah)
	return models.Passage{Arabic: arabic, Urdu: urdu, Ref: ref}, nil
}

func (s *ProviderPairSource) fetchHadith(ctx context.Context) (models.Passage, error) {
	id := s.pick(hadeethEncMaxID) + 1

	var ar, ur hadeethEncResponse
	if err := getJSON(ctx, s.client, fmt.Sprintf("%s/hadeeths/one/?language=ar&id=%d", s.hadithBaseURL, id), &ar); err != nil {
		return models.Passage{}, err
	}
	if err := getJSON(ctx, s.client, fmt.Sprintf("%s/hadeeths/one/?language=ur&id=%d", s.hadithBaseURL, id), &ur); err != nil {
		return models.Passage{}, err
	}

	arabic := strings.TrimSpace(ar.Hadeeth)
	if arabic == "" {
		return models.Passage{}, fmt.Errorf("hadeethenc returned empty hadith text for id %d", id)
	}
	ref := strings.TrimSpace(ar.Attribution)
	if ref == "" {
		ref = fmt.Sprintf("HadeethEnc #%d", id)
	}
	return models.Passage{Arabic: arabic, Urdu: strings.TrimSpace(ur.Hadeeth), Ref: ref}, nil
}
