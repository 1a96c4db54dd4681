package content

import (
	"context"
	"fmt"
	"net/http"

	"github.com/noorjournal/noor/internal/utils"
)

const aladhanBaseURL = "https://api.aladhan.com/v1"

// aladhanGToHResponse is the Al Adhan gregorian-to-hijri response shape.
type aladhanGToHResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Hijri struct {
			Day   string `json:"day"`
			Month struct {
				Number int    `json:"number"`
				En     string `json:"en"`
			} `json:"month"`
			Year string `json:"year"`
		} `json:"hijri"`
	} `json:"data"`
}

// AladhanSource resolves Hijri dates through the Al Adhan calendar API.
// One request per resolution, no retry.
type AladhanSource struct {
	baseURL string
	client  *http.Client
}

func NewAladhanSource() *AladhanSource {
	return &AladhanSource{
		baseURL: aladhanBaseURL,
		client:  newHTTPClient(),
	}
}

func (s *AladhanSource) Name() string { return "aladhan" }

func (s *AladhanSource) Resolve(ctx context.Context, day string) (string, error) {
	t, err := utils.ParseDay(day)
	if err != nil {
		return "", err
	}

	// The API takes DD-MM-YYYY.
	addr := fmt.Sprintf("%s/gToH/%s", s.baseURL, t.Format("02-01-2006"))
	var resp aladhanGToHResponse
	if err := getJSON(ctx, s.client, addr, &resp); err != nil {
		return "", err
	}
	if resp.Code != 200 {
		return "", fmt.Errorf("aladhan returned code %d (%s)", resp.Code, resp.Status)
	}

	h := resp.Data.Hijri
	if h.Day == "" || h.Month.En == "" || h.Year == "" {
		return "", fmt.Errorf("aladhan response is missing hijri fields")
	}
	return fmt.Sprintf("%s %s %s AH", h.Day, h.Month.En, h.Year), nil
}
