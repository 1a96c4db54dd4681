package cli

import (
	"context"
	"fmt"

	"github.com/noorjournal/noor/internal/utils"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *DayCmd) Run(appCtx *Context) error {
	ctx := context.Background()

	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	e, err := appCtx.ResolveEntry(ctx, date)
	if err != nil {
		return err
	}
	fmt.Println(renderDay(e.DailyEntry))

	// The inspiration is keyed to today regardless of which day is being
	// viewed, and only shown on today's view.
	if e.Date == utils.Today() {
		result := appCtx.Inspiration.ResolveToday(ctx)
		if result.Day == appCtx.Inspiration.Today() {
			fmt.Println(renderInspiration(result.Data))
		}
	}

	return nil
}

type HijriCmd struct {
	Date string `arg:"" optional:"" help:"Gregorian date to convert (YYYY-MM-DD). Defaults to today."`
}

func (c *HijriCmd) Run(appCtx *Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	}
	day, err := utils.NormalizeDay(date)
	if err != nil {
		return err
	}

	result := appCtx.Hijri.Resolve(context.Background(), day)
	fmt.Printf("%s = %s\n", result.Day, result.Value)
	return nil
}

type InspireCmd struct{}

func (c *InspireCmd) Run(appCtx *Context) error {
	result := appCtx.Inspiration.ResolveToday(context.Background())
	fmt.Println(renderInspiration(result.Data))
	return nil
}
