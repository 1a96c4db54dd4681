package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/noorjournal/noor/internal/keyring"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

// Run only touches the raw store; the journal stores are not constructed
// until storage exists.
func (c *InitCmd) Run(appCtx *Context) error {
	if err := appCtx.KV.Init(); err != nil {
		if !c.Force {
			return err
		}
		if rmErr := os.Remove(appCtx.KV.Path()); rmErr != nil {
			return fmt.Errorf("failed to remove existing storage: %w", rmErr)
		}
		if err := appCtx.KV.Init(); err != nil {
			return err
		}
	}
	fmt.Printf("Initialized noor storage at %s\n", appCtx.KV.Path())
	return nil
}

type APIKeySetCmd struct {
	Key string `arg:"" help:"Gemini API key."`
}

func (c *APIKeySetCmd) Run() error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("Stored Gemini API key in the OS keyring")
	return nil
}

type APIKeyClearCmd struct{}

func (c *APIKeyClearCmd) Run() error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API key was stored")
			return nil
		}
		return err
	}
	fmt.Println("Removed Gemini API key from the OS keyring")
	return nil
}
