package testentry

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appcontext"
)

// Populate builds the application graph and fills targets. The app is
// stopped when the test finishes.
func Populate(t *testing.T, targets ...any) {
	t.Helper()

	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts := []fx.Option{fx.NopLogger, fx.Populate(targets...)}
	opts = append(opts, fx.Invoke(func() {
		log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
	}))

	a := fx.New(app.Options(appcontext.Declare(appcontext.EnvTest), opts...)...)
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	t.Cleanup(func() {
		_ = a.Stop(context.Background())
	})
}
