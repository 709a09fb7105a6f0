package main

import (
	"os"

	"github.com/k-capehart/go-salesforce/v3"
	"github.com/rotisserie/eris"

	"github.com/sells-group/call-sync/internal/config"
	"github.com/sells-group/call-sync/internal/extract"
	"github.com/sells-group/call-sync/internal/pipeline"
	"github.com/sells-group/call-sync/internal/resilience"
	"github.com/sells-group/call-sync/internal/schema"
	sfpkg "github.com/sells-group/call-sync/pkg/salesforce"
)

// syncEnv holds the initialized client, resolver, and processor shared by the
// serve/process/schema commands.
type syncEnv struct {
	Client    sfpkg.Client
	Resolver  *schema.Resolver
	Processor *pipeline.Processor
}

// initEnv validates config, authenticates to Salesforce, and wires the
// processor. The schema cache itself is populated lazily on first pass (or
// eagerly by the schema command).
func initEnv() (*syncEnv, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := initSalesforce()
	if err != nil {
		return nil, err
	}

	retry := retryPolicy(cfg.Retry)
	resolver := schema.NewResolver(client, cfg.Salesforce.Object, retry,
		schema.WithAliases(map[string]string{
			"call_attempts":      cfg.Fields.AttemptCounter,
			"appointment_booked": cfg.Fields.BookingFlag,
			"seller_memory":      cfg.Fields.MemoryLog,
		}),
	)

	processor := pipeline.NewProcessor(
		client,
		resolver,
		extract.New(cfg.Pipeline),
		cfg.Salesforce.Object,
		cfg.Fields,
		retry,
	)

	return &syncEnv{Client: client, Resolver: resolver, Processor: processor}, nil
}

func initSalesforce() (sfpkg.Client, error) {
	pemData, err := os.ReadFile(cfg.Salesforce.KeyPath)
	if err != nil {
		return nil, eris.Wrap(err, "read salesforce JWT private key")
	}

	sf, err := salesforce.Init(salesforce.Creds{
		Domain:         cfg.Salesforce.LoginURL,
		Username:       cfg.Salesforce.Username,
		ConsumerKey:    cfg.Salesforce.ClientID,
		ConsumerRSAPem: string(pemData),
	})
	if err != nil {
		return nil, eris.Wrap(err, "init salesforce")
	}

	return sfpkg.NewClient(sf, sfpkg.WithRateLimit(cfg.Salesforce.RateRPS)), nil
}

func retryPolicy(rc config.RetryConfig) resilience.Policy {
	return resilience.Policy{
		MaxAttempts: rc.MaxAttempts,
		BaseDelay:   rc.BaseDelay,
		MaxDelay:    rc.MaxDelay,
	}
}
