package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/mmynk/fintrack/internal/calculator"
	"github.com/mmynk/fintrack/internal/config"
	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/pkg/logging"
)

type auditCmd struct{}

func (*auditCmd) Name() string { return "audit" }
func (*auditCmd) Synopsis() string {
	return "check every asset balance against its linked transactions"
}
func (*auditCmd) Usage() string {
	return `fintrack audit

  Recomputes each asset's expected balance as its opening balance plus the
  signed amounts of the transactions linked to it, and lists the assets whose
  stored balance differs. Exits non-zero when any discrepancy is found.
`
}

func (*auditCmd) SetFlags(*flag.FlagSet) {}

func (*auditCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	guard, closeGuard, err := openGuard(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeGuard()

	var (
		found  []calculator.Discrepancy
		assets int
	)
	err = guard.View(ctx, func(snap *models.Snapshot) error {
		found = ledger.Audit(snap)
		assets = len(snap.Assets)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(found) == 0 {
		fmt.Printf("%d assets checked, all balances reconcile\n", assets)
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ASSET\tSTORED\tEXPECTED\tDIFFERENCE\t")
	for _, d := range found {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", d.AccountID, d.Stored.StringFixed(2), d.Expected.StringFixed(2), d.Difference.StringFixed(2))
	}
	w.Flush()
	fmt.Printf("%d of %d assets out of balance\n", len(found), assets)
	return subcommands.ExitFailure
}
