// Package wiring holds the adapters that connect one bounded context to
// another. Contexts never import each other directly.
package wiring

import (
	"context"

	catalogports "lexicon/contexts/lexicon/catalog-service/ports"
	ledger "lexicon/contexts/lexicon/contribution-ledger"
	ledgercommands "lexicon/contexts/lexicon/contribution-ledger/application/commands"
	ledgerentities "lexicon/contexts/lexicon/contribution-ledger/domain/entities"
	"lexicon/internal/platform/metrics"
)

// LedgerRecorder satisfies the catalog's ContributionRecorder port by running
// the ledger's record command in-process.
type LedgerRecorder struct {
	Ledger  ledger.Module
	Metrics *metrics.Metrics
}

func (r LedgerRecorder) RecordContribution(ctx context.Context, record catalogports.ContributionRecord) error {
	result, err := r.Ledger.Handler.Record.Execute(ctx, ledgercommands.RecordContributionCommand{
		UserID:        record.UserID,
		WordID:        record.WordID,
		Type:          ledgerentities.ContributionType(record.Type),
		Details:       record.Details,
		ObservedCount: record.ObservedCount,
	})
	if err != nil {
		return err
	}
	if r.Metrics != nil {
		r.Metrics.ObserveContribution(record.Type, result.RankAdvanced)
	}
	return nil
}
