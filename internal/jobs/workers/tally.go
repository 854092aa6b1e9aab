package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/p2p-kyc/verify-sub000/internal/jobs"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

// TallyRefresher recomputes and rewrites a campaign's cached charged tally
type TallyRefresher interface {
	Refresh(ctx context.Context, campaignID uuid.UUID) (int, error)
}

// ActiveCampaignLister yields the campaigns whose tally is worth keeping warm
type ActiveCampaignLister interface {
	ListCampaignIDsWithOpenCharges(ctx context.Context) ([]uuid.UUID, error)
}

// TallyWorker reconciles the Redis charged-tally cache against the
// database. Invalidation on the write path keeps the cache correct; this
// worker is the backstop for lost invalidations.
type TallyWorker struct {
	tally  TallyRefresher
	store  ActiveCampaignLister
	logger *observability.Logger
}

func NewTallyWorker(tally TallyRefresher, store ActiveCampaignLister, logger *observability.Logger) *TallyWorker {
	return &TallyWorker{
		tally:  tally,
		store:  store,
		logger: logger,
	}
}

// ProcessTallyReconcileTask handles a tally:reconcile task. A zero
// campaign ID means reconcile every campaign with open charges.
func (w *TallyWorker) ProcessTallyReconcileTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.TallyReconcileJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal tally reconcile payload: %w", err)
	}

	if payload.CampaignID != uuid.Nil {
		return w.reconcile(ctx, payload.CampaignID)
	}

	campaignIDs, err := w.store.ListCampaignIDsWithOpenCharges(ctx)
	if err != nil {
		w.logger.Error(ctx, "failed to list campaigns for tally reconcile", err)
		return err
	}

	var failed int
	for _, campaignID := range campaignIDs {
		if err := w.reconcile(ctx, campaignID); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("tally reconcile failed for %d of %d campaigns", failed, len(campaignIDs))
	}
	return nil
}

func (w *TallyWorker) reconcile(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()})

	charged, err := w.tally.Refresh(ctx, campaignID)
	if err != nil {
		w.logger.Error(ctx, "failed to refresh charged tally", err)
		return err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "charged_accounts", Value: charged})
	w.logger.Debug(ctx, "charged tally reconciled")
	return nil
}
