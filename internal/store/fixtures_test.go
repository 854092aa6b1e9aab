package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// Helper to create a test user
func createTestUser(t *testing.T, testDB *TestDB, name string) User {
	t.Helper()
	user, err := testDB.Store.UpsertUser(context.Background(), UpsertUserParams{
		ExternalID: "ext-" + uuid.New().String(),
		Email:      name + "-" + uuid.New().String()[:8] + "@example.com",
		Name:       name,
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// Helper to create a test campaign
func createTestCampaign(t *testing.T, testDB *TestDB, ownerID uuid.UUID, accountCount int) Campaign {
	t.Helper()
	campaign, err := testDB.Store.CreateCampaign(context.Background(), CreateCampaignParams{
		OwnerID:         ownerID,
		Name:            "Test Campaign " + uuid.New().String()[:8],
		Description:     "verification work",
		Countries:       StringArray{"DE", "FR"},
		AccountCount:    accountCount,
		PricePerAccount: 500,
	})
	if err != nil {
		t.Fatalf("failed to create test campaign: %v", err)
	}
	return campaign
}

// Helper to create a campaign that has been funded and activated
func createActiveCampaign(t *testing.T, testDB *TestDB, ownerID uuid.UUID, accountCount int) Campaign {
	t.Helper()
	ctx := context.Background()
	campaign := createTestCampaign(t, testDB, ownerID, accountCount)

	proofURL := "https://proofs.example.com/" + campaign.ID.String()
	if _, err := testDB.Store.SetCampaignPaymentProof(ctx, campaign.ID, proofURL); err != nil {
		t.Fatalf("failed to set payment proof: %v", err)
	}
	if _, err := testDB.Store.ApproveCampaignPaymentProof(ctx, campaign.ID); err != nil {
		t.Fatalf("failed to approve payment proof: %v", err)
	}
	campaign, err := testDB.Store.TransitionCampaignStatus(ctx, campaign.ID, CampaignStatusPending, CampaignStatusActive)
	if err != nil {
		t.Fatalf("failed to activate campaign: %v", err)
	}
	return campaign
}

// Helper to create an accepted join request with its seller
func createAcceptedJoinRequest(t *testing.T, testDB *TestDB, campaignID uuid.UUID) (JoinRequest, User) {
	t.Helper()
	ctx := context.Background()
	seller := createTestUser(t, testDB, "Seller")

	request, err := testDB.Store.CreateJoinRequest(ctx, campaignID, seller.ID)
	if err != nil {
		t.Fatalf("failed to create join request: %v", err)
	}
	result, err := testDB.Store.AcceptJoinRequest(ctx, request.ID)
	if err != nil {
		t.Fatalf("failed to accept join request: %v", err)
	}
	return result.Request, seller
}
