package services

import (
	"context"
	"testing"

	"kartoteka.link/models"
	"kartoteka.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOwnershipChangeCreatesRowForNewCard(t *testing.T) {
	action, newCount, recorded, err := resolveOwnershipChange(nil, 4)

	require.NoError(t, err)
	assert.Equal(t, ownershipCreate, action)
	assert.Equal(t, 4, newCount)
	assert.Equal(t, 4, recorded)
}

func TestResolveOwnershipChangeRefusesDecrementWithoutRow(t *testing.T) {
	_, _, _, err := resolveOwnershipChange(nil, -1)

	assert.ErrorIs(t, err, ErrOwnershipBelowZero)
}

func TestResolveOwnershipChangeAdjustsExistingCount(t *testing.T) {
	owned := &models.UserOwnedCard{Count: 3}

	action, newCount, recorded, err := resolveOwnershipChange(owned, 2)

	require.NoError(t, err)
	assert.Equal(t, ownershipUpdate, action)
	assert.Equal(t, 5, newCount)
	assert.Equal(t, 2, recorded)
}

func TestResolveOwnershipChangeDeletesRowAtZero(t *testing.T) {
	owned := &models.UserOwnedCard{Count: 2}

	action, _, recorded, err := resolveOwnershipChange(owned, -2)

	require.NoError(t, err)
	assert.Equal(t, ownershipDelete, action)
	assert.Equal(t, -2, recorded)
}

func TestResolveOwnershipChangeClampsOverdraw(t *testing.T) {
	// 3 adetten 10 düşmek satırı siler; kaydedilen fark -3 olur.
	owned := &models.UserOwnedCard{Count: 3}

	action, _, recorded, err := resolveOwnershipChange(owned, -10)

	require.NoError(t, err)
	assert.Equal(t, ownershipDelete, action)
	assert.Equal(t, -3, recorded)
}

func TestApplyChangeRejectsInvalidInput(t *testing.T) {
	svc := &OwnershipService{}

	assert.ErrorIs(t, svc.ApplyChange(context.Background(), 0, 5, 1), ErrOwnershipInvalidInput)
	assert.ErrorIs(t, svc.ApplyChange(context.Background(), 1, 0, 1), ErrOwnershipInvalidInput)
	assert.ErrorIs(t, svc.ApplyChange(context.Background(), 1, 5, 0), ErrOwnershipInvalidInput)
}

// fakeOwnershipRepository testlerde IOwnershipRepository yerine geçer.
type fakeOwnershipRepository struct {
	cardTotal     int
	printingTotal int
}

func (f *fakeOwnershipRepository) FindOwnership(_ context.Context, _, _ uint) (*models.UserOwnedCard, error) {
	return nil, nil
}

func (f *fakeOwnershipRepository) CreateOwnership(_ context.Context, _ *models.UserOwnedCard) error {
	return nil
}

func (f *fakeOwnershipRepository) SaveOwnership(_ context.Context, _ *models.UserOwnedCard) error {
	return nil
}

func (f *fakeOwnershipRepository) DeleteOwnership(_ context.Context, _ *models.UserOwnedCard) error {
	return nil
}

func (f *fakeOwnershipRepository) CreateChange(_ context.Context, _ *models.UserCardChange) error {
	return nil
}

func (f *fakeOwnershipRepository) GetLocalisationByID(_ context.Context, _ uint) (*models.CardLocalisation, error) {
	return nil, nil
}

func (f *fakeOwnershipRepository) OwnershipsForCard(_ context.Context, _, _ uint) ([]models.UserOwnedCard, error) {
	return nil, nil
}

func (f *fakeOwnershipRepository) ChangesForCard(_ context.Context, _, _ uint) ([]models.UserCardChange, error) {
	return nil, nil
}

func (f *fakeOwnershipRepository) CardOwnershipTotal(_ context.Context, _, _ uint) (int, error) {
	return f.cardTotal, nil
}

func (f *fakeOwnershipRepository) PrintingOwnershipTotal(_ context.Context, _, _ uint) (int, error) {
	return f.printingTotal, nil
}

var _ repositories.IOwnershipRepository = (*fakeOwnershipRepository)(nil)

func TestGetSummaryReportsCardAndPrintingTotals(t *testing.T) {
	svc := &OwnershipService{repo: &fakeOwnershipRepository{cardTotal: 12, printingTotal: 3}}

	summary, err := svc.GetSummary(context.Background(), 1, 2, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.CardTotal)
	assert.Equal(t, int64(3), summary.PrintingTotal)
}
