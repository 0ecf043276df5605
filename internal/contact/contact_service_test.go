package contact

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
)

func TestEmergencyContactIsUnique(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(NewContactRepository(db), refcheck.New(db))
	ctx := context.Background()
	athlete := testutil.CreateAthlete(t, db, "3001")

	mother, err := svc.Create(ctx, CreateContactRequest{AthleteID: athlete.ID, FirstNames: "Maria", LastNames: "Rojas", Relationship: "mother", Phone: "3000000001", IsEmergency: true})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateContactRequest{AthleteID: athlete.ID, FirstNames: "Jose", LastNames: "Rojas", Phone: "3000000002", IsEmergency: true})
	require.ErrorIs(t, err, apperr.ErrConflict)

	father, err := svc.Create(ctx, CreateContactRequest{AthleteID: athlete.ID, FirstNames: "Jose", LastNames: "Rojas", Phone: "3000000002"})
	require.NoError(t, err)

	yes := true
	_, err = svc.Update(ctx, father.ID, UpdateContactRequest{IsEmergency: &yes})
	require.ErrorIs(t, err, apperr.ErrConflict)

	// the emergency contact may be edited while keeping the flag
	phone := "3000000009"
	updated, err := svc.Update(ctx, mother.ID, UpdateContactRequest{IsEmergency: &yes, Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, "3000000009", updated.Phone)

	contacts, err := svc.ForAthlete(ctx, athlete.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	require.Equal(t, mother.ID, contacts[0].ID)

	// moving the flag once the old one is cleared
	no := false
	_, err = svc.Update(ctx, mother.ID, UpdateContactRequest{IsEmergency: &no})
	require.NoError(t, err)
	_, err = svc.Update(ctx, father.ID, UpdateContactRequest{IsEmergency: &yes})
	require.NoError(t, err)

	em, err := svc.EmergencyFor(ctx, athlete.ID)
	require.NoError(t, err)
	require.Equal(t, father.ID, em.ID)
}

func TestContactLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewService(NewContactRepository(db), refcheck.New(db))
	ctx := context.Background()
	athlete := testutil.CreateAthlete(t, db, "3002")

	_, err := svc.Create(ctx, CreateContactRequest{AthleteID: 404, FirstNames: "X", LastNames: "Y", Phone: "1"})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.EmergencyFor(ctx, athlete.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.EqualError(t, err, fmt.Sprintf("athlete %d has no emergency contact", athlete.ID))

	c, err := svc.Create(ctx, CreateContactRequest{AthleteID: athlete.ID, FirstNames: "Ana", LastNames: "Diaz", Phone: "3001"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, c.ID))

	_, err = svc.Get(ctx, c.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, c.ID), apperr.ErrNotFound)
}
