package formdata_test

import (
	"context"
	"testing"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/formdata"
	sharedContext "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*formdata.Service, *formdata.Repository, func() int64) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	repository := formdata.NewRepository()
	count := func() int64 {
		n, err := repository.CountByNationalID(context.Background(), db, "1710034065")
		require.NoError(t, err)
		return n
	}
	return formdata.NewService(db, repository), repository, count
}

func validData() map[string]string {
	return map[string]string{
		formdata.KeyName:       "Ana",
		formdata.KeyEmail:      "ana@example.com",
		formdata.KeyPhone:      "0991234567",
		formdata.KeyNationalID: "1710034065",
	}
}

func TestProcess_StoresSubmission(t *testing.T) {
	// Given: a request-scoped context
	service, _, count := setupService(t)
	ctx := sharedContext.WithRequestID(context.Background(), "req-123")

	// When: processing the same person twice
	require.NoError(t, service.Process(ctx, validData()))
	require.NoError(t, service.Process(ctx, validData()))

	// Then: both submissions are kept
	assert.Equal(t, int64(2), count())
}

func TestProcess_RecordsRequestID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	repository := formdata.NewRepository()
	service := formdata.NewService(db, repository)

	ctx := sharedContext.WithRequestID(context.Background(), "req-abc")
	require.NoError(t, service.Process(ctx, validData()))

	submission, err := repository.FindByID(context.Background(), db, 1)
	require.NoError(t, err)
	assert.Equal(t, "req-abc", submission.RequestID)
	assert.Equal(t, "ana@example.com", submission.Email)
	assert.Equal(t, "0991234567", submission.Phone)
	assert.False(t, submission.CreatedAt.IsZero())
}

func TestProcess_IncompleteData(t *testing.T) {
	testCases := []string{formdata.KeyName, formdata.KeyEmail, formdata.KeyPhone, formdata.KeyNationalID}

	for _, missing := range testCases {
		t.Run(missing, func(t *testing.T) {
			service, _, count := setupService(t)
			data := validData()
			delete(data, missing)

			err := service.Process(context.Background(), data)

			require.ErrorIs(t, err, formdata.ErrIncompleteFormData)
			resp, ok := sharedError.ResolveDomainError(err)
			require.True(t, ok)
			assert.Equal(t, "FORMDATA-001", resp.Code)
			assert.Equal(t, int64(0), count())
		})
	}
}
