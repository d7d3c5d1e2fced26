//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"hotel-kiosk/internal/infra"
	"hotel-kiosk/tests/common/testutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, infra.KindDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"exclusion violation", &pgconn.PgError{Code: "23P01"}, infra.KindConflict},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, infra.KindDBFailure},
		{"anything else", errors.New("connection reset"), infra.KindDBFailure},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, infra.Classify(c.err))
		})
	}
}

func TestWrapDBErr(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505", ConstraintName: "rooms_number_key"}
	err := infra.WrapDBErr(testutil.DiscardLogger(), "failed to create room", cause)

	require.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	assert.Equal(t, "rooms_number_key", infra.ConstraintName(err))

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
}
