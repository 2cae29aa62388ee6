//go:build unit

package infra_test

import (
	"testing"

	"offer-engine/internal/infra"
	"offer-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to a database failure", func(t *testing.T) {
		cause := errs.New("connection reset")
		err := infra.WrapRepoErr("failed to insert offers", cause)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindDuplicateKey))
		require.ErrorIs(t, err, cause)
	})

	t.Run("explicit kind is preserved", func(t *testing.T) {
		cause := errs.New("duplicate key value violates unique constraint")
		err := infra.WrapRepoErr("conflicting offer insert", cause, infra.KindDuplicateKey)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Contains(t, err.Error(), "DUPLICATE_KEY")
		assert.Contains(t, err.Error(), "conflicting offer insert")
	})

	t.Run("kind check rejects unrelated errors", func(t *testing.T) {
		assert.False(t, infra.IsKind(errs.New("plain error"), infra.KindDBFailure))
	})
}
