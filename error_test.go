package postsift_test

import (
	"errors"
	"testing"

	"github.com/peekay/postsift"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code from application error", func(t *testing.T) {
		t.Parallel()

		err := postsift.Errorf(postsift.ENOTFOUND, "archive missing")

		assert.Equal(t, postsift.ENOTFOUND, postsift.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, postsift.EINTERNAL, postsift.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, postsift.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message from application error", func(t *testing.T) {
		t.Parallel()

		err := postsift.Errorf(postsift.EINVALID, "No data to analyze")

		assert.Equal(t, "No data to analyze", postsift.ErrorMessage(err))
	})

	t.Run("returns generic message for non-application error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", postsift.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, postsift.ErrorMessage(nil))
	})
}
