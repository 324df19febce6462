package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	ok := adminOperations.WithLabelValues("lokasi", "created", OutcomeSuccess)
	failed := adminOperations.WithLabelValues("lokasi", "created", OutcomeError)
	okBefore := testutil.ToFloat64(ok)
	failedBefore := testutil.ToFloat64(failed)

	Record("lokasi", "created", nil)
	Record("lokasi", "created", nil)
	Record("lokasi", "created", errors.New("boom"))

	assert.Equal(t, okBefore+2, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}
