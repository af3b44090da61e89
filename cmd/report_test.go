package cmd_test

import (
	"bytes"
	"errors"
	"testing"

	"coffeeshop/cmd"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

// limitedWriter accepts up to limit bytes and then fails every write.
type limitedWriter struct {
	limit   int
	written int
	calls   int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.written+len(p) > w.limit {
		return 0, errDiskFull
	}
	w.written += len(p)
	return len(p), nil
}

func sampleReport(t *testing.T) commands.BatchReport {
	t.Helper()
	price, err := kernel.MoneyFromString("4.50")
	require.NoError(t, err)
	request, err := order.NewRequest("A1", "Latte #1", price)
	require.NoError(t, err)

	results := []order.Result{
		order.NewFailedResult(0, request, errors.New("grinder jammed")),
		order.NewInvalidResult(1, "", "Mocha #2", errors.New("value is required: request id")),
	}
	return commands.BatchReport{
		BatchID: kernel.NewUUID(),
		Results: results,
		Summary: order.Summarize(results),
	}
}

func TestWriteBatchReport(t *testing.T) {
	t.Run("prints rows and summary", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, cmd.WriteBatchReport(&out, sampleReport(t)))

		assert.Contains(t, out.String(), "Latte #1")
		assert.Contains(t, out.String(), "grinder jammed")
		assert.Contains(t, out.String(), "Mocha #2")
		assert.Contains(t, out.String(), "failed=1")
	})

	t.Run("returns the first write error", func(t *testing.T) {
		w := &limitedWriter{limit: 0}

		err := cmd.WriteBatchReport(w, sampleReport(t))

		require.ErrorIs(t, err, errDiskFull)
		assert.Equal(t, 1, w.calls)
	})

	t.Run("returns summary write errors", func(t *testing.T) {
		var table bytes.Buffer
		require.NoError(t, cmd.WriteBatchReport(&table, sampleReport(t)))
		w := &limitedWriter{limit: len(table.String()) - 5}

		err := cmd.WriteBatchReport(w, sampleReport(t))

		require.ErrorIs(t, err, errDiskFull)
	})
}

func TestWriteMenu_ReturnsWriteError(t *testing.T) {
	m, err := menu.Default()
	require.NoError(t, err)

	err = cmd.WriteMenu(&limitedWriter{limit: 0}, m)

	require.ErrorIs(t, err, errDiskFull)
}
